// Copyright 2026, The heroku-go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package domains describes the custom domain endpoints of an app.
package domains

import (
	"net/http"

	"github.com/heroku-go/heroku/pkg/apitype"
	"github.com/heroku-go/heroku/pkg/client"
)

// CreateParams add a hostname to an app. A nil SNIEndpoint is sent as null.
type CreateParams struct {
	Hostname    string  `json:"hostname"`
	SNIEndpoint *string `json:"sni_endpoint"`
}

// Create adds a domain to an app.
func Create(appID string, params CreateParams) client.Endpoint[apitype.Domain] {
	return client.NewEndpoint[apitype.Domain](http.MethodPost, client.Pathf("apps/%s/domains", appID)).
		WithBody(client.Snapshot(params))
}

// List lists the domains of an app.
func List(appID string) client.Endpoint[[]apitype.Domain] {
	return client.NewEndpoint[[]apitype.Domain](http.MethodGet, client.Pathf("apps/%s/domains", appID))
}

// Info returns a domain of an app by hostname or ID.
func Info(appID, domainID string) client.Endpoint[apitype.Domain] {
	return client.NewEndpoint[apitype.Domain](http.MethodGet, client.Pathf("apps/%s/domains/%s", appID, domainID))
}

// UpdateParams attach a domain to an SNI endpoint, or detach it when SNIEndpoint is nil.
type UpdateParams struct {
	SNIEndpoint *string `json:"sni_endpoint"`
}

// Update changes the SNI endpoint of a domain.
func Update(appID, domainID string, params UpdateParams) client.Endpoint[apitype.Domain] {
	return client.NewEndpoint[apitype.Domain](http.MethodPatch,
		client.Pathf("apps/%s/domains/%s", appID, domainID)).
		WithBody(client.Snapshot(params))
}

// Delete removes a domain from an app.
func Delete(appID, domainID string) client.Endpoint[apitype.Domain] {
	return client.NewEndpoint[apitype.Domain](http.MethodDelete,
		client.Pathf("apps/%s/domains/%s", appID, domainID))
}
