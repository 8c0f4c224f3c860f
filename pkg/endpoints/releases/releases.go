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

// Package releases describes the release endpoints of an app.
package releases

import (
	"net/http"

	"github.com/heroku-go/heroku/pkg/apitype"
	"github.com/heroku-go/heroku/pkg/client"
)

// List lists the releases of an app.
func List(appID string) client.Endpoint[[]apitype.Release] {
	return client.NewEndpoint[[]apitype.Release](http.MethodGet, client.Pathf("apps/%s/releases", appID))
}

// Info returns a release by ID or version number.
func Info(appID, releaseID string) client.Endpoint[apitype.Release] {
	return client.NewEndpoint[apitype.Release](http.MethodGet, client.Pathf("apps/%s/releases/%s", appID, releaseID))
}

// CreateParams release a slug.
type CreateParams struct {
	Description *string `json:"description,omitempty"`
	Slug        string  `json:"slug"`
}

// Create releases a slug to an app.
func Create(appID string, params CreateParams) client.Endpoint[apitype.Release] {
	return client.NewEndpoint[apitype.Release](http.MethodPost, client.Pathf("apps/%s/releases", appID)).
		WithBody(client.Snapshot(params))
}

// RollbackParams name the release to roll back to.
type RollbackParams struct {
	Release string `json:"release"`
}

// Rollback creates a new release copying the slug and config of an earlier one.
func Rollback(appID, releaseID string) client.Endpoint[apitype.Release] {
	return client.NewEndpoint[apitype.Release](http.MethodPost, client.Pathf("apps/%s/releases", appID)).
		WithBody(RollbackParams{Release: releaseID})
}
