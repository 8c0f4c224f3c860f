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

// Package apps describes the app, app feature and ACM endpoints.
package apps

import (
	"net/http"

	"github.com/heroku-go/heroku/pkg/apitype"
	"github.com/heroku-go/heroku/pkg/client"
)

// List lists the apps owned by the authenticated account.
func List() client.Endpoint[[]apitype.App] {
	return client.NewEndpoint[[]apitype.App](http.MethodGet, "apps")
}

// ListOwnedAndCollaborated lists the apps an account owns or collaborates on.
func ListOwnedAndCollaborated(accountID string) client.Endpoint[[]apitype.App] {
	return client.NewEndpoint[[]apitype.App](http.MethodGet, client.Pathf("users/%s/apps", accountID))
}

// Info returns an app by name or ID.
func Info(appID string) client.Endpoint[apitype.App] {
	return client.NewEndpoint[apitype.App](http.MethodGet, client.Pathf("apps/%s", appID))
}

// Delete deletes an app.
func Delete(appID string) client.Endpoint[apitype.App] {
	return client.NewEndpoint[apitype.App](http.MethodDelete, client.Pathf("apps/%s", appID))
}

// CreateParams describe a new app. Every field is optional; the API picks a name, region and stack when absent.
type CreateParams struct {
	Name   *string `json:"name,omitempty"`
	Region *string `json:"region,omitempty"`
	Stack  *string `json:"stack,omitempty"`
}

// Create creates an app.
func Create(params CreateParams) client.Endpoint[apitype.App] {
	return client.NewEndpoint[apitype.App](http.MethodPost, "apps").
		WithBody(client.Snapshot(params))
}

// CreateBuilder assembles a Create endpoint one field at a time.
type CreateBuilder struct {
	params CreateParams
}

// NewCreate starts a Create endpoint with no fields set.
func NewCreate() *CreateBuilder {
	return &CreateBuilder{}
}

func (b *CreateBuilder) Name(name string) *CreateBuilder {
	b.params.Name = &name
	return b
}

func (b *CreateBuilder) Region(region string) *CreateBuilder {
	b.params.Region = &region
	return b
}

func (b *CreateBuilder) Stack(stack string) *CreateBuilder {
	b.params.Stack = &stack
	return b
}

// Build returns the endpoint for the fields set so far. Later calls on b do not affect it.
func (b *CreateBuilder) Build() client.Endpoint[apitype.App] {
	return Create(b.params)
}

// UpdateParams are the app settings that can be changed. Nil fields are left unchanged.
type UpdateParams struct {
	BuildStack  *string `json:"build_stack,omitempty"`
	Maintenance *bool   `json:"maintenance,omitempty"`
	Name        *string `json:"name,omitempty"`
}

// Update changes an app.
func Update(appID string, params UpdateParams) client.Endpoint[apitype.App] {
	return client.NewEndpoint[apitype.App](http.MethodPatch, client.Pathf("apps/%s", appID)).
		WithBody(client.Snapshot(params))
}

// UpdateBuilder assembles an Update endpoint one field at a time.
type UpdateBuilder struct {
	appID  string
	params UpdateParams
}

// NewUpdate starts an Update endpoint for appID with no fields set.
func NewUpdate(appID string) *UpdateBuilder {
	return &UpdateBuilder{appID: appID}
}

func (b *UpdateBuilder) BuildStack(stack string) *UpdateBuilder {
	b.params.BuildStack = &stack
	return b
}

func (b *UpdateBuilder) Maintenance(on bool) *UpdateBuilder {
	b.params.Maintenance = &on
	return b
}

func (b *UpdateBuilder) Name(name string) *UpdateBuilder {
	b.params.Name = &name
	return b
}

// Build returns the endpoint for the fields set so far. Later calls on b do not affect it.
func (b *UpdateBuilder) Build() client.Endpoint[apitype.App] {
	return Update(b.appID, b.params)
}

// EnableACM turns on Automated Certificate Management for an app.
func EnableACM(appID string) client.Endpoint[apitype.App] {
	return client.NewEndpoint[apitype.App](http.MethodPost, client.Pathf("apps/%s/acm", appID))
}

// DisableACM turns off Automated Certificate Management for an app.
func DisableACM(appID string) client.Endpoint[apitype.App] {
	return client.NewEndpoint[apitype.App](http.MethodDelete, client.Pathf("apps/%s/acm", appID))
}

// RefreshACM retries certificate issuance for an app.
func RefreshACM(appID string) client.Endpoint[apitype.App] {
	return client.NewEndpoint[apitype.App](http.MethodPatch, client.Pathf("apps/%s/acm", appID))
}

// FeatureList lists the features of an app.
func FeatureList(appID string) client.Endpoint[[]apitype.Feature] {
	return client.NewEndpoint[[]apitype.Feature](http.MethodGet, client.Pathf("apps/%s/features", appID))
}

// FeatureInfo returns an app feature by name or ID.
func FeatureInfo(appID, featureID string) client.Endpoint[apitype.Feature] {
	return client.NewEndpoint[apitype.Feature](http.MethodGet,
		client.Pathf("apps/%s/features/%s", appID, featureID))
}

// FeatureUpdateParams toggles a feature.
type FeatureUpdateParams struct {
	Enabled bool `json:"enabled"`
}

// FeatureUpdate enables or disables an app feature.
func FeatureUpdate(appID, featureID string, enabled bool) client.Endpoint[apitype.Feature] {
	return client.NewEndpoint[apitype.Feature](http.MethodPatch,
		client.Pathf("apps/%s/features/%s", appID, featureID)).
		WithBody(FeatureUpdateParams{Enabled: enabled})
}
