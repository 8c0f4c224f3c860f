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

// Package dynos describes the dyno, formation and dyno size endpoints.
package dynos

import (
	"net/http"

	"github.com/heroku-go/heroku/pkg/apitype"
	"github.com/heroku-go/heroku/pkg/client"
)

// List lists the dynos of an app.
func List(appID string) client.Endpoint[[]apitype.Dyno] {
	return client.NewEndpoint[[]apitype.Dyno](http.MethodGet, client.Pathf("apps/%s/dynos", appID))
}

// Info returns a dyno by name or ID.
func Info(appID, dynoID string) client.Endpoint[apitype.Dyno] {
	return client.NewEndpoint[apitype.Dyno](http.MethodGet, client.Pathf("apps/%s/dynos/%s", appID, dynoID))
}

// CreateParams describe a one-off dyno. Command is required.
type CreateParams struct {
	Attach     *bool             `json:"attach,omitempty"`
	Command    string            `json:"command"`
	Env        map[string]string `json:"env,omitempty"`
	ForceNoTTY *bool             `json:"force_no_tty,omitempty"`
	Size       *string           `json:"size,omitempty"`
	TimeToLive *int              `json:"time_to_live,omitempty"`
	Type       *string           `json:"type,omitempty"`
}

// Create runs a one-off dyno.
func Create(appID string, params CreateParams) client.Endpoint[apitype.Dyno] {
	return client.NewEndpoint[apitype.Dyno](http.MethodPost, client.Pathf("apps/%s/dynos", appID)).
		WithBody(client.Snapshot(params))
}

// CreateBuilder assembles a Create endpoint one field at a time.
type CreateBuilder struct {
	appID  string
	params CreateParams
}

// NewCreate starts a Create endpoint running command on appID.
func NewCreate(appID, command string) *CreateBuilder {
	return &CreateBuilder{appID: appID, params: CreateParams{Command: command}}
}

func (b *CreateBuilder) Attach(attach bool) *CreateBuilder {
	b.params.Attach = &attach
	return b
}

// Env sets one environment variable of the dyno.
func (b *CreateBuilder) Env(name, value string) *CreateBuilder {
	if b.params.Env == nil {
		b.params.Env = map[string]string{}
	}
	b.params.Env[name] = value
	return b
}

func (b *CreateBuilder) ForceNoTTY(force bool) *CreateBuilder {
	b.params.ForceNoTTY = &force
	return b
}

func (b *CreateBuilder) Size(size string) *CreateBuilder {
	b.params.Size = &size
	return b
}

// TimeToLive sets the number of seconds the dyno may run.
func (b *CreateBuilder) TimeToLive(seconds int) *CreateBuilder {
	b.params.TimeToLive = &seconds
	return b
}

func (b *CreateBuilder) Type(typ string) *CreateBuilder {
	b.params.Type = &typ
	return b
}

// Build returns the endpoint for the fields set so far. Later calls on b do not affect it.
func (b *CreateBuilder) Build() client.Endpoint[apitype.Dyno] {
	return Create(b.appID, b.params)
}

// Restart restarts a single dyno.
func Restart(appID, dynoID string) client.Endpoint[apitype.Empty] {
	return client.NewEndpoint[apitype.Empty](http.MethodDelete, client.Pathf("apps/%s/dynos/%s", appID, dynoID))
}

// RestartAll restarts every dyno of an app.
func RestartAll(appID string) client.Endpoint[apitype.Empty] {
	return client.NewEndpoint[apitype.Empty](http.MethodDelete, client.Pathf("apps/%s/dynos", appID))
}

// Stop stops a dyno.
func Stop(appID, dynoID string) client.Endpoint[apitype.Empty] {
	return client.NewEndpoint[apitype.Empty](http.MethodPost,
		client.Pathf("apps/%s/dynos/%s/actions/stop", appID, dynoID))
}

// FormationList lists the process types of an app.
func FormationList(appID string) client.Endpoint[[]apitype.Formation] {
	return client.NewEndpoint[[]apitype.Formation](http.MethodGet, client.Pathf("apps/%s/formation", appID))
}

// FormationInfo returns the formation of one process type, by type or ID.
func FormationInfo(appID, formationID string) client.Endpoint[apitype.Formation] {
	return client.NewEndpoint[apitype.Formation](http.MethodGet,
		client.Pathf("apps/%s/formation/%s", appID, formationID))
}

// FormationUpdateParams scale or resize a process type. Nil fields are left unchanged.
type FormationUpdateParams struct {
	Quantity *int    `json:"quantity,omitempty"`
	Size     *string `json:"size,omitempty"`
}

// FormationUpdate scales or resizes one process type.
func FormationUpdate(appID, formationID string, params FormationUpdateParams) client.Endpoint[apitype.Formation] {
	return client.NewEndpoint[apitype.Formation](http.MethodPatch,
		client.Pathf("apps/%s/formation/%s", appID, formationID)).
		WithBody(client.Snapshot(params))
}

// FormationUpdateEntry is one process type changed by FormationBatchUpdate.
type FormationUpdateEntry struct {
	Quantity *int    `json:"quantity,omitempty"`
	Size     *string `json:"size,omitempty"`
	Type     string  `json:"type"`
}

// FormationBatchUpdateParams scale several process types at once.
type FormationBatchUpdateParams struct {
	Updates []FormationUpdateEntry `json:"updates"`
}

// FormationBatchUpdate scales or resizes several process types in one call.
func FormationBatchUpdate(appID string, updates ...FormationUpdateEntry) client.Endpoint[[]apitype.Formation] {
	params := FormationBatchUpdateParams{Updates: append([]FormationUpdateEntry{}, updates...)}
	return client.NewEndpoint[[]apitype.Formation](http.MethodPatch, client.Pathf("apps/%s/formation", appID)).
		WithBody(client.Snapshot(params))
}

// SizeList lists the available dyno sizes.
func SizeList() client.Endpoint[[]apitype.DynoSize] {
	return client.NewEndpoint[[]apitype.DynoSize](http.MethodGet, "dyno-sizes")
}
