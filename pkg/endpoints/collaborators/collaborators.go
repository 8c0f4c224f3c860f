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

// Package collaborators describes the app collaborator, team app collaborator and team app permission endpoints.
package collaborators

import (
	"net/http"

	"github.com/heroku-go/heroku/pkg/apitype"
	"github.com/heroku-go/heroku/pkg/client"
)

// CreateParams add a collaborator to an app. User is an email or account ID.
type CreateParams struct {
	Silent *bool  `json:"silent,omitempty"`
	User   string `json:"user"`
}

// Create adds a collaborator to an app.
func Create(appID string, params CreateParams) client.Endpoint[apitype.Collaborator] {
	return client.NewEndpoint[apitype.Collaborator](http.MethodPost, client.Pathf("apps/%s/collaborators", appID)).
		WithBody(client.Snapshot(params))
}

// List lists the collaborators of an app.
func List(appID string) client.Endpoint[[]apitype.Collaborator] {
	return client.NewEndpoint[[]apitype.Collaborator](http.MethodGet, client.Pathf("apps/%s/collaborators", appID))
}

// Info returns a collaborator of an app by email or ID.
func Info(appID, collaboratorID string) client.Endpoint[apitype.Collaborator] {
	return client.NewEndpoint[apitype.Collaborator](http.MethodGet,
		client.Pathf("apps/%s/collaborators/%s", appID, collaboratorID))
}

// Delete removes a collaborator from an app.
func Delete(appID, collaboratorID string) client.Endpoint[apitype.Collaborator] {
	return client.NewEndpoint[apitype.Collaborator](http.MethodDelete,
		client.Pathf("apps/%s/collaborators/%s", appID, collaboratorID))
}

// TeamCreateParams add a collaborator to a team app.
type TeamCreateParams struct {
	Permissions []string `json:"permissions,omitempty"`
	Silent      *bool    `json:"silent,omitempty"`
	User        string   `json:"user"`
}

// TeamCreate adds a collaborator to a team app.
func TeamCreate(appID string, params TeamCreateParams) client.Endpoint[apitype.Collaborator] {
	return client.NewEndpoint[apitype.Collaborator](http.MethodPost,
		client.Pathf("teams/apps/%s/collaborators", appID)).
		WithBody(client.Snapshot(params))
}

// TeamCreateBuilder assembles a TeamCreate endpoint one field at a time.
type TeamCreateBuilder struct {
	appID  string
	params TeamCreateParams
}

// NewTeamCreate starts a TeamCreate endpoint adding user to appID.
func NewTeamCreate(appID, user string) *TeamCreateBuilder {
	return &TeamCreateBuilder{appID: appID, params: TeamCreateParams{User: user}}
}

// Permission grants one permission, such as "view" or "deploy".
func (b *TeamCreateBuilder) Permission(name string) *TeamCreateBuilder {
	b.params.Permissions = append(b.params.Permissions, name)
	return b
}

// Silent suppresses the email notification to the new collaborator.
func (b *TeamCreateBuilder) Silent(silent bool) *TeamCreateBuilder {
	b.params.Silent = &silent
	return b
}

// Build returns the endpoint for the fields set so far. Later calls on b do not affect it.
func (b *TeamCreateBuilder) Build() client.Endpoint[apitype.Collaborator] {
	return TeamCreate(b.appID, b.params)
}

// TeamList lists the collaborators of a team app.
func TeamList(appID string) client.Endpoint[[]apitype.Collaborator] {
	return client.NewEndpoint[[]apitype.Collaborator](http.MethodGet,
		client.Pathf("teams/apps/%s/collaborators", appID))
}

// TeamInfo returns a collaborator of a team app.
func TeamInfo(appID, collaboratorID string) client.Endpoint[apitype.Collaborator] {
	return client.NewEndpoint[apitype.Collaborator](http.MethodGet,
		client.Pathf("teams/apps/%s/collaborators/%s", appID, collaboratorID))
}

// TeamUpdateParams replace the permissions of a team app collaborator.
type TeamUpdateParams struct {
	Permissions []string `json:"permissions"`
}

// TeamUpdate replaces the permissions of a team app collaborator.
func TeamUpdate(appID, collaboratorID string, permissions ...string) client.Endpoint[apitype.Collaborator] {
	return client.NewEndpoint[apitype.Collaborator](http.MethodPatch,
		client.Pathf("teams/apps/%s/collaborators/%s", appID, collaboratorID)).
		WithBody(TeamUpdateParams{Permissions: append([]string{}, permissions...)})
}

// TeamDelete removes a collaborator from a team app.
func TeamDelete(appID, collaboratorID string) client.Endpoint[apitype.Collaborator] {
	return client.NewEndpoint[apitype.Collaborator](http.MethodDelete,
		client.Pathf("teams/apps/%s/collaborators/%s", appID, collaboratorID))
}

// PermissionList lists the permissions a team app collaborator can hold.
func PermissionList() client.Endpoint[[]apitype.TeamAppPermission] {
	return client.NewEndpoint[[]apitype.TeamAppPermission](http.MethodGet, "teams/permissions")
}
