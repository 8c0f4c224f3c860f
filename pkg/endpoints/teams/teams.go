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

// Package teams describes the team, team app, team member and team invitation endpoints.
package teams

import (
	"net/http"

	"github.com/heroku-go/heroku/pkg/apitype"
	"github.com/heroku-go/heroku/pkg/client"
)

// List lists the teams the account belongs to.
func List() client.Endpoint[[]apitype.Team] {
	return client.NewEndpoint[[]apitype.Team](http.MethodGet, "teams")
}

// ListByEnterpriseAccount lists the teams of an enterprise account.
func ListByEnterpriseAccount(enterpriseAccountID string) client.Endpoint[[]apitype.Team] {
	return client.NewEndpoint[[]apitype.Team](http.MethodGet,
		client.Pathf("enterprise-accounts/%s/teams", enterpriseAccountID))
}

// Info returns a team by name or ID.
func Info(teamID string) client.Endpoint[apitype.Team] {
	return client.NewEndpoint[apitype.Team](http.MethodGet, client.Pathf("teams/%s", teamID))
}

// CreateParams describe a new team.
type CreateParams struct {
	Address1        *string `json:"address_1,omitempty"`
	Address2        *string `json:"address_2,omitempty"`
	CardNumber      *string `json:"card_number,omitempty"`
	City            *string `json:"city,omitempty"`
	Country         *string `json:"country,omitempty"`
	CVV             *string `json:"cvv,omitempty"`
	DeviceData      *string `json:"device_data,omitempty"`
	ExpirationMonth *string `json:"expiration_month,omitempty"`
	ExpirationYear  *string `json:"expiration_year,omitempty"`
	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
	Name            string  `json:"name"`
	Nonce           *string `json:"nonce,omitempty"`
	Other           *string `json:"other,omitempty"`
	PostalCode      *string `json:"postal_code,omitempty"`
	State           *string `json:"state,omitempty"`
}

// Create creates a team.
func Create(params CreateParams) client.Endpoint[apitype.Team] {
	return client.NewEndpoint[apitype.Team](http.MethodPost, "teams").
		WithBody(client.Snapshot(params))
}

// EnterpriseCreateParams describe a new team inside an enterprise account.
type EnterpriseCreateParams struct {
	Name string `json:"name"`
}

// CreateByEnterpriseAccount creates a team in an enterprise account.
func CreateByEnterpriseAccount(enterpriseAccountID, name string) client.Endpoint[apitype.Team] {
	return client.NewEndpoint[apitype.Team](http.MethodPost,
		client.Pathf("enterprise-accounts/%s/teams", enterpriseAccountID)).
		WithBody(EnterpriseCreateParams{Name: name})
}

// UpdateParams are the team settings that can be changed. Nil fields are left unchanged.
type UpdateParams struct {
	Default *bool   `json:"default,omitempty"`
	Name    *string `json:"name,omitempty"`
}

// Update changes a team.
func Update(teamID string, params UpdateParams) client.Endpoint[apitype.Team] {
	return client.NewEndpoint[apitype.Team](http.MethodPatch, client.Pathf("teams/%s", teamID)).
		WithBody(client.Snapshot(params))
}

// Delete deletes a team.
func Delete(teamID string) client.Endpoint[apitype.Team] {
	return client.NewEndpoint[apitype.Team](http.MethodDelete, client.Pathf("teams/%s", teamID))
}

// AppList lists the apps of a team.
func AppList(teamID string) client.Endpoint[[]apitype.TeamApp] {
	return client.NewEndpoint[[]apitype.TeamApp](http.MethodGet, client.Pathf("teams/%s/apps", teamID))
}

// AppInfo returns a team app by name or ID.
func AppInfo(appID string) client.Endpoint[apitype.TeamApp] {
	return client.NewEndpoint[apitype.TeamApp](http.MethodGet, client.Pathf("teams/apps/%s", appID))
}

// AppCreateParams describe a new team app. Every field is optional.
type AppCreateParams struct {
	InternalRouting *bool   `json:"internal_routing,omitempty"`
	Locked          *bool   `json:"locked,omitempty"`
	Name            *string `json:"name,omitempty"`
	Personal        *bool   `json:"personal,omitempty"`
	Region          *string `json:"region,omitempty"`
	Space           *string `json:"space,omitempty"`
	Stack           *string `json:"stack,omitempty"`
	Team            *string `json:"team,omitempty"`
}

// AppCreate creates an app owned by a team.
func AppCreate(params AppCreateParams) client.Endpoint[apitype.TeamApp] {
	return client.NewEndpoint[apitype.TeamApp](http.MethodPost, "teams/apps").
		WithBody(client.Snapshot(params))
}

// AppCreateBuilder assembles an AppCreate endpoint one field at a time.
type AppCreateBuilder struct {
	params AppCreateParams
}

// NewAppCreate starts an AppCreate endpoint with no fields set.
func NewAppCreate() *AppCreateBuilder {
	return &AppCreateBuilder{}
}

func (b *AppCreateBuilder) InternalRouting(on bool) *AppCreateBuilder {
	b.params.InternalRouting = &on
	return b
}

func (b *AppCreateBuilder) Locked(locked bool) *AppCreateBuilder {
	b.params.Locked = &locked
	return b
}

func (b *AppCreateBuilder) Name(name string) *AppCreateBuilder {
	b.params.Name = &name
	return b
}

// Personal forces creation of the app in the user's personal account, even if a default team is set.
func (b *AppCreateBuilder) Personal(personal bool) *AppCreateBuilder {
	b.params.Personal = &personal
	return b
}

func (b *AppCreateBuilder) Region(region string) *AppCreateBuilder {
	b.params.Region = &region
	return b
}

func (b *AppCreateBuilder) Space(space string) *AppCreateBuilder {
	b.params.Space = &space
	return b
}

func (b *AppCreateBuilder) Stack(stack string) *AppCreateBuilder {
	b.params.Stack = &stack
	return b
}

func (b *AppCreateBuilder) Team(team string) *AppCreateBuilder {
	b.params.Team = &team
	return b
}

// Build returns the endpoint for the fields set so far. Later calls on b do not affect it.
func (b *AppCreateBuilder) Build() client.Endpoint[apitype.TeamApp] {
	return AppCreate(b.params)
}

// AppLockParams lock or unlock a team app.
type AppLockParams struct {
	Locked bool `json:"locked"`
}

// AppUpdateLocked locks or unlocks a team app. Locked apps cannot be joined by team members.
func AppUpdateLocked(appID string, locked bool) client.Endpoint[apitype.TeamApp] {
	return client.NewEndpoint[apitype.TeamApp](http.MethodPatch, client.Pathf("teams/apps/%s", appID)).
		WithBody(AppLockParams{Locked: locked})
}

// AppTransferParams name the new owner of a team app.
type AppTransferParams struct {
	Owner string `json:"owner"`
}

// AppTransfer transfers a team app to another team or account.
func AppTransfer(appID, owner string) client.Endpoint[apitype.TeamApp] {
	return client.NewEndpoint[apitype.TeamApp](http.MethodPatch, client.Pathf("teams/apps/%s", appID)).
		WithBody(AppTransferParams{Owner: owner})
}

// MemberList lists the members of a team.
func MemberList(teamID string) client.Endpoint[[]apitype.TeamMember] {
	return client.NewEndpoint[[]apitype.TeamMember](http.MethodGet, client.Pathf("teams/%s/members", teamID))
}

// MemberParams add a member to a team or change their role.
type MemberParams struct {
	Email     string `json:"email"`
	Federated *bool  `json:"federated,omitempty"`
	Role      string `json:"role"`
}

// MemberCreateOrUpdate adds a member to a team, or changes the role of an existing member.
func MemberCreateOrUpdate(teamID string, params MemberParams) client.Endpoint[apitype.TeamMember] {
	return client.NewEndpoint[apitype.TeamMember](http.MethodPut, client.Pathf("teams/%s/members", teamID)).
		WithBody(client.Snapshot(params))
}

// MemberBuilder assembles a MemberCreateOrUpdate endpoint one field at a time.
type MemberBuilder struct {
	teamID string
	params MemberParams
}

// NewMemberCreateOrUpdate starts a MemberCreateOrUpdate endpoint giving email the role role.
func NewMemberCreateOrUpdate(teamID, email, role string) *MemberBuilder {
	return &MemberBuilder{teamID: teamID, params: MemberParams{Email: email, Role: role}}
}

// Federated marks the member as managed by the team's identity provider.
func (b *MemberBuilder) Federated(federated bool) *MemberBuilder {
	b.params.Federated = &federated
	return b
}

// Build returns the endpoint for the fields set so far. Later calls on b do not affect it.
func (b *MemberBuilder) Build() client.Endpoint[apitype.TeamMember] {
	return MemberCreateOrUpdate(b.teamID, b.params)
}

// MemberDelete removes a member from a team.
func MemberDelete(teamID, memberID string) client.Endpoint[apitype.TeamMember] {
	return client.NewEndpoint[apitype.TeamMember](http.MethodDelete,
		client.Pathf("teams/%s/members/%s", teamID, memberID))
}

// InvitationList lists the pending invitations of a team.
func InvitationList(teamID string) client.Endpoint[[]apitype.TeamInvitation] {
	return client.NewEndpoint[[]apitype.TeamInvitation](http.MethodGet, client.Pathf("teams/%s/invitations", teamID))
}

// InvitationParams invite a user to a team. A nil Role is sent as null.
type InvitationParams struct {
	Email string  `json:"email"`
	Role  *string `json:"role"`
}

// InvitationCreate invites a user to a team.
func InvitationCreate(teamID string, params InvitationParams) client.Endpoint[apitype.TeamInvitation] {
	return client.NewEndpoint[apitype.TeamInvitation](http.MethodPut, client.Pathf("teams/%s/invitations", teamID)).
		WithBody(client.Snapshot(params))
}

// InvitationBuilder assembles an InvitationCreate endpoint one field at a time.
type InvitationBuilder struct {
	teamID string
	params InvitationParams
}

// NewInvitationCreate starts an InvitationCreate endpoint for email with no role.
func NewInvitationCreate(teamID, email string) *InvitationBuilder {
	return &InvitationBuilder{teamID: teamID, params: InvitationParams{Email: email}}
}

func (b *InvitationBuilder) Role(role string) *InvitationBuilder {
	b.params.Role = &role
	return b
}

// Build returns the endpoint for the fields set so far. Later calls on b do not affect it.
func (b *InvitationBuilder) Build() client.Endpoint[apitype.TeamInvitation] {
	return InvitationCreate(b.teamID, b.params)
}

// InvitationRevoke revokes a pending invitation.
func InvitationRevoke(teamID, invitationID string) client.Endpoint[apitype.TeamInvitation] {
	return client.NewEndpoint[apitype.TeamInvitation](http.MethodDelete,
		client.Pathf("teams/%s/invitations/%s", teamID, invitationID))
}
