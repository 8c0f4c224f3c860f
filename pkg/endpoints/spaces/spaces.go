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

// Package spaces describes the private space, space access, NAT, inbound ruleset and space transfer endpoints.
package spaces

import (
	"net/http"

	"github.com/heroku-go/heroku/pkg/apitype"
	"github.com/heroku-go/heroku/pkg/client"
)

// List lists the spaces visible to the account.
func List() client.Endpoint[[]apitype.Space] {
	return client.NewEndpoint[[]apitype.Space](http.MethodGet, "spaces")
}

// Info returns a space by name or ID.
func Info(spaceID string) client.Endpoint[apitype.Space] {
	return client.NewEndpoint[apitype.Space](http.MethodGet, client.Pathf("spaces/%s", spaceID))
}

// CreateParams describe a new space. Name and Team are required.
type CreateParams struct {
	CIDR     *string `json:"cidr,omitempty"`
	DataCIDR *string `json:"data_cidr,omitempty"`
	Name     string  `json:"name"`
	Region   *string `json:"region,omitempty"`
	Shield   *bool   `json:"shield,omitempty"`
	Team     string  `json:"team"`
}

// Create creates a space owned by a team.
func Create(params CreateParams) client.Endpoint[apitype.Space] {
	return client.NewEndpoint[apitype.Space](http.MethodPost, "spaces").
		WithBody(client.Snapshot(params))
}

// CreateBuilder assembles a Create endpoint one field at a time.
type CreateBuilder struct {
	params CreateParams
}

// NewCreate starts a Create endpoint for a space called name owned by team.
func NewCreate(name, team string) *CreateBuilder {
	return &CreateBuilder{params: CreateParams{Name: name, Team: team}}
}

// CIDR sets the RFC-1918 range of the space's dyno network.
func (b *CreateBuilder) CIDR(cidr string) *CreateBuilder {
	b.params.CIDR = &cidr
	return b
}

// DataCIDR sets the RFC-1918 range of the space's data services network.
func (b *CreateBuilder) DataCIDR(cidr string) *CreateBuilder {
	b.params.DataCIDR = &cidr
	return b
}

func (b *CreateBuilder) Region(region string) *CreateBuilder {
	b.params.Region = &region
	return b
}

func (b *CreateBuilder) Shield(shield bool) *CreateBuilder {
	b.params.Shield = &shield
	return b
}

// Build returns the endpoint for the fields set so far. Later calls on b do not affect it.
func (b *CreateBuilder) Build() client.Endpoint[apitype.Space] {
	return Create(b.params)
}

// UpdateParams rename a space.
type UpdateParams struct {
	Name *string `json:"name,omitempty"`
}

// Update changes a space.
func Update(spaceID string, params UpdateParams) client.Endpoint[apitype.Space] {
	return client.NewEndpoint[apitype.Space](http.MethodPatch, client.Pathf("spaces/%s", spaceID)).
		WithBody(client.Snapshot(params))
}

// Delete deletes a space.
func Delete(spaceID string) client.Endpoint[apitype.Space] {
	return client.NewEndpoint[apitype.Space](http.MethodDelete, client.Pathf("spaces/%s", spaceID))
}

// AccessList lists the users with access to a space.
func AccessList(spaceID string) client.Endpoint[[]apitype.SpaceAccess] {
	return client.NewEndpoint[[]apitype.SpaceAccess](http.MethodGet, client.Pathf("spaces/%s/members", spaceID))
}

// AccessInfo returns the permissions of a user on a space.
func AccessInfo(spaceID, accountID string) client.Endpoint[apitype.SpaceAccess] {
	return client.NewEndpoint[apitype.SpaceAccess](http.MethodGet,
		client.Pathf("spaces/%s/members/%s", spaceID, accountID))
}

// PermissionName names one space permission to grant.
type PermissionName struct {
	Name string `json:"name"`
}

// AccessUpdateParams replace the permissions of a user on a space.
type AccessUpdateParams struct {
	Permissions []PermissionName `json:"permissions"`
}

// AccessUpdate replaces the permissions of a user on a space.
func AccessUpdate(spaceID, accountID string, permissions ...string) client.Endpoint[apitype.SpaceAccess] {
	params := AccessUpdateParams{Permissions: make([]PermissionName, 0, len(permissions))}
	for _, p := range permissions {
		params.Permissions = append(params.Permissions, PermissionName{Name: p})
	}
	return client.NewEndpoint[apitype.SpaceAccess](http.MethodPatch,
		client.Pathf("spaces/%s/members/%s", spaceID, accountID)).
		WithBody(params)
}

// NATInfo returns the outbound IP addresses of a space.
func NATInfo(spaceID string) client.Endpoint[apitype.SpaceNAT] {
	return client.NewEndpoint[apitype.SpaceNAT](http.MethodGet, client.Pathf("spaces/%s/nat", spaceID))
}

// InboundRulesetInfo returns the current inbound ruleset of a space.
func InboundRulesetInfo(spaceID string) client.Endpoint[apitype.InboundRuleset] {
	return client.NewEndpoint[apitype.InboundRuleset](http.MethodGet,
		client.Pathf("spaces/%s/inbound-ruleset", spaceID))
}

// InboundRulesetParams replace the inbound rules of a space.
type InboundRulesetParams struct {
	Rules []apitype.InboundRule `json:"rules"`
}

// InboundRulesetCreate replaces the inbound rules of a space.
func InboundRulesetCreate(spaceID string, rules ...apitype.InboundRule) client.Endpoint[apitype.InboundRuleset] {
	params := InboundRulesetParams{Rules: append([]apitype.InboundRule{}, rules...)}
	return client.NewEndpoint[apitype.InboundRuleset](http.MethodPut,
		client.Pathf("spaces/%s/inbound-ruleset", spaceID)).
		WithBody(params)
}

// TransferParams name the team receiving a space.
type TransferParams struct {
	NewOwner string `json:"new_owner"`
}

// TransferCreate transfers a space to another team.
func TransferCreate(spaceID, newOwner string) client.Endpoint[apitype.Space] {
	return client.NewEndpoint[apitype.Space](http.MethodPost, client.Pathf("spaces/%s/transfer", spaceID)).
		WithBody(TransferParams{NewOwner: newOwner})
}
