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

package apitype

import "time"

// Team allows managing access to a shared group of applications and other resources.
type Team struct {
	CreatedAt             time.Time         `json:"created_at"`
	CreditCardCollections bool              `json:"credit_card_collections"`
	Default               bool              `json:"default"`
	EnterpriseAccount     *Ref              `json:"enterprise_account"`
	ID                    string            `json:"id"`
	IdentityProvider      *IdentityProvider `json:"identity_provider"`
	MembershipLimit       *int64            `json:"membership_limit"`
	Name                  string            `json:"name"`
	ProvisionedLicenses   bool              `json:"provisioned_licenses"`
	// Role is one of "admin", "collaborator", "member", "owner", or nil.
	Role *string `json:"role"`
	// Type is either "enterprise" or "team".
	Type      string    `json:"type"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TeamApp encapsulates the team specific functionality of an app.
type TeamApp struct {
	ArchivedAt                   *time.Time  `json:"archived_at"`
	BuildStack                   Ref         `json:"build_stack"`
	BuildpackProvidedDescription *string     `json:"buildpack_provided_description"`
	CreatedAt                    time.Time   `json:"created_at"`
	GitURL                       string      `json:"git_url"`
	ID                           string      `json:"id"`
	InternalRouting              *bool       `json:"internal_routing"`
	Joined                       bool        `json:"joined"`
	Locked                       bool        `json:"locked"`
	Maintenance                  bool        `json:"maintenance"`
	Name                         string      `json:"name"`
	Owner                        *AccountRef `json:"owner"`
	Region                       Ref         `json:"region"`
	ReleasedAt                   *time.Time  `json:"released_at"`
	RepoSize                     *int64      `json:"repo_size"`
	SlugSize                     *int64      `json:"slug_size"`
	Space                        *Ref        `json:"space"`
	Stack                        Ref         `json:"stack"`
	Team                         *Ref        `json:"team"`
	UpdatedAt                    time.Time   `json:"updated_at"`
	WebURL                       string      `json:"web_url"`
}

// TeamUser is the user behind a team member or invitation.
type TeamUser struct {
	Email string  `json:"email"`
	ID    string  `json:"id"`
	Name  *string `json:"name"`
}

// TeamMember is a user with access to a team.
type TeamMember struct {
	CreatedAt               time.Time         `json:"created_at"`
	Email                   string            `json:"email"`
	Federated               bool              `json:"federated"`
	ID                      string            `json:"id"`
	IdentityProvider        *IdentityProvider `json:"identity_provider"`
	Role                    *string           `json:"role"`
	TwoFactorAuthentication bool              `json:"two_factor_authentication"`
	UpdatedAt               time.Time         `json:"updated_at"`
	User                    TeamUser          `json:"user"`
}

// TeamInvitation is an invitation for a user to join a team.
type TeamInvitation struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	InvitedBy TeamUser  `json:"invited_by"`
	Role      *string   `json:"role"`
	Team      Ref       `json:"team"`
	UpdatedAt time.Time `json:"updated_at"`
	User      TeamUser  `json:"user"`
}
