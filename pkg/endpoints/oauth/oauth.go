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

// Package oauth describes the OAuth authorization, client and token endpoints.
package oauth

import (
	"net/http"

	"github.com/heroku-go/heroku/pkg/apitype"
	"github.com/heroku-go/heroku/pkg/client"
)

// AuthorizationList lists the authorizations of the account.
func AuthorizationList() client.Endpoint[[]apitype.OAuthAuthorization] {
	return client.NewEndpoint[[]apitype.OAuthAuthorization](http.MethodGet, "oauth/authorizations")
}

// AuthorizationInfo returns an authorization by ID.
func AuthorizationInfo(authorizationID string) client.Endpoint[apitype.OAuthAuthorization] {
	return client.NewEndpoint[apitype.OAuthAuthorization](http.MethodGet,
		client.Pathf("oauth/authorizations/%s", authorizationID))
}

// AuthorizationCreateParams describe a new authorization. Scope is required.
type AuthorizationCreateParams struct {
	// Client is the ID of the OAuth client the authorization is for.
	Client      *string `json:"client,omitempty"`
	Description *string `json:"description,omitempty"`
	// ExpiresIn is the lifetime of the access token in seconds.
	ExpiresIn *int     `json:"expires_in,omitempty"`
	Scope     []string `json:"scope"`
}

// AuthorizationCreate creates an authorization.
func AuthorizationCreate(params AuthorizationCreateParams) client.Endpoint[apitype.OAuthAuthorization] {
	return client.NewEndpoint[apitype.OAuthAuthorization](http.MethodPost, "oauth/authorizations").
		WithBody(client.Snapshot(params))
}

// AuthorizationDelete revokes an authorization.
func AuthorizationDelete(authorizationID string) client.Endpoint[apitype.OAuthAuthorization] {
	return client.NewEndpoint[apitype.OAuthAuthorization](http.MethodDelete,
		client.Pathf("oauth/authorizations/%s", authorizationID))
}

// AuthorizationRegenerate issues new tokens for an authorization.
func AuthorizationRegenerate(authorizationID string) client.Endpoint[apitype.OAuthAuthorization] {
	return client.NewEndpoint[apitype.OAuthAuthorization](http.MethodPost,
		client.Pathf("oauth/authorizations/%s/actions/regenerate-tokens", authorizationID))
}

// ClientList lists the OAuth clients of the account.
func ClientList() client.Endpoint[[]apitype.OAuthClient] {
	return client.NewEndpoint[[]apitype.OAuthClient](http.MethodGet, "oauth/clients")
}

// ClientInfo returns an OAuth client by ID.
func ClientInfo(clientID string) client.Endpoint[apitype.OAuthClient] {
	return client.NewEndpoint[apitype.OAuthClient](http.MethodGet, client.Pathf("oauth/clients/%s", clientID))
}

// ClientCreateParams describe a new OAuth client.
type ClientCreateParams struct {
	Name        string `json:"name"`
	RedirectURI string `json:"redirect_uri"`
}

// ClientCreate registers an OAuth client.
func ClientCreate(name, redirectURI string) client.Endpoint[apitype.OAuthClient] {
	return client.NewEndpoint[apitype.OAuthClient](http.MethodPost, "oauth/clients").
		WithBody(ClientCreateParams{Name: name, RedirectURI: redirectURI})
}

// ClientUpdateParams are the OAuth client settings that can be changed. Nil fields are left unchanged.
type ClientUpdateParams struct {
	Name        *string `json:"name,omitempty"`
	RedirectURI *string `json:"redirect_uri,omitempty"`
}

// ClientUpdate changes an OAuth client.
func ClientUpdate(clientID string, params ClientUpdateParams) client.Endpoint[apitype.OAuthClient] {
	return client.NewEndpoint[apitype.OAuthClient](http.MethodPatch, client.Pathf("oauth/clients/%s", clientID)).
		WithBody(client.Snapshot(params))
}

// ClientDelete deletes an OAuth client.
func ClientDelete(clientID string) client.Endpoint[apitype.OAuthClient] {
	return client.NewEndpoint[apitype.OAuthClient](http.MethodDelete, client.Pathf("oauth/clients/%s", clientID))
}

// ClientRotateCredentials issues a new secret for an OAuth client.
func ClientRotateCredentials(clientID string) client.Endpoint[apitype.OAuthClient] {
	return client.NewEndpoint[apitype.OAuthClient](http.MethodPost,
		client.Pathf("oauth/clients/%s/actions/rotate-credentials", clientID))
}

// ClientSecret is the secret of the client requesting a token.
type ClientSecret struct {
	Secret string `json:"secret"`
}

// Grant is the grant exchanged for a token.
type Grant struct {
	Code string `json:"code"`
	// Type is either "authorization_code" or "refresh_token".
	Type string `json:"type"`
}

// RefreshToken carries the refresh token being exchanged.
type RefreshToken struct {
	Token string `json:"token"`
}

// TokenCreateParams exchange a grant for a new token.
type TokenCreateParams struct {
	Client       ClientSecret `json:"client"`
	Grant        Grant        `json:"grant"`
	RefreshToken RefreshToken `json:"refresh_token"`
}

// TokenCreate exchanges a grant code or refresh token for an access token.
func TokenCreate(params TokenCreateParams) client.Endpoint[apitype.OAuthToken] {
	return client.NewEndpoint[apitype.OAuthToken](http.MethodPost, "oauth/tokens").
		WithBody(params)
}

// TokenDelete revokes a token.
func TokenDelete(tokenID string) client.Endpoint[apitype.OAuthToken] {
	return client.NewEndpoint[apitype.OAuthToken](http.MethodDelete, client.Pathf("oauth/tokens/%s", tokenID))
}
