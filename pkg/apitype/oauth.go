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

// OAuthAccessToken is the short lived token of an authorization.
type OAuthAccessToken struct {
	ExpiresIn *int   `json:"expires_in"`
	ID        string `json:"id"`
	Token     string `json:"token"`
}

// OAuthClientRef identifies the client an authorization belongs to.
type OAuthClientRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	RedirectURI string `json:"redirect_uri"`
}

// OAuthGrant is the grant code issued for an authorization.
type OAuthGrant struct {
	Code      string `json:"code"`
	ExpiresIn int    `json:"expires_in"`
	ID        string `json:"id"`
}

// OAuthUser is the user an authorization or token was issued to.
type OAuthUser struct {
	Email    string  `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	ID       string  `json:"id"`
}

// OAuthAuthorization grants a client scoped access to an account.
type OAuthAuthorization struct {
	AccessToken  *OAuthAccessToken `json:"access_token"`
	Client       *OAuthClientRef   `json:"client"`
	CreatedAt    time.Time         `json:"created_at"`
	Grant        *OAuthGrant       `json:"grant"`
	ID           string            `json:"id"`
	RefreshToken *OAuthAccessToken `json:"refresh_token"`
	Scope        []string          `json:"scope"`
	Session      *IDRef            `json:"session"`
	UpdatedAt    time.Time         `json:"updated_at"`
	User         OAuthUser         `json:"user"`
}

// OAuthClient is a web application that can request authorizations.
type OAuthClient struct {
	CreatedAt         time.Time `json:"created_at"`
	ID                string    `json:"id"`
	IgnoresDelinquent *bool     `json:"ignores_delinquent"`
	Name              string    `json:"name"`
	RedirectURI       string    `json:"redirect_uri"`
	Secret            string    `json:"secret"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// OAuthTokenGrant is the grant a token was exchanged for.
type OAuthTokenGrant struct {
	Code string `json:"code"`
	Type string `json:"type"`
}

// OAuthToken is the pair of access and refresh tokens issued to a client.
type OAuthToken struct {
	AccessToken   OAuthAccessToken `json:"access_token"`
	Authorization IDRef            `json:"authorization"`
	Client        *struct {
		Secret string `json:"secret"`
	} `json:"client"`
	CreatedAt    time.Time        `json:"created_at"`
	Grant        OAuthTokenGrant  `json:"grant"`
	ID           string           `json:"id"`
	RefreshToken OAuthAccessToken `json:"refresh_token"`
	Session      IDRef            `json:"session"`
	UpdatedAt    time.Time        `json:"updated_at"`
	User         OAuthUser        `json:"user"`
}
