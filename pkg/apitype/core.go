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

// Package apitype contains the types returned by, and sent to, the Heroku Platform API.
package apitype

import "encoding/json"

// Empty is the result type of operations whose response carries no meaningful payload.
type Empty struct{}

// Ref identifies a resource by its unique identifier and name.
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IDRef identifies a resource by its unique identifier only.
type IDRef struct {
	ID string `json:"id"`
}

// AccountRef identifies an account.
type AccountRef struct {
	Email string `json:"email"`
	ID    string `json:"id"`
}

// IdentityProvider is the identity provider associated with an account or team.
type IdentityProvider struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

// RawJSON is a JSON value kept undecoded, such as the resource snapshot of a webhook event.
type RawJSON = json.RawMessage
