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

// Space is an isolated, highly available, secure app execution environment.
type Space struct {
	CIDR         string    `json:"cidr"`
	CreatedAt    time.Time `json:"created_at"`
	DataCIDR     string    `json:"data_cidr"`
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Organization *Ref      `json:"organization"`
	Region       Ref       `json:"region"`
	Shield       bool      `json:"shield"`
	// State is one of "allocating", "allocated" or "deleting".
	State     string    `json:"state"`
	Team      Ref       `json:"team"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SpacePermission is a single permission granted on a space.
type SpacePermission struct {
	Description string `json:"description"`
	Name        string `json:"name"`
}

// SpaceAccess is the set of permissions a user has on a space.
type SpaceAccess struct {
	CreatedAt   time.Time         `json:"created_at"`
	ID          string            `json:"id"`
	Permissions []SpacePermission `json:"permissions"`
	Space       Ref               `json:"space"`
	UpdatedAt   time.Time         `json:"updated_at"`
	User        AccountRef        `json:"user"`
}

// SpaceNAT is the network address translation of a space's outbound traffic.
type SpaceNAT struct {
	CreatedAt time.Time `json:"created_at"`
	Sources   []string  `json:"sources"`
	State     string    `json:"state"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InboundRule allows or denies traffic from a CIDR source.
type InboundRule struct {
	// Action is either "allow" or "deny".
	Action string `json:"action"`
	Source string `json:"source"`
}

// InboundRuleset is the set of inbound rules applied to a space.
type InboundRuleset struct {
	CreatedAt time.Time     `json:"created_at"`
	CreatedBy string        `json:"created_by"`
	ID        string        `json:"id"`
	Rules     []InboundRule `json:"rules"`
	Space     Ref           `json:"space"`
}
