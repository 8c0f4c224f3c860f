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

// DynoRelease is the release a dyno is running.
type DynoRelease struct {
	ID      string `json:"id"`
	Version int    `json:"version"`
}

// Dyno is a lightweight container running a single user-specified command.
type Dyno struct {
	App       Ref         `json:"app"`
	AttachURL *string     `json:"attach_url"`
	Command   string      `json:"command"`
	CreatedAt time.Time   `json:"created_at"`
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Release   DynoRelease `json:"release"`
	Size      string      `json:"size"`
	State     string      `json:"state"`
	Type      string      `json:"type"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Formation is the number and size of the dynos of one process type.
type Formation struct {
	App       Ref       `json:"app"`
	Command   string    `json:"command"`
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Quantity  int       `json:"quantity"`
	Size      string    `json:"size"`
	Type      string    `json:"type"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DynoSize describes the memory and CPU of a dyno size.
type DynoSize struct {
	Compute          int     `json:"compute"`
	Cost             *Cost   `json:"cost"`
	Dedicated        bool    `json:"dedicated"`
	DynoUnits        int     `json:"dyno_units"`
	ID               string  `json:"id"`
	Memory           float64 `json:"memory"`
	Name             string  `json:"name"`
	PrivateSpaceOnly bool    `json:"private_space_only"`
}

// Cost is a price expressed in cents per unit.
type Cost struct {
	Cents int    `json:"cents"`
	Unit  string `json:"unit"`
}
