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

// Buildpack is a buildpack used by a build.
type Buildpack struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url"`
}

// SourceBlob locates the source tarball a build is created from.
type SourceBlob struct {
	Checksum           *string `json:"checksum"`
	URL                string  `json:"url"`
	Version            *string `json:"version"`
	VersionDescription *string `json:"version_description,omitempty"`
}

// Build is the process of transforming a code tarball into a slug.
type Build struct {
	App             IDRef       `json:"app"`
	Buildpacks      []Buildpack `json:"buildpacks"`
	CreatedAt       time.Time   `json:"created_at"`
	ID              string      `json:"id"`
	OutputStreamURL string      `json:"output_stream_url"`
	Release         *IDRef      `json:"release"`
	Slug            *IDRef      `json:"slug"`
	SourceBlob      SourceBlob  `json:"source_blob"`
	Stack           string      `json:"stack"`
	// Status is one of "failed", "pending" or "succeeded".
	Status    string     `json:"status"`
	UpdatedAt time.Time  `json:"updated_at"`
	User      AccountRef `json:"user"`
}

// BuildpackInstallation is a buildpack attached to an app, in build order.
type BuildpackInstallation struct {
	Buildpack Buildpack `json:"buildpack"`
	Ordinal   int       `json:"ordinal"`
}
