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

// Package builds describes the build, build cache and buildpack installation endpoints.
package builds

import (
	"net/http"

	"github.com/heroku-go/heroku/pkg/apitype"
	"github.com/heroku-go/heroku/pkg/client"
)

// List lists the builds of an app.
func List(appID string) client.Endpoint[[]apitype.Build] {
	return client.NewEndpoint[[]apitype.Build](http.MethodGet, client.Pathf("apps/%s/builds", appID))
}

// Info returns a build of an app.
func Info(appID, buildID string) client.Endpoint[apitype.Build] {
	return client.NewEndpoint[apitype.Build](http.MethodGet, client.Pathf("apps/%s/builds/%s", appID, buildID))
}

// SourceBlob locates the source tarball of a new build.
type SourceBlob struct {
	Checksum *string `json:"checksum,omitempty"`
	URL      string  `json:"url"`
	Version  *string `json:"version,omitempty"`
}

// CreateParams describe a new build.
type CreateParams struct {
	Buildpacks []apitype.Buildpack `json:"buildpacks,omitempty"`
	SourceBlob SourceBlob          `json:"source_blob"`
}

// Create starts a build from a source tarball.
func Create(appID string, params CreateParams) client.Endpoint[apitype.Build] {
	return client.NewEndpoint[apitype.Build](http.MethodPost, client.Pathf("apps/%s/builds", appID)).
		WithBody(client.Snapshot(params))
}

// DeleteCache purges the build cache of an app.
func DeleteCache(appID string) client.Endpoint[apitype.Empty] {
	return client.NewEndpoint[apitype.Empty](http.MethodDelete, client.Pathf("apps/%s/build-cache", appID))
}

// BuildpackInstallationList lists the buildpacks of an app in build order.
func BuildpackInstallationList(appID string) client.Endpoint[[]apitype.BuildpackInstallation] {
	return client.NewEndpoint[[]apitype.BuildpackInstallation](http.MethodGet,
		client.Pathf("apps/%s/buildpack-installations", appID))
}

// BuildpackUpdate names one buildpack in a BuildpackInstallationUpdate.
type BuildpackUpdate struct {
	// Buildpack is a URL or a registry name such as "heroku/ruby".
	Buildpack string `json:"buildpack"`
}

// BuildpackInstallationUpdateParams replace the buildpacks of an app.
type BuildpackInstallationUpdateParams struct {
	Updates []BuildpackUpdate `json:"updates"`
}

// BuildpackInstallationUpdate replaces the buildpacks of an app. An empty list clears them.
func BuildpackInstallationUpdate(appID string, buildpacks ...string) client.Endpoint[[]apitype.BuildpackInstallation] {
	params := BuildpackInstallationUpdateParams{Updates: make([]BuildpackUpdate, 0, len(buildpacks))}
	for _, bp := range buildpacks {
		params.Updates = append(params.Updates, BuildpackUpdate{Buildpack: bp})
	}
	return client.NewEndpoint[[]apitype.BuildpackInstallation](http.MethodPut,
		client.Pathf("apps/%s/buildpack-installations", appID)).
		WithBody(params)
}
