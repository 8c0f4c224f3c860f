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

// Package configvars describes the config var endpoints of apps, pipeline stages and releases.
package configvars

import (
	"net/http"

	"github.com/heroku-go/heroku/pkg/apitype"
	"github.com/heroku-go/heroku/pkg/client"
)

// Info returns the config vars of an app.
func Info(appID string) client.Endpoint[apitype.ConfigVars] {
	return client.NewEndpoint[apitype.ConfigVars](http.MethodGet, client.Pathf("apps/%s/config-vars", appID))
}

// Update sets config vars of an app. Vars not named in vars are left unchanged.
func Update(appID string, vars map[string]string) client.Endpoint[apitype.ConfigVars] {
	return client.NewEndpoint[apitype.ConfigVars](http.MethodPatch, client.Pathf("apps/%s/config-vars", appID)).
		WithBody(varsBody(vars))
}

// Delete removes the named config vars of an app. The API has no DELETE for config vars; the names are sent in a
// PATCH with null values.
func Delete(appID string, names ...string) client.Endpoint[apitype.ConfigVars] {
	return client.NewEndpoint[apitype.ConfigVars](http.MethodPatch, client.Pathf("apps/%s/config-vars", appID)).
		WithBody(nulls(names))
}

// PipelineInfo returns the config vars of a pipeline stage.
func PipelineInfo(pipelineID, stage string) client.Endpoint[apitype.ConfigVars] {
	return client.NewEndpoint[apitype.ConfigVars](http.MethodGet,
		client.Pathf("pipelines/%s/stage/%s/config-vars", pipelineID, stage))
}

// PipelineUpdate sets config vars of a pipeline stage.
func PipelineUpdate(pipelineID, stage string, vars map[string]string) client.Endpoint[apitype.ConfigVars] {
	return client.NewEndpoint[apitype.ConfigVars](http.MethodPatch,
		client.Pathf("pipelines/%s/stage/%s/config-vars", pipelineID, stage)).
		WithBody(varsBody(vars))
}

// PipelineDelete removes the named config vars of a pipeline stage.
func PipelineDelete(pipelineID, stage string, names ...string) client.Endpoint[apitype.ConfigVars] {
	return client.NewEndpoint[apitype.ConfigVars](http.MethodPatch,
		client.Pathf("pipelines/%s/stage/%s/config-vars", pipelineID, stage)).
		WithBody(nulls(names))
}

// ReleaseInfo returns the config vars of an app as of a release.
func ReleaseInfo(appID, releaseID string) client.Endpoint[apitype.ConfigVars] {
	return client.NewEndpoint[apitype.ConfigVars](http.MethodGet,
		client.Pathf("apps/%s/releases/%s/config-vars", appID, releaseID))
}

// varsBody copies vars for sending. A nil map is sent as {}.
func varsBody(vars map[string]string) map[string]string {
	if vars == nil {
		return map[string]string{}
	}
	return client.Snapshot(vars)
}

// nulls maps each name to a JSON null.
func nulls(names []string) map[string]*string {
	m := make(map[string]*string, len(names))
	for _, n := range names {
		m[n] = nil
	}
	return m
}
