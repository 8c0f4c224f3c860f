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

package builds

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heroku-go/heroku/pkg/apitype"
	"github.com/heroku-go/heroku/pkg/client"
	"github.com/heroku-go/heroku/pkg/util/testutil"
)

func TestEndpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ep     client.Descriptor
		method string
		path   string
	}{
		{"List", List("example"), "GET", "apps/example/builds"},
		{"Info", Info("example", "b1"), "GET", "apps/example/builds/b1"},
		{"Create", Create("example", CreateParams{}), "POST", "apps/example/builds"},
		{"DeleteCache", DeleteCache("example"), "DELETE", "apps/example/build-cache"},
		{"BuildpackInstallationList", BuildpackInstallationList("example"), "GET",
			"apps/example/buildpack-installations"},
		{"BuildpackInstallationUpdate", BuildpackInstallationUpdate("example", "heroku/go"), "PUT",
			"apps/example/buildpack-installations"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			testutil.AssertEndpoint(t, tt.ep, tt.method, tt.path)
		})
	}
}

func TestCreateBody(t *testing.T) {
	t.Parallel()

	t.Run("source only", func(t *testing.T) {
		t.Parallel()
		ep := Create("example", CreateParams{SourceBlob: SourceBlob{URL: "https://example.com/source.tgz"}})
		assert.JSONEq(t, `{"source_blob":{"url":"https://example.com/source.tgz"}}`, testutil.BodyJSON(t, ep))
	})
	t.Run("buildpacks are copied", func(t *testing.T) {
		t.Parallel()
		params := CreateParams{
			Buildpacks: []apitype.Buildpack{{URL: "https://github.com/heroku/heroku-buildpack-go"}},
			SourceBlob: SourceBlob{
				Checksum: client.String("SHA256:e3b0c442"),
				URL:      "https://example.com/source.tgz",
				Version:  client.String("v1.3.0"),
			},
		}
		ep := Create("example", params)
		params.Buildpacks[0].URL = "changed"

		body := testutil.BodyMap(t, ep)
		buildpacks := body["buildpacks"].([]interface{})
		assert.Equal(t, "https://github.com/heroku/heroku-buildpack-go",
			buildpacks[0].(map[string]interface{})["url"])
		assert.Equal(t, "v1.3.0", body["source_blob"].(map[string]interface{})["version"])
	})
}

func TestBuildpackInstallationUpdateBody(t *testing.T) {
	t.Parallel()

	ep := BuildpackInstallationUpdate("example", "heroku/nodejs", "https://github.com/heroku/heroku-buildpack-go")
	assert.JSONEq(t, `{"updates":[
		{"buildpack":"heroku/nodejs"},
		{"buildpack":"https://github.com/heroku/heroku-buildpack-go"}
	]}`, testutil.BodyJSON(t, ep))

	assert.JSONEq(t, `{"updates":[]}`, testutil.BodyJSON(t, BuildpackInstallationUpdate("example")))
}
