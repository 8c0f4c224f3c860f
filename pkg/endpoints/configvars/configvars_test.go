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

package configvars

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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
		{"Info", Info("example"), "GET", "apps/example/config-vars"},
		{"Update", Update("example", map[string]string{"A": "1"}), "PATCH", "apps/example/config-vars"},
		{"Delete", Delete("example", "A"), "PATCH", "apps/example/config-vars"},
		{"PipelineInfo", PipelineInfo("pipe", "production"), "GET", "pipelines/pipe/stage/production/config-vars"},
		{"PipelineUpdate", PipelineUpdate("pipe", "staging", map[string]string{"A": "1"}), "PATCH",
			"pipelines/pipe/stage/staging/config-vars"},
		{"PipelineDelete", PipelineDelete("pipe", "staging", "A"), "PATCH",
			"pipelines/pipe/stage/staging/config-vars"},
		{"ReleaseInfo", ReleaseInfo("example", "v12"), "GET", "apps/example/releases/v12/config-vars"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			testutil.AssertEndpoint(t, tt.ep, tt.method, tt.path)
		})
	}
}

func TestDeleteSendsNulls(t *testing.T) {
	t.Parallel()

	assert.JSONEq(t, `{"A":null,"B":null}`, testutil.BodyJSON(t, Delete("example", "A", "B")))
	assert.JSONEq(t, `{"FOO":null}`, testutil.BodyJSON(t, PipelineDelete("pipe", "staging", "FOO")))
	assert.JSONEq(t, `{}`, testutil.BodyJSON(t, Delete("example")))
}

func TestUpdateCopiesVars(t *testing.T) {
	t.Parallel()

	vars := map[string]string{"A": "1"}
	ep := Update("example", vars)
	vars["A"] = "2"
	vars["B"] = "3"

	assert.JSONEq(t, `{"A":"1"}`, testutil.BodyJSON(t, ep))
}

func TestUpdateNilVarsSendsEmptyObject(t *testing.T) {
	t.Parallel()

	assert.JSONEq(t, `{}`, testutil.BodyJSON(t, Update("example", nil)))
	assert.JSONEq(t, `{}`, testutil.BodyJSON(t, PipelineUpdate("pipe", "staging", nil)))

	server := testutil.NewServer(t, 200, `{}`)
	_, err := client.Request(context.Background(), server.Client(), Update("example", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(server.Last(t).Body))
}

func TestUpdateRequest(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, 200, `{"A":"1","FOO":"bar"}`)

	resp, err := client.Request(context.Background(), server.Client(), Delete("example", "B"))
	require.NoError(t, err)
	require.NotNil(t, resp.Result)
	assert.Equal(t, "bar", (*resp.Result)["FOO"])

	last := server.Last(t)
	assert.Equal(t, "PATCH", last.Method)
	assert.Equal(t, "apps/example/config-vars", last.Path)
	assert.JSONEq(t, `{"B":null}`, string(last.Body))
}
