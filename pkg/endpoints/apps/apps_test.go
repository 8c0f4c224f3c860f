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

package apps

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
		{"List", List(), "GET", "apps"},
		{"ListOwnedAndCollaborated", ListOwnedAndCollaborated("user@example.com"), "GET", "users/user@example.com/apps"},
		{"Info", Info("heroku-rs-tests"), "GET", "apps/heroku-rs-tests"},
		{"Create", Create(CreateParams{}), "POST", "apps"},
		{"Update", Update("heroku-rs-tests", UpdateParams{}), "PATCH", "apps/heroku-rs-tests"},
		{"Delete", Delete("heroku-rs-tests"), "DELETE", "apps/heroku-rs-tests"},
		{"EnableACM", EnableACM("heroku-rs-tests"), "POST", "apps/heroku-rs-tests/acm"},
		{"DisableACM", DisableACM("heroku-rs-tests"), "DELETE", "apps/heroku-rs-tests/acm"},
		{"RefreshACM", RefreshACM("heroku-rs-tests"), "PATCH", "apps/heroku-rs-tests/acm"},
		{"FeatureList", FeatureList("heroku-rs-tests"), "GET", "apps/heroku-rs-tests/features"},
		{"FeatureInfo", FeatureInfo("heroku-rs-tests", "preboot"), "GET", "apps/heroku-rs-tests/features/preboot"},
		{"FeatureUpdate", FeatureUpdate("heroku-rs-tests", "preboot", true), "PATCH",
			"apps/heroku-rs-tests/features/preboot"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			testutil.AssertEndpoint(t, tt.ep, tt.method, tt.path)
		})
	}
}

func TestCreateOmitsUnsetFields(t *testing.T) {
	t.Parallel()

	ep := NewCreate().Name("mynewcoolapp").Build()
	body := testutil.BodyMap(t, ep)

	assert.Equal(t, "mynewcoolapp", body["name"])
	assert.NotContains(t, body, "region")
	assert.NotContains(t, body, "stack")
}

func TestCreateBuilder(t *testing.T) {
	t.Parallel()

	t.Run("minimal equals full with no optionals", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, Create(CreateParams{}), NewCreate().Build())
		assert.JSONEq(t, `{}`, testutil.BodyJSON(t, NewCreate().Build()))
	})
	t.Run("setters", func(t *testing.T) {
		t.Parallel()
		ep := NewCreate().Name("example").Region("eu").Stack("heroku-22").Build()
		assert.Equal(t, Create(CreateParams{
			Name:   client.String("example"),
			Region: client.String("eu"),
			Stack:  client.String("heroku-22"),
		}), ep)
	})
	t.Run("build is a snapshot", func(t *testing.T) {
		t.Parallel()
		b := NewCreate().Name("first")
		first := b.Build()
		b.Name("second").Region("us")

		assert.JSONEq(t, `{"name":"first"}`, testutil.BodyJSON(t, first))
		assert.JSONEq(t, `{"name":"second","region":"us"}`, testutil.BodyJSON(t, b.Build()))
	})
}

func TestCreateParamsAreCopied(t *testing.T) {
	t.Parallel()

	params := CreateParams{Name: client.String("example")}
	ep := Create(params)
	*params.Name = "changed"

	assert.JSONEq(t, `{"name":"example"}`, testutil.BodyJSON(t, ep))
}

func TestUpdateBuilder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Update("example", UpdateParams{}), NewUpdate("example").Build())

	ep := NewUpdate("example").Maintenance(false).Name("renamed").Build()
	assert.JSONEq(t, `{"maintenance":false,"name":"renamed"}`, testutil.BodyJSON(t, ep))
}

func TestFeatureUpdateBody(t *testing.T) {
	t.Parallel()

	assert.JSONEq(t, `{"enabled":false}`, testutil.BodyJSON(t, FeatureUpdate("example", "preboot", false)))
}

func TestInfoRequest(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, 200, `{
		"id": "01234567-89ab-cdef-0123-456789abcdef",
		"name": "example",
		"maintenance": false,
		"region": {"id": "59accabd-516d-4f0e-83e6-6e3757701145", "name": "us"},
		"stack": {"id": "69bee368-352b-4bd0-9b7c-819e2df7a2f7", "name": "heroku-22"},
		"owner": {"email": "user@example.com", "id": "0f3e0e1e-1c9b-4a4f-9e4e-6f5b6e3c7a11"},
		"created_at": "2012-01-01T12:00:00Z",
		"updated_at": "2012-01-01T12:00:00Z"
	}`)

	resp, err := client.Request(context.Background(), server.Client(), Info("example"))
	require.NoError(t, err)
	require.NotNil(t, resp.Result)
	assert.Equal(t, "example", resp.Result.Name)
	assert.Equal(t, "us", resp.Result.Region.Name)
	assert.Equal(t, "user@example.com", resp.Result.Owner.Email)
	assert.Nil(t, resp.Result.Space)

	last := server.Last(t)
	assert.Equal(t, "GET", last.Method)
	assert.Equal(t, "apps/example", last.Path)
}

func TestCreateRequest(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, 201, `{"id":"01234567-89ab-cdef-0123-456789abcdef","name":"mynewcoolapp"}`)

	resp, err := client.Request(context.Background(), server.Client(), NewCreate().Name("mynewcoolapp").Build())
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	last := server.Last(t)
	assert.Equal(t, "POST", last.Method)
	assert.JSONEq(t, `{"name":"mynewcoolapp"}`, string(last.Body))
	assert.Equal(t, "application/json", last.Header.Get("Content-Type"))
}
