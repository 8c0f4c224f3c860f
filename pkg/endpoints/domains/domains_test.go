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

package domains

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
		{"Create", Create("example", CreateParams{Hostname: "example.com"}), "POST", "apps/example/domains"},
		{"List", List("example"), "GET", "apps/example/domains"},
		{"Info", Info("example", "www.example.com"), "GET", "apps/example/domains/www.example.com"},
		{"Update", Update("example", "www.example.com", UpdateParams{}), "PATCH",
			"apps/example/domains/www.example.com"},
		{"Delete", Delete("example", "www.example.com"), "DELETE", "apps/example/domains/www.example.com"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			testutil.AssertEndpoint(t, tt.ep, tt.method, tt.path)
		})
	}
}

func TestSNIEndpointIsNullable(t *testing.T) {
	t.Parallel()

	assert.JSONEq(t, `{"hostname":"example.com","sni_endpoint":null}`,
		testutil.BodyJSON(t, Create("example", CreateParams{Hostname: "example.com"})))
	assert.JSONEq(t, `{"hostname":"example.com","sni_endpoint":"sni1"}`,
		testutil.BodyJSON(t, Create("example", CreateParams{Hostname: "example.com", SNIEndpoint: client.String("sni1")})))
	assert.JSONEq(t, `{"sni_endpoint":null}`, testutil.BodyJSON(t, Update("example", "d1", UpdateParams{})))
}

func TestWildcardHostnameIsEscaped(t *testing.T) {
	t.Parallel()

	ep := Info("example", "*.example.com")
	testutil.AssertEndpoint(t, ep, "GET", "apps/example/domains/%2A.example.com")
}

func TestCreateRequest(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, 201, `{
		"acm_status": null,
		"cname": "example.herokudns.com",
		"hostname": "example.com",
		"id": "01234567-89ab-cdef-0123-456789abcdef",
		"kind": "custom",
		"sni_endpoint": null,
		"status": "pending"
	}`)

	resp, err := client.Request(context.Background(), server.Client(),
		Create("example", CreateParams{Hostname: "example.com"}))
	require.NoError(t, err)
	assert.Equal(t, "example.com", resp.Result.Hostname)

	last := server.Last(t)
	assert.JSONEq(t, `{"hostname":"example.com","sni_endpoint":null}`, string(last.Body))
}
