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

package account

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
		{"Info", Info(), "GET", "account"},
		{"Update", Update(UpdateParams{}), "PATCH", "account"},
		{"Delete", Delete(), "DELETE", "account"},
		{"UserInfo", UserInfo("user@example.com"), "GET", "users/user@example.com"},
		{"UserUpdate", UserUpdate("user@example.com", UpdateParams{}), "PATCH", "users/user@example.com"},
		{"UserDelete", UserDelete("user@example.com"), "DELETE", "users/user@example.com"},
		{"FeatureList", FeatureList(), "GET", "account/features"},
		{"FeatureInfo", FeatureInfo("team-internal-routing"), "GET", "account/features/team-internal-routing"},
		{"FeatureUpdate", FeatureUpdate("team-internal-routing", true), "PATCH",
			"account/features/team-internal-routing"},
		{"TransferList", TransferList(), "GET", "account/app-transfers"},
		{"TransferInfo", TransferInfo("abc"), "GET", "account/app-transfers/abc"},
		{"TransferCreate", TransferCreate(TransferCreateParams{App: "a", Recipient: "r"}), "POST",
			"account/app-transfers"},
		{"TransferUpdate", TransferUpdate("abc", "accepted"), "PATCH", "account/app-transfers/abc"},
		{"TransferDelete", TransferDelete("abc"), "DELETE", "account/app-transfers/abc"},
		{"CreditList", CreditList(), "GET", "account/credits"},
		{"CreditInfo", CreditInfo("abc"), "GET", "account/credits/abc"},
		{"CreditCreate", CreditCreate(CreditCreateParams{}), "POST", "account/credits"},
		{"PasswordReset", PasswordReset("user@example.com"), "POST", "password-resets"},
		{"PasswordResetConfirm", PasswordResetConfirm("token", "pw", "pw"), "POST",
			"password-resets/token/actions/finalize"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			testutil.AssertEndpoint(t, tt.ep, tt.method, tt.path)
		})
	}
}

func TestBodies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ep   client.Descriptor
		want string
	}{
		{"empty update", Update(UpdateParams{}), `{}`},
		{"update", Update(UpdateParams{Beta: client.Bool(false), Name: client.String("Tina")}),
			`{"beta":false,"name":"Tina"}`},
		{"feature", FeatureUpdate("f", true), `{"enabled":true}`},
		{"transfer", TransferCreate(TransferCreateParams{App: "example", Recipient: "user@example.com"}),
			`{"app":"example","recipient":"user@example.com"}`},
		{"silent transfer",
			TransferCreate(TransferCreateParams{App: "example", Recipient: "r", Silent: client.Bool(true)}),
			`{"app":"example","recipient":"r","silent":true}`},
		{"transfer state", TransferUpdate("abc", "declined"), `{"state":"declined"}`},
		{"credit", CreditCreate(CreditCreateParams{Code1: client.String("CODE")}), `{"code1":"CODE"}`},
		{"password reset", PasswordReset("user@example.com"), `{"email":"user@example.com"}`},
		{"password confirm", PasswordResetConfirm("tok", "secret", "secret"),
			`{"password":"secret","password_confirmation":"secret"}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.JSONEq(t, tt.want, testutil.BodyJSON(t, tt.ep))
		})
	}
}

func TestInfoRequest(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, 200, `{
		"allow_tracking": true,
		"beta": false,
		"email": "username@example.com",
		"id": "01234567-89ab-cdef-0123-456789abcdef",
		"name": "Tina Edmonds",
		"two_factor_authentication": false,
		"verified": true
	}`)

	resp, err := client.Request(context.Background(), server.Client(), Info())
	require.NoError(t, err)
	require.NotNil(t, resp.Result)
	assert.Equal(t, "username@example.com", resp.Result.Email)

	last := server.Last(t)
	assert.Equal(t, "account", last.Path)
	assert.Equal(t, "Bearer test-token", last.Header.Get("Authorization"))
}
