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

package spaces

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
		{"List", List(), "GET", "spaces"},
		{"Info", Info("nasa"), "GET", "spaces/nasa"},
		{"Create", NewCreate("nasa", "t1").Build(), "POST", "spaces"},
		{"Update", Update("nasa", UpdateParams{}), "PATCH", "spaces/nasa"},
		{"Delete", Delete("nasa"), "DELETE", "spaces/nasa"},
		{"AccessList", AccessList("nasa"), "GET", "spaces/nasa/members"},
		{"AccessInfo", AccessInfo("nasa", "user@example.com"), "GET", "spaces/nasa/members/user@example.com"},
		{"AccessUpdate", AccessUpdate("nasa", "user@example.com", "view"), "PATCH",
			"spaces/nasa/members/user@example.com"},
		{"NATInfo", NATInfo("nasa"), "GET", "spaces/nasa/nat"},
		{"InboundRulesetInfo", InboundRulesetInfo("nasa"), "GET", "spaces/nasa/inbound-ruleset"},
		{"InboundRulesetCreate", InboundRulesetCreate("nasa"), "PUT", "spaces/nasa/inbound-ruleset"},
		{"TransferCreate", TransferCreate("nasa", "t2"), "POST", "spaces/nasa/transfer"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			testutil.AssertEndpoint(t, tt.ep, tt.method, tt.path)
		})
	}
}

func TestCreateBuilder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Create(CreateParams{Name: "nasa", Team: "t1"}), NewCreate("nasa", "t1").Build())
	assert.JSONEq(t, `{"name":"nasa","team":"t1"}`, testutil.BodyJSON(t, NewCreate("nasa", "t1").Build()))

	ep := NewCreate("nasa", "t1").
		CIDR("172.20.20.30/16").
		DataCIDR("10.2.0.0/16").
		Region("virginia").
		Shield(true).
		Build()
	assert.JSONEq(t, `{
		"cidr": "172.20.20.30/16",
		"data_cidr": "10.2.0.0/16",
		"name": "nasa",
		"region": "virginia",
		"shield": true,
		"team": "t1"
	}`, testutil.BodyJSON(t, ep))
}

func TestBodies(t *testing.T) {
	t.Parallel()

	assert.JSONEq(t, `{"name":"renamed"}`,
		testutil.BodyJSON(t, Update("nasa", UpdateParams{Name: client.String("renamed")})))
	assert.JSONEq(t, `{"permissions":[{"name":"view"},{"name":"create_apps"}]}`,
		testutil.BodyJSON(t, AccessUpdate("nasa", "user@example.com", "view", "create_apps")))
	assert.JSONEq(t, `{"new_owner":"t2"}`, testutil.BodyJSON(t, TransferCreate("nasa", "t2")))
}

func TestInboundRulesetCreate(t *testing.T) {
	t.Parallel()

	rules := []apitype.InboundRule{
		{Action: "allow", Source: "1.1.1.1/1"},
		{Action: "deny", Source: "0.0.0.0/0"},
	}
	ep := InboundRulesetCreate("nasa", rules...)
	rules[0].Action = "deny"

	assert.JSONEq(t, `{"rules":[
		{"action":"allow","source":"1.1.1.1/1"},
		{"action":"deny","source":"0.0.0.0/0"}
	]}`, testutil.BodyJSON(t, ep))
}
