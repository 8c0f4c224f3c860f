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

package addons

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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
		{"List", List(), "GET", "addons"},
		{"ListByApp", ListByApp("example"), "GET", "apps/example/addons"},
		{"Info", Info("ad1"), "GET", "addons/ad1"},
		{"InfoByApp", InfoByApp("example", "ad1"), "GET", "apps/example/addons/ad1"},
		{"Create", NewCreate("example", "heroku-postgresql:mini").Build(), "POST", "apps/example/addons"},
		{"Update", NewUpdate("example", "ad1", "heroku-postgresql:basic").Build(), "PATCH",
			"apps/example/addons/ad1"},
		{"Delete", Delete("example", "ad1"), "DELETE", "apps/example/addons/ad1"},
		{"Resolve", Resolve(ResolveParams{Addon: "ad1"}), "POST", "actions/addons/resolve"},
		{"Provision", Provision("ad1"), "POST", "addons/ad1/actions/provision"},
		{"Deprovision", Deprovision("ad1"), "POST", "addons/ad1/actions/deprovision"},
		{"AttachmentCreate", AttachmentCreate(AttachmentCreateParams{Addon: "ad1", App: "example"}), "POST",
			"addon-attachments"},
		{"AttachmentList", AttachmentList(), "GET", "addon-attachments"},
		{"AttachmentListByAddon", AttachmentListByAddon("ad1"), "GET", "addons/ad1/addon-attachments"},
		{"AttachmentListByApp", AttachmentListByApp("example"), "GET", "apps/example/addon-attachments"},
		{"AttachmentInfo", AttachmentInfo("at1"), "GET", "addon-attachments/at1"},
		{"AttachmentDelete", AttachmentDelete("at1"), "DELETE", "addon-attachments/at1"},
		{"AttachmentResolve", AttachmentResolve(AttachmentResolveParams{AddonAttachment: "DATABASE"}), "POST",
			"actions/addon-attachments/resolve"},
		{"ConfigList", ConfigList("ad1"), "GET", "addons/ad1/config"},
		{"ConfigUpdate", NewConfigUpdate("ad1").Build(), "PATCH", "addons/ad1/config"},
		{"WebhookCreate", WebhookCreate("ad1", WebhookCreateParams{}), "POST", "addons/ad1/webhooks"},
		{"WebhookList", WebhookList("ad1"), "GET", "addons/ad1/webhooks"},
		{"WebhookInfo", WebhookInfo("ad1", "w1"), "GET", "addons/ad1/webhooks/w1"},
		{"WebhookUpdate", NewWebhookUpdate("ad1", "w1").Build(), "PATCH", "addons/ad1/webhooks/w1"},
		{"WebhookDelete", WebhookDelete("ad1", "w1"), "DELETE", "addons/ad1/webhooks/w1"},
		{"ServiceList", ServiceList(), "GET", "addon-services"},
		{"ServiceInfo", ServiceInfo("heroku-postgresql"), "GET", "addon-services/heroku-postgresql"},
		{"PlanList", PlanList("heroku-postgresql"), "GET", "addon-services/heroku-postgresql/plans"},
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

	t.Run("plan only", func(t *testing.T) {
		t.Parallel()
		ep := NewCreate("example", "heroku-redis:mini").Build()
		assert.Equal(t, Create("example", CreateParams{Plan: "heroku-redis:mini"}), ep)
		assert.JSONEq(t, `{"plan":"heroku-redis:mini"}`, testutil.BodyJSON(t, ep))
	})
	t.Run("all fields", func(t *testing.T) {
		t.Parallel()
		ep := NewCreate("example", "heroku-postgresql:mini").
			AttachmentName("DATABASE_FOLLOWER").
			Config("db-version", "15").
			Confirm("example").
			Name("acme-inc-primary-database").
			Build()
		assert.JSONEq(t, `{
			"attachment": {"name": "DATABASE_FOLLOWER"},
			"config": {"db-version": "15"},
			"confirm": "example",
			"name": "acme-inc-primary-database",
			"plan": "heroku-postgresql:mini"
		}`, testutil.BodyJSON(t, ep))
	})
	t.Run("config is snapshotted", func(t *testing.T) {
		t.Parallel()
		b := NewCreate("example", "heroku-postgresql:mini").Config("a", "1")
		ep := b.Build()
		b.Config("b", "2")

		assert.JSONEq(t, `{"config":{"a":"1"},"plan":"heroku-postgresql:mini"}`, testutil.BodyJSON(t, ep))
	})
}

func TestUpdateBuilder(t *testing.T) {
	t.Parallel()

	ep := NewUpdate("example", "ad1", "heroku-postgresql:standard-0").Name("renamed").Build()
	assert.Equal(t, Update("example", "ad1", UpdateParams{
		Name: client.String("renamed"),
		Plan: "heroku-postgresql:standard-0",
	}), ep)
	assert.JSONEq(t, `{"name":"renamed","plan":"heroku-postgresql:standard-0"}`, testutil.BodyJSON(t, ep))
}

func TestConfigUpdateBuilder(t *testing.T) {
	t.Parallel()

	assert.JSONEq(t, `{}`, testutil.BodyJSON(t, NewConfigUpdate("ad1").Build()))

	b := NewConfigUpdate("ad1").Set("FOO", "bar")
	first := b.Build()
	b.Set("BAZ", "qux")

	assert.Equal(t, ConfigUpdate("ad1", ConfigUpdateParams{
		Config: []apitype.AddonConfig{{Name: "FOO", Value: "bar"}},
	}), first)
	assert.JSONEq(t, `{"config":[{"name":"FOO","value":"bar"}]}`, testutil.BodyJSON(t, first))
	assert.JSONEq(t, `{"config":[{"name":"FOO","value":"bar"},{"name":"BAZ","value":"qux"}]}`,
		testutil.BodyJSON(t, b.Build()))
}

func TestWebhookNullableFields(t *testing.T) {
	t.Parallel()

	t.Run("create", func(t *testing.T) {
		t.Parallel()
		ep := WebhookCreate("ad1", WebhookCreateParams{
			Include: []string{"api:release"},
			Level:   "notify",
			URL:     "https://example.com/hooks",
		})
		assert.JSONEq(t, `{
			"authorization": null,
			"include": ["api:release"],
			"level": "notify",
			"secret": null,
			"url": "https://example.com/hooks"
		}`, testutil.BodyJSON(t, ep))
	})
	t.Run("update", func(t *testing.T) {
		t.Parallel()
		ep := NewWebhookUpdate("ad1", "w1").Level("sync").Build()
		assert.JSONEq(t, `{"authorization":null,"level":"sync","secret":null}`, testutil.BodyJSON(t, ep))

		ep = NewWebhookUpdate("ad1", "w1").Authorization("Bearer x").Secret("s").Include("api:build").
			URL("https://example.com/other").Build()
		assert.JSONEq(t, `{
			"authorization": "Bearer x",
			"include": ["api:build"],
			"secret": "s",
			"url": "https://example.com/other"
		}`, testutil.BodyJSON(t, ep))
	})
}

func TestAttachmentNamespaceIsNullable(t *testing.T) {
	t.Parallel()

	ep := AttachmentCreate(AttachmentCreateParams{Addon: "ad1", App: "example"})
	assert.JSONEq(t, `{"addon":"ad1","app":"example","namespace":null}`, testutil.BodyJSON(t, ep))
}

func TestResolveRequest(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, 200, `[{
		"id": "01234567-89ab-cdef-0123-456789abcdef",
		"name": "acme-inc-primary-database",
		"app": {"id": "01234567-89ab-cdef-0123-456789abcdef", "name": "example"},
		"state": "provisioned"
	}]`)

	ep := Resolve(ResolveParams{Addon: "acme-inc-primary-database", App: client.String("example")})
	resp, err := client.Request(context.Background(), server.Client(), ep)
	require.NoError(t, err)
	require.Len(t, *resp.Result, 1)
	assert.Equal(t, "acme-inc-primary-database", (*resp.Result)[0].Name)

	last := server.Last(t)
	assert.Equal(t, "actions/addons/resolve", last.Path)
	assert.JSONEq(t, `{"addon":"acme-inc-primary-database","app":"example"}`, string(last.Body))
}
