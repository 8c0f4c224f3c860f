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

// Package webhooks describes the app webhook, delivery and event endpoints.
package webhooks

import (
	"net/http"

	"github.com/heroku-go/heroku/pkg/apitype"
	"github.com/heroku-go/heroku/pkg/client"
)

// Webhook levels.
const (
	LevelNotify = "notify"
	LevelSync   = "sync"
)

// CreateParams describe a new app webhook. Nil Authorization and Secret are sent as null.
type CreateParams struct {
	Authorization *string  `json:"authorization"`
	Include       []string `json:"include"`
	Level         string   `json:"level"`
	Secret        *string  `json:"secret"`
	URL           string   `json:"url"`
}

// Create subscribes url to events of an app.
func Create(appID string, params CreateParams) client.Endpoint[apitype.AppWebhook] {
	return client.NewEndpoint[apitype.AppWebhook](http.MethodPost, client.Pathf("apps/%s/webhooks", appID)).
		WithBody(client.Snapshot(params))
}

// CreateBuilder assembles a Create endpoint one field at a time.
type CreateBuilder struct {
	appID  string
	params CreateParams
}

// NewCreate starts a Create endpoint delivering the events of include to url at the given level.
func NewCreate(appID, url, level string, include ...string) *CreateBuilder {
	return &CreateBuilder{appID: appID, params: CreateParams{
		Include: append([]string{}, include...),
		Level:   level,
		URL:     url,
	}}
}

// Authorization sets the value sent in the Authorization header of each delivery.
func (b *CreateBuilder) Authorization(authorization string) *CreateBuilder {
	b.params.Authorization = &authorization
	return b
}

// Include adds an entity to the events the webhook receives, such as "api:release".
func (b *CreateBuilder) Include(entity string) *CreateBuilder {
	b.params.Include = append(b.params.Include, entity)
	return b
}

// Secret sets the key used to sign each delivery.
func (b *CreateBuilder) Secret(secret string) *CreateBuilder {
	b.params.Secret = &secret
	return b
}

// Build returns the endpoint for the fields set so far. Later calls on b do not affect it.
func (b *CreateBuilder) Build() client.Endpoint[apitype.AppWebhook] {
	return Create(b.appID, b.params)
}

// List lists the webhooks of an app.
func List(appID string) client.Endpoint[[]apitype.AppWebhook] {
	return client.NewEndpoint[[]apitype.AppWebhook](http.MethodGet, client.Pathf("apps/%s/webhooks", appID))
}

// Info returns a webhook of an app.
func Info(appID, webhookID string) client.Endpoint[apitype.AppWebhook] {
	return client.NewEndpoint[apitype.AppWebhook](http.MethodGet,
		client.Pathf("apps/%s/webhooks/%s", appID, webhookID))
}

// UpdateParams change an app webhook. Nil Authorization and Secret are sent as null; other nil fields are left
// unchanged.
type UpdateParams struct {
	Authorization *string  `json:"authorization"`
	Include       []string `json:"include,omitempty"`
	Level         *string  `json:"level,omitempty"`
	Secret        *string  `json:"secret"`
	URL           *string  `json:"url,omitempty"`
}

// Update changes a webhook of an app.
func Update(appID, webhookID string, params UpdateParams) client.Endpoint[apitype.AppWebhook] {
	return client.NewEndpoint[apitype.AppWebhook](http.MethodPatch,
		client.Pathf("apps/%s/webhooks/%s", appID, webhookID)).
		WithBody(client.Snapshot(params))
}

// UpdateBuilder assembles an Update endpoint one field at a time.
type UpdateBuilder struct {
	appID     string
	webhookID string
	params    UpdateParams
}

// NewUpdate starts an Update endpoint with no fields set.
func NewUpdate(appID, webhookID string) *UpdateBuilder {
	return &UpdateBuilder{appID: appID, webhookID: webhookID}
}

func (b *UpdateBuilder) Authorization(authorization string) *UpdateBuilder {
	b.params.Authorization = &authorization
	return b
}

func (b *UpdateBuilder) Include(entity string) *UpdateBuilder {
	b.params.Include = append(b.params.Include, entity)
	return b
}

func (b *UpdateBuilder) Level(level string) *UpdateBuilder {
	b.params.Level = &level
	return b
}

func (b *UpdateBuilder) Secret(secret string) *UpdateBuilder {
	b.params.Secret = &secret
	return b
}

func (b *UpdateBuilder) URL(url string) *UpdateBuilder {
	b.params.URL = &url
	return b
}

// Build returns the endpoint for the fields set so far. Later calls on b do not affect it.
func (b *UpdateBuilder) Build() client.Endpoint[apitype.AppWebhook] {
	return Update(b.appID, b.webhookID, b.params)
}

// Delete removes a webhook from an app.
func Delete(appID, webhookID string) client.Endpoint[apitype.AppWebhook] {
	return client.NewEndpoint[apitype.AppWebhook](http.MethodDelete,
		client.Pathf("apps/%s/webhooks/%s", appID, webhookID))
}

// DeliveryList lists recent deliveries of an app's webhooks.
func DeliveryList(appID string) client.Endpoint[[]apitype.WebhookDelivery] {
	return client.NewEndpoint[[]apitype.WebhookDelivery](http.MethodGet,
		client.Pathf("apps/%s/webhook-deliveries", appID))
}

// DeliveryInfo returns a webhook delivery.
func DeliveryInfo(appID, deliveryID string) client.Endpoint[apitype.WebhookDelivery] {
	return client.NewEndpoint[apitype.WebhookDelivery](http.MethodGet,
		client.Pathf("apps/%s/webhook-deliveries/%s", appID, deliveryID))
}

// EventList lists recent webhook events of an app.
func EventList(appID string) client.Endpoint[[]apitype.WebhookEvent] {
	return client.NewEndpoint[[]apitype.WebhookEvent](http.MethodGet, client.Pathf("apps/%s/webhook-events", appID))
}

// EventInfo returns a webhook event.
func EventInfo(appID, eventID string) client.Endpoint[apitype.WebhookEvent] {
	return client.NewEndpoint[apitype.WebhookEvent](http.MethodGet,
		client.Pathf("apps/%s/webhook-events/%s", appID, eventID))
}
