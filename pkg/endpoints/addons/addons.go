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

// Package addons describes the add-on, attachment, config, webhook, service and plan endpoints.
package addons

import (
	"net/http"

	"github.com/heroku-go/heroku/pkg/apitype"
	"github.com/heroku-go/heroku/pkg/client"
)

// List lists every add-on visible to the account.
func List() client.Endpoint[[]apitype.Addon] {
	return client.NewEndpoint[[]apitype.Addon](http.MethodGet, "addons")
}

// ListByApp lists the add-ons of an app.
func ListByApp(appID string) client.Endpoint[[]apitype.Addon] {
	return client.NewEndpoint[[]apitype.Addon](http.MethodGet, client.Pathf("apps/%s/addons", appID))
}

// Info returns an add-on by name or ID.
func Info(addonID string) client.Endpoint[apitype.Addon] {
	return client.NewEndpoint[apitype.Addon](http.MethodGet, client.Pathf("addons/%s", addonID))
}

// InfoByApp returns an add-on of an app.
func InfoByApp(appID, addonID string) client.Endpoint[apitype.Addon] {
	return client.NewEndpoint[apitype.Addon](http.MethodGet, client.Pathf("apps/%s/addons/%s", appID, addonID))
}

// Attachment names the attachment created along with an add-on.
type Attachment struct {
	Name *string `json:"name,omitempty"`
}

// CreateParams describe a new add-on. Plan is required.
type CreateParams struct {
	Attachment *Attachment       `json:"attachment,omitempty"`
	Config     map[string]string `json:"config,omitempty"`
	// Confirm is the app name, required by some plans as a safety check.
	Confirm *string `json:"confirm,omitempty"`
	Name    *string `json:"name,omitempty"`
	Plan    string  `json:"plan"`
}

// Create provisions an add-on for an app.
func Create(appID string, params CreateParams) client.Endpoint[apitype.Addon] {
	return client.NewEndpoint[apitype.Addon](http.MethodPost, client.Pathf("apps/%s/addons", appID)).
		WithBody(client.Snapshot(params))
}

// CreateBuilder assembles a Create endpoint one field at a time.
type CreateBuilder struct {
	appID  string
	params CreateParams
}

// NewCreate starts a Create endpoint provisioning plan on appID.
func NewCreate(appID, plan string) *CreateBuilder {
	return &CreateBuilder{appID: appID, params: CreateParams{Plan: plan}}
}

// AttachmentName names the attachment created with the add-on.
func (b *CreateBuilder) AttachmentName(name string) *CreateBuilder {
	b.params.Attachment = &Attachment{Name: &name}
	return b
}

// Config sets one provider-specific configuration value.
func (b *CreateBuilder) Config(key, value string) *CreateBuilder {
	if b.params.Config == nil {
		b.params.Config = map[string]string{}
	}
	b.params.Config[key] = value
	return b
}

func (b *CreateBuilder) Confirm(app string) *CreateBuilder {
	b.params.Confirm = &app
	return b
}

func (b *CreateBuilder) Name(name string) *CreateBuilder {
	b.params.Name = &name
	return b
}

// Build returns the endpoint for the fields set so far. Later calls on b do not affect it.
func (b *CreateBuilder) Build() client.Endpoint[apitype.Addon] {
	return Create(b.appID, b.params)
}

// UpdateParams change the plan or name of an add-on. Plan is required.
type UpdateParams struct {
	Name *string `json:"name,omitempty"`
	Plan string  `json:"plan"`
}

// Update changes the plan or name of an add-on.
func Update(appID, addonID string, params UpdateParams) client.Endpoint[apitype.Addon] {
	return client.NewEndpoint[apitype.Addon](http.MethodPatch, client.Pathf("apps/%s/addons/%s", appID, addonID)).
		WithBody(client.Snapshot(params))
}

// UpdateBuilder assembles an Update endpoint one field at a time.
type UpdateBuilder struct {
	appID   string
	addonID string
	params  UpdateParams
}

// NewUpdate starts an Update endpoint moving addonID to plan.
func NewUpdate(appID, addonID, plan string) *UpdateBuilder {
	return &UpdateBuilder{appID: appID, addonID: addonID, params: UpdateParams{Plan: plan}}
}

func (b *UpdateBuilder) Name(name string) *UpdateBuilder {
	b.params.Name = &name
	return b
}

// Build returns the endpoint for the fields set so far. Later calls on b do not affect it.
func (b *UpdateBuilder) Build() client.Endpoint[apitype.Addon] {
	return Update(b.appID, b.addonID, b.params)
}

// Delete deprovisions an add-on.
func Delete(appID, addonID string) client.Endpoint[apitype.Addon] {
	return client.NewEndpoint[apitype.Addon](http.MethodDelete, client.Pathf("apps/%s/addons/%s", appID, addonID))
}

// ResolveParams identify an add-on by name, optionally within an app or service.
type ResolveParams struct {
	Addon        string  `json:"addon"`
	AddonService *string `json:"addon_service,omitempty"`
	App          *string `json:"app,omitempty"`
}

// Resolve finds the add-ons matching a name.
func Resolve(params ResolveParams) client.Endpoint[[]apitype.Addon] {
	return client.NewEndpoint[[]apitype.Addon](http.MethodPost, "actions/addons/resolve").
		WithBody(client.Snapshot(params))
}

// Provision marks an add-on as provisioned. Only the add-on's provider may call it.
func Provision(addonID string) client.Endpoint[apitype.Addon] {
	return client.NewEndpoint[apitype.Addon](http.MethodPost, client.Pathf("addons/%s/actions/provision", addonID))
}

// Deprovision marks an add-on as deprovisioned. Only the add-on's provider may call it.
func Deprovision(addonID string) client.Endpoint[apitype.Addon] {
	return client.NewEndpoint[apitype.Addon](http.MethodPost, client.Pathf("addons/%s/actions/deprovision", addonID))
}

// AttachmentCreateParams attach an add-on to an app. A nil Namespace is sent as null.
type AttachmentCreateParams struct {
	Addon     string  `json:"addon"`
	App       string  `json:"app"`
	Confirm   *string `json:"confirm,omitempty"`
	Name      *string `json:"name,omitempty"`
	Namespace *string `json:"namespace"`
}

// AttachmentCreate attaches an existing add-on to an app.
func AttachmentCreate(params AttachmentCreateParams) client.Endpoint[apitype.AddonAttachment] {
	return client.NewEndpoint[apitype.AddonAttachment](http.MethodPost, "addon-attachments").
		WithBody(client.Snapshot(params))
}

// AttachmentList lists every attachment visible to the account.
func AttachmentList() client.Endpoint[[]apitype.AddonAttachment] {
	return client.NewEndpoint[[]apitype.AddonAttachment](http.MethodGet, "addon-attachments")
}

// AttachmentListByAddon lists the attachments of an add-on.
func AttachmentListByAddon(addonID string) client.Endpoint[[]apitype.AddonAttachment] {
	return client.NewEndpoint[[]apitype.AddonAttachment](http.MethodGet,
		client.Pathf("addons/%s/addon-attachments", addonID))
}

// AttachmentListByApp lists the attachments of an app.
func AttachmentListByApp(appID string) client.Endpoint[[]apitype.AddonAttachment] {
	return client.NewEndpoint[[]apitype.AddonAttachment](http.MethodGet,
		client.Pathf("apps/%s/addon-attachments", appID))
}

// AttachmentInfo returns an attachment by ID.
func AttachmentInfo(attachmentID string) client.Endpoint[apitype.AddonAttachment] {
	return client.NewEndpoint[apitype.AddonAttachment](http.MethodGet,
		client.Pathf("addon-attachments/%s", attachmentID))
}

// AttachmentDelete detaches an add-on from an app.
func AttachmentDelete(attachmentID string) client.Endpoint[apitype.AddonAttachment] {
	return client.NewEndpoint[apitype.AddonAttachment](http.MethodDelete,
		client.Pathf("addon-attachments/%s", attachmentID))
}

// AttachmentResolveParams identify an attachment by name, optionally within an app or service.
type AttachmentResolveParams struct {
	AddonAttachment string  `json:"addon_attachment"`
	AddonService    *string `json:"addon_service,omitempty"`
	App             *string `json:"app,omitempty"`
}

// AttachmentResolve finds the attachments matching a name.
func AttachmentResolve(params AttachmentResolveParams) client.Endpoint[[]apitype.AddonAttachment] {
	return client.NewEndpoint[[]apitype.AddonAttachment](http.MethodPost, "actions/addon-attachments/resolve").
		WithBody(client.Snapshot(params))
}

// ConfigList lists the configuration of an add-on.
func ConfigList(addonID string) client.Endpoint[[]apitype.AddonConfig] {
	return client.NewEndpoint[[]apitype.AddonConfig](http.MethodGet, client.Pathf("addons/%s/config", addonID))
}

// ConfigUpdateParams replace configuration entries of an add-on.
type ConfigUpdateParams struct {
	Config []apitype.AddonConfig `json:"config,omitempty"`
}

// ConfigUpdate changes the configuration of an add-on. Only the add-on's provider may call it.
func ConfigUpdate(addonID string, params ConfigUpdateParams) client.Endpoint[[]apitype.AddonConfig] {
	return client.NewEndpoint[[]apitype.AddonConfig](http.MethodPatch, client.Pathf("addons/%s/config", addonID)).
		WithBody(client.Snapshot(params))
}

// ConfigUpdateBuilder assembles a ConfigUpdate endpoint one entry at a time.
type ConfigUpdateBuilder struct {
	addonID string
	params  ConfigUpdateParams
}

// NewConfigUpdate starts a ConfigUpdate endpoint for addonID with no entries.
func NewConfigUpdate(addonID string) *ConfigUpdateBuilder {
	return &ConfigUpdateBuilder{addonID: addonID}
}

// Set adds one configuration entry.
func (b *ConfigUpdateBuilder) Set(name, value string) *ConfigUpdateBuilder {
	b.params.Config = append(b.params.Config, apitype.AddonConfig{Name: name, Value: value})
	return b
}

// Build returns the endpoint for the entries set so far. Later calls on b do not affect it.
func (b *ConfigUpdateBuilder) Build() client.Endpoint[[]apitype.AddonConfig] {
	return ConfigUpdate(b.addonID, b.params)
}

// WebhookCreateParams describe a new add-on webhook. Nil Authorization and Secret are sent as null.
type WebhookCreateParams struct {
	Authorization *string  `json:"authorization"`
	Include       []string `json:"include"`
	// Level is either "notify" or "sync".
	Level  string  `json:"level"`
	Secret *string `json:"secret"`
	URL    string  `json:"url"`
}

// WebhookCreate subscribes an add-on to app events.
func WebhookCreate(addonID string, params WebhookCreateParams) client.Endpoint[apitype.AddonWebhook] {
	return client.NewEndpoint[apitype.AddonWebhook](http.MethodPost, client.Pathf("addons/%s/webhooks", addonID)).
		WithBody(client.Snapshot(params))
}

// WebhookList lists the webhooks of an add-on.
func WebhookList(addonID string) client.Endpoint[[]apitype.AddonWebhook] {
	return client.NewEndpoint[[]apitype.AddonWebhook](http.MethodGet, client.Pathf("addons/%s/webhooks", addonID))
}

// WebhookInfo returns a webhook of an add-on.
func WebhookInfo(addonID, webhookID string) client.Endpoint[apitype.AddonWebhook] {
	return client.NewEndpoint[apitype.AddonWebhook](http.MethodGet,
		client.Pathf("addons/%s/webhooks/%s", addonID, webhookID))
}

// WebhookUpdateParams change an add-on webhook. Nil Authorization and Secret are sent as null; other nil fields are
// left unchanged.
type WebhookUpdateParams struct {
	Authorization *string  `json:"authorization"`
	Include       []string `json:"include,omitempty"`
	Level         *string  `json:"level,omitempty"`
	Secret        *string  `json:"secret"`
	URL           *string  `json:"url,omitempty"`
}

// WebhookUpdate changes a webhook of an add-on.
func WebhookUpdate(addonID, webhookID string, params WebhookUpdateParams) client.Endpoint[apitype.AddonWebhook] {
	return client.NewEndpoint[apitype.AddonWebhook](http.MethodPatch,
		client.Pathf("addons/%s/webhooks/%s", addonID, webhookID)).
		WithBody(client.Snapshot(params))
}

// WebhookUpdateBuilder assembles a WebhookUpdate endpoint one field at a time.
type WebhookUpdateBuilder struct {
	addonID   string
	webhookID string
	params    WebhookUpdateParams
}

// NewWebhookUpdate starts a WebhookUpdate endpoint with no fields set.
func NewWebhookUpdate(addonID, webhookID string) *WebhookUpdateBuilder {
	return &WebhookUpdateBuilder{addonID: addonID, webhookID: webhookID}
}

func (b *WebhookUpdateBuilder) Authorization(authorization string) *WebhookUpdateBuilder {
	b.params.Authorization = &authorization
	return b
}

// Include adds an entity to the events the webhook receives.
func (b *WebhookUpdateBuilder) Include(entity string) *WebhookUpdateBuilder {
	b.params.Include = append(b.params.Include, entity)
	return b
}

func (b *WebhookUpdateBuilder) Level(level string) *WebhookUpdateBuilder {
	b.params.Level = &level
	return b
}

func (b *WebhookUpdateBuilder) Secret(secret string) *WebhookUpdateBuilder {
	b.params.Secret = &secret
	return b
}

func (b *WebhookUpdateBuilder) URL(url string) *WebhookUpdateBuilder {
	b.params.URL = &url
	return b
}

// Build returns the endpoint for the fields set so far. Later calls on b do not affect it.
func (b *WebhookUpdateBuilder) Build() client.Endpoint[apitype.AddonWebhook] {
	return WebhookUpdate(b.addonID, b.webhookID, b.params)
}

// WebhookDelete removes a webhook from an add-on.
func WebhookDelete(addonID, webhookID string) client.Endpoint[apitype.AddonWebhook] {
	return client.NewEndpoint[apitype.AddonWebhook](http.MethodDelete,
		client.Pathf("addons/%s/webhooks/%s", addonID, webhookID))
}

// ServiceList lists the add-on services.
func ServiceList() client.Endpoint[[]apitype.AddonService] {
	return client.NewEndpoint[[]apitype.AddonService](http.MethodGet, "addon-services")
}

// ServiceInfo returns an add-on service by name or ID.
func ServiceInfo(serviceID string) client.Endpoint[apitype.AddonService] {
	return client.NewEndpoint[apitype.AddonService](http.MethodGet, client.Pathf("addon-services/%s", serviceID))
}

// PlanList lists the plans of an add-on service.
func PlanList(serviceID string) client.Endpoint[[]apitype.AddonPlan] {
	return client.NewEndpoint[[]apitype.AddonPlan](http.MethodGet, client.Pathf("addon-services/%s/plans", serviceID))
}
