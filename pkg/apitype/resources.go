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

package apitype

import "time"

// ConfigVars maps config var names to their values.
type ConfigVars map[string]string

// TeamAppPermission is a permission a collaborator can hold on a team app.
type TeamAppPermission struct {
	Description string `json:"description"`
	Name        string `json:"name"`
}

// CollaboratorUser is the account behind a collaborator.
type CollaboratorUser struct {
	Email     string `json:"email"`
	Federated bool   `json:"federated"`
	ID        string `json:"id"`
}

// Collaborator is an account with access to an app.
type Collaborator struct {
	App         Ref                 `json:"app"`
	CreatedAt   time.Time           `json:"created_at"`
	ID          string              `json:"id"`
	Permissions []TeamAppPermission `json:"permissions,omitempty"`
	Role        *string             `json:"role"`
	UpdatedAt   time.Time           `json:"updated_at"`
	User        CollaboratorUser    `json:"user"`
}

// Domain is a hostname routed to an app.
type Domain struct {
	ACMStatus       *string   `json:"acm_status"`
	ACMStatusReason *string   `json:"acm_status_reason"`
	App             Ref       `json:"app"`
	CName           *string   `json:"cname"`
	CreatedAt       time.Time `json:"created_at"`
	Hostname        string    `json:"hostname"`
	ID              string    `json:"id"`
	// Kind is either "heroku" or "custom".
	Kind        string    `json:"kind"`
	SNIEndpoint *Ref      `json:"sni_endpoint"`
	Status      string    `json:"status"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Webhook is a subscription to notifications about changes of an app.
type Webhook struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
	Include   []string  `json:"include"`
	// Level is either "notify" or "sync".
	Level     string    `json:"level"`
	UpdatedAt time.Time `json:"updated_at"`
	URL       string    `json:"url"`
}

// AppWebhook is a webhook subscription on an app.
type AppWebhook struct {
	Webhook
	App IDRef `json:"app"`
}

// WebhookAttempt is a single attempt to deliver a webhook notification.
type WebhookAttempt struct {
	Code       *int      `json:"code"`
	CreatedAt  time.Time `json:"created_at"`
	ErrorClass *string   `json:"error_class"`
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// WebhookDelivery records the delivery of one event to one webhook.
type WebhookDelivery struct {
	CreatedAt time.Time `json:"created_at"`
	Event     struct {
		ID      string `json:"id"`
		Include string `json:"include"`
	} `json:"event"`
	ID            string          `json:"id"`
	LastAttempt   *WebhookAttempt `json:"last_attempt"`
	NextAttemptAt *time.Time      `json:"next_attempt_at"`
	NumAttempts   int             `json:"num_attempts"`
	Status        string          `json:"status"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Webhook       struct {
		ID    string `json:"id"`
		Level string `json:"level"`
	} `json:"webhook"`
}

// WebhookEventPayload is the notification body of a webhook event.
type WebhookEventPayload struct {
	Action       string     `json:"action"`
	Actor        AccountRef `json:"actor"`
	Data         RawJSON    `json:"data"`
	PreviousData RawJSON    `json:"previous_data"`
	Resource     string     `json:"resource"`
	Version      string     `json:"version"`
}

// WebhookEvent is a change notification produced for an app.
type WebhookEvent struct {
	CreatedAt time.Time           `json:"created_at"`
	ID        string              `json:"id"`
	Include   string              `json:"include"`
	Payload   WebhookEventPayload `json:"payload"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// Release is a snapshot of an app's code and configuration.
type Release struct {
	AddonPlanNames  []string   `json:"addon_plan_names"`
	App             Ref        `json:"app"`
	CreatedAt       time.Time  `json:"created_at"`
	Current         bool       `json:"current"`
	Description     string     `json:"description"`
	ID              string     `json:"id"`
	OutputStreamURL *string    `json:"output_stream_url"`
	Slug            *IDRef     `json:"slug"`
	Status          string     `json:"status"`
	UpdatedAt       time.Time  `json:"updated_at"`
	User            AccountRef `json:"user"`
	Version         int        `json:"version"`
}
