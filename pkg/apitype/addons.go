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

// BilledPrice is the price billed for an add-on.
type BilledPrice struct {
	Cents    int    `json:"cents"`
	Contract bool   `json:"contract"`
	Unit     string `json:"unit"`
}

// Addon is a provisioned instance of an add-on plan.
type Addon struct {
	AddonService Ref          `json:"addon_service"`
	App          Ref          `json:"app"`
	BilledPrice  *BilledPrice `json:"billed_price"`
	ConfigVars   []string     `json:"config_vars"`
	CreatedAt    time.Time    `json:"created_at"`
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Plan         Ref          `json:"plan"`
	ProviderID   string       `json:"provider_id"`
	// State is one of "provisioning", "provisioned" or "deprovisioned".
	State     string    `json:"state"`
	UpdatedAt time.Time `json:"updated_at"`
	WebURL    *string   `json:"web_url"`
}

// AttachmentAddon identifies the add-on of an attachment.
type AttachmentAddon struct {
	App  Ref    `json:"app"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AddonAttachment makes an add-on available to an app.
type AddonAttachment struct {
	Addon       AttachmentAddon `json:"addon"`
	App         Ref             `json:"app"`
	CreatedAt   time.Time       `json:"created_at"`
	ID          string          `json:"id"`
	LogInputURL *string         `json:"log_input_url"`
	Name        string          `json:"name"`
	Namespace   *string         `json:"namespace"`
	UpdatedAt   time.Time       `json:"updated_at"`
	WebURL      *string         `json:"web_url"`
}

// AddonConfig is a single configuration entry of an add-on.
type AddonConfig struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// AddonWebhook is a webhook subscription owned by an add-on partner.
type AddonWebhook struct {
	Addon   Ref     `json:"addon"`
	Webhook Webhook `json:"webhook"`
}

// AddonService is an add-on offered by a provider.
type AddonService struct {
	CliPluginName                 *string   `json:"cli_plugin_name"`
	CreatedAt                     time.Time `json:"created_at"`
	HumanName                     string    `json:"human_name"`
	ID                            string    `json:"id"`
	Name                          string    `json:"name"`
	State                         string    `json:"state"`
	SupportsMultipleInstallations bool      `json:"supports_multiple_installations"`
	SupportsSharing               bool      `json:"supports_sharing"`
	UpdatedAt                     time.Time `json:"updated_at"`
}

// AddonPlan is a tier of an add-on service.
type AddonPlan struct {
	AddonService                     Ref         `json:"addon_service"`
	Compliance                       []string    `json:"compliance"`
	CreatedAt                        time.Time   `json:"created_at"`
	Default                          bool        `json:"default"`
	Description                      string      `json:"description"`
	HumanName                        string      `json:"human_name"`
	ID                               string      `json:"id"`
	InstallableInsidePrivateNetwork  bool        `json:"installable_inside_private_network"`
	InstallableOutsidePrivateNetwork bool        `json:"installable_outside_private_network"`
	Name                             string      `json:"name"`
	Price                            BilledPrice `json:"price"`
	SpaceDefault                     bool        `json:"space_default"`
	State                            string      `json:"state"`
	UpdatedAt                        time.Time   `json:"updated_at"`
	Visible                          bool        `json:"visible"`
}
