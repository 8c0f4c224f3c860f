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

// Account is an individual signed-up user.
type Account struct {
	AllowTracking           bool              `json:"allow_tracking"`
	Beta                    bool              `json:"beta"`
	CreatedAt               time.Time         `json:"created_at"`
	DefaultOrganization     *Ref              `json:"default_organization"`
	DefaultTeam             *Ref              `json:"default_team"`
	DelinquentAt            *time.Time        `json:"delinquent_at"`
	Email                   string            `json:"email"`
	Federated               bool              `json:"federated"`
	ID                      string            `json:"id"`
	IdentityProvider        *IdentityProvider `json:"identity_provider"`
	LastLogin               *time.Time        `json:"last_login"`
	Name                    *string           `json:"name"`
	SMSNumber               *string           `json:"sms_number"`
	SuspendedAt             *time.Time        `json:"suspended_at"`
	TwoFactorAuthentication bool              `json:"two_factor_authentication"`
	UpdatedAt               time.Time         `json:"updated_at"`
	Verified                bool              `json:"verified"`
}

// Feature is an opt-in feature of an account or an app.
type Feature struct {
	CanonicalName string    `json:"canonical_name"`
	CreatedAt     time.Time `json:"created_at"`
	Description   string    `json:"description"`
	DisplayName   string    `json:"display_name"`
	DocURL        string    `json:"doc_url"`
	Enabled       bool      `json:"enabled"`
	FeedbackEmail string    `json:"feedback_email"`
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	State         string    `json:"state"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AppTransfer is a request to transfer an app to another account.
type AppTransfer struct {
	App       Ref        `json:"app"`
	CreatedAt time.Time  `json:"created_at"`
	ID        string     `json:"id"`
	Owner     AccountRef `json:"owner"`
	Recipient AccountRef `json:"recipient"`
	// State is one of "pending", "accepted" or "declined".
	State     string    `json:"state"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Credit is a discount applied to an account.
type Credit struct {
	Amount    float64   `json:"amount"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PasswordReset is an in-flight request to reset an account password.
type PasswordReset struct {
	CreatedAt time.Time  `json:"created_at"`
	User      AccountRef `json:"user"`
}
