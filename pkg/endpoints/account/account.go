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

// Package account describes the account, user, account feature, app transfer, credit and password reset endpoints.
package account

import (
	"net/http"

	"github.com/heroku-go/heroku/pkg/apitype"
	"github.com/heroku-go/heroku/pkg/client"
)

// Info returns the account of the authenticated user.
func Info() client.Endpoint[apitype.Account] {
	return client.NewEndpoint[apitype.Account](http.MethodGet, "account")
}

// UpdateParams are the account settings that can be changed. Nil fields are left unchanged.
type UpdateParams struct {
	AllowTracking *bool   `json:"allow_tracking,omitempty"`
	Beta          *bool   `json:"beta,omitempty"`
	Name          *string `json:"name,omitempty"`
}

// Update changes the account of the authenticated user.
func Update(params UpdateParams) client.Endpoint[apitype.Account] {
	return client.NewEndpoint[apitype.Account](http.MethodPatch, "account").
		WithBody(client.Snapshot(params))
}

// Delete deletes the account of the authenticated user.
func Delete() client.Endpoint[apitype.Account] {
	return client.NewEndpoint[apitype.Account](http.MethodDelete, "account")
}

// UserInfo returns the account identified by email or ID.
func UserInfo(accountID string) client.Endpoint[apitype.Account] {
	return client.NewEndpoint[apitype.Account](http.MethodGet, client.Pathf("users/%s", accountID))
}

// UserUpdate changes the account identified by email or ID.
func UserUpdate(accountID string, params UpdateParams) client.Endpoint[apitype.Account] {
	return client.NewEndpoint[apitype.Account](http.MethodPatch, client.Pathf("users/%s", accountID)).
		WithBody(client.Snapshot(params))
}

// UserDelete deletes the account identified by email or ID.
func UserDelete(accountID string) client.Endpoint[apitype.Account] {
	return client.NewEndpoint[apitype.Account](http.MethodDelete, client.Pathf("users/%s", accountID))
}

// FeatureList lists the features available to the account.
func FeatureList() client.Endpoint[[]apitype.Feature] {
	return client.NewEndpoint[[]apitype.Feature](http.MethodGet, "account/features")
}

// FeatureInfo returns an account feature by name or ID.
func FeatureInfo(featureID string) client.Endpoint[apitype.Feature] {
	return client.NewEndpoint[apitype.Feature](http.MethodGet, client.Pathf("account/features/%s", featureID))
}

// FeatureUpdateParams toggles a feature.
type FeatureUpdateParams struct {
	Enabled bool `json:"enabled"`
}

// FeatureUpdate enables or disables an account feature.
func FeatureUpdate(featureID string, enabled bool) client.Endpoint[apitype.Feature] {
	return client.NewEndpoint[apitype.Feature](http.MethodPatch, client.Pathf("account/features/%s", featureID)).
		WithBody(FeatureUpdateParams{Enabled: enabled})
}

// TransferList lists the app transfers the account is involved in.
func TransferList() client.Endpoint[[]apitype.AppTransfer] {
	return client.NewEndpoint[[]apitype.AppTransfer](http.MethodGet, "account/app-transfers")
}

// TransferInfo returns an app transfer by ID or app name.
func TransferInfo(transferID string) client.Endpoint[apitype.AppTransfer] {
	return client.NewEndpoint[apitype.AppTransfer](http.MethodGet, client.Pathf("account/app-transfers/%s", transferID))
}

// TransferCreateParams describe a new app transfer.
type TransferCreateParams struct {
	App       string `json:"app"`
	Recipient string `json:"recipient"`
	// Silent suppresses the email notification for the transfer.
	Silent *bool `json:"silent,omitempty"`
}

// TransferCreate asks recipient, an email or account ID, to take over an app.
func TransferCreate(params TransferCreateParams) client.Endpoint[apitype.AppTransfer] {
	return client.NewEndpoint[apitype.AppTransfer](http.MethodPost, "account/app-transfers").
		WithBody(client.Snapshot(params))
}

// TransferUpdateParams carry the new state of a transfer.
type TransferUpdateParams struct {
	// State is either "accepted" or "declined".
	State string `json:"state"`
}

// TransferUpdate accepts or declines an app transfer.
func TransferUpdate(transferID, state string) client.Endpoint[apitype.AppTransfer] {
	return client.NewEndpoint[apitype.AppTransfer](http.MethodPatch,
		client.Pathf("account/app-transfers/%s", transferID)).
		WithBody(TransferUpdateParams{State: state})
}

// TransferDelete cancels an app transfer.
func TransferDelete(transferID string) client.Endpoint[apitype.AppTransfer] {
	return client.NewEndpoint[apitype.AppTransfer](http.MethodDelete,
		client.Pathf("account/app-transfers/%s", transferID))
}

// CreditList lists the credits applied to the account.
func CreditList() client.Endpoint[[]apitype.Credit] {
	return client.NewEndpoint[[]apitype.Credit](http.MethodGet, "account/credits")
}

// CreditInfo returns a credit by ID.
func CreditInfo(creditID string) client.Endpoint[apitype.Credit] {
	return client.NewEndpoint[apitype.Credit](http.MethodGet, client.Pathf("account/credits/%s", creditID))
}

// CreditCreateParams carry the codes of a credit offer.
type CreditCreateParams struct {
	Code1 *string `json:"code1,omitempty"`
	Code2 *string `json:"code2,omitempty"`
}

// CreditCreate redeems a credit offer.
func CreditCreate(params CreditCreateParams) client.Endpoint[apitype.Credit] {
	return client.NewEndpoint[apitype.Credit](http.MethodPost, "account/credits").
		WithBody(client.Snapshot(params))
}

// PasswordResetParams identify the account whose password is reset.
type PasswordResetParams struct {
	Email string `json:"email"`
}

// PasswordReset starts a password reset for the account with the given email.
func PasswordReset(email string) client.Endpoint[apitype.PasswordReset] {
	return client.NewEndpoint[apitype.PasswordReset](http.MethodPost, "password-resets").
		WithBody(PasswordResetParams{Email: email})
}

// PasswordResetConfirmParams carry the new password.
type PasswordResetConfirmParams struct {
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// PasswordResetConfirm completes a password reset started with PasswordReset.
func PasswordResetConfirm(resetToken, password, confirmation string) client.Endpoint[apitype.PasswordReset] {
	return client.NewEndpoint[apitype.PasswordReset](http.MethodPost,
		client.Pathf("password-resets/%s/actions/finalize", resetToken)).
		WithBody(PasswordResetConfirmParams{Password: password, PasswordConfirmation: confirmation})
}
