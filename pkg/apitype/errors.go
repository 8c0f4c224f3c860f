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

import "fmt"

// ErrorResponse is returned by the API, together with a 4xx or 5xx status, whenever a request is rejected.
//
// The remote service describes the failure with a machine readable ID (for example "not_found") and a human
// readable message. Code and Body are filled in by the client from the HTTP exchange itself.
type ErrorResponse struct {
	// Code is the HTTP status code of the response.
	Code int `json:"-"`
	// ID is the error identifier, e.g. "not_found" or "rate_limit".
	ID string `json:"id"`
	// Message is the human readable description of the error.
	Message string `json:"message"`
	// URL optionally points to documentation about the error.
	URL string `json:"url,omitempty"`
	// Body is the raw response payload, verbatim.
	Body []byte `json:"-"`
}

// Error implements the Error interface.
func (err ErrorResponse) Error() string {
	if err.ID != "" {
		return fmt.Sprintf("[%d] %s: %s", err.Code, err.ID, err.Message)
	}
	return fmt.Sprintf("[%d] %s", err.Code, err.Message)
}
