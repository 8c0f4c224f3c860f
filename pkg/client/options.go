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

package client

import (
	"net/http"
	"time"
)

// Option is a parameter to be applied to NewClient.
type Option interface {
	ApplyOption(*Options)
}

// WithHTTPClient sends requests through c. The client is copied, never modified.
func WithHTTPClient(c *http.Client) Option {
	return optionFunc(func(opts *Options) {
		opts.HTTPClient = c
	})
}

// WithTimeout bounds every call, including reading the response body.
func WithTimeout(d time.Duration) Option {
	return optionFunc(func(opts *Options) {
		opts.Timeout = d
	})
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return optionFunc(func(opts *Options) {
		opts.UserAgent = ua
	})
}

// ---------------------------------- implementation details ----------------------------------

// Options is an implementation detail
type Options struct {
	HTTPClient *http.Client
	Timeout    time.Duration
	UserAgent  string
}

type optionFunc func(*Options)

// ApplyOption is an implementation detail
func (o optionFunc) ApplyOption(opts *Options) {
	o(opts)
}
