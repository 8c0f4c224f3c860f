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

// Package client executes Heroku Platform API operations. Resource packages under pkg/endpoints describe operations
// as Endpoint values; Request sends one and decodes its result, RequestRaw sends one and hands back the response.
package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"runtime"
	"sync"

	"github.com/spf13/cast"

	"github.com/heroku-go/heroku/pkg/config"
	"github.com/heroku-go/heroku/pkg/util/contract"
	"github.com/heroku-go/heroku/pkg/util/logging"
	"github.com/heroku-go/heroku/pkg/version"
)

// initLogging guards the process-wide glog flags, which only the first configured client sets.
var initLogging sync.Once

// DefaultURL is the root of the public Platform API.
const DefaultURL = config.DefaultBaseURL

// Client sends requests to the Heroku Platform API. A Client is not modified after construction and may be used by
// multiple goroutines at once.
type Client struct {
	apiURL    string
	apiToken  string
	userAgent string
	http      httpClient
}

// NewClient creates a client for the API rooted at apiURL, authenticating with token. An empty apiURL means
// DefaultURL; an empty token sends no Authorization header.
func NewClient(apiURL, token string, opts ...Option) *Client {
	options := &Options{}
	for _, o := range opts {
		o.ApplyOption(options)
	}

	if apiURL == "" {
		apiURL = DefaultURL
	}
	if options.UserAgent == "" {
		options.UserAgent = fmt.Sprintf("heroku-go/%s (%s; %s)", version.String(), runtime.GOOS, runtime.GOARCH)
	}

	hc := http.Client{Timeout: config.DefaultTimeout}
	if options.HTTPClient != nil {
		hc = *options.HTTPClient
	}
	if options.Timeout > 0 {
		hc.Timeout = options.Timeout
	}

	// Keep the token out of any logged headers.
	logging.AddGlobalSecret(token, "[secret]")

	return &Client{
		apiURL:    apiURL,
		apiToken:  token,
		userAgent: options.UserAgent,
		http:      &hc,
	}
}

// NewClientFromConfig creates a client from loaded configuration, raising the log verbosity when cfg asks for it.
// Verbosity is process-wide and is applied by the first such client only. Extra options are applied after the
// configured values.
func NewClientFromConfig(cfg *config.Config, opts ...Option) *Client {
	contract.Require(cfg != nil, "cfg")

	if cfg.Verbose > 0 {
		initLogging.Do(func() {
			logging.InitLogging(logging.LogToStderr, cfg.Verbose, logging.LogFlow)
		})
	}
	base := []Option{WithTimeout(cfg.Timeout)}
	if cfg.UserAgent != "" {
		base = append(base, WithUserAgent(cfg.UserAgent))
	}
	return NewClient(cfg.BaseURL, cfg.Token, append(base, opts...)...)
}

// URL returns the API root the client sends requests to.
func (c *Client) URL() string {
	return c.apiURL
}

// Response is the successful outcome of a typed request.
type Response[Result any] struct {
	StatusCode int
	Header     http.Header
	// Result is nil when the response had no body, as with most 202 and 204 responses.
	Result *Result
}

// RequestID returns the identifier the API assigned to the request.
func (r *Response[Result]) RequestID() string {
	return r.Header.Get("Request-Id")
}

// RateLimitRemaining returns the number of requests left in the current rate limit window. ok is false when the
// response did not report it.
func (r *Response[Result]) RateLimitRemaining() (remaining int, ok bool) {
	v := r.Header.Get("RateLimit-Remaining")
	if v == "" {
		return 0, false
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Request sends the operation described by ep and decodes a successful response into its Result type.
//
// The error is a *TransportError when no response was received, an *apitype.ErrorResponse for non-2xx statuses, and a
// *DecodeError when a 2xx body does not match Result. A request that cannot be built, such as one whose path has an
// empty segment, fails before anything is sent.
func Request[Result any](ctx context.Context, c *Client, ep Endpoint[Result]) (*Response[Result], error) {
	requestSpan, ctx := startSpan(ctx, c.apiURL, ep)
	defer requestSpan.Finish()

	resp, err := c.send(ctx, requestSpan, ep)
	if err != nil {
		return nil, err
	}

	// Read API response
	respBody, err := readBody(resp)
	if err != nil {
		return nil, &TransportError{Method: ep.Method(), URL: resp.Request.URL.String(), Err: err}
	}
	logResponseBody(resp.Request.URL.String(), respBody)

	if err = c.checkStatus(resp, respBody); err != nil {
		return nil, err
	}

	result := &Response[Result]{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
	}
	if len(bytes.TrimSpace(respBody)) > 0 {
		var r Result
		if err = jsonIterConfig.Unmarshal(respBody, &r); err != nil {
			return nil, &DecodeError{StatusCode: resp.StatusCode, Body: respBody, Err: err}
		}
		result.Result = &r
	}
	return result, nil
}

// RequestRaw sends the operation described by d and returns the response without inspecting its status or body. The
// caller must close the response body. Only failures to get a response are reported, as a *TransportError, besides
// requests that cannot be built at all.
func (c *Client) RequestRaw(ctx context.Context, d Descriptor) (*http.Response, error) {
	requestSpan, ctx := startSpan(ctx, c.apiURL, d)
	defer requestSpan.Finish()

	return c.send(ctx, requestSpan, d)
}
