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
	"fmt"
	"net/url"
	"strings"

	"github.com/heroku-go/heroku/pkg/util/contract"
)

// Descriptor describes a single Heroku Platform API operation: the HTTP method, the fully resolved path relative to
// the API root, and the optional query and body payloads. Query and Body return nil when the operation sends none.
type Descriptor interface {
	Method() string
	Path() string
	Query() interface{}
	Body() interface{}
}

// Endpoint is a Descriptor whose successful response decodes into Result.
//
// Endpoint values are immutable; WithQuery and WithBody return modified copies.
type Endpoint[Result any] struct {
	method string
	path   string
	query  interface{}
	body   interface{}
}

var _ Descriptor = Endpoint[struct{}]{}

// NewEndpoint returns an Endpoint with the given method and resolved path and no query or body.
func NewEndpoint[Result any](method, path string) Endpoint[Result] {
	return Endpoint[Result]{method: method, path: path}
}

// WithQuery returns a copy of e that encodes q as the URL query string. q is a struct using `url` field tags.
func (e Endpoint[Result]) WithQuery(q interface{}) Endpoint[Result] {
	e.query = q
	return e
}

// WithBody returns a copy of e that sends b as the JSON request body.
func (e Endpoint[Result]) WithBody(b interface{}) Endpoint[Result] {
	e.body = b
	return e
}

func (e Endpoint[Result]) Method() string     { return e.method }
func (e Endpoint[Result]) Path() string       { return e.path }
func (e Endpoint[Result]) Query() interface{} { return e.query }
func (e Endpoint[Result]) Body() interface{}  { return e.body }

func (e Endpoint[Result]) String() string {
	return fmt.Sprintf("%s %s", e.method, e.path)
}

// Pathf formats a path template, escaping each identifier as a single path segment. Plain identifiers such as app
// names, UUIDs and email addresses are substituted unchanged. The identifiers "." and ".." are sent as %2E and
// %2E%2E. An empty identifier leaves an empty segment, which the client refuses to send.
func Pathf(format string, ids ...string) string {
	contract.Requiref(strings.Count(format, "%s") == len(ids), "ids", "%q takes %d identifiers, got %d",
		format, strings.Count(format, "%s"), len(ids))

	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = escapeSegment(id)
	}
	return fmt.Sprintf(format, args...)
}

func escapeSegment(id string) string {
	switch id {
	case ".":
		return "%2E"
	case "..":
		return "%2E%2E"
	default:
		return url.PathEscape(id)
	}
}

// String returns a pointer to v.
func String(v string) *string { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }
