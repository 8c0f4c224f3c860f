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

// Package tracing configures the ambient opentracing tracer and carries per-request tracing options.
package tracing

import (
	"context"
	"io"

	opentracing "github.com/opentracing/opentracing-go"
	jaeger "github.com/uber/jaeger-client-go"
	"github.com/uber/jaeger-client-go/transport"

	"github.com/heroku-go/heroku/pkg/util/contract"
	"github.com/heroku-go/heroku/pkg/util/logging"
)

// Options describes the set of options available for configuring tracing on a per-request basis.
type Options struct {
	// PropagateSpans indicates that spans should be propagated to the API through the request headers.
	PropagateSpans bool
	// TracingHeader, if non-empty, is sent verbatim in the X-Heroku-Tracing header.
	TracingHeader string
}

type contextKey struct{}

// ContextWithOptions returns a new context.Context with the indicated tracing options.
func ContextWithOptions(ctx context.Context, opts Options) context.Context {
	return context.WithValue(ctx, contextKey{}, opts)
}

// OptionsFromContext retrieves any tracing options present in the given context. If no options are present,
// this function returns the zero value.
func OptionsFromContext(ctx context.Context) Options {
	opts, _ := ctx.Value(contextKey{}).(Options)
	return opts
}

// Endpoint is the Jaeger collector endpoint where tracing data is sent, if any.
var Endpoint string

var traceCloser io.Closer

// InitTracing installs a Jaeger tracer as the global opentracing tracer. With an empty endpoint the spans are
// kept in memory, which is useful to observe API calls in tests.
func InitTracing(name string, endpoint string) {
	Endpoint = endpoint

	var reporter jaeger.Reporter
	if endpoint == "" {
		reporter = jaeger.NewInMemoryReporter()
	} else {
		reporter = jaeger.NewRemoteReporter(transport.NewHTTPTransport(endpoint))
	}

	tracer, closer := jaeger.NewTracer(
		name,
		jaeger.NewConstSampler(true), // sample all traces
		reporter,
	)
	traceCloser = closer

	logging.V(5).Infof("tracing initialized for %q (endpoint %q)", name, endpoint)
	opentracing.SetGlobalTracer(tracer)
}

// IsEnabled returns true if InitTracing has installed a tracer.
func IsEnabled() bool {
	return traceCloser != nil
}

// CloseTracing flushes all pending spans and restores the no-op tracer. It should be called before process exit.
func CloseTracing() {
	contract.IgnoreClose(traceCloser)
	traceCloser = nil
	opentracing.SetGlobalTracer(opentracing.NoopTracer{})
}
