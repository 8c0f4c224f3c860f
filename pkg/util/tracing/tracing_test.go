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

package tracing

import (
	"context"
	"testing"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
)

func TestOptionsFromContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Options{}, OptionsFromContext(context.Background()))

	opts := Options{PropagateSpans: true, TracingHeader: "trace-me"}
	ctx := ContextWithOptions(context.Background(), opts)
	assert.Equal(t, opts, OptionsFromContext(ctx))
}

func TestInitTracing(t *testing.T) {
	InitTracing("heroku-go-test", "")
	assert.True(t, IsEnabled())
	_, isNoop := opentracing.GlobalTracer().(opentracing.NoopTracer)
	assert.False(t, isNoop)

	CloseTracing()
	assert.False(t, IsEnabled())
	_, isNoop = opentracing.GlobalTracer().(opentracing.NoopTracer)
	assert.True(t, isNoop)
}
