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

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitLogging(t *testing.T) {
	// Just ensure we can initialize logging (and reset it afterwards).
	prevLog := LogToStderr
	prevV := Verbose
	prevFlow := LogFlow
	InitLogging(true, 9, true)
	assert.True(t, bool(V(9)))
	assert.False(t, bool(V(10)))
	InitLogging(prevLog, prevV, prevFlow)
	assert.Equal(t, prevLog, LogToStderr)
	assert.Equal(t, prevV, Verbose)
	assert.Equal(t, prevFlow, LogFlow)
}

func TestCreateFilter(t *testing.T) {
	t.Parallel()

	f := CreateFilter([]string{"01234567-89ab-cdef", "ab"}, "[secret]")
	assert.Equal(t, "Authorization: Bearer [secret]", f.Filter("Authorization: Bearer 01234567-89ab-cdef"))
	// Secrets shorter than three characters are never redacted.
	assert.Equal(t, "ab", f.Filter("ab"))

	nop := CreateFilter(nil, "[secret]")
	assert.Equal(t, "unchanged", nop.Filter("unchanged"))
}

func TestAddGlobalFilter(t *testing.T) {
	AddGlobalFilter(CreateFilter([]string{"global-token-value"}, "[secret]"))
	assert.Equal(t, "token=[secret]", FilterString("token=global-token-value"))
}

func TestAddGlobalSecretRegistersOnce(t *testing.T) {
	before := FilterCount()
	AddGlobalSecret("repeated-token-value", "[secret]")
	AddGlobalSecret("repeated-token-value", "[secret]")
	assert.Equal(t, before+1, FilterCount())
	assert.Equal(t, "token=[secret]", FilterString("token=repeated-token-value"))

	// Short and empty secrets are never registered.
	AddGlobalSecret("", "[secret]")
	AddGlobalSecret("ab", "[secret]")
	assert.Equal(t, before+1, FilterCount())
}
