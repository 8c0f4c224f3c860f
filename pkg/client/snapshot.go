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
	"github.com/mitchellh/copystructure"

	"github.com/heroku-go/heroku/pkg/util/contract"
)

// Snapshot returns a deep copy of v. Builders use it so that a built Endpoint shares no pointers, maps or slices with
// the builder that produced it.
func Snapshot[T any](v T) T {
	c, err := copystructure.Copy(v)
	contract.Assertf(err == nil, "copying %T: %v", v, err)
	if c == nil {
		var zero T
		return zero
	}
	return c.(T)
}
