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

package contract

import (
	"io"
)

// IgnoreError explicitly ignores an error. It is used where an error cannot be acted upon,
// such as when closing a response body after it has been fully read.
func IgnoreError(_ error) {}

// IgnoreClose closes the given io.Closer and ignores any error.
func IgnoreClose(cr io.Closer) {
	if cr != nil {
		IgnoreError(cr.Close())
	}
}
