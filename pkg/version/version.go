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

package version

// Version is initialized by the Go linker to contain the semver of this build.
var Version string

// userAgentVersion is reported when the build carries no version.
const userAgentVersion = "dev"

// String returns Version, or "dev" for builds made without linker flags.
func String() string {
	if Version == "" {
		return userAgentVersion
	}
	return Version
}
