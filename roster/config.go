// Copyright 2022 The vireo Authors
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

package roster

// Config contains roster manager configuration value.
type Config struct {
	// Domain is the local serving domain under which roster owners and
	// contacts are addressed.
	Domain string `yaml:"domain"`

	// Versioning tells whether roster pushes carry a 'ver' attribute backed
	// by the per-user monotonic roster version counter.
	Versioning bool `yaml:"versioning"`
}
