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

package rostermodel

import "fmt"

// SharedGroupError is returned when a shared group membership is
// altered through the personal roster edit path.
type SharedGroupError struct {
	Group string
}

// Error satisfies error interface.
func (e *SharedGroupError) Error() string {
	return fmt.Sprintf("rostermodel: group %q is shared and cannot be modified", e.Group)
}
