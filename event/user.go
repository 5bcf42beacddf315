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

package event

const (
	// UserCreated event is posted when a new user account is created.
	UserCreated = "user.created"

	// UserDeleting event is posted right before a user account is deleted.
	UserDeleting = "user.deleting"
)

// UserEventInfo contains all information associated to a user event.
type UserEventInfo struct {
	// Username is the name of the user the event refers to.
	Username string
}
