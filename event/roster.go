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
	// RosterLoaded event is posted whenever a user roster is loaded into the active set.
	RosterLoaded = "roster.loaded"

	// RosterItemUpdated event is posted whenever a roster item is created or updated.
	RosterItemUpdated = "roster.item.updated"

	// RosterItemDeleted event is posted whenever a roster item is deleted.
	RosterItemDeleted = "roster.item.deleted"
)

// RosterEventInfo contains all information associated to a roster event.
type RosterEventInfo struct {
	// Username is the name of the roster owner.
	Username string

	// JID is the event contact JID.
	JID string

	// Subscription is the roster event subscription value.
	Subscription string
}
