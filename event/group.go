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
	// GroupMemberAdded event is posted when a user is added to a group member list.
	GroupMemberAdded = "group.member.added"

	// GroupMemberRemoved event is posted when a user is removed from a group member list.
	GroupMemberRemoved = "group.member.removed"

	// GroupAdminAdded event is posted when a user is added to a group admin list.
	GroupAdminAdded = "group.admin.added"

	// GroupAdminRemoved event is posted when a user is removed from a group admin list.
	GroupAdminRemoved = "group.admin.removed"

	// GroupModified event is posted when a group sharing property is modified.
	GroupModified = "group.modified"

	// GroupDeleting event is posted right before a group is deleted.
	GroupDeleting = "group.deleting"
)

// GroupEventInfo contains all information associated to a group event.
type GroupEventInfo struct {
	// GroupName is the name of the group the event refers to.
	GroupName string

	// Username is the name of the affected member or admin, when applicable.
	Username string

	// Admin tells whether Username refers to a group administrator.
	Admin bool

	// Property is the name of the modified group property, when applicable.
	Property string

	// OldValue is the value the modified property had before the change.
	OldValue string
}
