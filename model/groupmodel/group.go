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

package groupmodel

import (
	"encoding/gob"
	"strings"
)

// group sharing property names
const (
	// ShowInRosterProperty controls to whom the group members are shown.
	ShowInRosterProperty = "sharedRoster.showInRoster"

	// DisplayNameProperty holds the name under which the group is shown in rosters.
	DisplayNameProperty = "sharedRoster.displayName"

	// GroupListProperty holds the comma separated names of the groups the
	// group is additionally shared with.
	GroupListProperty = "sharedRoster.groupList"
)

// Visibility represents a group sharing visibility scope.
type Visibility int

const (
	// VisibilityNobody means the group is not shared at all.
	VisibilityNobody Visibility = iota

	// VisibilityOnlyGroup means the group is shared with its own members
	// plus the members of the groups named in its group list.
	VisibilityOnlyGroup

	// VisibilityEverybody means the group is shared with every registered user.
	VisibilityEverybody
)

// String returns visibility string representation.
func (v Visibility) String() string {
	switch v {
	case VisibilityOnlyGroup:
		return "onlyGroup"
	case VisibilityEverybody:
		return "everybody"
	default:
		return "nobody"
	}
}

// Group represents a user group entity.
type Group struct {
	// Name is the group unique name.
	Name string

	// Members contains the usernames of the group regular members.
	Members []string

	// Admins contains the usernames of the group administrators.
	Admins []string

	// Properties contains the group extended properties.
	Properties map[string]string
}

// ShowInRoster returns the group sharing visibility scope. Unset or
// unrecognized property values mean the group is not shared.
func (g *Group) ShowInRoster() Visibility {
	return ParseVisibility(g.Properties[ShowInRosterProperty])
}

// ParseVisibility parses a show in roster property value into a sharing
// visibility scope. Unrecognized values map to VisibilityNobody.
func ParseVisibility(prop string) Visibility {
	switch prop {
	case "onlyGroup":
		return VisibilityOnlyGroup
	case "everybody":
		return VisibilityEverybody
	default:
		return VisibilityNobody
	}
}

// DisplayName returns the name under which the group is shown in rosters,
// falling back to the group name when the property is unset.
func (g *Group) DisplayName() string {
	if dn := g.Properties[DisplayNameProperty]; len(dn) > 0 {
		return dn
	}
	return g.Name
}

// GroupList returns the names of the groups this group is additionally
// shared with when its visibility is onlyGroup.
func (g *Group) GroupList() []string {
	return ParseGroupList(g.Properties[GroupListProperty])
}

// ParseGroupList parses a comma separated group list property value into
// group names, dropping empty entries.
func ParseGroupList(prop string) []string {
	if len(prop) == 0 {
		return nil
	}
	var names []string
	for _, name := range strings.Split(prop, ",") {
		name = strings.TrimSpace(name)
		if len(name) > 0 {
			names = append(names, name)
		}
	}
	return names
}

// IsUser tells whether username is a member or an administrator of the group.
func (g *Group) IsUser(username string) bool {
	for _, member := range g.Members {
		if member == username {
			return true
		}
	}
	for _, admin := range g.Admins {
		if admin == username {
			return true
		}
	}
	return false
}

// AllUsers returns the usernames of every member and administrator of the group.
func (g *Group) AllUsers() []string {
	users := make([]string, 0, len(g.Members)+len(g.Admins))
	seen := make(map[string]struct{}, len(g.Members)+len(g.Admins))
	for _, username := range g.Members {
		if _, ok := seen[username]; ok {
			continue
		}
		seen[username] = struct{}{}
		users = append(users, username)
	}
	for _, username := range g.Admins {
		if _, ok := seen[username]; ok {
			continue
		}
		seen[username] = struct{}{}
		users = append(users, username)
	}
	return users
}

// FromGob deserializes a Group entity from its gob binary representation.
func (g *Group) FromGob(dec *gob.Decoder) error {
	dec.Decode(&g.Name)
	dec.Decode(&g.Members)
	dec.Decode(&g.Admins)
	dec.Decode(&g.Properties)
	return nil
}

// ToGob converts a Group entity to its gob binary representation.
func (g *Group) ToGob(enc *gob.Encoder) {
	enc.Encode(&g.Name)
	enc.Encode(&g.Members)
	enc.Encode(&g.Admins)
	enc.Encode(&g.Properties)
}
