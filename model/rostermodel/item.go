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

import (
	"encoding/gob"
	"errors"
	"fmt"
	"sort"

	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/vireo-im/vireo/jid"
)

// GroupRef references a shared group attached to a roster item.
type GroupRef struct {
	// Name is the shared group unique name.
	Name string

	// DisplayName is the name under which the group is shown in rosters.
	DisplayName string
}

// Item represents a roster item entity.
type Item struct {
	// ID is the item persistent identifier. A zero value means the item was never persisted.
	ID int64

	// JID is the item contact address.
	JID *jid.JID

	// Name is the contact nickname assigned by the roster owner.
	Name string

	// Subscription is the item presence subscription state.
	Subscription Subscription

	// Ask is the item pending outgoing subscription state.
	Ask Ask

	// Recv is the item pending incoming subscription state.
	Recv Recv

	// Groups contains the personal group names the owner assigned to the contact.
	Groups []string

	sharedGroups          map[string]GroupRef
	invisibleSharedGroups map[string]GroupRef
}

// AddSharedGroup attaches a visible shared group to the item.
func (ri *Item) AddSharedGroup(name, displayName string) {
	if ri.sharedGroups == nil {
		ri.sharedGroups = make(map[string]GroupRef)
	}
	delete(ri.invisibleSharedGroups, name)
	ri.sharedGroups[name] = GroupRef{Name: name, DisplayName: displayName}
}

// AddInvisibleSharedGroup attaches a shared group that ties the item to the
// roster without showing up in the contact group list.
func (ri *Item) AddInvisibleSharedGroup(name, displayName string) {
	if _, ok := ri.sharedGroups[name]; ok {
		return
	}
	if ri.invisibleSharedGroups == nil {
		ri.invisibleSharedGroups = make(map[string]GroupRef)
	}
	ri.invisibleSharedGroups[name] = GroupRef{Name: name, DisplayName: displayName}
}

// RemoveSharedGroup detaches a shared group from the item.
func (ri *Item) RemoveSharedGroup(name string) {
	delete(ri.sharedGroups, name)
	delete(ri.invisibleSharedGroups, name)
}

// RenameSharedGroup updates the display name under which an attached shared
// group is shown. It returns true if the item referenced the group.
func (ri *Item) RenameSharedGroup(name, displayName string) bool {
	if _, ok := ri.sharedGroups[name]; ok {
		ri.sharedGroups[name] = GroupRef{Name: name, DisplayName: displayName}
		return true
	}
	if _, ok := ri.invisibleSharedGroups[name]; ok {
		ri.invisibleSharedGroups[name] = GroupRef{Name: name, DisplayName: displayName}
		return true
	}
	return false
}

// SharedGroups returns the visible shared groups attached to the item.
func (ri *Item) SharedGroups() []GroupRef {
	return sortedRefs(ri.sharedGroups)
}

// InvisibleSharedGroups returns the invisible shared groups attached to the item.
func (ri *Item) InvisibleSharedGroups() []GroupRef {
	return sortedRefs(ri.invisibleSharedGroups)
}

// HasSharedGroup tells whether the item is attached to a shared group,
// either visibly or invisibly.
func (ri *Item) HasSharedGroup(name string) bool {
	if _, ok := ri.sharedGroups[name]; ok {
		return true
	}
	_, ok := ri.invisibleSharedGroups[name]
	return ok
}

// IsShared tells whether the item is attached to any shared group.
func (ri *Item) IsShared() bool {
	return len(ri.sharedGroups) > 0 || len(ri.invisibleSharedGroups) > 0
}

// IsOnlyShared tells whether the item exists in the roster solely because of
// shared group membership. Only-shared items are never persisted.
func (ri *Item) IsOnlyShared() bool {
	return ri.IsShared() && len(ri.Groups) == 0
}

// AskStatus returns the item effective ask state. Shared items never expose a
// pending outgoing request, whatever the stored field says.
func (ri *Item) AskStatus() Ask {
	if ri.IsShared() {
		return AskNone
	}
	return ri.Ask
}

// SetGroups replaces the item personal group list. Display names of visible
// shared groups the item belongs to must all be present in the new list, as
// shared memberships cannot be dropped through the personal edit path; they
// are filtered out of the stored list afterwards, being implicit.
func (ri *Item) SetGroups(groups ...string) error {
	shared := make(map[string]string, len(ri.sharedGroups))
	for _, ref := range ri.sharedGroups {
		shared[ref.DisplayName] = ref.Name
	}
	provided := make(map[string]struct{}, len(groups))

	var personal []string
	seen := make(map[string]struct{}, len(groups))
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		provided[group] = struct{}{}
		if _, ok := shared[group]; ok {
			continue
		}
		if _, ok := seen[group]; ok {
			continue
		}
		seen[group] = struct{}{}
		personal = append(personal, group)
	}
	for displayName := range shared {
		if _, ok := provided[displayName]; !ok {
			return &SharedGroupError{Group: displayName}
		}
	}
	ri.Groups = personal
	return nil
}

// VisibleGroups returns the group names under which the item is shown: the
// personal list followed by the display names of visible shared groups.
func (ri *Item) VisibleGroups() []string {
	groups := make([]string, 0, len(ri.Groups)+len(ri.sharedGroups))
	seen := make(map[string]struct{}, len(ri.Groups)+len(ri.sharedGroups))
	for _, group := range ri.Groups {
		if _, ok := seen[group]; ok {
			continue
		}
		seen[group] = struct{}{}
		groups = append(groups, group)
	}
	for _, ref := range sortedRefs(ri.sharedGroups) {
		if _, ok := seen[ref.DisplayName]; ok {
			continue
		}
		seen[ref.DisplayName] = struct{}{}
		groups = append(groups, ref.DisplayName)
	}
	return groups
}

// Copy returns a deep copy of the item.
func (ri *Item) Copy() *Item {
	cp := &Item{
		ID:           ri.ID,
		JID:          ri.JID,
		Name:         ri.Name,
		Subscription: ri.Subscription,
		Ask:          ri.Ask,
		Recv:         ri.Recv,
	}
	cp.Groups = append(cp.Groups, ri.Groups...)
	if len(ri.sharedGroups) > 0 {
		cp.sharedGroups = make(map[string]GroupRef, len(ri.sharedGroups))
		for k, v := range ri.sharedGroups {
			cp.sharedGroups[k] = v
		}
	}
	if len(ri.invisibleSharedGroups) > 0 {
		cp.invisibleSharedGroups = make(map[string]GroupRef, len(ri.invisibleSharedGroups))
		for k, v := range ri.invisibleSharedGroups {
			cp.invisibleSharedGroups[k] = v
		}
	}
	return cp
}

// FromGob deserializes an Item entity from its gob binary representation.
// Shared group attachments are not part of the persisted state and are
// recomputed at roster load time.
func (ri *Item) FromGob(dec *gob.Decoder) error {
	dec.Decode(&ri.ID)
	var jidStr string
	dec.Decode(&jidStr)
	j, err := jid.NewWithString(jidStr, true)
	if err != nil {
		return err
	}
	ri.JID = j
	dec.Decode(&ri.Name)
	dec.Decode(&ri.Subscription)
	dec.Decode(&ri.Ask)
	dec.Decode(&ri.Recv)
	dec.Decode(&ri.Groups)
	return nil
}

// ToGob converts an Item entity to its gob binary representation.
func (ri *Item) ToGob(enc *gob.Encoder) {
	enc.Encode(&ri.ID)
	jidStr := ri.JID.String()
	enc.Encode(&jidStr)
	enc.Encode(&ri.Name)
	enc.Encode(&ri.Subscription)
	enc.Encode(&ri.Ask)
	enc.Encode(&ri.Recv)
	enc.Encode(&ri.Groups)
}

// Element returns the item XMPP element representation.
func (ri *Item) Element() stravaganza.Element {
	b := stravaganza.NewBuilder("item").
		WithAttribute("jid", ri.JID.ToBareJID().String())
	if len(ri.Name) > 0 {
		b.WithAttribute("name", ri.Name)
	}
	if ri.Subscription != SubNone {
		b.WithAttribute("subscription", ri.Subscription.String())
	}
	if ri.AskStatus() == AskSubscribe {
		b.WithAttribute("ask", "subscribe")
	}
	for _, group := range ri.VisibleGroups() {
		b.WithChild(stravaganza.NewBuilder("group").
			WithText(group).
			Build(),
		)
	}
	return b.Build()
}

// NewItemElement parses an XMPP element returning a derived roster item instance.
func NewItemElement(elem stravaganza.Element) (*Item, error) {
	if elem.Name() != "item" {
		return nil, fmt.Errorf("rostermodel: invalid item element name: %s", elem.Name())
	}
	ri := &Item{}
	jidStr := elem.Attribute("jid")
	if len(jidStr) == 0 {
		return nil, errors.New("rostermodel: item 'jid' attribute is required")
	}
	j, err := jid.NewWithString(jidStr, false)
	if err != nil {
		return nil, err
	}
	ri.JID = j.ToBareJID()
	ri.Name = elem.Attribute("name")

	sub, err := ParseSubscription(elem.Attribute("subscription"))
	if err != nil {
		return nil, err
	}
	ri.Subscription = sub

	if ask := elem.Attribute("ask"); len(ask) > 0 {
		if ask != "subscribe" {
			return nil, fmt.Errorf("rostermodel: unrecognized ask value: %s", ask)
		}
		ri.Ask = AskSubscribe
	}
	for _, group := range elem.Children("group") {
		if group.AttributeCount() > 0 {
			return nil, errors.New("rostermodel: group element must not contain any attribute")
		}
		if len(group.Text()) > 0 {
			ri.Groups = append(ri.Groups, group.Text())
		}
	}
	return ri, nil
}

func sortedRefs(m map[string]GroupRef) []GroupRef {
	if len(m) == 0 {
		return nil
	}
	refs := make([]GroupRef, 0, len(m))
	for _, ref := range m {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs
}
