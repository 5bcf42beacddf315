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

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/jackal-xmpp/stravaganza/v2"

	"github.com/vireo-im/vireo/jid"
	"github.com/vireo-im/vireo/log"
	"github.com/vireo-im/vireo/model/groupmodel"
	"github.com/vireo-im/vireo/model/rostermodel"
	"github.com/vireo-im/vireo/storage/repository"
)

const rosterNamespace = "jabber:iq:roster"

// Roster represents a user contact list: the persisted personal entries
// merged with the entries derived from shared group visibility. All mutation
// operations update the in-memory state first and broadcast a roster push to
// the owner connected resources afterwards.
type Roster struct {
	username string
	jid      *jid.JID
	mng      *Manager

	mu    sync.RWMutex
	items map[string]*rostermodel.Item
}

func newRoster(username string, usrJID *jid.JID, mng *Manager) *Roster {
	return &Roster{
		username: username,
		jid:      usrJID,
		mng:      mng,
		items:    make(map[string]*rostermodel.Item),
	}
}

// Username returns the roster owner username.
func (r *Roster) Username() string { return r.username }

// JID returns the roster owner bare JID.
func (r *Roster) JID() *jid.JID { return r.jid }

// IsItem tells whether cntJID is a member of the roster.
func (r *Roster) IsItem(cntJID *jid.JID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[cntJID.ToBareJID().String()]
	return ok
}

// GetItem returns a copy of the roster item associated to cntJID, or
// ErrNotFound if no such contact is present.
func (r *Roster) GetItem(cntJID *jid.JID) (*rostermodel.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ri := r.items[cntJID.ToBareJID().String()]
	if ri == nil {
		return nil, ErrNotFound
	}
	return ri.Copy(), nil
}

// Items returns a copy of the roster contact entries. Items with
// subscription FROM that exist only because of shared groups are excluded,
// as they only support the reverse presence subscription.
func (r *Roster) Items() []rostermodel.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	retVal := make([]rostermodel.Item, 0, len(r.items))
	for _, k := range r.sortedKeys() {
		ri := r.items[k]
		if ri.IsOnlyShared() && ri.Subscription == rostermodel.SubFrom {
			continue
		}
		retVal = append(retVal, *ri.Copy())
	}
	return retVal
}

// CreateItem adds a new personal contact entry to the roster, persisting it
// and pushing the new item to the owner connected resources. A
// SharedGroupError is returned if any personal group name collides with a
// shared group display name, and repository.ErrAlreadyExists if the contact
// is already a roster member.
func (r *Roster) CreateItem(ctx context.Context, cntJID *jid.JID, name string, groups ...string) (*rostermodel.Item, error) {
	if len(groups) > 0 {
		sharedGroups, err := r.mng.allSharedGroups(ctx)
		if err != nil {
			return nil, err
		}
		for _, group := range groups {
			for _, sg := range sharedGroups {
				if group == sg.DisplayName() {
					return nil, &rostermodel.SharedGroupError{Group: group}
				}
			}
		}
	}
	bare := cntJID.ToBareJID().String()

	r.mu.Lock()
	if _, ok := r.items[bare]; ok {
		r.mu.Unlock()
		return nil, repository.ErrAlreadyExists
	}
	ri := &rostermodel.Item{
		JID:          cntJID.ToBareJID(),
		Name:         name,
		Subscription: rostermodel.SubNone,
		Groups:       append([]string(nil), groups...),
	}
	id, err := r.mng.rep.CreateRosterItem(ctx, r.username, ri)
	if err != nil {
		r.mu.Unlock()
		return nil, err
	}
	ri.ID = id
	r.items[bare] = ri
	elem := ri.Element()
	r.mu.Unlock()

	r.mng.addRef(bare, r.username)

	if err := r.push(ctx, elem); err != nil {
		return nil, err
	}
	if err := r.mng.postItemUpdated(ctx, r.username, bare, rostermodel.SubNone); err != nil {
		return nil, err
	}
	log.Infow("Created roster item", "jid", bare, "username", r.username)
	return ri.Copy(), nil
}

// UpdateItem replaces an existing roster item, persisting the change and
// pushing the updated entry. ErrNotFound is returned when the contact is not
// a roster member: concurrent deletion makes this an expected condition.
// An only-shared item gaining personal state is promoted to a persisted one.
func (r *Roster) UpdateItem(ctx context.Context, ri *rostermodel.Item) error {
	bare := ri.JID.ToBareJID().String()

	r.mu.Lock()
	if _, ok := r.items[bare]; !ok {
		r.mu.Unlock()
		return ErrNotFound
	}
	item := ri.Copy()
	r.items[bare] = item

	switch {
	case item.ID == 0 && item.IsShared():
		if item.IsOnlyShared() {
			// an only-shared item still carrying the directory default
			// nickname holds no personal state worth persisting
			if r.mng.defaultNickname(ctx, item.JID, item.Name) == item.Name {
				r.mu.Unlock()
				return nil
			}
		}
		id, err := r.mng.rep.CreateRosterItem(ctx, r.username, item)
		switch {
		case errors.Is(err, repository.ErrAlreadyExists):
		case err != nil:
			r.mu.Unlock()
			return err
		default:
			item.ID = id
		}
	case item.ID != 0:
		if err := r.mng.rep.UpdateRosterItem(ctx, r.username, item); err != nil {
			r.mu.Unlock()
			return err
		}
	}
	elem := item.Element()
	sub := item.Subscription
	ask := item.AskStatus()
	cntJID := item.JID
	r.mu.Unlock()

	r.mng.addRef(bare, r.username)

	if sub != rostermodel.SubNone || ask != rostermodel.AskNone {
		if err := r.push(ctx, elem); err != nil {
			return err
		}
	}
	if sub == rostermodel.SubTo || sub == rostermodel.SubBoth {
		if err := r.mng.sessions.ProbePresence(ctx, r.username, cntJID); err != nil {
			return err
		}
	}
	if err := r.mng.postItemUpdated(ctx, r.username, bare, sub); err != nil {
		return err
	}
	log.Infow("Updated roster item", "jid", bare, "username", r.username)
	return nil
}

// DeleteItem removes a contact from the roster, deleting the persisted row
// when one exists and pushing a 'remove' entry. When doCheck is set the
// operation fails with a SharedGroupError if the contact belongs to a shared
// group, as shared entries cannot be dropped through the personal edit path.
// The removed item is returned, or nil if the contact was not a member.
func (r *Roster) DeleteItem(ctx context.Context, cntJID *jid.JID, doCheck bool) (*rostermodel.Item, error) {
	bare := cntJID.ToBareJID().String()

	r.mu.Lock()
	ri := r.items[bare]
	if ri == nil {
		r.mu.Unlock()
		return nil, nil
	}
	if doCheck {
		if shared := ri.SharedGroups(); len(shared) > 0 {
			r.mu.Unlock()
			return nil, &rostermodel.SharedGroupError{Group: shared[0].DisplayName}
		}
	}
	if ri.ID > 0 {
		if err := r.mng.rep.DeleteRosterItem(ctx, r.username, bare); err != nil {
			r.mu.Unlock()
			return nil, err
		}
	}
	delete(r.items, bare)
	r.mu.Unlock()

	r.mng.removeRef(bare, r.username)

	removeElem := stravaganza.NewBuilder("item").
		WithAttribute("jid", bare).
		WithAttribute("subscription", rostermodel.SubRemove.String()).
		Build()
	if err := r.push(ctx, removeElem); err != nil {
		return nil, err
	}
	if err := r.mng.postItemDeleted(ctx, r.username, bare); err != nil {
		return nil, err
	}
	log.Infow("Deleted roster item", "jid", bare, "username", r.username)
	return ri, nil
}

// Snapshot renders the full roster as a query element suitable for a roster
// get result. Only-shared FROM entries and 'none + pending in' entries are
// left out.
func (r *Roster) Snapshot() stravaganza.Element {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sb := stravaganza.NewBuilder("query").
		WithAttribute(stravaganza.Namespace, rosterNamespace)
	for _, k := range r.sortedKeys() {
		ri := r.items[k]
		if ri.IsOnlyShared() && ri.Subscription == rostermodel.SubFrom {
			continue
		}
		if ri.Subscription == rostermodel.SubNone && ri.Recv == rostermodel.RecvSubscribe {
			continue
		}
		sb.WithChild(ri.Element())
	}
	return sb.Build()
}

// BroadcastPresence routes presence to every contact subscribed to the owner
// presence, that is every entry with subscription BOTH or FROM.
func (r *Roster) BroadcastPresence(ctx context.Context, presence *stravaganza.Presence) error {
	r.mu.RLock()
	var targets []*jid.JID
	for _, k := range r.sortedKeys() {
		ri := r.items[k]
		if ri.Subscription == rostermodel.SubBoth || ri.Subscription == rostermodel.SubFrom {
			targets = append(targets, ri.JID)
		}
	}
	r.mu.RUnlock()

	for _, target := range targets {
		p := stravaganza.NewBuilderFromElement(presence).
			WithAttribute(stravaganza.To, target.ToBareJID().String()).
			Build()
		if err := r.mng.sessions.BroadcastToUser(ctx, target.Node(), p); err != nil {
			return err
		}
	}
	return nil
}

// AddSharedUser updates the roster given that addedJID became visible to the
// owner through group. A synthesized item is created when the contact was
// not yet a member, and the entry subscription is recomputed from the group
// membership facts.
func (r *Roster) AddSharedUser(ctx context.Context, group *groupmodel.Group, addedJID *jid.JID) error {
	bare := addedJID.ToBareJID().String()
	addedNode := addedJID.Node()

	r.mu.Lock()
	ri := r.items[bare]
	newItem := ri == nil
	if !newItem && hasVisibleSharedGroup(ri, group.Name) {
		r.mu.Unlock()
		return nil
	}
	if newItem {
		nickname, ok := r.mng.lookupNickname(ctx, addedNode)
		if !ok {
			r.mu.Unlock()
			log.Warnf("Group %s includes non-existent username %s", group.Name, addedNode)
			return nil
		}
		ri = &rostermodel.Item{
			JID:          addedJID.ToBareJID(),
			Name:         nickname,
			Subscription: rostermodel.SubBoth,
		}
		r.items[bare] = ri
	}
	var prevSub rostermodel.Subscription
	hasPrev := !newItem
	if hasPrev {
		prevSub = ri.Subscription
	}

	userGroups := r.mng.userGroups(ctx, r.username)
	checkGroups := r.mng.groupsByName(ctx, refNames(ri.SharedGroups()))
	checkGroups = append(checkGroups, group)

	switch {
	case r.mng.HasMutualVisibility(ctx, r.username, userGroups, addedNode, checkGroups):
		ri.Subscription = rostermodel.SubBoth
	case group.IsUser(addedNode) && !group.IsUser(r.username):
		ri.Subscription = rostermodel.SubTo
	case !group.IsUser(addedNode) && group.IsUser(r.username):
		ri.Subscription = rostermodel.SubFrom
	}
	if ri.Subscription != rostermodel.SubFrom {
		ri.AddSharedGroup(group.Name, group.DisplayName())
	} else {
		ri.AddInvisibleSharedGroup(group.Name, group.DisplayName())
	}
	r.mergePrevSubscription(ri, prevSub, hasPrev)

	hidden := ri.IsOnlyShared() && ri.Subscription == rostermodel.SubFrom
	elem := ri.Element()
	sub := ri.Subscription
	cntJID := ri.JID
	r.mu.Unlock()

	r.mng.addRef(bare, r.username)

	if hidden {
		// the entry only supports the reverse presence subscription and
		// stays invisible to the owning client
		return nil
	}
	return r.pushSharedUpdate(ctx, bare, elem, sub, cntJID, true)
}

// AddSharedUserGroups updates the roster given that addedJID, member of
// groups, became related to the owner through addedGroup. This is the
// counterpart path of AddSharedUser, invoked on the roster of the user that
// joined the group.
func (r *Roster) AddSharedUserGroups(ctx context.Context, addedJID *jid.JID, groups []*groupmodel.Group, addedGroup *groupmodel.Group) error {
	bare := addedJID.ToBareJID().String()
	addedNode := addedJID.Node()

	r.mu.Lock()
	ri := r.items[bare]
	newItem := ri == nil
	if newItem {
		nickname, ok := r.mng.lookupNickname(ctx, addedNode)
		if !ok {
			r.mu.Unlock()
			log.Warnf("Couldn't find a user with username %s", addedNode)
			return nil
		}
		ri = &rostermodel.Item{
			JID:          addedJID.ToBareJID(),
			Name:         nickname,
			Subscription: rostermodel.SubBoth,
		}
		r.items[bare] = ri
	}
	userGroups := r.mng.userGroups(ctx, r.username)

	if r.mng.HasMutualVisibility(ctx, r.username, userGroups, addedNode, groups) {
		ri.Subscription = rostermodel.SubBoth
		for _, g := range groups {
			if r.mng.IsGroupVisible(ctx, g, r.username) {
				ri.AddSharedGroup(g.Name, g.DisplayName())
			}
		}
		// the owner groups that let the contact see him generate the FROM
		// half of the resulting BOTH subscription
		for _, g := range userGroups {
			if !g.IsUser(addedNode) && r.mng.IsGroupVisible(ctx, g, addedNode) {
				ri.AddInvisibleSharedGroup(g.Name, g.DisplayName())
			}
		}
	} else {
		var prevSub rostermodel.Subscription
		hasPrev := !newItem
		if hasPrev {
			prevSub = ri.Subscription
		}
		ri.Subscription = rostermodel.SubFrom
		for _, g := range groups {
			if r.mng.IsGroupVisible(ctx, g, r.username) {
				ri.AddSharedGroup(g.Name, g.DisplayName())
				ri.Subscription = rostermodel.SubTo
			}
		}
		if ri.Subscription == rostermodel.SubFrom {
			ri.AddInvisibleSharedGroup(addedGroup.Name, addedGroup.DisplayName())
		}
		r.mergePrevSubscription(ri, prevSub, hasPrev)
	}
	hidden := ri.IsOnlyShared() && ri.Subscription == rostermodel.SubFrom
	elem := ri.Element()
	sub := ri.Subscription
	cntJID := ri.JID
	r.mu.Unlock()

	r.mng.addRef(bare, r.username)

	if hidden {
		return nil
	}
	return r.pushSharedUpdate(ctx, bare, elem, sub, cntJID, true)
}

// DeleteSharedUser updates the roster given that deletedJID is no longer
// visible to the owner through group. The whole entry is removed when the
// dropped group was the only reason the contact existed in the roster.
func (r *Roster) DeleteSharedUser(ctx context.Context, group *groupmodel.Group, deletedJID *jid.JID) error {
	bare := deletedJID.ToBareJID().String()

	r.mu.Lock()
	ri := r.items[bare]
	if ri == nil {
		r.mu.Unlock()
		return nil
	}
	groupCount := len(ri.SharedGroups()) + len(ri.InvisibleSharedGroups())
	if ri.IsOnlyShared() && groupCount == 1 {
		if !ri.HasSharedGroup(group.Name) {
			r.mu.Unlock()
			return nil
		}
		r.mu.Unlock()
		_, err := r.DeleteItem(ctx, deletedJID, false)
		return err
	}
	ri.RemoveSharedGroup(group.Name)
	if ri.IsOnlyShared() {
		userGroups := r.mng.userGroups(ctx, r.username)
		remaining := r.mng.groupsByName(ctx, refNames(ri.SharedGroups()))
		switch {
		case r.mng.HasMutualVisibility(ctx, r.username, userGroups, deletedJID.Node(), remaining):
			ri.Subscription = rostermodel.SubBoth
		case len(ri.SharedGroups()) == 0 && len(ri.InvisibleSharedGroups()) > 0:
			ri.Subscription = rostermodel.SubFrom
		default:
			ri.Subscription = rostermodel.SubTo
		}
	}
	elem := ri.Element()
	sub := ri.Subscription
	r.mu.Unlock()

	return r.pushSharedUpdate(ctx, bare, elem, sub, nil, false)
}

// DeleteSharedUserGroup updates the roster given that the relation with
// deletedJID through deletedGroup was dropped on the contact side. Shared
// group references that are no longer visible to the owner are stripped and
// the subscription recomputed; the entry survives when deletedJID remains a
// member of a public group.
func (r *Roster) DeleteSharedUserGroup(ctx context.Context, deletedJID *jid.JID, deletedGroup *groupmodel.Group) error {
	bare := deletedJID.ToBareJID().String()
	deletedNode := deletedJID.Node()

	r.mu.Lock()
	ri := r.items[bare]
	if ri == nil {
		r.mu.Unlock()
		return nil
	}
	groupCount := len(ri.SharedGroups()) + len(ri.InvisibleSharedGroups())
	keptByPublic := deletedGroup.IsUser(deletedNode) && deletedGroup.ShowInRoster() == groupmodel.VisibilityEverybody

	if ri.IsOnlyShared() && groupCount == 1 && !keptByPublic {
		r.mu.Unlock()
		_, err := r.DeleteItem(ctx, deletedJID, false)
		return err
	}
	if !keptByPublic {
		ri.RemoveSharedGroup(deletedGroup.Name)
	}
	groups := r.mng.userGroups(ctx, deletedNode)
	for _, g := range groups {
		if !r.mng.IsGroupVisible(ctx, g, r.username) {
			ri.RemoveSharedGroup(g.Name)
		}
	}
	if ri.IsOnlyShared() {
		userGroups := r.mng.userGroups(ctx, r.username)
		if r.mng.HasMutualVisibility(ctx, r.username, userGroups, deletedNode, groups) {
			ri.Subscription = rostermodel.SubBoth
		} else {
			ri.Subscription = rostermodel.SubFrom
			for _, g := range groups {
				if r.mng.IsGroupVisible(ctx, g, r.username) {
					ri.Subscription = rostermodel.SubTo
				}
			}
		}
	}
	elem := ri.Element()
	sub := ri.Subscription
	r.mu.Unlock()

	return r.pushSharedUpdate(ctx, bare, elem, sub, nil, false)
}

// ShareGroupRenamed refreshes the display name under which group is shown
// for every users entry present in this roster, then pushes all refreshed
// entries to the owner in a single roster push.
func (r *Roster) ShareGroupRenamed(ctx context.Context, group *groupmodel.Group, users []*jid.JID) error {
	r.mu.Lock()
	var elems []stravaganza.Element
	for _, usrJID := range users {
		if usrJID.Node() == r.username {
			continue
		}
		ri := r.items[usrJID.ToBareJID().String()]
		if ri == nil {
			continue
		}
		if !ri.RenameSharedGroup(group.Name, group.DisplayName()) {
			continue
		}
		if ri.IsOnlyShared() && ri.Subscription == rostermodel.SubFrom {
			continue
		}
		elems = append(elems, ri.Element())
	}
	r.mu.Unlock()

	if len(elems) == 0 {
		return nil
	}
	return r.push(ctx, elems...)
}

func (r *Roster) pushSharedUpdate(ctx context.Context, bare string, elem stravaganza.Element, sub rostermodel.Subscription, cntJID *jid.JID, probe bool) error {
	if err := r.push(ctx, elem); err != nil {
		return err
	}
	if probe && cntJID != nil && (sub == rostermodel.SubBoth || sub == rostermodel.SubTo) {
		if err := r.mng.sessions.ProbePresence(ctx, r.username, cntJID); err != nil {
			return err
		}
	}
	return r.mng.postItemUpdated(ctx, r.username, bare, sub)
}

func (r *Roster) mergePrevSubscription(ri *rostermodel.Item, prevSub rostermodel.Subscription, hasPrev bool) {
	if !hasPrev {
		return
	}
	// a TO and a FROM half meeting on the same entry add up to BOTH
	if prevSub == rostermodel.SubTo && ri.Subscription == rostermodel.SubFrom {
		ri.Subscription = rostermodel.SubBoth
	} else if prevSub == rostermodel.SubFrom && ri.Subscription == rostermodel.SubTo {
		ri.Subscription = rostermodel.SubBoth
	}
}

func (r *Roster) push(ctx context.Context, itemElements ...stravaganza.Element) error {
	qb := stravaganza.NewBuilder("query").
		WithAttribute(stravaganza.Namespace, rosterNamespace)
	if r.mng.cfg.Versioning {
		ver, err := r.mng.rep.TouchRosterVersion(ctx, r.username)
		if err != nil {
			return err
		}
		qb.WithAttribute("ver", strconv.Itoa(ver))
	}
	for _, elem := range itemElements {
		qb.WithChild(elem)
	}
	pushIQ, _ := stravaganza.NewIQBuilder().
		WithAttribute(stravaganza.ID, uuid.New().String()).
		WithAttribute(stravaganza.Type, stravaganza.SetType).
		WithAttribute(stravaganza.From, r.jid.String()).
		WithAttribute(stravaganza.To, r.jid.String()).
		WithChild(qb.Build()).
		BuildIQ()

	return r.mng.sessions.BroadcastToUser(ctx, r.username, pushIQ)
}

// attachItem inserts an item during roster load. Not safe for use once the
// roster is published.
func (r *Roster) attachItem(ri *rostermodel.Item) {
	r.items[ri.JID.ToBareJID().String()] = ri
}

func (r *Roster) itemJIDs() []*jid.JID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	retVal := make([]*jid.JID, 0, len(r.items))
	for _, k := range r.sortedKeys() {
		retVal = append(retVal, r.items[k].JID)
	}
	return retVal
}

func (r *Roster) sortedKeys() []string {
	keys := make([]string, 0, len(r.items))
	for k := range r.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func hasVisibleSharedGroup(ri *rostermodel.Item, name string) bool {
	for _, ref := range ri.SharedGroups() {
		if ref.Name == name {
			return true
		}
	}
	return false
}

func refNames(refs []rostermodel.GroupRef) []string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.Name)
	}
	return names
}
