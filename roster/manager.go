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
	"sync"

	"github.com/jackal-xmpp/sonar"

	"github.com/vireo-im/vireo/event"
	"github.com/vireo-im/vireo/jid"
	"github.com/vireo-im/vireo/log"
	"github.com/vireo-im/vireo/model/groupmodel"
	"github.com/vireo-im/vireo/model/rostermodel"
	"github.com/vireo-im/vireo/storage/repository"
)

// Manager keeps the set of active rosters and propagates group and user
// membership changes onto them. Rosters are loaded lazily on first access
// and retained until the owning user account is deleted; non-resident
// rosters pick up shared group changes at their next load.
type Manager struct {
	cfg      Config
	rep      repository.Repository
	sessions SessionRegistry
	sn       *sonar.Sonar
	subs     []sonar.SubID

	mu      sync.RWMutex
	rosters map[string]*Roster
	refs    map[string]map[string]struct{}
}

// NewManager returns a new initialized roster manager instance.
func NewManager(
	cfg Config,
	rep repository.Repository,
	sessions SessionRegistry,
	sn *sonar.Sonar,
) *Manager {
	return &Manager{
		cfg:      cfg,
		rep:      rep,
		sessions: sessions,
		sn:       sn,
		rosters:  make(map[string]*Roster),
		refs:     make(map[string]map[string]struct{}),
	}
}

// Start starts roster manager.
func (m *Manager) Start(_ context.Context) error {
	m.subs = append(m.subs, m.sn.Subscribe(event.GroupMemberAdded, m.onGroupMemberAdded))
	m.subs = append(m.subs, m.sn.Subscribe(event.GroupMemberRemoved, m.onGroupMemberRemoved))
	m.subs = append(m.subs, m.sn.Subscribe(event.GroupAdminAdded, m.onGroupAdminAdded))
	m.subs = append(m.subs, m.sn.Subscribe(event.GroupAdminRemoved, m.onGroupAdminRemoved))
	m.subs = append(m.subs, m.sn.Subscribe(event.GroupModified, m.onGroupModified))
	m.subs = append(m.subs, m.sn.Subscribe(event.GroupDeleting, m.onGroupDeleting))
	m.subs = append(m.subs, m.sn.Subscribe(event.UserCreated, m.onUserCreated))
	m.subs = append(m.subs, m.sn.Subscribe(event.UserDeleting, m.onUserDeleting))

	log.Infow("Started roster manager", "domain", m.cfg.Domain)
	return nil
}

// Stop stops roster manager.
func (m *Manager) Stop(_ context.Context) error {
	for _, sub := range m.subs {
		m.sn.Unsubscribe(sub)
	}
	log.Infow("Stopped roster manager")
	return nil
}

// GetRoster returns the user active roster, loading it from the repository
// and resolving its shared group entries when not yet resident.
func (m *Manager) GetRoster(ctx context.Context, username string) (*Roster, error) {
	m.mu.RLock()
	ro := m.rosters[username]
	m.mu.RUnlock()
	if ro != nil {
		return ro, nil
	}
	ro, degraded, err := m.loadRoster(ctx, username)
	if err != nil {
		return nil, err
	}
	if degraded {
		// shared group state couldn't be resolved: serve the persisted
		// entries and retry resolution on next access
		return ro, nil
	}
	m.mu.Lock()
	if prev := m.rosters[username]; prev != nil {
		m.mu.Unlock()
		return prev, nil
	}
	m.rosters[username] = ro
	m.mu.Unlock()

	for _, cntJID := range ro.itemJIDs() {
		m.addRef(cntJID.ToBareJID().String(), username)
	}
	if err := m.postRosterEvent(ctx, event.RosterLoaded, &event.RosterEventInfo{
		Username: username,
	}); err != nil {
		return nil, err
	}
	return ro, nil
}

// CachedRoster returns the user roster only if it's resident, nil otherwise.
func (m *Manager) CachedRoster(username string) *Roster {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rosters[username]
}

// DeleteRoster removes every item of the user roster along with the reverse
// entries other rosters hold for the user, both resident and persisted ones.
func (m *Manager) DeleteRoster(ctx context.Context, usrJID *jid.JID) error {
	username := usrJID.Node()
	bare := usrJID.ToBareJID().String()

	ro, err := m.GetRoster(ctx, username)
	if err != nil {
		return err
	}
	persisted, err := m.rep.FetchReferencingUsernames(ctx, bare)
	if err != nil {
		return err
	}
	for _, cntJID := range ro.itemJIDs() {
		if _, err := ro.DeleteItem(ctx, cntJID, false); err != nil {
			return err
		}
	}
	m.mu.Lock()
	delete(m.rosters, username)
	var owners []string
	for owner := range m.refs[bare] {
		owners = append(owners, owner)
	}
	delete(m.refs, bare)
	m.mu.Unlock()

	seen := make(map[string]struct{}, len(owners)+len(persisted))
	for _, owner := range append(owners, persisted...) {
		if owner == username {
			continue
		}
		if _, ok := seen[owner]; ok {
			continue
		}
		seen[owner] = struct{}{}

		ownerRo, err := m.GetRoster(ctx, owner)
		if err != nil {
			return err
		}
		if _, err := ownerRo.DeleteItem(ctx, usrJID, false); err != nil {
			return err
		}
	}
	// sweep any row the active set never got to see
	if err := m.rep.DeleteRosterItems(ctx, username); err != nil {
		return err
	}
	log.Infow("Deleted roster", "username", username)
	return nil
}

// SharedGroups returns the groups whose members are visible to the user:
// every group shared with everybody plus the onlyGroup ones the user can see
// through membership, direct or via their group list.
func (m *Manager) SharedGroups(ctx context.Context, username string) ([]*groupmodel.Group, error) {
	groups, err := m.rep.FetchGroups(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*groupmodel.Group, len(groups))
	for _, g := range groups {
		byName[g.Name] = g
	}
	var shared []*groupmodel.Group
	for _, g := range groups {
		switch g.ShowInRoster() {
		case groupmodel.VisibilityEverybody:
			shared = append(shared, g)

		case groupmodel.VisibilityOnlyGroup:
			if g.IsUser(username) {
				shared = append(shared, g)
				continue
			}
			for _, name := range g.GroupList() {
				if lg := byName[name]; lg != nil && lg.IsUser(username) {
					shared = append(shared, g)
					break
				}
			}
		}
	}
	return shared, nil
}

// PublicSharedGroups returns the groups shared with every registered user.
func (m *Manager) PublicSharedGroups(ctx context.Context) ([]*groupmodel.Group, error) {
	groups, err := m.rep.FetchGroups(ctx)
	if err != nil {
		return nil, err
	}
	var public []*groupmodel.Group
	for _, g := range groups {
		if g.ShowInRoster() == groupmodel.VisibilityEverybody {
			public = append(public, g)
		}
	}
	return public, nil
}

// IsGroupVisible tells whether the group members are visible to the user.
func (m *Manager) IsGroupVisible(ctx context.Context, g *groupmodel.Group, username string) bool {
	switch g.ShowInRoster() {
	case groupmodel.VisibilityEverybody:
		return true

	case groupmodel.VisibilityOnlyGroup:
		if g.IsUser(username) {
			return true
		}
		for _, name := range g.GroupList() {
			if lg := m.fetchGroup(ctx, name); lg != nil && lg.IsUser(username) {
				return true
			}
		}
	}
	return false
}

// HasMutualVisibility tells whether both users can see each other through
// their respective shared groups, which grants a subscription of type BOTH.
func (m *Manager) HasMutualVisibility(ctx context.Context, username string, groups []*groupmodel.Group, otherUsername string, otherGroups []*groupmodel.Group) bool {
	for _, g := range groups {
		for _, og := range otherGroups {
			if !g.IsUser(username) || !og.IsUser(otherUsername) {
				continue
			}
			if g.Name == og.Name {
				return true
			}
			vis, otherVis := g.ShowInRoster(), og.ShowInRoster()
			switch {
			case vis == groupmodel.VisibilityEverybody && otherVis == groupmodel.VisibilityEverybody:
				return true

			case vis == groupmodel.VisibilityOnlyGroup && otherVis == groupmodel.VisibilityOnlyGroup:
				list, otherList := g.GroupList(), og.GroupList()
				if containsName(list, og.Name) && containsName(otherList, g.Name) {
					return true
				}
				// both group lists may reach the other user through some
				// intermediate group
				for _, name := range list {
					lg := m.fetchGroup(ctx, name)
					if lg == nil || !lg.IsUser(otherUsername) {
						continue
					}
					for _, otherName := range otherList {
						if olg := m.fetchGroup(ctx, otherName); olg != nil && olg.IsUser(username) {
							return true
						}
					}
				}

			case vis == groupmodel.VisibilityEverybody && otherVis == groupmodel.VisibilityOnlyGroup:
				if containsName(og.GroupList(), g.Name) {
					return true
				}

			case vis == groupmodel.VisibilityOnlyGroup && otherVis == groupmodel.VisibilityEverybody:
				if containsName(g.GroupList(), og.Name) {
					return true
				}
			}
		}
	}
	return false
}

func (m *Manager) loadRoster(ctx context.Context, username string) (*Roster, bool, error) {
	usrJID := m.jidFor(username)
	ro := newRoster(username, usrJID, m)

	items, err := m.rep.FetchRosterItems(ctx, username)
	if err != nil {
		return nil, false, err
	}
	for _, ri := range items {
		ro.attachItem(ri.Copy())
	}
	degraded := false
	sharedGroups, err := m.SharedGroups(ctx, username)
	if err != nil {
		log.Warnf("Failed to resolve shared groups for user %s: %v", username, err)
		degraded = true
	}
	var userGroups []*groupmodel.Group
	if !degraded {
		userGroups, err = m.rep.FetchUserGroups(ctx, username)
		if err != nil {
			log.Warnf("Failed to fetch groups for user %s: %v", username, err)
			degraded = true
		}
	}
	if degraded {
		return ro, true, nil
	}
	// gather every user visible through a shared group along with the
	// groups that make them visible
	sharedUsers := make(map[string][]*groupmodel.Group)
	for _, g := range sharedGroups {
		for _, u := range m.sharedUsersForRoster(ctx, g, username) {
			if u == username {
				continue
			}
			sharedUsers[u] = append(sharedUsers[u], g)
		}
	}
	for u, groups := range sharedUsers {
		cntJID := m.jidFor(u)
		bare := cntJID.ToBareJID().String()

		if ri := ro.items[bare]; ri != nil {
			for _, g := range groups {
				if g.IsUser(u) {
					ri.AddSharedGroup(g.Name, g.DisplayName())
					ri.Subscription = rostermodel.SubBoth
				} else {
					ri.AddInvisibleSharedGroup(g.Name, g.DisplayName())
				}
			}
			continue
		}
		ri := &rostermodel.Item{
			JID:          cntJID,
			Subscription: rostermodel.SubTo,
		}
		var itemGroups []*groupmodel.Group
		belongsToGroup := false
		for _, g := range groups {
			if g.IsUser(u) {
				ri.AddSharedGroup(g.Name, g.DisplayName())
				itemGroups = append(itemGroups, g)
				belongsToGroup = true
			} else {
				ri.AddInvisibleSharedGroup(g.Name, g.DisplayName())
			}
		}
		switch {
		case m.HasMutualVisibility(ctx, username, userGroups, u, itemGroups):
			ri.Subscription = rostermodel.SubBoth
		case !belongsToGroup:
			ri.Subscription = rostermodel.SubFrom
		}
		if ri.Subscription != rostermodel.SubFrom {
			nickname, ok := m.lookupNickname(ctx, u)
			if !ok {
				log.Warnf("Roster of user %s references non-existent username %s", username, u)
				continue
			}
			ri.Name = nickname
		}
		ro.attachItem(ri)
	}
	return ro, false, nil
}

// sharedUsersForRoster returns the usernames a shared group contributes to
// the roster of username: the group users plus, when the owner is one of
// them, everyone the group is shared with.
func (m *Manager) sharedUsersForRoster(ctx context.Context, g *groupmodel.Group, username string) []string {
	users := g.AllUsers()
	seen := make(map[string]struct{}, len(users))
	for _, u := range users {
		seen[u] = struct{}{}
	}
	add := func(u string) {
		if _, ok := seen[u]; ok {
			return
		}
		seen[u] = struct{}{}
		users = append(users, u)
	}
	if g.IsUser(username) {
		switch g.ShowInRoster() {
		case groupmodel.VisibilityEverybody:
			usernames, err := m.rep.FetchUsernames(ctx)
			if err != nil {
				log.Warnf("Failed to fetch usernames: %v", err)
				break
			}
			for _, u := range usernames {
				add(u)
			}

		case groupmodel.VisibilityOnlyGroup:
			for _, name := range g.GroupList() {
				lg := m.fetchGroup(ctx, name)
				if lg == nil {
					continue
				}
				for _, u := range lg.AllUsers() {
					add(u)
				}
			}
		}
	}
	return users
}

// affectedUsers returns the users whose roster is affected by a change on a
// shared group.
func (m *Manager) affectedUsers(ctx context.Context, g *groupmodel.Group) []*jid.JID {
	return m.affectedUsersWith(ctx, g, g.ShowInRoster(), g.GroupList())
}

// affectedUsersWith computes the affected user set under an explicit sharing
// configuration, letting property changes be evaluated against the previous
// values.
func (m *Manager) affectedUsersWith(ctx context.Context, g *groupmodel.Group, vis groupmodel.Visibility, groupList []string) []*jid.JID {
	if vis == groupmodel.VisibilityNobody {
		return nil
	}
	var users []*jid.JID
	seen := make(map[string]struct{})
	add := func(u string) {
		if _, ok := seen[u]; ok {
			return
		}
		seen[u] = struct{}{}
		users = append(users, m.jidFor(u))
	}
	for _, u := range g.AllUsers() {
		add(u)
	}
	switch vis {
	case groupmodel.VisibilityEverybody:
		usernames, err := m.rep.FetchUsernames(ctx)
		if err != nil {
			log.Warnf("Failed to fetch usernames: %v", err)
			break
		}
		for _, u := range usernames {
			add(u)
		}

	case groupmodel.VisibilityOnlyGroup:
		for _, name := range groupList {
			lg := m.fetchGroup(ctx, name)
			if lg == nil {
				continue
			}
			for _, u := range lg.AllUsers() {
				add(u)
			}
		}
	}
	return users
}

// visibleGroups returns the shared groups whose members are visible to the
// users of g: the public ones plus the onlyGroup ones naming g in their list.
func (m *Manager) visibleGroups(ctx context.Context, g *groupmodel.Group) ([]*groupmodel.Group, error) {
	groups, err := m.rep.FetchGroups(ctx)
	if err != nil {
		return nil, err
	}
	var visible []*groupmodel.Group
	for _, vg := range groups {
		if vg.Name == g.Name {
			continue
		}
		switch vg.ShowInRoster() {
		case groupmodel.VisibilityEverybody:
			visible = append(visible, vg)
		case groupmodel.VisibilityOnlyGroup:
			if containsName(vg.GroupList(), g.Name) {
				visible = append(visible, vg)
			}
		}
	}
	return visible, nil
}

func (m *Manager) userAddedToGroup(ctx context.Context, g *groupmodel.Group, username string, admin bool) error {
	// an admin promoted to member, or the other way around, was already a
	// group user
	if admin && containsName(g.Members, username) {
		return nil
	}
	if !admin && containsName(g.Admins, username) {
		return nil
	}
	if g.ShowInRoster() == groupmodel.VisibilityNobody {
		// a hidden group only relates its new user to the users of the groups
		// that are shared with it, never to their whole affected set
		visible, err := m.visibleGroups(ctx, g)
		if err != nil {
			return err
		}
		for _, vg := range visible {
			if err := m.groupUserAddedTo(ctx, vg, m.jidsFor(vg.AllUsers()), username); err != nil {
				return err
			}
		}
		return nil
	}
	return m.groupUserAdded(ctx, g, username)
}

func (m *Manager) userRemovedFromGroup(ctx context.Context, g *groupmodel.Group, username string, admin bool) error {
	// still a group user through the other list
	if admin && containsName(g.Members, username) {
		return nil
	}
	if !admin && containsName(g.Admins, username) {
		return nil
	}
	if g.ShowInRoster() == groupmodel.VisibilityNobody {
		visible, err := m.visibleGroups(ctx, g)
		if err != nil {
			return err
		}
		for _, vg := range visible {
			if err := m.groupUserDeletedFrom(ctx, vg, m.jidsFor(vg.AllUsers()), username); err != nil {
				return err
			}
		}
		return nil
	}
	return m.groupUserDeleted(ctx, g, username)
}

func (m *Manager) groupUserAdded(ctx context.Context, g *groupmodel.Group, addedUsername string) error {
	return m.groupUserAddedTo(ctx, g, m.affectedUsers(ctx, g), addedUsername)
}

func (m *Manager) groupUserAddedTo(ctx context.Context, g *groupmodel.Group, users []*jid.JID, addedUsername string) error {
	exists, err := m.rep.UserExists(ctx, addedUsername)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	addedJID := m.jidFor(addedUsername)
	addedRo := m.CachedRoster(addedUsername)

	for _, userToUpdate := range users {
		if userToUpdate.Node() == addedUsername {
			continue
		}
		if ro := m.CachedRoster(userToUpdate.Node()); ro != nil {
			if err := ro.AddSharedUser(ctx, g, addedJID); err != nil {
				return err
			}
		}
		if addedRo != nil {
			groups, err := m.rep.FetchUserGroups(ctx, userToUpdate.Node())
			if err != nil {
				return err
			}
			if err := addedRo.AddSharedUserGroups(ctx, userToUpdate, groups, g); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Manager) groupUserDeleted(ctx context.Context, g *groupmodel.Group, deletedUsername string) error {
	return m.groupUserDeletedFrom(ctx, g, m.affectedUsers(ctx, g), deletedUsername)
}

func (m *Manager) groupUserDeletedFrom(ctx context.Context, g *groupmodel.Group, users []*jid.JID, deletedUsername string) error {
	deletedJID := m.jidFor(deletedUsername)
	deletedRo := m.CachedRoster(deletedUsername)

	for _, userToUpdate := range users {
		if userToUpdate.Node() == deletedUsername {
			continue
		}
		if ro := m.CachedRoster(userToUpdate.Node()); ro != nil {
			if err := ro.DeleteSharedUser(ctx, g, deletedJID); err != nil {
				return err
			}
		}
		if deletedRo != nil {
			if err := deletedRo.DeleteSharedUserGroup(ctx, userToUpdate, g); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Manager) groupDeleting(ctx context.Context, g *groupmodel.Group) error {
	affected := m.affectedUsers(ctx, g)
	for _, deletedUser := range g.AllUsers() {
		if err := m.groupUserDeletedFrom(ctx, g, affected, deletedUser); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) groupModified(ctx context.Context, g *groupmodel.Group, property, oldValue string) error {
	switch property {
	case groupmodel.ShowInRosterProperty, groupmodel.GroupListProperty:
		if g.Properties[property] == oldValue {
			return nil
		}
		oldVis := g.ShowInRoster()
		oldList := g.GroupList()
		if property == groupmodel.ShowInRosterProperty {
			oldVis = groupmodel.ParseVisibility(oldValue)
		} else {
			oldList = groupmodel.ParseGroupList(oldValue)
		}
		// detach every group user under the previous configuration, then
		// reattach under the current one
		affected := m.affectedUsersWith(ctx, g, oldVis, oldList)
		for _, deletedUser := range g.AllUsers() {
			if err := m.groupUserDeletedFrom(ctx, g, affected, deletedUser); err != nil {
				return err
			}
		}
		for _, addedUser := range g.AllUsers() {
			if err := m.groupUserAdded(ctx, g, addedUser); err != nil {
				return err
			}
		}

	case groupmodel.DisplayNameProperty:
		if g.Properties[property] == oldValue {
			return nil
		}
		if g.ShowInRoster() == groupmodel.VisibilityNobody {
			return nil
		}
		users := m.affectedUsers(ctx, g)
		for _, updatedUser := range users {
			if ro := m.CachedRoster(updatedUser.Node()); ro != nil {
				if err := ro.ShareGroupRenamed(ctx, g, users); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (m *Manager) userCreated(ctx context.Context, username string) error {
	newJID := m.jidFor(username)
	groups, err := m.PublicSharedGroups(ctx)
	if err != nil {
		return err
	}
	for _, g := range groups {
		for _, member := range g.AllUsers() {
			if ro := m.CachedRoster(member); ro != nil {
				if err := ro.AddSharedUser(ctx, g, newJID); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (m *Manager) userDeleting(ctx context.Context, username string) error {
	usrJID := m.jidFor(username)
	groups, err := m.PublicSharedGroups(ctx)
	if err != nil {
		return err
	}
	for _, g := range groups {
		for _, member := range g.AllUsers() {
			if ro := m.CachedRoster(member); ro != nil {
				if err := ro.DeleteSharedUser(ctx, g, usrJID); err != nil {
					return err
				}
			}
		}
	}
	return m.DeleteRoster(ctx, usrJID)
}

func (m *Manager) onGroupMemberAdded(ctx context.Context, ev sonar.Event) error {
	inf := ev.Info().(*event.GroupEventInfo)
	g, err := m.rep.FetchGroup(ctx, inf.GroupName)
	if err != nil {
		return err
	}
	if g == nil {
		return nil
	}
	return m.userAddedToGroup(ctx, g, inf.Username, false)
}

func (m *Manager) onGroupMemberRemoved(ctx context.Context, ev sonar.Event) error {
	inf := ev.Info().(*event.GroupEventInfo)
	g, err := m.rep.FetchGroup(ctx, inf.GroupName)
	if err != nil {
		return err
	}
	if g == nil {
		return nil
	}
	return m.userRemovedFromGroup(ctx, g, inf.Username, false)
}

func (m *Manager) onGroupAdminAdded(ctx context.Context, ev sonar.Event) error {
	inf := ev.Info().(*event.GroupEventInfo)
	g, err := m.rep.FetchGroup(ctx, inf.GroupName)
	if err != nil {
		return err
	}
	if g == nil {
		return nil
	}
	return m.userAddedToGroup(ctx, g, inf.Username, true)
}

func (m *Manager) onGroupAdminRemoved(ctx context.Context, ev sonar.Event) error {
	inf := ev.Info().(*event.GroupEventInfo)
	g, err := m.rep.FetchGroup(ctx, inf.GroupName)
	if err != nil {
		return err
	}
	if g == nil {
		return nil
	}
	return m.userRemovedFromGroup(ctx, g, inf.Username, true)
}

func (m *Manager) onGroupModified(ctx context.Context, ev sonar.Event) error {
	inf := ev.Info().(*event.GroupEventInfo)
	g, err := m.rep.FetchGroup(ctx, inf.GroupName)
	if err != nil {
		return err
	}
	if g == nil {
		return nil
	}
	return m.groupModified(ctx, g, inf.Property, inf.OldValue)
}

func (m *Manager) onGroupDeleting(ctx context.Context, ev sonar.Event) error {
	inf := ev.Info().(*event.GroupEventInfo)
	g, err := m.rep.FetchGroup(ctx, inf.GroupName)
	if err != nil {
		return err
	}
	if g == nil {
		return nil
	}
	return m.groupDeleting(ctx, g)
}

func (m *Manager) onUserCreated(ctx context.Context, ev sonar.Event) error {
	inf := ev.Info().(*event.UserEventInfo)
	return m.userCreated(ctx, inf.Username)
}

func (m *Manager) onUserDeleting(ctx context.Context, ev sonar.Event) error {
	inf := ev.Info().(*event.UserEventInfo)
	return m.userDeleting(ctx, inf.Username)
}

func (m *Manager) addRef(contactBare, username string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	owners := m.refs[contactBare]
	if owners == nil {
		owners = make(map[string]struct{})
		m.refs[contactBare] = owners
	}
	owners[username] = struct{}{}
}

func (m *Manager) removeRef(contactBare, username string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	owners := m.refs[contactBare]
	if owners == nil {
		return
	}
	delete(owners, username)
	if len(owners) == 0 {
		delete(m.refs, contactBare)
	}
}

func (m *Manager) fetchGroup(ctx context.Context, name string) *groupmodel.Group {
	g, err := m.rep.FetchGroup(ctx, name)
	if err != nil {
		log.Warnf("Failed to fetch group %s: %v", name, err)
		return nil
	}
	return g
}

func (m *Manager) allSharedGroups(ctx context.Context) ([]*groupmodel.Group, error) {
	groups, err := m.rep.FetchGroups(ctx)
	if err != nil {
		return nil, err
	}
	var shared []*groupmodel.Group
	for _, g := range groups {
		if g.ShowInRoster() != groupmodel.VisibilityNobody {
			shared = append(shared, g)
		}
	}
	return shared, nil
}

func (m *Manager) userGroups(ctx context.Context, username string) []*groupmodel.Group {
	groups, err := m.rep.FetchUserGroups(ctx, username)
	if err != nil {
		log.Warnf("Failed to fetch groups for user %s: %v", username, err)
		return nil
	}
	return groups
}

func (m *Manager) groupsByName(ctx context.Context, names []string) []*groupmodel.Group {
	var groups []*groupmodel.Group
	for _, name := range names {
		if g := m.fetchGroup(ctx, name); g != nil {
			groups = append(groups, g)
		}
	}
	return groups
}

func (m *Manager) lookupNickname(ctx context.Context, username string) (string, bool) {
	usr, err := m.rep.FetchUser(ctx, username)
	if err != nil {
		log.Warnf("Failed to fetch user %s: %v", username, err)
		return "", false
	}
	if usr == nil {
		return "", false
	}
	return usr.Name, true
}

func (m *Manager) defaultNickname(ctx context.Context, cntJID *jid.JID, fallback string) string {
	nickname, ok := m.lookupNickname(ctx, cntJID.Node())
	if !ok {
		return fallback
	}
	return nickname
}

func (m *Manager) postItemUpdated(ctx context.Context, username, jidStr string, sub rostermodel.Subscription) error {
	return m.postRosterEvent(ctx, event.RosterItemUpdated, &event.RosterEventInfo{
		Username:     username,
		JID:          jidStr,
		Subscription: sub.String(),
	})
}

func (m *Manager) postItemDeleted(ctx context.Context, username, jidStr string) error {
	return m.postRosterEvent(ctx, event.RosterItemDeleted, &event.RosterEventInfo{
		Username: username,
		JID:      jidStr,
	})
}

func (m *Manager) postRosterEvent(ctx context.Context, eventName string, inf *event.RosterEventInfo) error {
	return m.sn.Post(ctx, sonar.NewEventBuilder(eventName).
		WithInfo(inf).
		WithSender(m).
		Build(),
	)
}

func (m *Manager) jidFor(username string) *jid.JID {
	j, _ := jid.New(username, m.cfg.Domain, "", true)
	return j
}

func (m *Manager) jidsFor(usernames []string) []*jid.JID {
	retVal := make([]*jid.JID, 0, len(usernames))
	for _, username := range usernames {
		retVal = append(retVal, m.jidFor(username))
	}
	return retVal
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
