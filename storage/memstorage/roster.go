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

package memstorage

import (
	"context"
	"sort"

	"github.com/vireo-im/vireo/model/rostermodel"
	"github.com/vireo-im/vireo/model/serializer"
	"github.com/vireo-im/vireo/storage/repository"
)

// TouchRosterVersion satisfies repository.Roster interface.
func (m *Storage) TouchRosterVersion(_ context.Context, username string) (int, error) {
	var v int
	err := m.inWriteLock(func() error {
		v = m.rosterVersions[username] + 1
		m.rosterVersions[username] = v
		return nil
	})
	return v, err
}

// FetchRosterVersion satisfies repository.Roster interface.
func (m *Storage) FetchRosterVersion(_ context.Context, username string) (int, error) {
	var v int
	err := m.inReadLock(func() error {
		v = m.rosterVersions[username]
		return nil
	})
	return v, err
}

// CreateRosterItem satisfies repository.Roster interface.
func (m *Storage) CreateRosterItem(_ context.Context, username string, ri *rostermodel.Item) (int64, error) {
	var id int64
	err := m.inWriteLock(func() error {
		items := m.rosterItems[username]
		if items == nil {
			items = make(map[string][]byte)
			m.rosterItems[username] = items
		}
		k := ri.JID.BareString()
		if _, ok := items[k]; ok {
			return repository.ErrAlreadyExists
		}
		m.nextItemID++
		id = m.nextItemID

		cp := ri.Copy()
		cp.ID = id
		b, err := serializer.Serialize(cp)
		if err != nil {
			return err
		}
		items[k] = b
		return nil
	})
	return id, err
}

// UpdateRosterItem satisfies repository.Roster interface.
func (m *Storage) UpdateRosterItem(_ context.Context, username string, ri *rostermodel.Item) error {
	return m.inWriteLock(func() error {
		items := m.rosterItems[username]
		if items == nil {
			items = make(map[string][]byte)
			m.rosterItems[username] = items
		}
		b, err := serializer.Serialize(ri)
		if err != nil {
			return err
		}
		items[ri.JID.BareString()] = b
		return nil
	})
}

// DeleteRosterItem satisfies repository.Roster interface.
func (m *Storage) DeleteRosterItem(_ context.Context, username, jid string) error {
	return m.inWriteLock(func() error {
		items := m.rosterItems[username]
		delete(items, jid)
		if len(items) == 0 {
			delete(m.rosterItems, username)
		}
		return nil
	})
}

// DeleteRosterItems satisfies repository.Roster interface.
func (m *Storage) DeleteRosterItems(_ context.Context, username string) error {
	return m.inWriteLock(func() error {
		delete(m.rosterItems, username)
		delete(m.rosterVersions, username)
		return nil
	})
}

// FetchRosterItems satisfies repository.Roster interface.
func (m *Storage) FetchRosterItems(_ context.Context, username string) ([]*rostermodel.Item, error) {
	var retVal []*rostermodel.Item
	err := m.inReadLock(func() error {
		items := m.rosterItems[username]
		keys := make([]string, 0, len(items))
		for k := range items {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			var itm rostermodel.Item
			if err := serializer.Deserialize(items[k], &itm); err != nil {
				return err
			}
			retVal = append(retVal, &itm)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return retVal, nil
}

// FetchRosterItem satisfies repository.Roster interface.
func (m *Storage) FetchRosterItem(_ context.Context, username, jid string) (*rostermodel.Item, error) {
	var retVal *rostermodel.Item
	err := m.inReadLock(func() error {
		b := m.rosterItems[username][jid]
		if b == nil {
			return nil
		}
		var itm rostermodel.Item
		if err := serializer.Deserialize(b, &itm); err != nil {
			return err
		}
		retVal = &itm
		return nil
	})
	if err != nil {
		return nil, err
	}
	return retVal, nil
}

// FetchReferencingUsernames satisfies repository.Roster interface.
func (m *Storage) FetchReferencingUsernames(_ context.Context, jid string) ([]string, error) {
	var retVal []string
	err := m.inReadLock(func() error {
		for username, items := range m.rosterItems {
			if _, ok := items[jid]; ok {
				retVal = append(retVal, username)
			}
		}
		sort.Strings(retVal)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return retVal, nil
}
