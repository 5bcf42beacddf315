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

	"github.com/vireo-im/vireo/model/groupmodel"
	"github.com/vireo-im/vireo/model/serializer"
)

// UpsertGroup satisfies repository.Group interface.
func (m *Storage) UpsertGroup(_ context.Context, group *groupmodel.Group) error {
	return m.inWriteLock(func() error {
		b, err := serializer.Serialize(group)
		if err != nil {
			return err
		}
		m.groups[group.Name] = b
		return nil
	})
}

// DeleteGroup satisfies repository.Group interface.
func (m *Storage) DeleteGroup(_ context.Context, name string) error {
	return m.inWriteLock(func() error {
		delete(m.groups, name)
		return nil
	})
}

// FetchGroup satisfies repository.Group interface.
func (m *Storage) FetchGroup(_ context.Context, name string) (*groupmodel.Group, error) {
	var retVal *groupmodel.Group
	err := m.inReadLock(func() error {
		b := m.groups[name]
		if b == nil {
			return nil
		}
		var g groupmodel.Group
		if err := serializer.Deserialize(b, &g); err != nil {
			return err
		}
		retVal = &g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return retVal, nil
}

// FetchGroups satisfies repository.Group interface.
func (m *Storage) FetchGroups(_ context.Context) ([]*groupmodel.Group, error) {
	var retVal []*groupmodel.Group
	err := m.inReadLock(func() error {
		names := make([]string, 0, len(m.groups))
		for name := range m.groups {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			var g groupmodel.Group
			if err := serializer.Deserialize(m.groups[name], &g); err != nil {
				return err
			}
			retVal = append(retVal, &g)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return retVal, nil
}

// FetchUserGroups satisfies repository.Group interface.
func (m *Storage) FetchUserGroups(ctx context.Context, username string) ([]*groupmodel.Group, error) {
	groups, err := m.FetchGroups(ctx)
	if err != nil {
		return nil, err
	}
	var retVal []*groupmodel.Group
	for _, g := range groups {
		if g.IsUser(username) {
			retVal = append(retVal, g)
		}
	}
	return retVal, nil
}
