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

	"github.com/vireo-im/vireo/model/serializer"
	"github.com/vireo-im/vireo/model/usermodel"
)

// UpsertUser satisfies repository.User interface.
func (m *Storage) UpsertUser(_ context.Context, user *usermodel.User) error {
	return m.inWriteLock(func() error {
		b, err := serializer.Serialize(user)
		if err != nil {
			return err
		}
		m.users[user.Username] = b
		return nil
	})
}

// DeleteUser satisfies repository.User interface.
func (m *Storage) DeleteUser(_ context.Context, username string) error {
	return m.inWriteLock(func() error {
		delete(m.users, username)
		return nil
	})
}

// FetchUser satisfies repository.User interface.
func (m *Storage) FetchUser(_ context.Context, username string) (*usermodel.User, error) {
	var retVal *usermodel.User
	err := m.inReadLock(func() error {
		b := m.users[username]
		if b == nil {
			return nil
		}
		var usr usermodel.User
		if err := serializer.Deserialize(b, &usr); err != nil {
			return err
		}
		retVal = &usr
		return nil
	})
	if err != nil {
		return nil, err
	}
	return retVal, nil
}

// FetchUsernames satisfies repository.User interface.
func (m *Storage) FetchUsernames(_ context.Context) ([]string, error) {
	var retVal []string
	err := m.inReadLock(func() error {
		for username := range m.users {
			retVal = append(retVal, username)
		}
		sort.Strings(retVal)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return retVal, nil
}

// UserExists satisfies repository.User interface.
func (m *Storage) UserExists(_ context.Context, username string) (bool, error) {
	var ok bool
	err := m.inReadLock(func() error {
		_, ok = m.users[username]
		return nil
	})
	return ok, err
}
