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

package boltdb

import (
	"context"
	"sort"

	bolt "go.etcd.io/bbolt"

	"github.com/vireo-im/vireo/model/usermodel"
)

const usersBucket = "users"

type boltDBUserRep struct {
	tx *bolt.Tx
}

func newUserRep(tx *bolt.Tx) *boltDBUserRep {
	return &boltDBUserRep{tx: tx}
}

func (r *boltDBUserRep) UpsertUser(_ context.Context, user *usermodel.User) error {
	op := upsertKeyOp{
		tx:     r.tx,
		bucket: usersBucket,
		key:    user.Username,
		obj:    user,
	}
	return op.do()
}

func (r *boltDBUserRep) DeleteUser(_ context.Context, username string) error {
	op := delKeyOp{
		tx:     r.tx,
		bucket: usersBucket,
		key:    username,
	}
	return op.do()
}

func (r *boltDBUserRep) FetchUser(_ context.Context, username string) (*usermodel.User, error) {
	var usr usermodel.User

	op := fetchKeyOp{
		tx:     r.tx,
		bucket: usersBucket,
		key:    username,
		obj:    &usr,
	}
	ok, err := op.do()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &usr, nil
}

func (r *boltDBUserRep) FetchUsernames(_ context.Context) ([]string, error) {
	var retVal []string

	op := iterKeysOp{
		tx:     r.tx,
		bucket: usersBucket,
		iterFn: func(k, _ []byte) error {
			retVal = append(retVal, string(k))
			return nil
		},
	}
	if err := op.do(); err != nil {
		return nil, err
	}
	sort.Strings(retVal)
	return retVal, nil
}

func (r *boltDBUserRep) UserExists(_ context.Context, username string) (bool, error) {
	op := keyExistsOp{
		tx:     r.tx,
		bucket: usersBucket,
		key:    username,
	}
	return op.do(), nil
}

// UpsertUser satisfies repository.User interface.
func (r *Repository) UpsertUser(ctx context.Context, user *usermodel.User) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return newUserRep(tx).UpsertUser(ctx, user)
	})
}

// DeleteUser satisfies repository.User interface.
func (r *Repository) DeleteUser(ctx context.Context, username string) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return newUserRep(tx).DeleteUser(ctx, username)
	})
}

// FetchUser satisfies repository.User interface.
func (r *Repository) FetchUser(ctx context.Context, username string) (usr *usermodel.User, err error) {
	err = r.db.View(func(tx *bolt.Tx) error {
		usr, err = newUserRep(tx).FetchUser(ctx, username)
		return err
	})
	return
}

// FetchUsernames satisfies repository.User interface.
func (r *Repository) FetchUsernames(ctx context.Context) (usernames []string, err error) {
	err = r.db.View(func(tx *bolt.Tx) error {
		usernames, err = newUserRep(tx).FetchUsernames(ctx)
		return err
	})
	return
}

// UserExists satisfies repository.User interface.
func (r *Repository) UserExists(ctx context.Context, username string) (ok bool, err error) {
	err = r.db.View(func(tx *bolt.Tx) error {
		ok, err = newUserRep(tx).UserExists(ctx, username)
		return err
	})
	return
}
