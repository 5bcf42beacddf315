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

	bolt "go.etcd.io/bbolt"

	"github.com/vireo-im/vireo/model/groupmodel"
	"github.com/vireo-im/vireo/model/serializer"
)

const groupsBucket = "groups"

type boltDBGroupRep struct {
	tx *bolt.Tx
}

func newGroupRep(tx *bolt.Tx) *boltDBGroupRep {
	return &boltDBGroupRep{tx: tx}
}

func (r *boltDBGroupRep) UpsertGroup(_ context.Context, group *groupmodel.Group) error {
	op := upsertKeyOp{
		tx:     r.tx,
		bucket: groupsBucket,
		key:    group.Name,
		obj:    group,
	}
	return op.do()
}

func (r *boltDBGroupRep) DeleteGroup(_ context.Context, name string) error {
	op := delKeyOp{
		tx:     r.tx,
		bucket: groupsBucket,
		key:    name,
	}
	return op.do()
}

func (r *boltDBGroupRep) FetchGroup(_ context.Context, name string) (*groupmodel.Group, error) {
	var g groupmodel.Group

	op := fetchKeyOp{
		tx:     r.tx,
		bucket: groupsBucket,
		key:    name,
		obj:    &g,
	}
	ok, err := op.do()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (r *boltDBGroupRep) FetchGroups(_ context.Context) ([]*groupmodel.Group, error) {
	var retVal []*groupmodel.Group

	op := iterKeysOp{
		tx:     r.tx,
		bucket: groupsBucket,
		iterFn: func(_, b []byte) error {
			var g groupmodel.Group
			if err := serializer.Deserialize(b, &g); err != nil {
				return err
			}
			retVal = append(retVal, &g)
			return nil
		},
	}
	if err := op.do(); err != nil {
		return nil, err
	}
	return retVal, nil
}

func (r *boltDBGroupRep) FetchUserGroups(ctx context.Context, username string) ([]*groupmodel.Group, error) {
	groups, err := r.FetchGroups(ctx)
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

// UpsertGroup satisfies repository.Group interface.
func (r *Repository) UpsertGroup(ctx context.Context, group *groupmodel.Group) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return newGroupRep(tx).UpsertGroup(ctx, group)
	})
}

// DeleteGroup satisfies repository.Group interface.
func (r *Repository) DeleteGroup(ctx context.Context, name string) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return newGroupRep(tx).DeleteGroup(ctx, name)
	})
}

// FetchGroup satisfies repository.Group interface.
func (r *Repository) FetchGroup(ctx context.Context, name string) (g *groupmodel.Group, err error) {
	err = r.db.View(func(tx *bolt.Tx) error {
		g, err = newGroupRep(tx).FetchGroup(ctx, name)
		return err
	})
	return
}

// FetchGroups satisfies repository.Group interface.
func (r *Repository) FetchGroups(ctx context.Context) (groups []*groupmodel.Group, err error) {
	err = r.db.View(func(tx *bolt.Tx) error {
		groups, err = newGroupRep(tx).FetchGroups(ctx)
		return err
	})
	return
}

// FetchUserGroups satisfies repository.Group interface.
func (r *Repository) FetchUserGroups(ctx context.Context, username string) (groups []*groupmodel.Group, err error) {
	err = r.db.View(func(tx *bolt.Tx) error {
		groups, err = newGroupRep(tx).FetchUserGroups(ctx, username)
		return err
	})
	return
}
