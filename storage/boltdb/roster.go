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
	"fmt"
	"sort"
	"strconv"
	"strings"

	bolt "go.etcd.io/bbolt"

	"github.com/vireo-im/vireo/model/rostermodel"
	"github.com/vireo-im/vireo/model/serializer"
	"github.com/vireo-im/vireo/storage/repository"
)

const (
	versionKey = "ver"

	rosterItemsBucketPrefix = "roster:items:"
	rosterSeqBucket         = "roster:seq"
)

type boltDBRosterRep struct {
	tx *bolt.Tx
}

func newRosterRep(tx *bolt.Tx) *boltDBRosterRep {
	return &boltDBRosterRep{tx: tx}
}

func (r *boltDBRosterRep) TouchRosterVersion(_ context.Context, username string) (int, error) {
	b, err := r.tx.CreateBucketIfNotExists([]byte(rosterVersionBucketKey(username)))
	if err != nil {
		return 0, err
	}
	v, _ := strconv.Atoi(string(b.Get([]byte(versionKey))))
	v++
	if err := b.Put([]byte(versionKey), []byte(strconv.Itoa(v))); err != nil {
		return 0, err
	}
	return v, nil
}

func (r *boltDBRosterRep) FetchRosterVersion(_ context.Context, username string) (int, error) {
	b := r.tx.Bucket([]byte(rosterVersionBucketKey(username)))
	if b == nil {
		return 0, nil
	}
	v, _ := strconv.Atoi(string(b.Get([]byte(versionKey))))
	return v, nil
}

func (r *boltDBRosterRep) CreateRosterItem(_ context.Context, username string, ri *rostermodel.Item) (int64, error) {
	k := ri.JID.BareString()

	existsOp := keyExistsOp{
		tx:     r.tx,
		bucket: rosterItemsBucketKey(username),
		key:    k,
	}
	if existsOp.do() {
		return 0, repository.ErrAlreadyExists
	}
	seq, err := r.tx.CreateBucketIfNotExists([]byte(rosterSeqBucket))
	if err != nil {
		return 0, err
	}
	id, err := seq.NextSequence()
	if err != nil {
		return 0, err
	}
	cp := ri.Copy()
	cp.ID = int64(id)

	op := upsertKeyOp{
		tx:     r.tx,
		bucket: rosterItemsBucketKey(username),
		key:    k,
		obj:    cp,
	}
	if err := op.do(); err != nil {
		return 0, err
	}
	return int64(id), nil
}

func (r *boltDBRosterRep) UpdateRosterItem(_ context.Context, username string, ri *rostermodel.Item) error {
	op := upsertKeyOp{
		tx:     r.tx,
		bucket: rosterItemsBucketKey(username),
		key:    ri.JID.BareString(),
		obj:    ri,
	}
	return op.do()
}

func (r *boltDBRosterRep) DeleteRosterItem(_ context.Context, username, jid string) error {
	op := delKeyOp{
		tx:     r.tx,
		bucket: rosterItemsBucketKey(username),
		key:    jid,
	}
	return op.do()
}

func (r *boltDBRosterRep) DeleteRosterItems(_ context.Context, username string) error {
	itemsOp := delBucketOp{
		tx:     r.tx,
		bucket: rosterItemsBucketKey(username),
	}
	if err := itemsOp.do(); err != nil {
		return err
	}
	verOp := delBucketOp{
		tx:     r.tx,
		bucket: rosterVersionBucketKey(username),
	}
	return verOp.do()
}

func (r *boltDBRosterRep) FetchRosterItems(_ context.Context, username string) ([]*rostermodel.Item, error) {
	var retVal []*rostermodel.Item

	op := iterKeysOp{
		tx:     r.tx,
		bucket: rosterItemsBucketKey(username),
		iterFn: func(_, b []byte) error {
			var itm rostermodel.Item
			if err := serializer.Deserialize(b, &itm); err != nil {
				return err
			}
			retVal = append(retVal, &itm)
			return nil
		},
	}
	if err := op.do(); err != nil {
		return nil, err
	}
	return retVal, nil
}

func (r *boltDBRosterRep) FetchRosterItem(_ context.Context, username, jid string) (*rostermodel.Item, error) {
	var itm rostermodel.Item

	op := fetchKeyOp{
		tx:     r.tx,
		bucket: rosterItemsBucketKey(username),
		key:    jid,
		obj:    &itm,
	}
	ok, err := op.do()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &itm, nil
}

func (r *boltDBRosterRep) FetchReferencingUsernames(_ context.Context, jid string) ([]string, error) {
	var retVal []string

	err := r.tx.ForEach(func(name []byte, b *bolt.Bucket) error {
		bucketName := string(name)
		if !strings.HasPrefix(bucketName, rosterItemsBucketPrefix) {
			return nil
		}
		if b.Get([]byte(jid)) != nil {
			retVal = append(retVal, strings.TrimPrefix(bucketName, rosterItemsBucketPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(retVal)
	return retVal, nil
}

func rosterVersionBucketKey(username string) string {
	return fmt.Sprintf("roster:ver:%s", username)
}

func rosterItemsBucketKey(username string) string {
	return rosterItemsBucketPrefix + username
}

// TouchRosterVersion satisfies repository.Roster interface.
func (r *Repository) TouchRosterVersion(ctx context.Context, username string) (v int, err error) {
	err = r.db.Update(func(tx *bolt.Tx) error {
		v, err = newRosterRep(tx).TouchRosterVersion(ctx, username)
		return err
	})
	return
}

// FetchRosterVersion satisfies repository.Roster interface.
func (r *Repository) FetchRosterVersion(ctx context.Context, username string) (v int, err error) {
	err = r.db.View(func(tx *bolt.Tx) error {
		v, err = newRosterRep(tx).FetchRosterVersion(ctx, username)
		return err
	})
	return
}

// CreateRosterItem satisfies repository.Roster interface.
func (r *Repository) CreateRosterItem(ctx context.Context, username string, ri *rostermodel.Item) (id int64, err error) {
	err = r.db.Update(func(tx *bolt.Tx) error {
		id, err = newRosterRep(tx).CreateRosterItem(ctx, username, ri)
		return err
	})
	return
}

// UpdateRosterItem satisfies repository.Roster interface.
func (r *Repository) UpdateRosterItem(ctx context.Context, username string, ri *rostermodel.Item) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return newRosterRep(tx).UpdateRosterItem(ctx, username, ri)
	})
}

// DeleteRosterItem satisfies repository.Roster interface.
func (r *Repository) DeleteRosterItem(ctx context.Context, username, jid string) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return newRosterRep(tx).DeleteRosterItem(ctx, username, jid)
	})
}

// DeleteRosterItems satisfies repository.Roster interface.
func (r *Repository) DeleteRosterItems(ctx context.Context, username string) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return newRosterRep(tx).DeleteRosterItems(ctx, username)
	})
}

// FetchRosterItems satisfies repository.Roster interface.
func (r *Repository) FetchRosterItems(ctx context.Context, username string) (items []*rostermodel.Item, err error) {
	err = r.db.View(func(tx *bolt.Tx) error {
		items, err = newRosterRep(tx).FetchRosterItems(ctx, username)
		return err
	})
	return
}

// FetchRosterItem satisfies repository.Roster interface.
func (r *Repository) FetchRosterItem(ctx context.Context, username, jid string) (item *rostermodel.Item, err error) {
	err = r.db.View(func(tx *bolt.Tx) error {
		item, err = newRosterRep(tx).FetchRosterItem(ctx, username, jid)
		return err
	})
	return
}

// FetchReferencingUsernames satisfies repository.Roster interface.
func (r *Repository) FetchReferencingUsernames(ctx context.Context, jid string) (usernames []string, err error) {
	err = r.db.View(func(tx *bolt.Tx) error {
		usernames, err = newRosterRep(tx).FetchReferencingUsernames(ctx, jid)
		return err
	})
	return
}
