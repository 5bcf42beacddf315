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
	"errors"

	bolt "go.etcd.io/bbolt"

	"github.com/vireo-im/vireo/model/serializer"
)

type upsertKeyOp struct {
	tx     *bolt.Tx
	bucket string
	key    string
	obj    serializer.Serializer
}

func (op upsertKeyOp) do() error {
	b, err := op.tx.CreateBucketIfNotExists([]byte(op.bucket))
	if err != nil {
		return err
	}
	p, err := serializer.Serialize(op.obj)
	if err != nil {
		return err
	}
	return b.Put([]byte(op.key), p)
}

type delBucketOp struct {
	tx     *bolt.Tx
	bucket string
}

func (op delBucketOp) do() error {
	err := op.tx.DeleteBucket([]byte(op.bucket))
	if errors.Is(err, bolt.ErrBucketNotFound) {
		return nil
	}
	return err
}

type delKeyOp struct {
	tx     *bolt.Tx
	bucket string
	key    string
}

func (op delKeyOp) do() error {
	b := op.tx.Bucket([]byte(op.bucket))
	if b == nil {
		return nil
	}
	return b.Delete([]byte(op.key))
}

type keyExistsOp struct {
	tx     *bolt.Tx
	bucket string
	key    string
}

func (op keyExistsOp) do() bool {
	b := op.tx.Bucket([]byte(op.bucket))
	if b == nil {
		return false
	}
	return b.Get([]byte(op.key)) != nil
}

type fetchKeyOp struct {
	tx     *bolt.Tx
	bucket string
	key    string
	obj    serializer.Deserializer
}

func (op fetchKeyOp) do() (bool, error) {
	b := op.tx.Bucket([]byte(op.bucket))
	if b == nil {
		return false, nil
	}
	data := b.Get([]byte(op.key))
	if data == nil {
		return false, nil
	}
	if err := serializer.Deserialize(data, op.obj); err != nil {
		return false, err
	}
	return true, nil
}

type iterKeysOp struct {
	tx     *bolt.Tx
	bucket string
	iterFn func(k, b []byte) error
}

func (op iterKeysOp) do() error {
	b := op.tx.Bucket([]byte(op.bucket))
	if b == nil {
		return nil
	}
	c := b.Cursor()

	for k, v := c.First(); k != nil; k, v = c.Next() {
		if err := op.iterFn(k, v); err != nil {
			return err
		}
	}
	return nil
}
