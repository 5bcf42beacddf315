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

package serializer

import (
	"encoding/gob"

	"github.com/vireo-im/vireo/pool"
)

var bufPool = pool.NewBufferPool()

// Serializer represents a Gob serializable entity.
type Serializer interface {
	ToGob(enc *gob.Encoder)
}

// Deserializer represents a Gob deserializable entity.
type Deserializer interface {
	FromGob(dec *gob.Decoder) error
}

// Serialize converts a serializable entity into its bytes representation.
func Serialize(serializer Serializer) ([]byte, error) {
	buf := bufPool.Get()
	defer bufPool.Put(buf)

	serializer.ToGob(gob.NewEncoder(buf))

	res := make([]byte, buf.Len())
	copy(res, buf.Bytes())
	return res, nil
}

// Deserialize reads an entity from its bytes representation.
func Deserialize(b []byte, deserializer Deserializer) error {
	buf := bufPool.Get()
	defer bufPool.Put(buf)

	buf.Write(b)
	return deserializer.FromGob(gob.NewDecoder(buf))
}
