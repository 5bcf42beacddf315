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

package usermodel

import "encoding/gob"

// User represents a user account entity.
type User struct {
	// Username is the account unique name.
	Username string

	// Name is the account owner full name.
	Name string
}

// FromGob deserializes a User entity from its gob binary representation.
func (u *User) FromGob(dec *gob.Decoder) error {
	dec.Decode(&u.Username)
	dec.Decode(&u.Name)
	return nil
}

// ToGob converts a User entity to its gob binary representation.
func (u *User) ToGob(enc *gob.Encoder) {
	enc.Encode(&u.Username)
	enc.Encode(&u.Name)
}
