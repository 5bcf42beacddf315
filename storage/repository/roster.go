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

package repository

import (
	"context"

	"github.com/vireo-im/vireo/model/rostermodel"
)

// Roster defines user roster repository operations.
type Roster interface {
	// TouchRosterVersion increments and returns user roster version.
	TouchRosterVersion(ctx context.Context, username string) (int, error)

	// FetchRosterVersion fetches user roster version.
	FetchRosterVersion(ctx context.Context, username string) (int, error)

	// CreateRosterItem inserts a new roster item entity into repository,
	// assigning its persistent identifier. ErrAlreadyExists is returned if
	// an item associated to the same contact is already present.
	CreateRosterItem(ctx context.Context, username string, ri *rostermodel.Item) (int64, error)

	// UpdateRosterItem updates a previously inserted roster item entity.
	UpdateRosterItem(ctx context.Context, username string, ri *rostermodel.Item) error

	// DeleteRosterItem deletes a roster item entity from repository.
	DeleteRosterItem(ctx context.Context, username, jid string) error

	// DeleteRosterItems deletes all user roster items.
	DeleteRosterItems(ctx context.Context, username string) error

	// FetchRosterItems fetches from repository all roster item entities associated to a given user.
	FetchRosterItems(ctx context.Context, username string) ([]*rostermodel.Item, error)

	// FetchRosterItem fetches from repository the roster item entity associated to a given contact.
	FetchRosterItem(ctx context.Context, username, jid string) (*rostermodel.Item, error)

	// FetchReferencingUsernames returns the usernames of every roster containing
	// an item associated to a given contact.
	FetchReferencingUsernames(ctx context.Context, jid string) ([]string, error)
}
