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

	"github.com/vireo-im/vireo/model/groupmodel"
)

// Group defines user group repository operations.
type Group interface {
	// UpsertGroup inserts a new group entity into repository,
	// or updates it in case it's been previously inserted.
	UpsertGroup(ctx context.Context, group *groupmodel.Group) error

	// DeleteGroup deletes a group entity from repository.
	DeleteGroup(ctx context.Context, name string) error

	// FetchGroup retrieves a group entity from repository.
	FetchGroup(ctx context.Context, name string) (*groupmodel.Group, error)

	// FetchGroups retrieves all group entities from repository.
	FetchGroups(ctx context.Context) ([]*groupmodel.Group, error)

	// FetchUserGroups retrieves the groups a user is member or administrator of.
	FetchUserGroups(ctx context.Context, username string) ([]*groupmodel.Group, error)
}
