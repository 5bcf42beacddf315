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

package pgsql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/vireo-im/vireo/model/groupmodel"
)

const groupsTableName = "groups"

var groupColumns = []string{"name", "members", "admins", "properties"}

type groupRep struct {
	conn conn
}

// UpsertGroup satisfies repository.Group interface.
func (r *groupRep) UpsertGroup(ctx context.Context, group *groupmodel.Group) error {
	membersBytes, err := json.Marshal(group.Members)
	if err != nil {
		return err
	}
	adminsBytes, err := json.Marshal(group.Admins)
	if err != nil {
		return err
	}
	propertiesBytes, err := json.Marshal(group.Properties)
	if err != nil {
		return err
	}
	q := sq.Insert(groupsTableName).
		Columns(groupColumns...).
		Values(group.Name, membersBytes, adminsBytes, propertiesBytes).
		Suffix("ON CONFLICT (name) DO UPDATE SET members = $2, admins = $3, properties = $4")

	_, err = q.RunWith(r.conn).ExecContext(ctx)
	return err
}

// DeleteGroup satisfies repository.Group interface.
func (r *groupRep) DeleteGroup(ctx context.Context, name string) error {
	_, err := sq.Delete(groupsTableName).
		Where(sq.Eq{"name": name}).
		RunWith(r.conn).
		ExecContext(ctx)
	return err
}

// FetchGroup satisfies repository.Group interface.
func (r *groupRep) FetchGroup(ctx context.Context, name string) (*groupmodel.Group, error) {
	q := sq.Select(groupColumns...).
		From(groupsTableName).
		Where(sq.Eq{"name": name})

	g, err := scanGroup(q.RunWith(r.conn).QueryRowContext(ctx))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, err
	}
	return g, nil
}

// FetchGroups satisfies repository.Group interface.
func (r *groupRep) FetchGroups(ctx context.Context) ([]*groupmodel.Group, error) {
	q := sq.Select(groupColumns...).
		From(groupsTableName).
		OrderBy("name")

	rows, err := q.RunWith(r.conn).QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var retVal []*groupmodel.Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		retVal = append(retVal, g)
	}
	return retVal, rows.Err()
}

// FetchUserGroups satisfies repository.Group interface.
func (r *groupRep) FetchUserGroups(ctx context.Context, username string) ([]*groupmodel.Group, error) {
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

func scanGroup(scanner rowScanner) (*groupmodel.Group, error) {
	var g groupmodel.Group
	var membersBytes, adminsBytes, propertiesBytes []byte

	if err := scanner.Scan(&g.Name, &membersBytes, &adminsBytes, &propertiesBytes); err != nil {
		return nil, err
	}
	if len(membersBytes) > 0 {
		if err := json.Unmarshal(membersBytes, &g.Members); err != nil {
			return nil, err
		}
	}
	if len(adminsBytes) > 0 {
		if err := json.Unmarshal(adminsBytes, &g.Admins); err != nil {
			return nil, err
		}
	}
	if len(propertiesBytes) > 0 {
		if err := json.Unmarshal(propertiesBytes, &g.Properties); err != nil {
			return nil, err
		}
	}
	return &g, nil
}
