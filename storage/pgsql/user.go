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
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/vireo-im/vireo/model/usermodel"
)

const usersTableName = "users"

type userRep struct {
	conn conn
}

// UpsertUser satisfies repository.User interface.
func (r *userRep) UpsertUser(ctx context.Context, user *usermodel.User) error {
	q := sq.Insert(usersTableName).
		Columns("username", "name").
		Values(user.Username, user.Name).
		Suffix("ON CONFLICT (username) DO UPDATE SET name = $2")

	_, err := q.RunWith(r.conn).ExecContext(ctx)
	return err
}

// DeleteUser satisfies repository.User interface.
func (r *userRep) DeleteUser(ctx context.Context, username string) error {
	_, err := sq.Delete(usersTableName).
		Where(sq.Eq{"username": username}).
		RunWith(r.conn).
		ExecContext(ctx)
	return err
}

// FetchUser satisfies repository.User interface.
func (r *userRep) FetchUser(ctx context.Context, username string) (*usermodel.User, error) {
	var usr usermodel.User

	q := sq.Select("username", "name").
		From(usersTableName).
		Where(sq.Eq{"username": username})

	err := q.RunWith(r.conn).QueryRowContext(ctx).Scan(&usr.Username, &usr.Name)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, err
	}
	return &usr, nil
}

// FetchUsernames satisfies repository.User interface.
func (r *userRep) FetchUsernames(ctx context.Context) ([]string, error) {
	q := sq.Select("username").
		From(usersTableName).
		OrderBy("username")

	rows, err := q.RunWith(r.conn).QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var retVal []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, err
		}
		retVal = append(retVal, username)
	}
	return retVal, rows.Err()
}

// UserExists satisfies repository.User interface.
func (r *userRep) UserExists(ctx context.Context, username string) (bool, error) {
	var count int

	q := sq.Select("COUNT(*)").
		From(usersTableName).
		Where(sq.Eq{"username": username})

	err := q.RunWith(r.conn).QueryRowContext(ctx).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
