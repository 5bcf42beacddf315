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
	"github.com/lib/pq"

	"github.com/vireo-im/vireo/jid"
	"github.com/vireo-im/vireo/model/rostermodel"
	"github.com/vireo-im/vireo/storage/repository"
)

const (
	rosterItemsTableName    = "roster_items"
	rosterVersionsTableName = "roster_versions"

	uniqueViolationCode = "23505"
)

var rosterItemColumns = []string{"id", "jid", "name", "subscription", "ask", "recv", "groups"}

type rosterRep struct {
	conn conn
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// TouchRosterVersion satisfies repository.Roster interface.
func (r *rosterRep) TouchRosterVersion(ctx context.Context, username string) (int, error) {
	var ver int

	q := sq.Insert(rosterVersionsTableName).
		Columns("username", "ver").
		Values(username, 1).
		Suffix("ON CONFLICT (username) DO UPDATE SET ver = roster_versions.ver + 1 RETURNING ver")

	err := q.RunWith(r.conn).QueryRowContext(ctx).Scan(&ver)
	if err != nil {
		return 0, err
	}
	return ver, nil
}

// FetchRosterVersion satisfies repository.Roster interface.
func (r *rosterRep) FetchRosterVersion(ctx context.Context, username string) (int, error) {
	var ver int

	q := sq.Select("ver").
		From(rosterVersionsTableName).
		Where(sq.Eq{"username": username})

	err := q.RunWith(r.conn).QueryRowContext(ctx).Scan(&ver)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case err != nil:
		return 0, err
	}
	return ver, nil
}

// CreateRosterItem satisfies repository.Roster interface.
func (r *rosterRep) CreateRosterItem(ctx context.Context, username string, ri *rostermodel.Item) (int64, error) {
	groupsBytes, err := json.Marshal(ri.Groups)
	if err != nil {
		return 0, err
	}
	var id int64

	q := sq.Insert(rosterItemsTableName).
		Columns("username", "jid", "name", "subscription", "ask", "recv", "groups").
		Values(
			username,
			ri.JID.BareString(),
			ri.Name,
			ri.Subscription.String(),
			ri.Ask.String(),
			ri.Recv.String(),
			groupsBytes,
		).
		Suffix("RETURNING id")

	err = q.RunWith(r.conn).QueryRowContext(ctx).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return 0, repository.ErrAlreadyExists
		}
		return 0, err
	}
	return id, nil
}

// UpdateRosterItem satisfies repository.Roster interface.
func (r *rosterRep) UpdateRosterItem(ctx context.Context, username string, ri *rostermodel.Item) error {
	groupsBytes, err := json.Marshal(ri.Groups)
	if err != nil {
		return err
	}
	q := sq.Update(rosterItemsTableName).
		Set("name", ri.Name).
		Set("subscription", ri.Subscription.String()).
		Set("ask", ri.Ask.String()).
		Set("recv", ri.Recv.String()).
		Set("groups", groupsBytes).
		Where(sq.And{sq.Eq{"username": username}, sq.Eq{"jid": ri.JID.BareString()}})

	_, err = q.RunWith(r.conn).ExecContext(ctx)
	return err
}

// DeleteRosterItem satisfies repository.Roster interface.
func (r *rosterRep) DeleteRosterItem(ctx context.Context, username, itemJID string) error {
	_, err := sq.Delete(rosterItemsTableName).
		Where(sq.And{sq.Eq{"username": username}, sq.Eq{"jid": itemJID}}).
		RunWith(r.conn).
		ExecContext(ctx)
	return err
}

// DeleteRosterItems satisfies repository.Roster interface.
func (r *rosterRep) DeleteRosterItems(ctx context.Context, username string) error {
	_, err := sq.Delete(rosterItemsTableName).
		Where(sq.Eq{"username": username}).
		RunWith(r.conn).
		ExecContext(ctx)
	if err != nil {
		return err
	}
	_, err = sq.Delete(rosterVersionsTableName).
		Where(sq.Eq{"username": username}).
		RunWith(r.conn).
		ExecContext(ctx)
	return err
}

// FetchRosterItems satisfies repository.Roster interface.
func (r *rosterRep) FetchRosterItems(ctx context.Context, username string) ([]*rostermodel.Item, error) {
	q := sq.Select(rosterItemColumns...).
		From(rosterItemsTableName).
		Where(sq.Eq{"username": username}).
		OrderBy("jid")

	rows, err := q.RunWith(r.conn).QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var retVal []*rostermodel.Item
	for rows.Next() {
		ri, err := scanRosterItem(rows)
		if err != nil {
			return nil, err
		}
		retVal = append(retVal, ri)
	}
	return retVal, rows.Err()
}

// FetchRosterItem satisfies repository.Roster interface.
func (r *rosterRep) FetchRosterItem(ctx context.Context, username, itemJID string) (*rostermodel.Item, error) {
	q := sq.Select(rosterItemColumns...).
		From(rosterItemsTableName).
		Where(sq.And{sq.Eq{"username": username}, sq.Eq{"jid": itemJID}})

	ri, err := scanRosterItem(q.RunWith(r.conn).QueryRowContext(ctx))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, err
	}
	return ri, nil
}

// FetchReferencingUsernames satisfies repository.Roster interface.
func (r *rosterRep) FetchReferencingUsernames(ctx context.Context, itemJID string) ([]string, error) {
	q := sq.Select("username").
		From(rosterItemsTableName).
		Where(sq.Eq{"jid": itemJID}).
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

func scanRosterItem(scanner rowScanner) (*rostermodel.Item, error) {
	var ri rostermodel.Item
	var jidStr, subscription, ask, recv string
	var groupsBytes []byte

	if err := scanner.Scan(&ri.ID, &jidStr, &ri.Name, &subscription, &ask, &recv, &groupsBytes); err != nil {
		return nil, err
	}
	j, err := jid.NewWithString(jidStr, true)
	if err != nil {
		return nil, err
	}
	ri.JID = j

	if ri.Subscription, err = rostermodel.ParseSubscription(subscription); err != nil {
		return nil, err
	}
	if ri.Ask, err = rostermodel.ParseAsk(ask); err != nil {
		return nil, err
	}
	if ri.Recv, err = rostermodel.ParseRecv(recv); err != nil {
		return nil, err
	}
	if len(groupsBytes) > 0 {
		if err := json.Unmarshal(groupsBytes, &ri.Groups); err != nil {
			return nil, err
		}
	}
	return &ri, nil
}
