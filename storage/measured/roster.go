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

package measuredrepository

import (
	"context"
	"time"

	"github.com/vireo-im/vireo/model/rostermodel"
	"github.com/vireo-im/vireo/storage/repository"
)

type measuredRosterRep struct {
	rep repository.Roster
}

func (m *measuredRosterRep) TouchRosterVersion(ctx context.Context, username string) (ver int, err error) {
	t0 := time.Now()
	ver, err = m.rep.TouchRosterVersion(ctx, username)
	reportOpMetric(touchOp, time.Since(t0).Seconds(), err == nil)
	return
}

func (m *measuredRosterRep) FetchRosterVersion(ctx context.Context, username string) (ver int, err error) {
	t0 := time.Now()
	ver, err = m.rep.FetchRosterVersion(ctx, username)
	reportOpMetric(fetchOp, time.Since(t0).Seconds(), err == nil)
	return
}

func (m *measuredRosterRep) CreateRosterItem(ctx context.Context, username string, ri *rostermodel.Item) (id int64, err error) {
	t0 := time.Now()
	id, err = m.rep.CreateRosterItem(ctx, username, ri)
	reportOpMetric(upsertOp, time.Since(t0).Seconds(), err == nil)
	return
}

func (m *measuredRosterRep) UpdateRosterItem(ctx context.Context, username string, ri *rostermodel.Item) (err error) {
	t0 := time.Now()
	err = m.rep.UpdateRosterItem(ctx, username, ri)
	reportOpMetric(upsertOp, time.Since(t0).Seconds(), err == nil)
	return
}

func (m *measuredRosterRep) DeleteRosterItem(ctx context.Context, username, jid string) (err error) {
	t0 := time.Now()
	err = m.rep.DeleteRosterItem(ctx, username, jid)
	reportOpMetric(deleteOp, time.Since(t0).Seconds(), err == nil)
	return
}

func (m *measuredRosterRep) DeleteRosterItems(ctx context.Context, username string) (err error) {
	t0 := time.Now()
	err = m.rep.DeleteRosterItems(ctx, username)
	reportOpMetric(deleteOp, time.Since(t0).Seconds(), err == nil)
	return
}

func (m *measuredRosterRep) FetchRosterItems(ctx context.Context, username string) (items []*rostermodel.Item, err error) {
	t0 := time.Now()
	items, err = m.rep.FetchRosterItems(ctx, username)
	reportOpMetric(fetchOp, time.Since(t0).Seconds(), err == nil)
	return
}

func (m *measuredRosterRep) FetchRosterItem(ctx context.Context, username, jid string) (item *rostermodel.Item, err error) {
	t0 := time.Now()
	item, err = m.rep.FetchRosterItem(ctx, username, jid)
	reportOpMetric(fetchOp, time.Since(t0).Seconds(), err == nil)
	return
}

func (m *measuredRosterRep) FetchReferencingUsernames(ctx context.Context, jid string) (usernames []string, err error) {
	t0 := time.Now()
	usernames, err = m.rep.FetchReferencingUsernames(ctx, jid)
	reportOpMetric(fetchOp, time.Since(t0).Seconds(), err == nil)
	return
}
