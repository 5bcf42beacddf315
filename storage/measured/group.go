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

	"github.com/vireo-im/vireo/model/groupmodel"
	"github.com/vireo-im/vireo/storage/repository"
)

type measuredGroupRep struct {
	rep repository.Group
}

func (m *measuredGroupRep) UpsertGroup(ctx context.Context, group *groupmodel.Group) (err error) {
	t0 := time.Now()
	err = m.rep.UpsertGroup(ctx, group)
	reportOpMetric(upsertOp, time.Since(t0).Seconds(), err == nil)
	return
}

func (m *measuredGroupRep) DeleteGroup(ctx context.Context, name string) (err error) {
	t0 := time.Now()
	err = m.rep.DeleteGroup(ctx, name)
	reportOpMetric(deleteOp, time.Since(t0).Seconds(), err == nil)
	return
}

func (m *measuredGroupRep) FetchGroup(ctx context.Context, name string) (g *groupmodel.Group, err error) {
	t0 := time.Now()
	g, err = m.rep.FetchGroup(ctx, name)
	reportOpMetric(fetchOp, time.Since(t0).Seconds(), err == nil)
	return
}

func (m *measuredGroupRep) FetchGroups(ctx context.Context) (groups []*groupmodel.Group, err error) {
	t0 := time.Now()
	groups, err = m.rep.FetchGroups(ctx)
	reportOpMetric(fetchOp, time.Since(t0).Seconds(), err == nil)
	return
}

func (m *measuredGroupRep) FetchUserGroups(ctx context.Context, username string) (groups []*groupmodel.Group, err error) {
	t0 := time.Now()
	groups, err = m.rep.FetchUserGroups(ctx, username)
	reportOpMetric(fetchOp, time.Since(t0).Seconds(), err == nil)
	return
}
