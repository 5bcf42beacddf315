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

package storage

import (
	"fmt"

	"github.com/vireo-im/vireo/storage/boltdb"
	measuredrepository "github.com/vireo-im/vireo/storage/measured"
	"github.com/vireo-im/vireo/storage/memstorage"
	"github.com/vireo-im/vireo/storage/pgsql"
	"github.com/vireo-im/vireo/storage/repository"
)

const (
	memoryRepositoryType = "memory"
	boltDBRepositoryType = "boltdb"
	pgSQLRepositoryType  = "pgsql"
)

// Config contains repository configuration value.
type Config struct {
	Type   string        `yaml:"type"`
	BoltDB boltdb.Config `yaml:"boltdb"`
	PgSQL  pgsql.Config  `yaml:"pgsql"`
}

// New returns a measured repository initialized with cfg configuration.
func New(cfg Config) (repository.Repository, error) {
	var rep repository.Repository
	switch cfg.Type {
	case memoryRepositoryType:
		rep = memstorage.New()
	case boltDBRepositoryType:
		rep = boltdb.New(cfg.BoltDB)
	case pgSQLRepositoryType:
		rep = pgsql.New(cfg.PgSQL)
	default:
		return nil, fmt.Errorf("storage: unrecognized repository type: %s", cfg.Type)
	}
	return measuredrepository.New(rep), nil
}
