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

package memstorage

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/vireo-im/vireo/log"
)

// ErrMocked will be returned by any Storage method when mocked error is activated.
var ErrMocked = errors.New("memstorage: mocked error")

// Storage represents an in memory repository implementation.
type Storage struct {
	mockErr        uint32
	mu             sync.RWMutex
	users          map[string][]byte
	groups         map[string][]byte
	rosterItems    map[string]map[string][]byte
	rosterVersions map[string]int
	nextItemID     int64
}

// New creates and returns an initialized Storage instance.
func New() *Storage {
	return &Storage{
		users:          make(map[string][]byte),
		groups:         make(map[string][]byte),
		rosterItems:    make(map[string]map[string][]byte),
		rosterVersions: make(map[string]int),
	}
}

// ActivateMockedError makes every Storage method fail with ErrMocked.
func (m *Storage) ActivateMockedError() {
	atomic.StoreUint32(&m.mockErr, 1)
}

// DeactivateMockedError disables mocked error.
func (m *Storage) DeactivateMockedError() {
	atomic.StoreUint32(&m.mockErr, 0)
}

// Start implements repository.Repository interface.
func (m *Storage) Start(_ context.Context) error {
	log.Infow("started memory repository")
	return nil
}

// Stop implements repository.Repository interface.
func (m *Storage) Stop(_ context.Context) error {
	log.Infow("stopped memory repository")
	return nil
}

func (m *Storage) inWriteLock(f func() error) error {
	if atomic.LoadUint32(&m.mockErr) == 1 {
		return ErrMocked
	}
	m.mu.Lock()
	err := f()
	m.mu.Unlock()
	return err
}

func (m *Storage) inReadLock(f func() error) error {
	if atomic.LoadUint32(&m.mockErr) == 1 {
		return ErrMocked
	}
	m.mu.RLock()
	err := f()
	m.mu.RUnlock()
	return err
}
