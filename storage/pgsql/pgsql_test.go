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
	"github.com/DATA-DOG/go-sqlmock"
)

func newRosterMock() (*rosterRep, sqlmock.Sqlmock) {
	db, sqlMock, _ := sqlmock.New()
	return &rosterRep{conn: db}, sqlMock
}

func newUserMock() (*userRep, sqlmock.Sqlmock) {
	db, sqlMock, _ := sqlmock.New()
	return &userRep{conn: db}, sqlMock
}

func newGroupMock() (*groupRep, sqlmock.Sqlmock) {
	db, sqlMock, _ := sqlmock.New()
	return &groupRep{conn: db}, sqlMock
}
