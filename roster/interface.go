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

package roster

import (
	"context"

	"github.com/jackal-xmpp/stravaganza/v2"

	"github.com/vireo-im/vireo/jid"
	"github.com/vireo-im/vireo/storage/repository"
)

// SessionRegistry defines the contact point with the user live sessions.
type SessionRegistry interface {
	// BroadcastToUser routes stanza to every connected resource of username.
	BroadcastToUser(ctx context.Context, username string, stanza stravaganza.Element) error

	// ProbePresence probes targetJID presence on behalf of every connected
	// resource of username.
	ProbePresence(ctx context.Context, username string, targetJID *jid.JID) error
}

//go:generate moq -out sessions.mock_test.go . SessionRegistry:sessionRegistryMock

//go:generate moq -out repository.mock_test.go . globalRepository:repositoryMock
type globalRepository interface {
	repository.Repository
}
