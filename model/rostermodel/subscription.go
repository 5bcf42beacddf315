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

package rostermodel

import "fmt"

// Subscription represents a roster item subscription state.
type Subscription int

const (
	// SubNone subscription state.
	SubNone Subscription = iota

	// SubTo subscription state.
	SubTo

	// SubFrom subscription state.
	SubFrom

	// SubBoth subscription state.
	SubBoth

	// SubRemove is a transient state used only when signaling item removal.
	SubRemove
)

// String returns subscription state wire representation.
func (s Subscription) String() string {
	switch s {
	case SubTo:
		return "to"
	case SubFrom:
		return "from"
	case SubBoth:
		return "both"
	case SubRemove:
		return "remove"
	default:
		return "none"
	}
}

// ParseSubscription parses a subscription state from its wire representation.
func ParseSubscription(str string) (Subscription, error) {
	switch str {
	case "", "none":
		return SubNone, nil
	case "to":
		return SubTo, nil
	case "from":
		return SubFrom, nil
	case "both":
		return SubBoth, nil
	case "remove":
		return SubRemove, nil
	}
	return SubNone, fmt.Errorf("rostermodel: unrecognized subscription value: %s", str)
}

// Ask represents a roster item pending outgoing subscription state.
type Ask int

const (
	// AskNone means no pending outgoing request.
	AskNone Ask = iota

	// AskSubscribe means a subscription request is pending.
	AskSubscribe

	// AskUnsubscribe means an unsubscription request is pending.
	AskUnsubscribe
)

// String returns ask state string representation.
func (a Ask) String() string {
	switch a {
	case AskSubscribe:
		return "subscribe"
	case AskUnsubscribe:
		return "unsubscribe"
	default:
		return "none"
	}
}

// ParseAsk parses an ask state from its string representation.
func ParseAsk(str string) (Ask, error) {
	switch str {
	case "", "none":
		return AskNone, nil
	case "subscribe":
		return AskSubscribe, nil
	case "unsubscribe":
		return AskUnsubscribe, nil
	}
	return AskNone, fmt.Errorf("rostermodel: unrecognized ask value: %s", str)
}

// Recv represents a roster item pending incoming subscription state.
type Recv int

const (
	// RecvNone means no pending incoming request.
	RecvNone Recv = iota

	// RecvSubscribe means a subscription request was received and not yet answered.
	RecvSubscribe

	// RecvUnsubscribe means an unsubscription request was received and not yet answered.
	RecvUnsubscribe
)

// String returns recv state string representation.
func (r Recv) String() string {
	switch r {
	case RecvSubscribe:
		return "subscribe"
	case RecvUnsubscribe:
		return "unsubscribe"
	default:
		return "none"
	}
}

// ParseRecv parses a recv state from its string representation.
func ParseRecv(str string) (Recv, error) {
	switch str {
	case "", "none":
		return RecvNone, nil
	case "subscribe":
		return RecvSubscribe, nil
	case "unsubscribe":
		return RecvUnsubscribe, nil
	}
	return RecvNone, fmt.Errorf("rostermodel: unrecognized recv value: %s", str)
}
