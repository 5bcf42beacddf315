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

package jid

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"net"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
	"golang.org/x/text/secure/precis"
)

// ErrMalformedAddress is returned by New and NewWithString when the input
// text cannot form a valid address.
var ErrMalformedAddress = errors.New("jid: malformed address")

// MatchingOptions represents a matching jid mask.
type MatchingOptions int8

const (
	// MatchesNode indicates that left and right operand has same node value.
	MatchesNode = MatchingOptions(1)

	// MatchesDomain indicates that left and right operand has same domain value.
	MatchesDomain = MatchingOptions(2)

	// MatchesResource indicates that left and right operand has same resource value.
	MatchesResource = MatchingOptions(4)

	// MatchesBare indicates that left and right operand has same node and domain value.
	MatchesBare = MatchesNode | MatchesDomain
)

// JID represents an XMPP address.
// A JID is made up of a node (generally a username), a domain, and a resource.
// The node and resource are optional; domain is required. Instances are
// immutable once constructed and both canonical renderings are cached.
type JID struct {
	node     string
	domain   string
	resource string
	bare     string
	full     string
}

// New constructs a JID given a node, domain, and resource.
// This construction allows the caller to specify if stringprep should be applied or not.
func New(node, domain, resource string, skipStringPrep bool) (*JID, error) {
	if skipStringPrep {
		j := &JID{node: node, domain: domain, resource: resource}
		j.cacheForms()
		return j, nil
	}
	return stringPrep(node, domain, resource)
}

// NewWithString constructs a JID from its string representation.
// This construction allows the caller to specify if stringprep should be applied or not.
func NewWithString(str string, skipStringPrep bool) (*JID, error) {
	if len(str) == 0 {
		return nil, fmt.Errorf("%w: empty address", ErrMalformedAddress)
	}
	var node, domain, resource string

	atIndex := strings.Index(str, "@")
	slashIndex := strings.Index(str, "/")

	// node
	if atIndex > 0 && (slashIndex < 0 || atIndex < slashIndex) {
		node = str[0:atIndex]
	} else {
		atIndex = -1
	}

	// domain
	if atIndex+1 == len(str) {
		return nil, fmt.Errorf("%w: empty domain", ErrMalformedAddress)
	}
	if atIndex < 0 {
		if slashIndex > 0 {
			domain = str[0:slashIndex]
		} else {
			domain = str
		}
	} else {
		if slashIndex > 0 {
			domain = str[atIndex+1 : slashIndex]
		} else {
			domain = str[atIndex+1:]
		}
	}

	// resource
	if slashIndex > 0 {
		if slashIndex+1 < len(str) {
			resource = str[slashIndex+1:]
		} else {
			return nil, fmt.Errorf("%w: empty resource", ErrMalformedAddress)
		}
	}
	return New(node, domain, resource, skipStringPrep)
}

// Node returns the node, or empty string if this JID does not contain node information.
func (j *JID) Node() string { return j.node }

// Domain returns the domain.
func (j *JID) Domain() string { return j.domain }

// Resource returns the resource, or empty string if this JID does not contain resource information.
func (j *JID) Resource() string { return j.resource }

// ToBareJID returns the JID equivalent of the bare JID, which is the JID with resource information removed.
func (j *JID) ToBareJID() *JID {
	bare := &JID{node: j.node, domain: j.domain}
	bare.cacheForms()
	return bare
}

// IsServer returns true if instance is a server JID.
func (j *JID) IsServer() bool { return len(j.node) == 0 }

// IsBare returns true if instance is a bare JID.
func (j *JID) IsBare() bool { return len(j.node) > 0 && len(j.resource) == 0 }

// IsFull returns true if instance is a full JID.
func (j *JID) IsFull() bool { return len(j.resource) > 0 }

// Matches returns true if two JIDs are equivalent under the given mask.
func (j *JID) Matches(j2 *JID, options MatchingOptions) bool {
	if (options&MatchesNode) > 0 && j.node != j2.node {
		return false
	}
	if (options&MatchesDomain) > 0 && j.domain != j2.domain {
		return false
	}
	if (options&MatchesResource) > 0 && j.resource != j2.resource {
		return false
	}
	return true
}

// Compare orders two JIDs by their normalized domain, node and resource forms.
// It returns -1, 0 or 1 depending on whether j sorts before, equal to or
// after j2.
func (j *JID) Compare(j2 *JID) int {
	if c := strings.Compare(j.domain, j2.domain); c != 0 {
		return c
	}
	if c := strings.Compare(j.node, j2.node); c != 0 {
		return c
	}
	return strings.Compare(j.resource, j2.resource)
}

// String returns the full string representation of the JID.
func (j *JID) String() string {
	if len(j.full) == 0 && len(j.domain) > 0 {
		j.cacheForms()
	}
	return j.full
}

// BareString returns the bare string representation of the JID.
func (j *JID) BareString() string {
	if len(j.bare) == 0 && len(j.domain) > 0 {
		j.cacheForms()
	}
	return j.bare
}

// FromGob deserializes a JID entity from its gob binary representation.
func (j *JID) FromGob(dec *gob.Decoder) error {
	dec.Decode(&j.node)
	dec.Decode(&j.domain)
	dec.Decode(&j.resource)
	j.cacheForms()
	return nil
}

// ToGob converts a JID entity to its gob binary representation.
func (j *JID) ToGob(enc *gob.Encoder) {
	enc.Encode(&j.node)
	enc.Encode(&j.domain)
	enc.Encode(&j.resource)
}

func (j *JID) cacheForms() {
	var sb strings.Builder
	if len(j.node) > 0 {
		sb.WriteString(j.node)
		sb.WriteString("@")
	}
	sb.WriteString(j.domain)
	j.bare = sb.String()
	if len(j.resource) > 0 {
		sb.WriteString("/")
		sb.WriteString(j.resource)
	}
	j.full = sb.String()
}

func stringPrep(node, domain, resource string) (*JID, error) {
	// Ensure that parts are valid UTF-8 (and short circuit the rest of the
	// process if they're not). We'll check the domain after performing
	// the IDNA ToUnicode operation.
	if !utf8.ValidString(node) || !utf8.ValidString(resource) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrMalformedAddress)
	}

	// RFC 7622 §3.2.1.  Preparation
	//
	//    An entity that prepares a string for inclusion in an XMPP domain
	//    slot MUST ensure that the string consists only of Unicode code points
	//    that are allowed in NR-LDH labels or U-labels as defined in
	//    [RFC5890].  This implies that the string MUST NOT include A-labels as
	//    defined in [RFC5890]; each A-label MUST be converted to a U-label
	//    during preparation of a string for inclusion in a domain slot.
	var err error
	domain, err = idna.ToUnicode(domain)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAddress, err)
	}
	if !utf8.ValidString(domain) {
		return nil, fmt.Errorf("%w: domain contains invalid UTF-8", ErrMalformedAddress)
	}
	domain = strings.ToLower(domain)

	// RFC 7622 §3.2.2.  Enforcement
	//
	//   An entity that performs enforcement in XMPP domain slots MUST
	//   prepare a string as described in Section 3.2.1 and MUST also apply
	//   the normalization, case-mapping, and width-mapping rules defined in
	//   [RFC5892].
	var nodelen int
	data := make([]byte, 0, len(node)+len(domain)+len(resource))

	if node != "" {
		data, err = precis.UsernameCaseMapped.Append(data, []byte(node))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedAddress, err)
		}
		nodelen = len(data)
	}
	data = append(data, []byte(domain)...)

	if resource != "" {
		data, err = precis.OpaqueString.Append(data, []byte(resource))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedAddress, err)
		}
	}
	if err := commonChecks(data[:nodelen], domain, data[nodelen+len(domain):]); err != nil {
		return nil, err
	}
	j := &JID{
		node:     string(data[:nodelen]),
		domain:   string(data[nodelen : nodelen+len(domain)]),
		resource: string(data[nodelen+len(domain):]),
	}
	j.cacheForms()
	return j, nil
}

func commonChecks(node []byte, domain string, resource []byte) error {
	l := len(node)
	if l > 1023 {
		return fmt.Errorf("%w: node must be smaller than 1024 bytes", ErrMalformedAddress)
	}

	// RFC 7622 §3.3.1 provides a small table of characters which are still not
	// allowed in nodes even though the IdentifierClass base class and the
	// UsernameCaseMapped profile don't forbid them; disallow them here.
	if bytes.ContainsAny(node, `"&'/:<>@`) {
		return fmt.Errorf("%w: node contains forbidden characters", ErrMalformedAddress)
	}

	l = len(resource)
	if l > 1023 {
		return fmt.Errorf("%w: resource must be smaller than 1024 bytes", ErrMalformedAddress)
	}

	l = len(domain)
	if l < 1 || l > 1023 {
		return fmt.Errorf("%w: domain must be between 1 and 1023 bytes", ErrMalformedAddress)
	}
	return checkIP6String(domain)
}

func checkIP6String(domain string) error {
	// if the domain is a valid IPv6 address (with brackets), short circuit.
	if l := len(domain); l > 2 && strings.HasPrefix(domain, "[") &&
		strings.HasSuffix(domain, "]") {
		if ip := net.ParseIP(domain[1 : l-1]); ip == nil || ip.To4() != nil {
			return fmt.Errorf("%w: domain is not a valid IPv6 address", ErrMalformedAddress)
		}
	}
	return nil
}
