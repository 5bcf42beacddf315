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

import "strings"

// EscapedChars contains the characters replaced by an escape sequence
// as defined by XEP-0106: JID Escaping.
const EscapedChars = ` "&'/:<>@\`

var escapeTable = map[byte]string{
	' ':  `\20`,
	'"':  `\22`,
	'&':  `\26`,
	'\'': `\27`,
	'/':  `\2f`,
	':':  `\3a`,
	'<':  `\3c`,
	'>':  `\3e`,
	'@':  `\40`,
	'\\': `\5c`,
}

var unescapeTable = map[string]byte{
	"20": ' ',
	"22": '"',
	"26": '&',
	"27": '\'',
	"2f": '/',
	"3a": ':',
	"3c": '<',
	"3e": '>',
	"40": '@',
	"5c": '\\',
}

// EscapeNode replaces every XEP-0106 reserved character in node by its
// escape sequence, so directory usernames containing reserved characters
// can round-trip through an address node.
func EscapeNode(node string) string {
	var sb strings.Builder
	sb.Grow(len(node))
	for i := 0; i < len(node); i++ {
		if esc, ok := escapeTable[node[i]]; ok {
			sb.WriteString(esc)
			continue
		}
		sb.WriteByte(node[i])
	}
	return sb.String()
}

// UnescapeNode is the exact inverse of EscapeNode. A backslash that is not
// followed by one of the table sequences is left untouched, so already
// unescaped input passes through unmodified.
func UnescapeNode(node string) string {
	var sb strings.Builder
	sb.Grow(len(node))
	for i := 0; i < len(node); i++ {
		if node[i] == '\\' && i+2 < len(node) {
			if c, ok := unescapeTable[node[i+1:i+3]]; ok {
				sb.WriteByte(c)
				i += 2
				continue
			}
		}
		sb.WriteByte(node[i])
	}
	return sb.String()
}
