/*
Copyright © 2022 Jeff Berkowitz (pdxjjb@gmail.com)

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

package asm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Line kinds. Both passes see the source through the same classifier.
const (
	lkSkip = iota
	lkOrg
	lkEnd
	lkLabelled
	lkInstruction
)

var errMissingAddress = errors.New("missing address")

// SyntaxError is the one kind of malformed input that is not silently
// absorbed: a bad ORG address or a bad DEC operand.
type SyntaxError struct {
	Line int    // 1-based source line
	Op   string // "ORG" or "DEC"
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Op, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

type sourceLine struct {
	number int
	kind   int
	text   string   // significant text, comment removed
	label  string   // lkLabelled: text before the first comma
	body   string   // lkLabelled: text after the first comma
	fields []string // lkInstruction: whitespace separated fields
	org    int      // lkOrg: the new location
}

func splitLines(src string) []string {
	return strings.Split(src, "\n")
}

// Classify one raw source line. Blank lines and lines starting with
// '/' are skipped. Anything after a '/' elsewhere is a comment.
func classify(number int, raw string) (sourceLine, error) {
	sl := sourceLine{number: number, kind: lkSkip}
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "/") {
		return sl, nil
	}
	text, _, _ := strings.Cut(line, "/")
	text = strings.TrimSpace(text)
	sl.text = text

	switch {
	case strings.HasPrefix(text, "ORG"):
		org, err := parseOrg(text)
		if err != nil {
			return sl, &SyntaxError{number, "ORG", err}
		}
		sl.kind = lkOrg
		sl.org = org
	case text == "END":
		sl.kind = lkEnd
	case strings.Contains(text, ","):
		parts := strings.Split(text, ",")
		sl.kind = lkLabelled
		sl.label = strings.TrimSpace(parts[0])
		sl.body = parts[1]
	default:
		sl.kind = lkInstruction
		sl.fields = strings.Fields(text)
	}
	return sl, nil
}

// The ORG argument is hexadecimal. A 0x prefix is tolerated.
func parseOrg(text string) (int, error) {
	f := strings.Fields(text)
	if len(f) < 2 {
		return 0, errMissingAddress
	}
	digits := f[1]
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
	}
	v, err := strconv.ParseUint(digits, 16, 31)
	if err != nil {
		return 0, fmt.Errorf("bad address %q: %w", f[1], errors.Unwrap(err))
	}
	return int(v), nil
}
