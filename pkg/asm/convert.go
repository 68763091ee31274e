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

const (
	minWordValue = -1 << (wordBits - 1)
	maxWordValue = 1<<wordBits - 1
)

// DecimalWord converts a signed decimal literal to its 16-bit two's
// complement value. Values that do not fit in 16 bits are truncated and
// reported as such; they are not an error.
func DecimalWord(text string) (word uint16, truncated bool, err error) {
	n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			err = fmt.Errorf("bad decimal %q: %w", text, ne.Err)
		}
		return 0, false, err
	}
	truncated = n < minWordValue || n > maxWordValue
	if n < 0 {
		n += 1 << wordBits
	}
	return uint16(n), truncated, nil
}

// ConvertDecimal returns the 16 binary digits of a decimal literal.
func ConvertDecimal(text string) (string, error) {
	w, _, err := DecimalWord(text)
	if err != nil {
		return "", err
	}
	return Binary(uint64(w), wordBits), nil
}

// Binary formats v as exactly width zero-padded binary digits. Higher
// bits are dropped.
func Binary(v uint64, width int) string {
	s := strconv.FormatUint(v&(1<<width-1), 2)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}
