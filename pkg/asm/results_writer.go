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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Write the machine code, one word per line in emission order.
func WriteWords(w io.Writer, words []Word) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := fmt.Fprintf(bw, "%s\n", word); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Write the symbol table sorted by label.
func WriteSymbols(w io.Writer, st SymbolTable) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%-16s %s\n", "SYMBOL", "VALUE")
	for _, n := range st.Labels() {
		fmt.Fprintf(bw, "%-16s %s\n", n, st.Resolve(n))
	}
	return bw.Flush()
}

// ReadWords parses a machine code file written by WriteWords. Blank
// lines are ignored.
func ReadWords(r io.Reader) ([]Word, error) {
	var words []Word
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		w, err := parseWord(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func parseWord(text string) (Word, error) {
	f := strings.Fields(text)
	if len(f) != 2 || len(f[0]) != addressBits || len(f[1]) != wordBits {
		return Word{}, fmt.Errorf("expected %d-bit address and %d-bit word, found %q",
			addressBits, wordBits, text)
	}
	a, err := strconv.ParseUint(f[0], 2, addressBits)
	if err != nil {
		return Word{}, fmt.Errorf("address %q: %w", f[0], err)
	}
	v, err := strconv.ParseUint(f[1], 2, wordBits)
	if err != nil {
		return Word{}, fmt.Errorf("word %q: %w", f[1], err)
	}
	return Word{Address(a), uint16(v)}, nil
}
