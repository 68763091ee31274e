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

import "log"

// Pass 1. Walk the source once, assigning an address to every label.
// Each content line occupies one word; ORG moves the location counter
// and END stops the scan.
func scanLabels(lines []string) (SymbolTable, error) {
	symbols := newSymbolTable()
	var lc locationCounter

	for i, raw := range lines {
		sl, err := classify(i+1, raw)
		if err != nil {
			return SymbolTable{}, err
		}
		switch sl.kind {
		case lkSkip:
			continue
		case lkOrg:
			lc.set(sl.org)
			continue
		case lkEnd:
			return symbols, nil
		case lkLabelled:
			if debug {
				log.Printf("line %d: %s = %s\n", sl.number, sl.label, lc.address())
			}
			symbols.define(sl.label, lc.address())
		}
		lc.advance()
	}
	return symbols, nil
}
