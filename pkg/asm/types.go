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
	"fmt"
	"sort"
)

const (
	addressBits = 12
	wordBits    = 16
	addressMask = 1<<addressBits - 1
)

// Address is a 12-bit memory address.
type Address uint16

func newAddress(v int) Address {
	return Address(v & addressMask)
}

// String renders the address as 12 binary digits.
func (a Address) String() string {
	return Binary(uint64(a), addressBits)
}

// Word is one assembled memory cell: where it goes and what it holds.
type Word struct {
	Addr  Address
	Value uint16
}

// String renders the word the way it is written to the machine code
// file, address and content separated by two spaces.
func (w Word) String() string {
	return fmt.Sprintf("%s  %s", w.Addr, Binary(uint64(w.Value), wordBits))
}

// ------------
// Symbol table
// ------------

// SymbolTable maps labels to addresses. It is filled in by the label
// scan and is read only afterward; there are no exported mutators.
type SymbolTable struct {
	entries map[string]Address
}

func newSymbolTable() SymbolTable {
	return SymbolTable{entries: make(map[string]Address)}
}

// A redefinition replaces the earlier address.
func (st SymbolTable) define(label string, a Address) {
	st.entries[label] = a
}

// Lookup reports the address of label and whether it was defined.
func (st SymbolTable) Lookup(label string) (Address, bool) {
	a, ok := st.entries[label]
	return a, ok
}

// Resolve returns the address of label, or address zero when the label
// was never defined.
func (st SymbolTable) Resolve(label string) Address {
	a, _ := st.Lookup(label)
	return a
}

func (st SymbolTable) Len() int {
	return len(st.entries)
}

// Labels returns the defined labels in sorted order.
func (st SymbolTable) Labels() []string {
	names := make([]string, 0, len(st.entries))
	for n := range st.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ----------------
// Location counter
// ----------------

// Each pass owns its own counter; both start at zero so that the two
// passes walk the same addresses.
type locationCounter struct {
	value int
}

func (lc *locationCounter) set(v int) {
	lc.value = v
}

func (lc *locationCounter) advance() {
	lc.value++
}

func (lc *locationCounter) address() Address {
	return newAddress(lc.value)
}
