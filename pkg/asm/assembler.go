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

// Package asm is a two-pass assembler for the basic computer, a machine
// with 16-bit words and 12-bit addresses.
//
// The source language is line oriented:
//
//	ORG 100        / hexadecimal origin
//	X, DEC -5      / a labelled data word
//	LDA X          / memory reference, direct
//	ADD IPTR       / memory reference, indirect through PTR
//	HLT
//	END
//
// The first pass assigns addresses to labels. The second pass walks the
// source again and emits one Word per DEC line or known instruction.
// Nothing in the default mode is reported for unknown mnemonics or
// undefined labels; those conditions are collected as Diagnostics for
// callers that want them.
package asm

import (
	"fmt"
	"log"
	"os"
)

var debug = false

// SetDebug turns on logging of label assignments.
func SetDebug(setting bool) {
	debug = setting
}

// Options adjust code generation. The zero value is the normal mode.
type Options struct {
	// LegacyFixedWords encodes register reference and I/O instructions
	// as their first template digit followed by a 12-bit address, as
	// older basic computer assemblers did, instead of their full fixed
	// word.
	LegacyFixedWords bool
}

// Program is the result of one assembly.
type Program struct {
	Symbols     SymbolTable
	Words       []Word
	Diagnostics []Diagnostic
}

// Assemble runs both passes over src. The symbol table produced by the
// first pass is complete before the second pass begins and is not
// modified by it.
func Assemble(src string, opts Options) (*Program, error) {
	lines := splitLines(src)

	symbols, err := scanLabels(lines)
	if err != nil {
		return nil, fmt.Errorf("pass 1: %w", err)
	}
	words, diags, err := generate(lines, symbols, opts)
	if err != nil {
		return nil, fmt.Errorf("pass 2: %w", err)
	}
	if debug {
		log.Printf("assembled %d words, %d symbols, %d diagnostics\n",
			len(words), symbols.Len(), len(diags))
	}
	return &Program{Symbols: symbols, Words: words, Diagnostics: diags}, nil
}

// AssembleFile reads and assembles the named source file. A missing
// file is reported with an error satisfying errors.Is(err, fs.ErrNotExist).
func AssembleFile(name string, opts Options) (*Program, error) {
	src, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	prog, err := Assemble(string(src), opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return prog, nil
}
