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

import "strings"

// Pass 2. Walk the source again with a fresh location counter and emit
// a word for every DEC line and every recognized instruction. Lines
// that emit nothing still occupy an address.
func generate(lines []string, symbols SymbolTable, opts Options) ([]Word, []Diagnostic, error) {
	var words []Word
	var diags diagnostics
	var lc locationCounter

scan:
	for i, raw := range lines {
		sl, err := classify(i+1, raw)
		if err != nil {
			return nil, nil, err
		}
		switch sl.kind {
		case lkSkip:
			continue
		case lkOrg:
			lc.set(sl.org)
			continue
		case lkEnd:
			break scan
		case lkLabelled:
			w, ok, err := encodeData(sl, lc.address(), &diags)
			if err != nil {
				return nil, nil, err
			}
			if ok {
				words = append(words, w)
			}
		case lkInstruction:
			if w, ok := encodeInstruction(sl, lc.address(), symbols, opts, &diags); ok {
				words = append(words, w)
			}
		}
		lc.advance()
	}
	return words, diags, nil
}

// A labelled line produces a word only for the DEC pseudo-op.
func encodeData(sl sourceLine, at Address, diags *diagnostics) (Word, bool, error) {
	if !strings.Contains(sl.body, "DEC") {
		diags.add(sl.number, "%q: only DEC is assembled after a label; address %s left empty",
			strings.TrimSpace(sl.body), at)
		return Word{}, false, nil
	}
	operand := strings.TrimSpace(strings.ReplaceAll(sl.body, "DEC", ""))
	v, truncated, err := DecimalWord(operand)
	if err != nil {
		return Word{}, false, &SyntaxError{sl.number, "DEC", err}
	}
	if truncated {
		diags.add(sl.number, "DEC %s does not fit in %d bits", operand, wordBits)
	}
	return Word{at, v}, true, nil
}

// Encode a plain instruction line. Unknown mnemonics produce nothing.
// A memory reference operand starting with I selects the indirect
// opcode; undefined operands resolve to address zero.
func encodeInstruction(sl sourceLine, at Address, symbols SymbolTable, opts Options, diags *diagnostics) (Word, bool) {
	in, ok := LookupMnemonic(sl.fields[0])
	if !ok {
		diags.add(sl.number, "unknown instruction %q", sl.fields[0])
		return Word{}, false
	}

	if in.Class() != MemoryReference && !opts.LegacyFixedWords {
		if len(sl.fields) > 1 {
			diags.add(sl.number, "%s takes no operand, %q ignored", in, sl.fields[1])
		}
		fixed, _ := in.FixedWord()
		return Word{at, fixed}, true
	}

	opcode := in.DirectOpcode()
	var target Address
	if len(sl.fields) > 1 {
		operand := sl.fields[1]
		if strings.HasPrefix(operand, "I") {
			opcode = in.IndirectOpcode()
			operand = operand[1:]
		}
		a, defined := symbols.Lookup(operand)
		if !defined {
			diags.add(sl.number, "undefined symbol %q, using address %s", operand, a)
		}
		target = a
	}
	return Word{at, opcode<<addressBits | uint16(target)}, true
}
