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
	"strconv"
)

// Instruction classes. Only memory reference instructions carry an
// address field; the others are complete 16-bit words.
type Class int

const (
	MemoryReference Class = iota
	RegisterReference
	InputOutput
)

var classToString = []string{
	"memory-reference",
	"register-reference",
	"input-output",
}

func (c Class) String() string {
	return classToString[c]
}

// Instruction is one of the fixed set of basic computer instructions.
type Instruction int

const (
	AND Instruction = iota
	ADD
	LDA
	STA
	BUN
	BSA
	ISZ

	CLA
	CLE
	CMA
	CME
	CIR
	CIL
	INC
	SPA
	SNA
	SZA
	SZE
	HLT

	INP
	OUT
	SKI
	SKO
	ION
	IOF

	numInstructions
)

type instructionDef struct {
	mnemonic string
	class    Class
	template string
}

// Templates are four hex digits. For memory reference instructions the
// first digit is the direct opcode, the second is the indirect opcode,
// and "xx" stands in for the address field.
var instructionSet = [numInstructions]instructionDef{
	AND: {"AND", MemoryReference, "08xx"}, // AND memory word to AC
	ADD: {"ADD", MemoryReference, "19xx"}, // add memory word to AC
	LDA: {"LDA", MemoryReference, "2Axx"}, // load memory word to AC
	STA: {"STA", MemoryReference, "3Bxx"}, // store AC in memory
	BUN: {"BUN", MemoryReference, "4Cxx"}, // branch unconditionally
	BSA: {"BSA", MemoryReference, "5Dxx"}, // branch and save return address
	ISZ: {"ISZ", MemoryReference, "6Exx"}, // increment and skip if zero

	CLA: {"CLA", RegisterReference, "7800"},
	CLE: {"CLE", RegisterReference, "7400"},
	CMA: {"CMA", RegisterReference, "7200"},
	CME: {"CME", RegisterReference, "7100"},
	CIR: {"CIR", RegisterReference, "7080"},
	CIL: {"CIL", RegisterReference, "7040"},
	INC: {"INC", RegisterReference, "7020"},
	SPA: {"SPA", RegisterReference, "7010"},
	SNA: {"SNA", RegisterReference, "7008"},
	SZA: {"SZA", RegisterReference, "7004"},
	SZE: {"SZE", RegisterReference, "7002"},
	HLT: {"HLT", RegisterReference, "7001"},

	INP: {"INP", InputOutput, "F800"},
	OUT: {"OUT", InputOutput, "F400"},
	SKI: {"SKI", InputOutput, "F200"},
	SKO: {"SKO", InputOutput, "F100"},
	ION: {"ION", InputOutput, "F080"},
	IOF: {"IOF", InputOutput, "F040"},
}

var mnemonics = func() map[string]Instruction {
	m := make(map[string]Instruction, numInstructions)
	for in := Instruction(0); in < numInstructions; in++ {
		m[instructionSet[in].mnemonic] = in
	}
	return m
}()

// LookupMnemonic returns the instruction named by name. The match is
// case sensitive: "lda" is not an instruction.
func LookupMnemonic(name string) (Instruction, bool) {
	in, ok := mnemonics[name]
	return in, ok
}

// Instructions returns every instruction in opcode table order.
func Instructions() []Instruction {
	all := make([]Instruction, numInstructions)
	for i := range all {
		all[i] = Instruction(i)
	}
	return all
}

func (in Instruction) String() string {
	if in < 0 || in >= numInstructions {
		return fmt.Sprintf("Instruction(%d)", int(in))
	}
	return instructionSet[in].mnemonic
}

func (in Instruction) Class() Class {
	return instructionSet[in].class
}

func (in Instruction) Template() string {
	return instructionSet[in].template
}

// DirectOpcode is the 4-bit opcode field used without indirection.
func (in Instruction) DirectOpcode() uint16 {
	return templateDigit(in, 0)
}

// IndirectOpcode is the 4-bit opcode field selected by an I-prefixed operand.
func (in Instruction) IndirectOpcode() uint16 {
	return templateDigit(in, 1)
}

// FixedWord returns the complete instruction word of a register
// reference or I/O instruction. Memory reference instructions have no
// fixed word.
func (in Instruction) FixedWord() (uint16, bool) {
	if in.Class() == MemoryReference {
		return 0, false
	}
	v, err := strconv.ParseUint(in.Template(), 16, 16)
	if err != nil {
		panic(fmt.Sprintf("internal error: template %q for %s", in.Template(), in))
	}
	return uint16(v), true
}

func templateDigit(in Instruction, i int) uint16 {
	t := in.Template()
	v, err := strconv.ParseUint(t[i:i+1], 16, 8)
	if err != nil {
		panic(fmt.Sprintf("internal error: template %q for %s", t, in))
	}
	return uint16(v)
}
