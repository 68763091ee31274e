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
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAssemble(t *testing.T, src string) *Program {
	t.Helper()
	prog, err := Assemble(src, Options{})
	require.NoError(t, err, src)
	return prog
}

func TestExampleProgram(t *testing.T) {
	prog := mustAssemble(t, "ORG 0\nX, DEC 5\nLOOP, LDA X\nHLT\nEND")

	assert.Equal(t, Address(0), prog.Symbols.Resolve("X"))
	assert.Equal(t, Address(1), prog.Symbols.Resolve("LOOP"))

	// The labelled LDA emits nothing but still occupies address 1.
	assert.Equal(t, []Word{
		{Addr: 0, Value: 0x0005},
		{Addr: 2, Value: 0x7001},
	}, prog.Words)
	assert.Equal(t, "000000000010  0111000000000001", prog.Words[1].String())
	require.Len(t, prog.Diagnostics, 1)
	assert.Equal(t, 3, prog.Diagnostics[0].Line)
}

func TestForwardReferences(t *testing.T) {
	src := `ORG 100
        LDA A   / load first operand
        ADD B
        STA C
        HLT
A, DEC 83
B, DEC -23
C, DEC 0
        END`
	prog := mustAssemble(t, src)
	assert.Equal(t, []string{"A", "B", "C"}, prog.Symbols.Labels())
	assert.Equal(t, []Word{
		{0x100, 0x2104},
		{0x101, 0x1105},
		{0x102, 0x3106},
		{0x103, 0x7001},
		{0x104, 0x0053},
		{0x105, 0xFFE9},
		{0x106, 0x0000},
	}, prog.Words)
	assert.Empty(t, prog.Diagnostics)
}

func TestBackwardReference(t *testing.T) {
	src := "ORG 20\nN, DEC 1\nCLA\nCLE\nCMA\nISZ N\nEND\n"
	prog := mustAssemble(t, src)
	last := prog.Words[len(prog.Words)-1]
	assert.Equal(t, Address(0x24), last.Addr)
	assert.Equal(t, uint16(0x6020), last.Value)
}

func TestIndirection(t *testing.T) {
	src := "ORG 10\nLDA IPTR\nBUN IEXIT\nPTR, DEC 20\nEND"
	prog := mustAssemble(t, src)
	assert.Equal(t, []Word{
		{0x10, 0xA012},
		{0x11, 0xC000},
		{0x12, 0x0014},
	}, prog.Words)
	assert.Equal(t, "1010000000010010", Binary(uint64(prog.Words[0].Value), 16))
}

func TestLeadingIAlwaysMeansIndirect(t *testing.T) {
	// INDEX is looked up as NDEX, which is not defined.
	prog := mustAssemble(t, "INDEX, DEC 5\nLDA INDEX\nEND")
	require.Len(t, prog.Words, 2)
	assert.Equal(t, uint16(0xA000), prog.Words[1].Value)
	require.Len(t, prog.Diagnostics, 1)
	assert.Contains(t, prog.Diagnostics[0].Text, `"NDEX"`)
}

func TestUndefinedOperand(t *testing.T) {
	prog := mustAssemble(t, "BUN UNDEFINED")
	require.Len(t, prog.Words, 1)
	assert.Equal(t, "0100000000000000", Binary(uint64(prog.Words[0].Value), 16))
	assert.Len(t, prog.Diagnostics, 1)
}

func TestMemoryReferenceWithoutOperand(t *testing.T) {
	prog := mustAssemble(t, "LDA")
	assert.Equal(t, []Word{{0, 0x2000}}, prog.Words)
}

func TestNegativeDec(t *testing.T) {
	prog := mustAssemble(t, "M, DEC -1")
	require.Len(t, prog.Words, 1)
	assert.Equal(t, "000000000000  1111111111111111", prog.Words[0].String())
}

func TestRegisterAndIOOnly(t *testing.T) {
	src := `/ no labels here
CLA
CLE

INP   / read a character
OUT
SKI
ION
HLT
END`
	prog := mustAssemble(t, src)
	assert.Equal(t, 0, prog.Symbols.Len())
	assert.Len(t, prog.Words, 7)
	for i, w := range prog.Words {
		assert.Equal(t, Address(i), w.Addr)
	}
	assert.Equal(t, uint16(0xF800), prog.Words[2].Value)
}

func TestCommentsAndBlankLines(t *testing.T) {
	src := "\n   / heading\r\nCLA/clear\r\n\t\r\nCMA / complement\r\nEND / done\r\nCLE\r\n"
	prog := mustAssemble(t, src)
	assert.Equal(t, []Word{{0, 0x7800}, {1, 0x7200}}, prog.Words)
}

func TestEndStopsBothPasses(t *testing.T) {
	prog := mustAssemble(t, "CLA\nEND\nLATE, DEC 1\nORG zz\nHLT")
	assert.Equal(t, []Word{{0, 0x7800}}, prog.Words)
	_, ok := prog.Symbols.Lookup("LATE")
	assert.False(t, ok)
}

func TestNoEnd(t *testing.T) {
	prog := mustAssemble(t, "CLA\nHLT")
	assert.Len(t, prog.Words, 2)
}

func TestUnknownMnemonicLeavesGap(t *testing.T) {
	prog := mustAssemble(t, "FOO X\nlda X\nCLA")
	assert.Equal(t, []Word{{2, 0x7800}}, prog.Words)
	assert.Len(t, prog.Diagnostics, 2)
}

func TestUnsupportedPseudoOpLeavesGap(t *testing.T) {
	prog := mustAssemble(t, "ORG 0\nX, HEX 10\nY,\nLDA X\nEND")
	assert.Equal(t, []Word{{2, 0x2000}}, prog.Words)
	assert.Equal(t, Address(1), prog.Symbols.Resolve("Y"))
	assert.Len(t, prog.Diagnostics, 2)
}

func TestDuplicateLabelLastWins(t *testing.T) {
	prog := mustAssemble(t, "A, DEC 1\nA, DEC 2\nLDA A")
	assert.Equal(t, Address(1), prog.Symbols.Resolve("A"))
	assert.Equal(t, uint16(0x2001), prog.Words[2].Value)
}

func TestOrgWrapsToTwelveBits(t *testing.T) {
	prog := mustAssemble(t, "ORG 1FFF\nCLA\nORG 0x20\nHLT")
	assert.Equal(t, []Word{{0xFFF, 0x7800}, {0x20, 0x7001}}, prog.Words)
}

func TestOperandOnFixedWord(t *testing.T) {
	prog := mustAssemble(t, "CLA X")
	assert.Equal(t, []Word{{0, 0x7800}}, prog.Words)
	assert.Len(t, prog.Diagnostics, 1)
}

func TestLegacyFixedWords(t *testing.T) {
	prog, err := Assemble("X, DEC 3\nHLT\nINP\nCLA IX", Options{LegacyFixedWords: true})
	require.NoError(t, err)
	assert.Equal(t, []Word{
		{0, 0x0003},
		{1, 0x7000},
		{2, 0xF000},
		{3, 0x8000},
	}, prog.Words)
}

func TestBadOrg(t *testing.T) {
	for _, src := range []string{"ORG zz\nCLA", "CLA\nORG\nHLT", "ORG -4"} {
		_, err := Assemble(src, Options{})
		var se *SyntaxError
		if assert.True(t, errors.As(err, &se), src) {
			assert.Equal(t, "ORG", se.Op)
		}
		assert.True(t, strings.HasPrefix(err.Error(), "pass 1: line "), err.Error())
	}
}

func TestBadDec(t *testing.T) {
	_, err := Assemble("CLA\nX, DEC five", Options{})
	var se *SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 2, se.Line)
	assert.Equal(t, "DEC", se.Op)
	assert.Equal(t, "pass 2: line 2: DEC: bad decimal \"five\": invalid syntax", err.Error())
}

func TestDecOutOfRange(t *testing.T) {
	prog := mustAssemble(t, "BIG, DEC 70000")
	assert.Equal(t, uint16(70000&0xFFFF), prog.Words[0].Value)
	assert.Len(t, prog.Diagnostics, 1)
}

func TestDeterministic(t *testing.T) {
	src := "ORG 100\nLDA A\nBSA ISUB\nA, DEC 9\nSUB, DEC 0\nEND"
	first := mustAssemble(t, src)
	second := mustAssemble(t, src)
	assert.Equal(t, first, second)
}

func TestAssembleFile(t *testing.T) {
	dir := t.TempDir()
	_, err := AssembleFile(filepath.Join(dir, "missing.txt"), Options{})
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	name := filepath.Join(dir, "asm.txt")
	require.NoError(t, os.WriteFile(name, []byte("CLA\nHLT\nEND\n"), 0644))
	prog, err := AssembleFile(name, Options{})
	require.NoError(t, err)
	assert.Len(t, prog.Words, 2)

	require.NoError(t, os.WriteFile(name, []byte("ORG q\n"), 0644))
	_, err = AssembleFile(name, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "asm.txt: pass 1: line 1: ORG")
}
