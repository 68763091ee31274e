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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWords(t *testing.T) {
	prog := mustAssemble(t, "ORG 0\nX, DEC 5\nLDA X\nHLT\nEND")
	var b bytes.Buffer
	require.NoError(t, WriteWords(&b, prog.Words))
	want := "000000000000  0000000000000101\n" +
		"000000000001  0010000000000000\n" +
		"000000000010  0111000000000001\n"
	assert.Equal(t, want, b.String())

	back, err := ReadWords(&b)
	require.NoError(t, err)
	assert.Equal(t, prog.Words, back)
}

func TestWriteSymbols(t *testing.T) {
	prog := mustAssemble(t, "ORG 10\nZ, DEC 0\nA, DEC 1")
	var b bytes.Buffer
	require.NoError(t, WriteSymbols(&b, prog.Symbols))
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "SYMBOL           VALUE", lines[0])
	assert.Equal(t, "A                000000010001", lines[1])
	assert.Equal(t, "Z                000000010000", lines[2])
}

func TestReadWordsErrors(t *testing.T) {
	_, err := ReadWords(strings.NewReader("\n000000000000  0000000000000101\n0101  11\n"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "line 3: "), err.Error())

	_, err = ReadWords(strings.NewReader("00000000000x  0000000000000101\n"))
	assert.Error(t, err)

	words, err := ReadWords(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, words)
}
