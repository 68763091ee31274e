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

import "fmt"

// A Diagnostic notes a line that assembled silently into something the
// author probably did not intend. Diagnostics never change the output.
type Diagnostic struct {
	Line int
	Text string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Text)
}

type diagnostics []Diagnostic

func (ds *diagnostics) add(line int, format string, args ...interface{}) {
	*ds = append(*ds, Diagnostic{line, fmt.Sprintf(format, args...)})
}
