// Copyright (c) Jeff Berkowitz 2022. All rights reserved.

// Package protogen writes the loader protocol definitions as a C header
// for the loader firmware, so both ends are built from package proto.
package protogen

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	sp "github.com/gmofishsauce/bcasm/pkg/proto"
)

const HeaderName = "loader_protocol.h"

const guard = "LOADER_PROTOCOL_H"

// Generate writes the header to w.
func Generate(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "// %s - generated by bcasm protogen. Do not edit.\n\n", HeaderName)
	fmt.Fprintf(bw, "#ifndef %s\n#define %s\n\n", guard, guard)
	fmt.Fprintf(bw, "#define PROTOCOL_VERSION 0x%02X\n\n", sp.ProtocolVersion)
	for _, c := range sp.Commands {
		fmt.Fprintf(bw, "#define %-16s 0x%02X // args %d, response %d\n",
			macroName(c.Name), c.Value, c.NArgs, c.NResponse)
	}
	fmt.Fprintf(bw, "\n#define ACK(cmd) ((unsigned char)~(cmd))\n")
	fmt.Fprintf(bw, "\n#endif // %s\n", guard)
	return bw.Flush()
}

// LoadWord -> CMD_LOAD_WORD
func macroName(name string) string {
	var b strings.Builder
	b.WriteString("CMD")
	for i, r := range name {
		if i == 0 || unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
