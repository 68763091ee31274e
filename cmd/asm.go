/*
Copyright © 2022 Jeff Berkowitz (pdxjjb@gmail.com)

*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/gmofishsauce/bcasm/pkg/asm"
)

const (
	defaultSource = "asm.txt"
	defaultOutput = "Machine_Code.txt"
)

var (
	asmOutput  string
	asmSymbols bool
	asmWarn    bool
	asmLegacy  bool
)

// asmCmd represents the asm command
var asmCmd = &cobra.Command{
	Use:   "asm [sourceFile]",
	Short: "Assemble a source file into machine code",
	Long: `Asm runs the two-pass assembler over sourceFile (default asm.txt)
and writes one line per assembled word, a 12-bit binary address and a
16-bit binary word separated by two spaces, to the output file (default
Machine_Code.txt, "-" for standard output).

Unknown mnemonics, undefined labels and pseudo-ops other than DEC are
not errors; use --warn to have them reported.`,

	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := defaultSource
		if len(args) == 1 {
			source = args[0]
		}
		return runAsm(cmd.OutOrStdout(), source)
	},
}

func init() {
	rootCmd.AddCommand(asmCmd)

	asmCmd.Flags().StringVarP(&asmOutput, "output", "o", defaultOutput, "machine code file, - for standard output")
	asmCmd.Flags().BoolVarP(&asmSymbols, "symbols", "s", false, "print the symbol table")
	asmCmd.Flags().BoolVarP(&asmWarn, "warn", "w", false, "report lines that assembled to nothing or to address zero")
	asmCmd.Flags().BoolVar(&asmLegacy, "legacy-words", false, "encode register and I/O instructions as opcode digit plus address")
}

func runAsm(out io.Writer, source string) error {
	prog, err := assembleSource(source)
	if err != nil {
		return err
	}
	if asmWarn {
		for _, d := range prog.Diagnostics {
			log.Printf("%s: warning: %s\n", source, d)
		}
	}
	if asmSymbols {
		if err := asm.WriteSymbols(out, prog.Symbols); err != nil {
			return err
		}
	}

	if asmOutput == "-" {
		return asm.WriteWords(out, prog.Words)
	}
	if err := writeWordsFile(asmOutput, prog.Words); err != nil {
		return err
	}
	fmt.Fprintf(out, "Assembly successfully converted to machine code. Output written to '%s'.\n", asmOutput)
	return nil
}

func assembleSource(source string) (*asm.Program, error) {
	prog, err := asm.AssembleFile(source, asm.Options{LegacyFixedWords: asmLegacy})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("the file '%s' was not found", source)
	}
	if err != nil {
		return nil, err
	}
	if debug {
		pp.Fprintln(os.Stderr, prog)
	}
	return prog, nil
}

func writeWordsFile(name string, words []asm.Word) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := asm.WriteWords(f, words); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
