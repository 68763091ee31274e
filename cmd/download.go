/*
Copyright © 2022 Jeff Berkowitz (pdxjjb@gmail.com)

*/
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gmofishsauce/bcasm/pkg/asm"
	"github.com/gmofishsauce/bcasm/pkg/host"
	"github.com/gmofishsauce/bcasm/pkg/link"
)

const defaultBaudRate = 115200 // must match the loader firmware

var (
	downloadPort   string
	downloadBaud   int
	downloadSource bool
	downloadYes    bool
	downloadList   bool
)

// downloadCmd represents the download command
var downloadCmd = &cobra.Command{
	Use:   "download [file]",
	Short: "Download machine code to the loader board",
	Long: `Download opens the serial line to the loader board and stores each
word of a machine code file (as written by "bcasm asm") at its address.
With --asm the file is assembly source and is assembled first.

The serial device defaults to $BCASM_PORT. Opening the port resets the
board, so the download starts after a short delay. When standard input
is a terminal you are asked to confirm unless --yes is given.`,

	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if downloadList {
			return listPorts(out)
		}
		if len(args) != 1 {
			return fmt.Errorf("download: a file is required")
		}
		if downloadPort == "" {
			return fmt.Errorf("download: no serial port: use --port or set BCASM_PORT")
		}

		words, err := loadWords(args[0])
		if err != nil {
			return err
		}
		if !downloadYes && term.IsTerminal(int(os.Stdin.Fd())) {
			if !confirm(os.Stdin, out, fmt.Sprintf("download %d words to %s?", len(words), downloadPort)) {
				return nil
			}
		}

		l, err := link.Open(downloadPort, downloadBaud)
		if err != nil {
			return err
		}
		defer l.Close()
		return host.Download(l, words)
	},
}

func init() {
	rootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().StringVarP(&downloadPort, "port", "p", os.Getenv("BCASM_PORT"), "serial device of the loader board")
	downloadCmd.Flags().IntVarP(&downloadBaud, "baud", "b", defaultBaudRate, "serial line speed")
	downloadCmd.Flags().BoolVar(&downloadSource, "asm", false, "the file is assembly source")
	downloadCmd.Flags().BoolVarP(&downloadYes, "yes", "y", false, "do not ask for confirmation")
	downloadCmd.Flags().BoolVarP(&downloadList, "list", "l", false, "list serial ports and exit")
}

func loadWords(name string) ([]asm.Word, error) {
	if downloadSource {
		prog, err := assembleSource(name)
		if err != nil {
			return nil, err
		}
		return prog.Words, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	words, err := asm.ReadWords(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return words, nil
}

func listPorts(out io.Writer) error {
	ports, err := link.Ports()
	if err != nil {
		return err
	}
	if len(ports) == 0 {
		fmt.Fprintln(out, "no serial ports found")
	}
	for _, p := range ports {
		fmt.Fprintln(out, p)
	}
	return nil
}

func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
