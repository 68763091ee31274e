/*
Copyright © 2022 Jeff Berkowitz (pdxjjb@gmail.com)

*/
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/gmofishsauce/bcasm/pkg/asm"
	"github.com/gmofishsauce/bcasm/pkg/host"
	"github.com/gmofishsauce/bcasm/pkg/link"
)

var debug bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bcasm",
	Short: "Assembler and loader for the basic computer",
	Long: `Bcasm translates assembly language for the basic computer, a
machine with 16-bit words and 12-bit addresses, into absolute binary
machine code, and downloads the result to a loader board.`,

	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()
	},
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

func configureLogging() {
	log.SetPrefix("bcasm: ")
	log.SetFlags(log.Lmsgprefix)
	if debug {
		log.SetFlags(log.Lmsgprefix | log.Lmicroseconds)
	}
	asm.SetDebug(debug)
	host.SetDebug(debug)
	link.SetDebug(debug)
}
