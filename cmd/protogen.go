/*
Copyright © 2022 Jeff Berkowitz (pdxjjb@gmail.com)
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gmofishsauce/bcasm/pkg/protogen"
)

var protogenDir string

// protogenCmd represents the protogen command
var protogenCmd = &cobra.Command{
	Use:   "protogen",
	Short: "Generate the loader protocol header for the loader firmware",
	Long: `Protogen writes loader_protocol.h, the C definitions of the serial
protocol spoken by "bcasm download", into the output directory. The file
must be copied into the loader firmware sources and the firmware rebuilt
whenever the protocol version changes.`,

	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := filepath.Join(protogenDir, protogen.HeaderName)
		f, err := os.Create(name)
		if err != nil {
			return err
		}
		if err := protogen.Generate(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(protogenCmd)
	protogenCmd.Flags().StringVarP(&protogenDir, "output", "o", ".", "directory for the generated header")
}
