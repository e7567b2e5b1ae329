// Package main provides the pincer-sym binary: the symbol inspection
// front-end of the pincer debugger. It attaches to a live process and
// exposes module listing, symbol enumeration, address-to-name and
// address-to-line resolution, and bulk symbol-server downloads.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pincerdbg/pincer/internal/cli/symbols"
	"github.com/pincerdbg/pincer/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "pincer-sym",
		Short:         "Pincer symbol inspector - resolve addresses in live processes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Flat hierarchy: "pincer-sym modules" instead of "pincer-sym symbols modules".
	symbols.RegisterCommands(rootCmd)

	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("pincer-sym version %s\n", version.Version)
			cmd.Printf("Git commit: %s\n", version.GitCommit)
			cmd.Printf("Build date: %s\n", version.BuildDate)
			cmd.Printf("Go version: %s\n", version.GoVersion)
		},
	}
}
