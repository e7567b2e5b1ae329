package symbols

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pincerdbg/pincer/internal/sym"
)

func newSymbolsCmd() *cobra.Command {
	var (
		pid        int32
		moduleName string
	)

	cmd := &cobra.Command{
		Use:   "symbols",
		Short: "Enumerate every symbol of a module",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := attachTarget(pid)
			if err != nil {
				return err
			}

			base, err := t.moduleBase(moduleName)
			if err != nil {
				return err
			}

			count := 0
			err = t.session.EnumerateSymbols(base, func(rec sym.SymbolRecord) {
				count++
				if rec.UndecoratedName != "" {
					fmt.Printf("%#016x  %s  (%s)\n", rec.Address, rec.UndecoratedName, rec.DecoratedName)
					return
				}
				fmt.Printf("%#016x  %s\n", rec.Address, rec.DecoratedName)
			})
			if err != nil {
				return err
			}

			fmt.Printf("%d symbols\n", count)
			return nil
		},
	}

	cmd.Flags().Int32VarP(&pid, "pid", "p", 0, "Target process id")
	cmd.Flags().StringVarP(&moduleName, "module", "m", "", "Module display name")
	_ = cmd.MarkFlagRequired("pid")
	_ = cmd.MarkFlagRequired("module")

	return cmd
}
