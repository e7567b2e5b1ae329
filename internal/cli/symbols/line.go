package symbols

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLineCmd() *cobra.Command {
	var pid int32

	cmd := &cobra.Command{
		Use:   "line <address>",
		Short: "Resolve an address to a source file and line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseAddress(args[0])
			if err != nil {
				return err
			}

			t, err := attachTarget(pid)
			if err != nil {
				return err
			}

			loc, ok := t.session.ResolveSourceLine(addr)
			if !ok {
				return fmt.Errorf("no line information at %#x", addr)
			}

			fmt.Printf("%s:%d\n", loc.File, loc.Line)
			return nil
		},
	}

	cmd.Flags().Int32VarP(&pid, "pid", "p", 0, "Target process id")
	_ = cmd.MarkFlagRequired("pid")

	return cmd
}
