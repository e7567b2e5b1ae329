package symbols

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	var pid int32

	cmd := &cobra.Command{
		Use:   "resolve <address>",
		Short: "Resolve an address to its symbolic name",
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

			name, ok := t.session.ResolveSymbolicName(addr)
			if !ok {
				return fmt.Errorf("no symbolic name at %#x", addr)
			}

			fmt.Println(name)
			return nil
		},
	}

	cmd.Flags().Int32VarP(&pid, "pid", "p", 0, "Target process id")
	_ = cmd.MarkFlagRequired("pid")

	return cmd
}

func newAddrCmd() *cobra.Command {
	var pid int32

	cmd := &cobra.Command{
		Use:   "addr <symbol-name>",
		Short: "Resolve a symbol name to its address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := attachTarget(pid)
			if err != nil {
				return err
			}

			addr, ok := t.session.AddressFromName(args[0])
			if !ok {
				return fmt.Errorf("symbol %q not found", args[0])
			}

			fmt.Printf("%#x\n", addr)
			return nil
		},
	}

	cmd.Flags().Int32VarP(&pid, "pid", "p", 0, "Target process id")
	_ = cmd.MarkFlagRequired("pid")

	return cmd
}
