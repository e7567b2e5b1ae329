package symbols

import (
	"github.com/spf13/cobra"
)

func newModulesCmd() *cobra.Command {
	var pid int32

	cmd := &cobra.Command{
		Use:   "modules",
		Short: "List modules with loaded symbol information",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := attachTarget(pid)
			if err != nil {
				return err
			}

			t.session.UpdateModuleList()
			return nil
		},
	}

	cmd.Flags().Int32VarP(&pid, "pid", "p", 0, "Target process id")
	_ = cmd.MarkFlagRequired("pid")

	return cmd
}
