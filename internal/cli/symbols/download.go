package symbols

import (
	"context"

	"github.com/spf13/cobra"
)

func newDownloadCmd() *cobra.Command {
	var (
		pid    int32
		server string
	)

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Reload all module symbols against a symbol server",
		Long: `Reload every module's symbols against a symbol-server search path.
The current search path is restored afterward, whether or not individual
modules succeed. Defaults to the configured symbol server.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := attachTarget(pid)
			if err != nil {
				return err
			}

			return t.session.DownloadAllSymbols(context.Background(), server)
		},
	}

	cmd.Flags().Int32VarP(&pid, "pid", "p", 0, "Target process id")
	cmd.Flags().StringVarP(&server, "server", "s", "", "Symbol server URL (defaults to config)")
	_ = cmd.MarkFlagRequired("pid")

	return cmd
}
