package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	Version    = "0.1.0"
	modulePath = "github.com/ib-77/strata"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the strata version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "strata v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
