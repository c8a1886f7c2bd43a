package cli

import (
	"fmt"

	"github.com/costflow/costflow/internal/adapters/outbound/tui"
	"github.com/costflow/costflow/internal/application"
	"github.com/spf13/cobra"
)

func newVariantsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "variants",
		Short: "List the registered stage variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := application.Variants()
			if jsonOutput {
				return renderJSON(cmd, v)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderVariants(v))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output variants as JSON")

	return cmd
}
