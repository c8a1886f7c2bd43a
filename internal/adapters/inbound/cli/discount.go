package cli

import (
	"fmt"

	"github.com/costflow/costflow/internal/adapters/outbound/tui"
	"github.com/costflow/costflow/internal/application"
	"github.com/spf13/cobra"
)

func newDiscountCmd() *cobra.Command {
	var (
		order      orderFlags
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "discount",
		Short: "Evaluate the discount for an order",
		Long:  "Average the three smallest amounts among the catalog rules that qualify for the order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewDiscountService(nil)
			results, err := svc.Evaluate(order.request())
			if err != nil {
				return fmt.Errorf("discount failed: %w", err)
			}
			res := results[0]

			if jsonOutput {
				return renderJSON(cmd, res)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderDiscount(res.Order, res.Breakdown))
			return nil
		},
	}

	order.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output discount breakdown as JSON")
	_ = cmd.MarkFlagRequired("cost")

	return cmd
}
