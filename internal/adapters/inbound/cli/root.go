package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "costflow",
		Short: "Price orders through configurable cost pipelines",
		Long: "costflow computes the adjusted cost of an order by running it through the configured " +
			"invoice, shipping, freight, availability and shipping-date stages, and evaluates order discounts.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newQuoteCmd())
	cmd.AddCommand(newDiscountCmd())
	cmd.AddCommand(newVariantsCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
