package cli

import (
	"fmt"

	"github.com/costflow/costflow/internal/adapters/outbound/config"
	"github.com/costflow/costflow/internal/adapters/outbound/gitinfo"
	"github.com/costflow/costflow/internal/adapters/outbound/tui"
	"github.com/costflow/costflow/internal/application"
	"github.com/spf13/cobra"
)

func newQuoteCmd() *cobra.Command {
	var (
		order       orderFlags
		variants    variantFlags
		projectPath string
		jsonOutput  bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Compute the adjusted cost of an order",
		Long: "Run an order through the invoicing and availability pipelines selected by .costflow.yaml " +
			"(or the variant flags) and add the shipping weekday surcharge.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := resolvePath(projectPath)
			if err != nil {
				return err
			}

			loader := config.New()
			cfg, err := loader.Load(absPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			svc := application.NewQuoteService(loader, gitinfo.New(), newLogger(cmd, cfg.Log, verbose))
			quote, err := svc.Quote(absPath, order.request(), variants.overrides())
			if err != nil {
				return fmt.Errorf("quote failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, quote)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderQuote(quote))
			return nil
		},
	}

	order.register(cmd)
	variants.register(cmd)
	cmd.Flags().StringVar(&projectPath, "path", "", "Project path holding .costflow.yaml (defaults to current directory)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output quote as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Trace every executed stage to stderr")
	_ = cmd.MarkFlagRequired("cost")

	return cmd
}
