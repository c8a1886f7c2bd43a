package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/costflow/costflow/internal/adapters/outbound/config"
	"github.com/costflow/costflow/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newInitCmd() *cobra.Command {
	var (
		variants variantFlags
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .costflow.yaml configuration file",
		Long:  "Create a .costflow.yaml selecting one variant per stage category. Unset variants use the defaults.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := resolvePath(path)
			if err != nil {
				return err
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			cfg := domain.DefaultConfig()
			cfg.Process = cfg.Process.Merge(variants.overrides())
			if err := cfg.Validate(); err != nil {
				return err
			}

			content, err := generateConfig(cfg)
			if err != nil {
				return err
			}

			if err := os.WriteFile(dest, content, 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	variants.register(cmd)
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .costflow.yaml")

	return cmd
}

func generateConfig(cfg domain.Config) ([]byte, error) {
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}

	header := "# costflow configuration\n" +
		"# Run `costflow variants` to list the available choices.\n" +
		"# Each value can be overridden with COSTFLOW_<SECTION>_<KEY>, e.g. COSTFLOW_PROCESS_FREIGHT=fr3.\n\n"
	return append([]byte(header), body...), nil
}
