package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/costflow/costflow/internal/adapters/outbound/logging"
	"github.com/costflow/costflow/internal/application"
	"github.com/costflow/costflow/internal/domain"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// variantFlags holds the per-category overrides shared by commands that run
// the pipelines.
type variantFlags struct {
	invoice      string
	shipping     string
	freight      string
	availability string
	shippingDate string
}

func (v *variantFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&v.invoice, "invoice", "", "Invoice variant (inv1-inv5)")
	cmd.Flags().StringVar(&v.shipping, "shipping", "", "Shipping variant (sh1-sh3)")
	cmd.Flags().StringVar(&v.freight, "freight", "", "Freight variant (fr1-fr6)")
	cmd.Flags().StringVar(&v.availability, "availability", "", "Availability variant (av1-av4)")
	cmd.Flags().StringVar(&v.shippingDate, "shipping-date", "", "Shipping date variant (sd1-sd5)")
}

func (v *variantFlags) overrides() domain.ProcessConfiguration {
	return domain.ProcessConfiguration{
		Invoice:      domain.InvoiceVariant(v.invoice),
		Shipping:     domain.ShippingVariant(v.shipping),
		Freight:      domain.FreightVariant(v.freight),
		Availability: domain.AvailabilityVariant(v.availability),
		ShippingDate: domain.ShippingDateVariant(v.shippingDate),
	}
}

// orderFlags collects the raw order input.
type orderFlags struct {
	cost     string
	date     string
	customer string
}

func (o *orderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.cost, "cost", "", "Order cost (decimal)")
	cmd.Flags().StringVar(&o.date, "date", "", "Order date in RFC 3339 (defaults to now)")
	cmd.Flags().StringVar(&o.customer, "customer", "", "Customer reference")
}

func (o *orderFlags) request() application.OrderRequest {
	date := o.date
	if date == "" {
		date = time.Now().UTC().Format(time.RFC3339)
	}
	return application.OrderRequest{CustomerID: o.customer, Cost: o.cost, Date: date}
}

func resolvePath(path string) (string, error) {
	if path == "" {
		path = "."
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}
	return absPath, nil
}

// newLogger writes diagnostics to stderr as configured, or at debug level
// when verbose is set.
func newLogger(cmd *cobra.Command, cfg domain.LogConfig, verbose bool) zerolog.Logger {
	level := cfg.Level
	if verbose {
		level = "debug"
	}
	return logging.New(cmd.ErrOrStderr(), cfg.Format, level)
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
