package domain

import "fmt"

// Category identifies one kind of pipeline stage.
type Category string

const (
	CategoryInvoice      Category = "invoice"
	CategoryShipping     Category = "shipping"
	CategoryFreight      Category = "freight"
	CategoryAvailability Category = "availability"
	CategoryShippingDate Category = "shipping_date"
)

// Categories lists every stage category in pipeline order.
var Categories = []Category{
	CategoryInvoice,
	CategoryShipping,
	CategoryFreight,
	CategoryAvailability,
	CategoryShippingDate,
}

type (
	InvoiceVariant      string
	ShippingVariant     string
	FreightVariant      string
	AvailabilityVariant string
	ShippingDateVariant string
)

const (
	Inv1 InvoiceVariant = "inv1"
	Inv2 InvoiceVariant = "inv2"
	Inv3 InvoiceVariant = "inv3"
	Inv4 InvoiceVariant = "inv4"
	Inv5 InvoiceVariant = "inv5"
)

const (
	Sh1 ShippingVariant = "sh1"
	Sh2 ShippingVariant = "sh2"
	Sh3 ShippingVariant = "sh3"
)

const (
	Fr1 FreightVariant = "fr1"
	Fr2 FreightVariant = "fr2"
	Fr3 FreightVariant = "fr3"
	Fr4 FreightVariant = "fr4"
	Fr5 FreightVariant = "fr5"
	Fr6 FreightVariant = "fr6"
)

const (
	Av1 AvailabilityVariant = "av1"
	Av2 AvailabilityVariant = "av2"
	Av3 AvailabilityVariant = "av3"
	Av4 AvailabilityVariant = "av4"
)

const (
	Sd1 ShippingDateVariant = "sd1"
	Sd2 ShippingDateVariant = "sd2"
	Sd3 ShippingDateVariant = "sd3"
	Sd4 ShippingDateVariant = "sd4"
	Sd5 ShippingDateVariant = "sd5"
)

var (
	InvoiceVariants      = []InvoiceVariant{Inv1, Inv2, Inv3, Inv4, Inv5}
	ShippingVariants     = []ShippingVariant{Sh1, Sh2, Sh3}
	FreightVariants      = []FreightVariant{Fr1, Fr2, Fr3, Fr4, Fr5, Fr6}
	AvailabilityVariants = []AvailabilityVariant{Av1, Av2, Av3, Av4}
	ShippingDateVariants = []ShippingDateVariant{Sd1, Sd2, Sd3, Sd4, Sd5}
)

// ProcessConfiguration selects one variant per stage category.
type ProcessConfiguration struct {
	Invoice      InvoiceVariant      `yaml:"invoice"       json:"invoice"`
	Shipping     ShippingVariant     `yaml:"shipping"      json:"shipping"`
	Freight      FreightVariant      `yaml:"freight"       json:"freight"`
	Availability AvailabilityVariant `yaml:"availability"  json:"availability"`
	ShippingDate ShippingDateVariant `yaml:"shipping_date" json:"shipping_date"`
}

// DefaultProcessConfiguration picks the first variant of every category.
func DefaultProcessConfiguration() ProcessConfiguration {
	return ProcessConfiguration{
		Invoice:      Inv1,
		Shipping:     Sh1,
		Freight:      Fr1,
		Availability: Av1,
		ShippingDate: Sd1,
	}
}

// Choice returns the configured variant for a category as a plain string.
func (c ProcessConfiguration) Choice(cat Category) string {
	switch cat {
	case CategoryInvoice:
		return string(c.Invoice)
	case CategoryShipping:
		return string(c.Shipping)
	case CategoryFreight:
		return string(c.Freight)
	case CategoryAvailability:
		return string(c.Availability)
	case CategoryShippingDate:
		return string(c.ShippingDate)
	default:
		return ""
	}
}

// Validate reports the first category left without a choice.
// Whether a set choice is actually registered is decided at lookup time.
func (c ProcessConfiguration) Validate() error {
	for _, cat := range Categories {
		if c.Choice(cat) == "" {
			return fmt.Errorf("%w: no %s variant selected", ErrInvalidConfig, cat)
		}
	}
	return nil
}

// Merge overlays the non-empty choices of override on top of c.
func (c ProcessConfiguration) Merge(override ProcessConfiguration) ProcessConfiguration {
	if override.Invoice != "" {
		c.Invoice = override.Invoice
	}
	if override.Shipping != "" {
		c.Shipping = override.Shipping
	}
	if override.Freight != "" {
		c.Freight = override.Freight
	}
	if override.Availability != "" {
		c.Availability = override.Availability
	}
	if override.ShippingDate != "" {
		c.ShippingDate = override.ShippingDate
	}
	return c
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level  string `yaml:"level"  json:"level,omitempty"`
	Format string `yaml:"format" json:"format,omitempty"`
}

var (
	validLogLevels  = []string{"", "trace", "debug", "info", "warn", "error", "disabled"}
	validLogFormats = []string{"", "console", "text", "json"}
)

// Config holds project-level configuration loaded from .costflow.yaml.
type Config struct {
	Process ProcessConfiguration `yaml:"process" json:"process"`
	Log     LogConfig            `yaml:"log"     json:"log"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Process: DefaultProcessConfiguration(),
		Log:     LogConfig{Level: "warn", Format: "console"},
	}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	if err := c.Process.Validate(); err != nil {
		return err
	}
	if !contains(validLogLevels, c.Log.Level) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}
	if !contains(validLogFormats, c.Log.Format) {
		return fmt.Errorf("%w: unknown log format %q (valid: console, json)", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
