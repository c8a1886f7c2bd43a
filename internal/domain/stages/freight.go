package stages

import (
	"github.com/shopspring/decimal"

	"github.com/costflow/costflow/internal/domain"
)

// freightRates: preferred is used for PreferredShipper, other for anyone else.
var freightRates = []struct {
	choice    domain.FreightVariant
	preferred string
	other     string
}{
	{domain.Fr1, "0.25", "0.5"},
	{domain.Fr2, "0.28", "0.52"},
	{domain.Fr3, "0.3", "0.6"},
	{domain.Fr4, "0.35", "0.65"},
	{domain.Fr5, "0.15", "0.2"},
	{domain.Fr6, "0.1", "0.15"},
}

// FreightAt prices freight as a share of the shipping cost, picking the
// rate by shipper.
func FreightAt(preferred, other decimal.Decimal) func(domain.Shipping) domain.Freight {
	return func(s domain.Shipping) domain.Freight {
		rate := other
		if s.ShipperID == PreferredShipper {
			rate = preferred
		}
		return domain.Freight{Cost: s.Cost.Mul(rate)}
	}
}

func newFreightRegistry() *Registry[domain.FreightVariant, domain.Shipping, domain.Freight] {
	entries := make([]Entry[domain.FreightVariant, domain.Shipping, domain.Freight], 0, len(freightRates))
	for i, r := range freightRates {
		entries = append(entries, Entry[domain.FreightVariant, domain.Shipping, domain.Freight]{
			Choice: r.choice,
			Name:   stageName("FreightCost", i),
			Stage: Pure(FreightAt(
				decimal.RequireFromString(r.preferred),
				decimal.RequireFromString(r.other),
			)),
		})
	}
	return NewRegistry(domain.CategoryFreight, entries...)
}
