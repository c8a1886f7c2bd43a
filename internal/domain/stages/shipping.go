package stages

import (
	"github.com/shopspring/decimal"

	"github.com/costflow/costflow/internal/domain"
)

const (
	// PreferredShipper handles invoices above the variant's threshold.
	PreferredShipper = 1
	// StandardShipper handles everything else.
	StandardShipper = 2
)

var shippingThresholds = []struct {
	choice    domain.ShippingVariant
	threshold int64
}{
	{domain.Sh1, 1000},
	{domain.Sh2, 1100},
	{domain.Sh3, 1200},
}

// ShipperAbove assigns the preferred shipper when the invoice cost is
// strictly greater than threshold. The cost is carried over unchanged.
func ShipperAbove(threshold decimal.Decimal) func(domain.Invoice) domain.Shipping {
	return func(i domain.Invoice) domain.Shipping {
		id := StandardShipper
		if i.Cost.GreaterThan(threshold) {
			id = PreferredShipper
		}
		return domain.Shipping{Cost: i.Cost, ShipperID: id}
	}
}

func newShippingRegistry() *Registry[domain.ShippingVariant, domain.Invoice, domain.Shipping] {
	entries := make([]Entry[domain.ShippingVariant, domain.Invoice, domain.Shipping], 0, len(shippingThresholds))
	for i, t := range shippingThresholds {
		entries = append(entries, Entry[domain.ShippingVariant, domain.Invoice, domain.Shipping]{
			Choice: t.choice,
			Name:   stageName("Shipping", i),
			Stage:  Pure(ShipperAbove(decimal.NewFromInt(t.threshold))),
		})
	}
	return NewRegistry(domain.CategoryShipping, entries...)
}
