package stages

import (
	"github.com/shopspring/decimal"

	"github.com/costflow/costflow/internal/domain"
)

// invoiceMarkups holds the factor applied to the order cost per variant.
var invoiceMarkups = []struct {
	choice domain.InvoiceVariant
	factor string
}{
	{domain.Inv1, "1.1"},
	{domain.Inv2, "1.2"},
	{domain.Inv3, "1.3"},
	{domain.Inv4, "1.4"},
	{domain.Inv5, "1.5"},
}

// InvoiceAt returns an invoice calculation scaling the order cost by factor.
func InvoiceAt(factor decimal.Decimal) func(domain.Order) domain.Invoice {
	return func(o domain.Order) domain.Invoice {
		return domain.Invoice{Cost: o.Cost.Mul(factor)}
	}
}

func newInvoiceRegistry() *Registry[domain.InvoiceVariant, domain.Order, domain.Invoice] {
	entries := make([]Entry[domain.InvoiceVariant, domain.Order, domain.Invoice], 0, len(invoiceMarkups))
	for i, m := range invoiceMarkups {
		entries = append(entries, Entry[domain.InvoiceVariant, domain.Order, domain.Invoice]{
			Choice: m.choice,
			Name:   stageName("Invoice", i),
			Stage:  Pure(InvoiceAt(decimal.RequireFromString(m.factor))),
		})
	}
	return NewRegistry(domain.CategoryInvoice, entries...)
}
