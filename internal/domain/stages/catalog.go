package stages

import (
	"strconv"
	"sync"

	"github.com/costflow/costflow/internal/domain"
)

// Registries groups the five stage registries used by the pipelines.
type Registries struct {
	Invoice      *Registry[domain.InvoiceVariant, domain.Order, domain.Invoice]
	Shipping     *Registry[domain.ShippingVariant, domain.Invoice, domain.Shipping]
	Freight      *Registry[domain.FreightVariant, domain.Shipping, domain.Freight]
	Availability *Registry[domain.AvailabilityVariant, domain.Order, domain.Availability]
	ShippingDate *Registry[domain.ShippingDateVariant, domain.Availability, domain.ShippingDate]
}

// NewRegistries builds the built-in registries.
func NewRegistries() Registries {
	return Registries{
		Invoice:      newInvoiceRegistry(),
		Shipping:     newShippingRegistry(),
		Freight:      newFreightRegistry(),
		Availability: newAvailabilityRegistry(),
		ShippingDate: newShippingDateRegistry(),
	}
}

var defaultRegistries = sync.OnceValue(NewRegistries)

// Default returns the shared built-in registries. They are read-only.
func Default() Registries {
	return defaultRegistries()
}

// VariantInfo describes one registered variant for listings.
type VariantInfo struct {
	Choice string `json:"choice"`
	Name   string `json:"name"`
}

// CategoryVariants lists the registered variants of one category.
type CategoryVariants struct {
	Category domain.Category `json:"category"`
	Variants []VariantInfo   `json:"variants"`
}

// Describe lists every registry's variants in pipeline order.
func (r Registries) Describe() []CategoryVariants {
	return []CategoryVariants{
		describe(r.Invoice),
		describe(r.Shipping),
		describe(r.Freight),
		describe(r.Availability),
		describe(r.ShippingDate),
	}
}

func describe[C ~string, In, Out any](r *Registry[C, In, Out]) CategoryVariants {
	cv := CategoryVariants{Category: r.Category()}
	for _, e := range r.Entries() {
		cv.Variants = append(cv.Variants, VariantInfo{Choice: string(e.Choice), Name: e.Name})
	}
	return cv
}

func stageName(prefix string, i int) string {
	return prefix + strconv.Itoa(i+1)
}
