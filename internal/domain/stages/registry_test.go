package stages_test

import (
	"errors"
	"testing"

	"github.com/costflow/costflow/internal/domain"
	"github.com/costflow/costflow/internal/domain/stages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistries_EveryVariantRegisteredOnce(t *testing.T) {
	regs := stages.NewRegistries()

	assert.ElementsMatch(t, domain.InvoiceVariants, regs.Invoice.Choices())
	assert.ElementsMatch(t, domain.ShippingVariants, regs.Shipping.Choices())
	assert.ElementsMatch(t, domain.FreightVariants, regs.Freight.Choices())
	assert.ElementsMatch(t, domain.AvailabilityVariants, regs.Availability.Choices())
	assert.ElementsMatch(t, domain.ShippingDateVariants, regs.ShippingDate.Choices())
}

func TestRegistries_Categories(t *testing.T) {
	regs := stages.NewRegistries()
	assert.Equal(t, domain.CategoryInvoice, regs.Invoice.Category())
	assert.Equal(t, domain.CategoryShipping, regs.Shipping.Category())
	assert.Equal(t, domain.CategoryFreight, regs.Freight.Category())
	assert.Equal(t, domain.CategoryAvailability, regs.Availability.Category())
	assert.Equal(t, domain.CategoryShippingDate, regs.ShippingDate.Category())
}

func TestRegistry_LookupUnknownChoice(t *testing.T) {
	regs := stages.Default()

	fn, err := regs.Shipping.Lookup("sh4")
	require.Error(t, err)
	assert.Nil(t, fn)
	assert.ErrorIs(t, err, domain.ErrNoMatchingStage)

	var lookup *domain.StageLookupError
	require.True(t, errors.As(err, &lookup))
	assert.Equal(t, domain.CategoryShipping, lookup.Category)
	assert.Equal(t, "sh4", lookup.Choice)
}

func TestRegistry_FirstDuplicateWins(t *testing.T) {
	first := stages.Pure(func(n int) int { return n + 1 })
	second := stages.Pure(func(n int) int { return n + 2 })

	r := stages.NewRegistry[domain.InvoiceVariant, int, int](domain.CategoryInvoice,
		stages.Entry[domain.InvoiceVariant, int, int]{Choice: domain.Inv1, Name: "first", Stage: first},
		stages.Entry[domain.InvoiceVariant, int, int]{Choice: domain.Inv1, Name: "second", Stage: second},
	)

	require.Len(t, r.Entries(), 1)
	assert.Equal(t, "first", r.Entries()[0].Name)

	fn, err := r.Lookup(domain.Inv1)
	require.NoError(t, err)
	out, err := fn(1)
	require.NoError(t, err)
	assert.Equal(t, 2, out)
}

func TestRegistry_EntriesReturnsCopy(t *testing.T) {
	regs := stages.NewRegistries()
	entries := regs.Invoice.Entries()
	entries[0].Name = "changed"
	assert.Equal(t, "Invoice1", regs.Invoice.Entries()[0].Name)
}

func TestRegistries_Describe(t *testing.T) {
	desc := stages.Default().Describe()
	require.Len(t, desc, 5)

	for i, cat := range domain.Categories {
		assert.Equal(t, cat, desc[i].Category)
	}
	assert.Len(t, desc[0].Variants, 5)
	assert.Len(t, desc[1].Variants, 3)
	assert.Len(t, desc[2].Variants, 6)
	assert.Len(t, desc[3].Variants, 4)
	assert.Len(t, desc[4].Variants, 5)

	assert.Equal(t, stages.VariantInfo{Choice: "fr3", Name: "FreightCost3"}, desc[2].Variants[2])
	assert.Equal(t, stages.VariantInfo{Choice: "sd5", Name: "ShippingDate5"}, desc[4].Variants[4])
}
