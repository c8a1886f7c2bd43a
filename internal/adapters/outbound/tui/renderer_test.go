package tui_test

import (
	"strings"
	"testing"
	"time"

	"github.com/costflow/costflow/internal/adapters/outbound/tui"
	"github.com/costflow/costflow/internal/domain"
	"github.com/costflow/costflow/internal/domain/discount"
	"github.com/costflow/costflow/internal/domain/stages"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuote() *domain.Quote {
	return &domain.Quote{
		Order: domain.Order{
			ID:         "order-1",
			CustomerID: "cust-9",
			Date:       time.Date(2021, 3, 16, 12, 0, 0, 0, time.UTC),
			Cost:       decimal.NewFromInt(2000),
			Discount:   decimal.NewFromInt(10).Div(decimal.NewFromInt(3)),
		},
		Adjustment: domain.Adjustment{
			Freight:      domain.Freight{Cost: decimal.NewFromInt(780)},
			ShippingDate: domain.ShippingDate{Date: time.Date(2021, 3, 22, 12, 0, 0, 0, time.UTC)},
			Weekday:      time.Monday,
			Surcharge:    decimal.NewFromInt(1000),
			Cost:         decimal.NewFromInt(1780),
			Stages: []domain.StageRef{
				{Category: domain.CategoryInvoice, Variant: "inv3"},
				{Category: domain.CategoryShippingDate, Variant: "sd2"},
			},
		},
		ConfigRevision: "0123456789abcdef0123456789abcdef01234567",
	}
}

func TestRenderQuote_ContainsTotals(t *testing.T) {
	out := tui.RenderQuote(sampleQuote())
	assert.Contains(t, out, "1780.00")
	assert.Contains(t, out, "780.00")
	assert.Contains(t, out, "+1000.00")
	assert.Contains(t, out, "3.33")
}

func TestRenderQuote_ContainsOrderAndStages(t *testing.T) {
	out := tui.RenderQuote(sampleQuote())
	assert.Contains(t, out, "cust-9")
	assert.Contains(t, out, "2021-03-16T12:00:00Z")
	assert.Contains(t, out, "Monday")
	assert.Contains(t, out, "Shipping Date")
	assert.Contains(t, out, "inv3")
	assert.Contains(t, out, "0123456789ab")
	assert.NotContains(t, out, "0123456789abcdef0123")
}

func TestRenderQuote_NoRevision(t *testing.T) {
	q := sampleQuote()
	q.ConfigRevision = ""
	q.Order.CustomerID = ""
	out := tui.RenderQuote(q)
	assert.NotContains(t, out, "config @")
	assert.NotContains(t, out, "customer")
}

func TestRenderDiscount(t *testing.T) {
	order := domain.Order{ID: "order-2", Cost: decimal.NewFromInt(100)}
	b, err := discount.Explain(order, discount.DefaultCatalog())
	require.NoError(t, err)

	out := tui.RenderDiscount(order, b)
	assert.Contains(t, out, "3.3333")
	assert.Contains(t, out, "order-2")
	assert.Contains(t, out, "rule-1")
	assert.Contains(t, out, "n/a")
	assert.Equal(t, 3, strings.Count(out, "✓"))
	assert.Equal(t, 2, strings.Count(out, "✗"))
}

func TestRenderVariants(t *testing.T) {
	out := tui.RenderVariants(stages.Default().Describe())
	assert.Contains(t, out, "Invoice")
	assert.Contains(t, out, "Shipping Date")
	assert.Contains(t, out, "fr6")
	assert.Contains(t, out, "Freight Cost 6")
	assert.Contains(t, out, "Shipping Date 5")
}
