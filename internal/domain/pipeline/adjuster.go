package pipeline

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/costflow/costflow/internal/domain"
	"github.com/costflow/costflow/internal/domain/stages"
)

// Surcharges added to the freight cost depending on the shipping weekday.
var (
	MondaySurcharge   = decimal.NewFromInt(1000)
	StandardSurcharge = decimal.NewFromInt(500)
)

// SurchargeFor returns the surcharge that applies to a shipping weekday.
func SurchargeFor(day time.Weekday) decimal.Decimal {
	if day == time.Monday {
		return MondaySurcharge
	}
	return StandardSurcharge
}

// Adjust runs both pipelines for order and adds the weekday surcharge to
// the freight cost. The order itself is not validated.
func Adjust(order domain.Order, cfg domain.ProcessConfiguration, opts ...Option) (domain.Adjustment, error) {
	regs := stages.Default()
	if o := collect(opts); o.registries != nil {
		regs = *o.registries
	}
	p, err := Compose(cfg, regs, opts...)
	if err != nil {
		return domain.Adjustment{}, err
	}

	freight, err := p.Invoicing(order)
	if err != nil {
		return domain.Adjustment{}, fmt.Errorf("invoicing pipeline: %w", err)
	}
	shipDate, err := p.Availability(order)
	if err != nil {
		return domain.Adjustment{}, fmt.Errorf("availability pipeline: %w", err)
	}

	day := shipDate.Date.Weekday()
	surcharge := SurchargeFor(day)

	return domain.Adjustment{
		Freight:      freight,
		ShippingDate: shipDate,
		Weekday:      day,
		Surcharge:    surcharge,
		Cost:         freight.Cost.Add(surcharge),
		Stages:       p.Stages,
	}, nil
}

// ComputeAdjustedCost returns the freight cost plus weekday surcharge for
// order under cfg.
func ComputeAdjustedCost(order domain.Order, cfg domain.ProcessConfiguration) (decimal.Decimal, error) {
	adj, err := Adjust(order, cfg)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return adj.Cost, nil
}
