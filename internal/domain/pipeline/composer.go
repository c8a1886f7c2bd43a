// Package pipeline composes the configured stage variants into the
// invoicing and availability pipelines and derives the adjusted cost.
package pipeline

import (
	"github.com/costflow/costflow/internal/domain"
	"github.com/costflow/costflow/internal/domain/stages"
)

// Observer is told about every stage as it runs.
type Observer func(category domain.Category, variant string)

type options struct {
	observer   Observer
	registries *stages.Registries
}

// Option customises composition.
type Option func(*options)

// WithObserver reports each executed stage to fn.
func WithObserver(fn Observer) Option {
	return func(o *options) { o.observer = fn }
}

// WithRegistries makes Adjust compose from r instead of the built-in
// registries.
func WithRegistries(r stages.Registries) Option {
	return func(o *options) { o.registries = &r }
}

// Pipelines holds the two composed functions for one configuration.
type Pipelines struct {
	Invoicing    stages.Stage[domain.Order, domain.Freight]
	Availability stages.Stage[domain.Order, domain.ShippingDate]
	// Stages lists the resolved variants in execution order.
	Stages []domain.StageRef
}

func collect(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Compose resolves one stage per category from regs and chains them in the
// fixed order invoice, shipping, freight and availability, shipping date.
// If any lookup fails the error is returned and no pipeline is built.
func Compose(cfg domain.ProcessConfiguration, regs stages.Registries, opts ...Option) (*Pipelines, error) {
	o := collect(opts)

	invoice, err := regs.Invoice.Lookup(cfg.Invoice)
	if err != nil {
		return nil, err
	}
	shipping, err := regs.Shipping.Lookup(cfg.Shipping)
	if err != nil {
		return nil, err
	}
	freight, err := regs.Freight.Lookup(cfg.Freight)
	if err != nil {
		return nil, err
	}
	availability, err := regs.Availability.Lookup(cfg.Availability)
	if err != nil {
		return nil, err
	}
	shippingDate, err := regs.ShippingDate.Lookup(cfg.ShippingDate)
	if err != nil {
		return nil, err
	}

	refs := make([]domain.StageRef, 0, len(domain.Categories))
	for _, cat := range domain.Categories {
		refs = append(refs, domain.StageRef{Category: cat, Variant: cfg.Choice(cat)})
	}

	return &Pipelines{
		Invoicing: stages.Then(
			stages.Then(
				stages.Observe(invoice, o.notify(domain.CategoryInvoice, string(cfg.Invoice))),
				stages.Observe(shipping, o.notify(domain.CategoryShipping, string(cfg.Shipping))),
			),
			stages.Observe(freight, o.notify(domain.CategoryFreight, string(cfg.Freight))),
		),
		Availability: stages.Then(
			stages.Observe(availability, o.notify(domain.CategoryAvailability, string(cfg.Availability))),
			stages.Observe(shippingDate, o.notify(domain.CategoryShippingDate, string(cfg.ShippingDate))),
		),
		Stages: refs,
	}, nil
}

func (o options) notify(cat domain.Category, variant string) func() {
	if o.observer == nil {
		return nil
	}
	obs := o.observer
	return func() { obs(cat, variant) }
}
