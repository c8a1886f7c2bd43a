package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the input to every pricing calculation.
type Order struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id,omitempty"`
	Date       time.Time       `json:"date"`
	Cost       decimal.Decimal `json:"cost"`
	Discount   decimal.Decimal `json:"discount"`
}

// NewOrder creates an order with a fresh identifier and no discount.
func NewOrder(customerID string, date time.Time, cost decimal.Decimal) Order {
	return Order{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Date:       date,
		Cost:       cost,
		Discount:   decimal.Zero,
	}
}

// WithDiscount returns a copy of the order carrying the given discount.
func (o Order) WithDiscount(d decimal.Decimal) Order {
	o.Discount = d
	return o
}

type Invoice struct {
	Cost decimal.Decimal `json:"cost"`
}

type Shipping struct {
	Cost      decimal.Decimal `json:"cost"`
	ShipperID int             `json:"shipper_id"`
}

type Freight struct {
	Cost decimal.Decimal `json:"cost"`
}

type Availability struct {
	Date time.Time `json:"date"`
}

type ShippingDate struct {
	Date time.Time `json:"date"`
}

// StageRef names one executed stage of a composed pipeline.
type StageRef struct {
	Category Category `json:"category"`
	Variant  string   `json:"variant"`
}

// Adjustment is the outcome of running both pipelines for one order.
type Adjustment struct {
	Freight      Freight         `json:"freight"`
	ShippingDate ShippingDate    `json:"shipping_date"`
	Weekday      time.Weekday    `json:"weekday"`
	Surcharge    decimal.Decimal `json:"surcharge"`
	Cost         decimal.Decimal `json:"cost"`
	Stages       []StageRef      `json:"stages"`
}

// Quote is an adjustment together with the order and configuration that produced it.
type Quote struct {
	Order          Order                `json:"order"`
	Config         ProcessConfiguration `json:"config"`
	Adjustment     Adjustment           `json:"adjustment"`
	ConfigRevision string               `json:"config_revision,omitempty"`
	Timestamp      time.Time            `json:"timestamp"`
}
