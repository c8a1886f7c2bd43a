package application

import (
	"fmt"

	"github.com/costflow/costflow/internal/domain"
	"github.com/costflow/costflow/internal/domain/discount"
)

// DiscountResult pairs a discounted order with the evaluation that produced it.
type DiscountResult struct {
	Order     domain.Order       `json:"order"`
	Breakdown discount.Breakdown `json:"breakdown"`
}

// DiscountService evaluates order requests against a rule catalog.
type DiscountService struct {
	catalog discount.Catalog
}

// NewDiscountService uses the built-in catalog when catalog is empty.
func NewDiscountService(catalog discount.Catalog) *DiscountService {
	if len(catalog) == 0 {
		catalog = discount.DefaultCatalog()
	}
	return &DiscountService{catalog: catalog}
}

// Evaluate discounts every request in order. The first invalid request or
// failed evaluation stops the batch.
func (s *DiscountService) Evaluate(reqs ...OrderRequest) ([]DiscountResult, error) {
	results := make([]DiscountResult, 0, len(reqs))
	for i, req := range reqs {
		order, err := ParseOrder(req)
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", i, err)
		}
		b, err := discount.Explain(order, s.catalog)
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", i, err)
		}
		results = append(results, DiscountResult{
			Order:     order.WithDiscount(b.Discount),
			Breakdown: b,
		})
	}
	return results, nil
}
