package discount

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/costflow/costflow/internal/domain"
)

// RuleResult is one rule's outcome for an order.
type RuleResult struct {
	Name      string          `json:"name"`
	Qualified bool            `json:"qualified"`
	Amount    decimal.Decimal `json:"amount"`
	Selected  bool            `json:"selected"`
}

// Breakdown explains how a discount was reached.
type Breakdown struct {
	Rules    []RuleResult    `json:"rules"`
	Discount decimal.Decimal `json:"discount"`
}

// Evaluate averages the RequiredRules smallest amounts among the qualifying
// rules of catalog. Fewer qualifying rules is an InsufficientRulesError.
func Evaluate(order domain.Order, catalog Catalog) (decimal.Decimal, error) {
	b, err := Explain(order, catalog)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return b.Discount, nil
}

// Explain evaluates catalog against order and reports every rule.
// Amounts are only computed for qualifying rules.
func Explain(order domain.Order, catalog Catalog) (Breakdown, error) {
	results := make([]RuleResult, len(catalog))
	qualifying := make([]int, 0, len(catalog))
	for i, r := range catalog {
		results[i].Name = r.Name
		if r.Qualifies == nil || !r.Qualifies(order) {
			continue
		}
		results[i].Qualified = true
		results[i].Amount = r.Amount(order)
		qualifying = append(qualifying, i)
	}

	if len(qualifying) < RequiredRules {
		return Breakdown{Rules: results}, &domain.InsufficientRulesError{
			Qualifying: len(qualifying),
			Required:   RequiredRules,
		}
	}

	// Ties keep catalog order.
	sort.SliceStable(qualifying, func(a, b int) bool {
		return results[qualifying[a]].Amount.LessThan(results[qualifying[b]].Amount)
	})

	mean := decimal.Zero
	for n, idx := range qualifying[:RequiredRules] {
		results[idx].Selected = true
		i := decimal.NewFromInt(int64(n + 1))
		mean = results[idx].Amount.Add(mean.Mul(i.Sub(decimal.NewFromInt(1)))).Div(i)
	}

	return Breakdown{Rules: results, Discount: mean}, nil
}

// Apply returns a copy of order carrying its evaluated discount.
func Apply(order domain.Order, catalog Catalog) (domain.Order, error) {
	d, err := Evaluate(order, catalog)
	if err != nil {
		return domain.Order{}, err
	}
	return order.WithDiscount(d), nil
}

// ApplyAll discounts every order and stops at the first failure.
func ApplyAll(orders []domain.Order, catalog Catalog) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(orders))
	for i, o := range orders {
		d, err := Apply(o, catalog)
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", i, err)
		}
		out = append(out, d)
	}
	return out, nil
}
