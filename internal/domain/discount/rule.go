// Package discount selects an order discount from a catalog of rules.
package discount

import (
	"github.com/shopspring/decimal"

	"github.com/costflow/costflow/internal/domain"
)

// RequiredRules is how many qualifying amounts are averaged.
const RequiredRules = 3

// Rule is one catalog entry. Rules are stateless.
type Rule struct {
	Name      string
	Qualifies func(domain.Order) bool
	Amount    func(domain.Order) decimal.Decimal
}

// Catalog is an ordered list of rules.
type Catalog []Rule

// Fixed returns a rule that always yields amount when qualifies is true.
func Fixed(name string, qualifies bool, amount int64) Rule {
	a := decimal.NewFromInt(amount)
	return Rule{
		Name:      name,
		Qualifies: func(domain.Order) bool { return qualifies },
		Amount:    func(domain.Order) decimal.Decimal { return a },
	}
}

// DefaultCatalog returns the built-in six-rule catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		Fixed("rule-1", true, 10),
		Fixed("rule-2", false, 1),
		Fixed("rule-3", true, 5),
		Fixed("rule-4", false, 20),
		Fixed("rule-5", true, 2),
		Fixed("rule-6", true, 3),
	}
}
