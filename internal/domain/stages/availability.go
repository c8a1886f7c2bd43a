package stages

import "github.com/costflow/costflow/internal/domain"

var availabilityLeadDays = []struct {
	choice domain.AvailabilityVariant
	days   int
}{
	{domain.Av1, 3},
	{domain.Av2, 2},
	{domain.Av3, 1},
	{domain.Av4, 4},
}

// AvailableAfter makes the order available a fixed number of days after it was placed.
func AvailableAfter(days int) Stage[domain.Order, domain.Availability] {
	return func(o domain.Order) (domain.Availability, error) {
		d, err := shift(domain.CategoryAvailability, o.Date, days, 0)
		if err != nil {
			return domain.Availability{}, err
		}
		return domain.Availability{Date: d}, nil
	}
}

func newAvailabilityRegistry() *Registry[domain.AvailabilityVariant, domain.Order, domain.Availability] {
	entries := make([]Entry[domain.AvailabilityVariant, domain.Order, domain.Availability], 0, len(availabilityLeadDays))
	for i, a := range availabilityLeadDays {
		entries = append(entries, Entry[domain.AvailabilityVariant, domain.Order, domain.Availability]{
			Choice: a.choice,
			Name:   stageName("Availability", i),
			Stage:  AvailableAfter(a.days),
		})
	}
	return NewRegistry(domain.CategoryAvailability, entries...)
}
