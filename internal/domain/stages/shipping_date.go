package stages

import "github.com/costflow/costflow/internal/domain"

// sd1 and sd2 wait whole days; sd3..sd5 wait a number of hours.
var shippingDelays = []struct {
	choice domain.ShippingDateVariant
	days   int
	hours  int
}{
	{domain.Sd1, 1, 0},
	{domain.Sd2, 2, 0},
	{domain.Sd3, 0, 14},
	{domain.Sd4, 0, 20},
	{domain.Sd5, 0, 10},
}

// ShipAfter schedules shipping a fixed delay after availability.
func ShipAfter(days, hours int) Stage[domain.Availability, domain.ShippingDate] {
	return func(a domain.Availability) (domain.ShippingDate, error) {
		d, err := shift(domain.CategoryShippingDate, a.Date, days, hours)
		if err != nil {
			return domain.ShippingDate{}, err
		}
		return domain.ShippingDate{Date: d}, nil
	}
}

func newShippingDateRegistry() *Registry[domain.ShippingDateVariant, domain.Availability, domain.ShippingDate] {
	entries := make([]Entry[domain.ShippingDateVariant, domain.Availability, domain.ShippingDate], 0, len(shippingDelays))
	for i, s := range shippingDelays {
		entries = append(entries, Entry[domain.ShippingDateVariant, domain.Availability, domain.ShippingDate]{
			Choice: s.choice,
			Name:   stageName("ShippingDate", i),
			Stage:  ShipAfter(s.days, s.hours),
		})
	}
	return NewRegistry(domain.CategoryShippingDate, entries...)
}
