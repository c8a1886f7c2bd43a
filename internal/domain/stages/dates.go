package stages

import (
	"time"

	"github.com/costflow/costflow/internal/domain"
)

const (
	minYear = 1
	maxYear = 9999
)

// shift moves t forward by whole days and then by hours. Day shifts follow
// the calendar (month and year rollover), hour shifts follow elapsed time.
func shift(cat domain.Category, t time.Time, days, hours int) (time.Time, error) {
	out := t.AddDate(0, 0, days).Add(time.Duration(hours) * time.Hour)
	if y := out.Year(); y < minYear || y > maxYear {
		return time.Time{}, &domain.DateRangeError{Category: cat, Value: out}
	}
	return out, nil
}
