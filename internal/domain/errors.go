package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoMatchingStage is returned when a configured variant has no registered stage function.
	ErrNoMatchingStage = errors.New("no matching stage function")
	// ErrInsufficientQualifyingRules is returned when too few discount rules qualify for an order.
	ErrInsufficientQualifyingRules = errors.New("insufficient qualifying discount rules")
	// ErrDateOutOfRange is returned when date arithmetic leaves the supported calendar range.
	ErrDateOutOfRange = errors.New("date out of range")
	// ErrInvalidConfig indicates a configuration that cannot be used.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvalidOrder indicates order input that failed validation.
	ErrInvalidOrder = errors.New("invalid order")
)

// StageLookupError names the category and choice that could not be resolved.
type StageLookupError struct {
	Category Category
	Choice   string
}

func (e *StageLookupError) Error() string {
	return fmt.Sprintf("%s: category %s, choice %q", ErrNoMatchingStage, e.Category, e.Choice)
}

func (e *StageLookupError) Unwrap() error { return ErrNoMatchingStage }

// InsufficientRulesError records how many rules qualified against how many are needed.
type InsufficientRulesError struct {
	Qualifying int
	Required   int
}

func (e *InsufficientRulesError) Error() string {
	return fmt.Sprintf("%s: %d qualified, %d required", ErrInsufficientQualifyingRules, e.Qualifying, e.Required)
}

func (e *InsufficientRulesError) Unwrap() error { return ErrInsufficientQualifyingRules }

// DateRangeError reports the stage whose date arithmetic overflowed.
type DateRangeError struct {
	Category Category
	Value    time.Time
}

func (e *DateRangeError) Error() string {
	return fmt.Sprintf("%s: %s stage produced %s", ErrDateOutOfRange, e.Category, e.Value.Format(time.RFC3339))
}

func (e *DateRangeError) Unwrap() error { return ErrDateOutOfRange }
