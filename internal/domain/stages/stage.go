// Package stages holds the per-category calculation functions and the
// registries that map a configured variant to its function.
package stages

// Stage is one calculation step from In to Out.
type Stage[In, Out any] func(In) (Out, error)

// Pure lifts a calculation that cannot fail into a Stage.
func Pure[In, Out any](fn func(In) Out) Stage[In, Out] {
	return func(in In) (Out, error) {
		return fn(in), nil
	}
}

// Then runs first and feeds its result to next. Execution stops at the
// first error and the zero value of C is returned with it.
func Then[A, B, C any](first Stage[A, B], next Stage[B, C]) Stage[A, C] {
	return func(a A) (C, error) {
		b, err := first(a)
		if err != nil {
			var zero C
			return zero, err
		}
		return next(b)
	}
}

// Observe wraps a stage so fn runs before each execution.
func Observe[In, Out any](s Stage[In, Out], fn func()) Stage[In, Out] {
	if fn == nil {
		return s
	}
	return func(in In) (Out, error) {
		fn()
		return s(in)
	}
}
