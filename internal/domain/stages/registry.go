package stages

import "github.com/costflow/costflow/internal/domain"

// Entry binds one variant to its stage function.
type Entry[C ~string, In, Out any] struct {
	Choice C
	Name   string
	Stage  Stage[In, Out]
}

// Registry maps the variants of one category to their stage functions.
// It is immutable after construction and safe for concurrent lookups.
type Registry[C ~string, In, Out any] struct {
	category domain.Category
	entries  []Entry[C, In, Out]
	index    map[C]int
}

// NewRegistry builds a registry from a fixed list of entries. When a choice
// appears more than once the first entry wins.
func NewRegistry[C ~string, In, Out any](category domain.Category, entries ...Entry[C, In, Out]) *Registry[C, In, Out] {
	r := &Registry[C, In, Out]{
		category: category,
		entries:  make([]Entry[C, In, Out], 0, len(entries)),
		index:    make(map[C]int, len(entries)),
	}
	for _, e := range entries {
		if _, dup := r.index[e.Choice]; dup {
			continue
		}
		r.index[e.Choice] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	return r
}

// Category returns the stage category this registry serves.
func (r *Registry[C, In, Out]) Category() domain.Category { return r.category }

// Lookup returns the stage registered for choice.
func (r *Registry[C, In, Out]) Lookup(choice C) (Stage[In, Out], error) {
	i, ok := r.index[choice]
	if !ok {
		return nil, &domain.StageLookupError{Category: r.category, Choice: string(choice)}
	}
	return r.entries[i].Stage, nil
}

// Entries lists registrations in declaration order.
func (r *Registry[C, In, Out]) Entries() []Entry[C, In, Out] {
	out := make([]Entry[C, In, Out], len(r.entries))
	copy(out, r.entries)
	return out
}

// Choices lists the registered variants in declaration order.
func (r *Registry[C, In, Out]) Choices() []C {
	out := make([]C, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Choice)
	}
	return out
}
