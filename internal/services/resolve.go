package services

import "alexjohnson.dev/internal/models"

// Resolution is the outcome of looking up a slug. Record is nil when nothing
// matched; that is an ordinary result, not an error.
type Resolution[T models.Record] struct {
	Slug   string
	Record *T
}

// Found reports whether the slug matched a record.
func (r Resolution[T]) Found() bool {
	return r.Record != nil
}

// Resolve scans collection for the record whose slug equals slug exactly.
// Collections are a handful of records, so a linear scan is enough.
func Resolve[T models.Record](collection []T, slug string) Resolution[T] {
	for i := range collection {
		if collection[i].Key() == slug {
			return Resolution[T]{Slug: slug, Record: &collection[i]}
		}
	}
	return Resolution[T]{Slug: slug}
}
