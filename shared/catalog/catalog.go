// Package catalog provides read-only views over in-memory record collections:
// predicate filtering and 1-based pagination, both preserving insertion order
// and never mutating the source slice.
package catalog

import "math"

// Predicate reports whether a record matches. A nil predicate is treated as
// "no constraint" so callers can pass optional filters straight through.
type Predicate[T any] func(T) bool

// Filter returns the records matching every non-nil predicate, in their
// original relative order.
func Filter[T any](records []T, predicates ...Predicate[T]) []T {
	matched := make([]T, 0, len(records))

	for _, record := range records {
		if matchesAll(record, predicates) {
			matched = append(matched, record)
		}
	}

	return matched
}

func matchesAll[T any](record T, predicates []Predicate[T]) bool {
	for _, predicate := range predicates {
		if predicate == nil {
			continue
		}

		if !predicate(record) {
			return false
		}
	}

	return true
}

// Page holds one page of records plus the page arithmetic for the whole
// collection. TotalPages is never below 1, even for an empty collection.
type Page[T any] struct {
	Records    []T
	PageNumber int
	TotalPages int
}

// Paginate slices records into pages of pageSize and returns the requested
// 1-based page. Out-of-range page numbers clamp to the nearest valid page
// instead of failing.
func Paginate[T any](records []T, pageSize, pageNumber int) Page[T] {
	if pageSize <= 0 {
		pageSize = 1
	}

	totalPages := 1
	if len(records) > 0 {
		totalPages = int(math.Ceil(float64(len(records)) / float64(pageSize)))
	}

	if pageNumber < 1 {
		pageNumber = 1
	}

	if pageNumber > totalPages {
		pageNumber = totalPages
	}

	start := (pageNumber - 1) * pageSize
	if start > len(records) {
		start = len(records)
	}

	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}

	return Page[T]{
		Records:    records[start:end],
		PageNumber: pageNumber,
		TotalPages: totalPages,
	}
}
