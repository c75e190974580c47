// Package mapper holds slice helpers shared by the persistence mappers and DTO builders.
package mapper

import "fmt"

// MapSlice converts every element with fn. The result is never nil, so an
// empty list encodes as [] in API responses.
func MapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// TryMapSlice is MapSlice for conversions that can fail. It stops at the first
// error and reports the index of the offending element.
func TryMapSlice[T, R any](items []T, fn func(T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	for i, item := range items {
		v, err := fn(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}
