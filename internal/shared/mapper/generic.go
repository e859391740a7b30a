// Package mapper provides small generic helpers for converting slices of
// persistence models into domain entities.
package mapper

import "fmt"

// MapSlice applies mapFunc to every element of items. Returns nil for nil
// input.
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	if items == nil {
		return nil
	}
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}

// MapSliceErr applies a fallible mapFunc to every element of items,
// annotating a failure with the element's identifier.
func MapSliceErr[T any, R any](items []*T, mapFunc func(*T) (*R, error), idFunc func(*T) uint) ([]*R, error) {
	if items == nil {
		return nil, nil
	}
	result := make([]*R, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		mapped, err := mapFunc(item)
		if err != nil {
			return nil, fmt.Errorf("failed to map element with id %d: %w", idFunc(item), err)
		}
		result = append(result, mapped)
	}
	return result, nil
}
