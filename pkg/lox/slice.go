// Package lox holds collection helpers missing from samber/lo.
package lox

// Map is lo.Map for iteratees that do not need the index, so method values
// like item.toDomain can be passed directly.
func Map[T, R any](collection []T, iteratee func(item T) R) []R {
	result := make([]R, len(collection))

	for i, item := range collection {
		result[i] = iteratee(item)
	}

	return result
}
