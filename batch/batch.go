// Package batch splits ordered sequences into fixed-size chunks.
package batch

import "fmt"

// DefaultSize is the chunk size used when none is configured.
const DefaultSize = 10

// Partition splits items into consecutive, non-overlapping chunks of size
// elements. The final chunk holds the remainder. An empty input yields no
// chunks. Chunks share backing storage with items but are capped, so
// appending to one chunk never overwrites the next.
func Partition[T any](items []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: batch size must be positive, got %d", ErrInvalidArgument, size)
	}
	if len(items) == 0 {
		return nil, nil
	}

	batches := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		batches = append(batches, items[start:end:end])
	}
	return batches, nil
}

// PartitionDefault splits items into chunks of DefaultSize.
func PartitionDefault[T any](items []T) [][]T {
	batches, _ := Partition(items, DefaultSize)
	return batches
}
