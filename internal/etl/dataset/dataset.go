// Package dataset handles the JSON file plumbing between pipeline stages:
// loading raw scrapes, combining per-country normalized files, and writing
// outputs. Output files are always overwritten wholesale; a missing input
// file is a fatal job error.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/ombaa/ombaa/internal/etl/normalize"
)

// CountryFile names one country's normalized dataset file.
type CountryFile struct {
	Country string
	Path    string
}

// Combined is the result of merging per-country datasets: the concatenated
// records in country order plus per-country counts.
type Combined[T any] struct {
	Records []T
	Counts  map[string]int
}

// Total returns the combined record count.
func (c Combined[T]) Total() int {
	return len(c.Records)
}

// Load reads a JSON array file into a slice of T.
func Load[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return records, nil
}

// Write marshals v as indented JSON and overwrites path.
func Write(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// Combine merges per-country files into one sequence, preserving the given
// file order and each file's internal order. Files are read concurrently;
// no deduplication is performed, so repeats across files survive.
func Combine[T any](inputs []CountryFile) (Combined[T], error) {
	slots := make([][]T, len(inputs))

	var g errgroup.Group
	for i, in := range inputs {
		g.Go(func() error {
			records, err := Load[T](in.Path)
			if err != nil {
				return err
			}
			slots[i] = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Combined[T]{}, err
	}

	combined := Combined[T]{Counts: make(map[string]int, len(inputs))}
	for i, in := range inputs {
		combined.Records = append(combined.Records, slots[i]...)
		combined.Counts[in.Country] = len(slots[i])
	}

	return combined, nil
}

// Sites is a convenience alias for combining normalized solar park files.
func Sites(inputs []CountryFile) (Combined[normalize.Site], error) {
	return Combine[normalize.Site](inputs)
}

// Farms is a convenience alias for combining normalized sheep farm files.
func Farms(inputs []CountryFile) (Combined[normalize.Farm], error) {
	return Combine[normalize.Farm](inputs)
}
