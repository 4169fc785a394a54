package catalog

import (
	"context"
	"sort"
)

// StaticSource serves an immutable in-memory table. Every read returns a copy.
type StaticSource struct {
	data   map[string]BrandCatalog
	brands []string
}

// NewStaticSource serves the built-in price list.
func NewStaticSource() *StaticSource {
	return NewStaticSourceFrom(staticData)
}

// NewStaticSourceFrom serves a private copy of data.
func NewStaticSourceFrom(data map[string]BrandCatalog) *StaticSource {
	s := &StaticSource{data: cloneAll(data)}
	for brand := range s.data {
		s.brands = append(s.brands, brand)
	}
	sort.Strings(s.brands)
	return s
}

// Brands lists the defined brands, sorted.
func (s *StaticSource) Brands(context.Context) ([]string, error) {
	return append([]string(nil), s.brands...), nil
}

// BrandCatalog returns a copy of the brand's subtree.
func (s *StaticSource) BrandCatalog(_ context.Context, brand string) (BrandCatalog, bool, error) {
	bc, ok := s.data[brand]
	if !ok {
		return nil, false, nil
	}
	return bc.Clone(), true, nil
}

// All returns a copy of the whole table.
func (s *StaticSource) All() map[string]BrandCatalog {
	return cloneAll(s.data)
}
