package catalog

import (
	"context"
	"sort"
	"sync"
)

type fakeSource struct {
	mu    sync.Mutex
	data  map[string]BrandCatalog
	err   error
	calls int
}

func newFakeSource(data map[string]BrandCatalog) *fakeSource {
	return &fakeSource{data: data}
}

func (f *fakeSource) Brands(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]string, 0, len(f.data))
	for brand := range f.data {
		out = append(out, brand)
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeSource) BrandCatalog(_ context.Context, brand string) (BrandCatalog, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, false, f.err
	}
	bc, ok := f.data[brand]
	if !ok {
		return nil, false, nil
	}
	return bc.Clone(), true, nil
}

func (f *fakeSource) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
