package session

import (
	"context"
	"math/big"
	"sync"
)

type result struct {
	path string
	err  error
}

// fakeFetcher blocks each Fetch until the test pushes a result or ctx ends
type fakeFetcher struct {
	mu      sync.Mutex
	urls    []string
	ctxErrs []error
	results chan result
	started chan struct{}
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		results: make(chan result, 4),
		started: make(chan struct{}, 4),
	}
}

func (f *fakeFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	f.mu.Lock()
	f.urls = append(f.urls, rawURL)
	f.mu.Unlock()
	f.started <- struct{}{}

	select {
	case r := <-f.results:
		return r.path, r.err
	case <-ctx.Done():
		f.mu.Lock()
		f.ctxErrs = append(f.ctxErrs, ctx.Err())
		f.mu.Unlock()
		return "", ctx.Err()
	}
}

func (f *fakeFetcher) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.urls...)
}

func (f *fakeFetcher) cancellations() []error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]error(nil), f.ctxErrs...)
}

type clipCall struct {
	input string
	start *big.Int
	end   *big.Int
}

// fakeClipper blocks each Clip until the test pushes a result
type fakeClipper struct {
	mu      sync.Mutex
	clips   []clipCall
	results chan result
}

func newFakeClipper() *fakeClipper {
	return &fakeClipper{results: make(chan result, 4)}
}

func (f *fakeClipper) Clip(ctx context.Context, input string, start, end *big.Int) (string, error) {
	f.mu.Lock()
	f.clips = append(f.clips, clipCall{input: input, start: start, end: end})
	f.mu.Unlock()

	r := <-f.results
	return r.path, r.err
}

func (f *fakeClipper) calls() []clipCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]clipCall(nil), f.clips...)
}
