package fetch

import (
	"context"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a fetched description stays fresh. Ranking a
// pool of resumes hits the same posting URL once per run; the cache keeps
// repeat runs from re-fetching it.
const DefaultCacheTTL = 24 * time.Hour

// CachedFetcher wraps posting fetches with an in-memory TTL cache keyed by URL.
type CachedFetcher struct {
	options *Options
	ttl     time.Duration
	now     func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	result    Result
	fetchedAt time.Time
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	Result
	FromCache bool
}

// NewCachedFetcher creates a cached fetcher. A zero ttl uses DefaultCacheTTL;
// nil opts use DefaultOptions.
func NewCachedFetcher(opts *Options, ttl time.Duration) *CachedFetcher {
	if opts == nil {
		opts = DefaultOptions()
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedFetcher{
		options: opts,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// JobDescription returns the description for a posting URL, serving a fresh
// cached copy when one exists.
func (f *CachedFetcher) JobDescription(ctx context.Context, urlStr string) (*CachedResult, error) {
	f.mu.Lock()
	entry, ok := f.entries[urlStr]
	f.mu.Unlock()
	if ok && f.now().Sub(entry.fetchedAt) < f.ttl {
		return &CachedResult{Result: entry.result, FromCache: true}, nil
	}

	result, err := JobDescription(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.entries[urlStr] = cacheEntry{result: *result, fetchedAt: f.now()}
	f.mu.Unlock()

	return &CachedResult{Result: *result}, nil
}

// Invalidate drops the cached copy of a URL, forcing the next call to fetch.
func (f *CachedFetcher) Invalidate(urlStr string) {
	f.mu.Lock()
	delete(f.entries, urlStr)
	f.mu.Unlock()
}
