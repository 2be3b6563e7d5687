package cache

import "sync"

var (
	sharedOnce sync.Once
	shared     *Cache
)

// Shared returns the process-wide default cache, constructed lazily from
// DefaultConfig on first use. Prefer explicit New instances; Shared exists
// for callers that genuinely want one cache shared across a process without
// threading a handle through every call site.
func Shared() *Cache {
	sharedOnce.Do(func() {
		c, err := New(DefaultConfig())
		if err != nil {
			// DefaultConfig always validates; reaching here is a bug.
			panic(err)
		}
		shared = c
	})
	return shared
}
