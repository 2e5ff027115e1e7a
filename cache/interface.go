package cache

// Store is a process-local read-through cache for catalog query results.
// Implementations must be safe for concurrent use. Get treats expired
// entries as absent; callers cannot distinguish a miss from expiry and
// must re-fetch either way. Cache operations never fail.
type Store interface {
	Get(key string) (interface{}, bool)
	Put(key string, value interface{})
	Len() int
}
