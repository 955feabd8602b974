package ports

import "time"

// CachePort caches the rendered listing between fetches. Entries are
// deleted on every insert so a stale listing is never served.
type CachePort interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
}
