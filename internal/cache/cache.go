package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// NoExpiration keeps an entry for the life of the cache
const NoExpiration time.Duration = -1

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey generates a namespaced cache key for arbitrary input text
func CacheKey(namespace string, text string) string {
	hash := sha256.Sum256([]byte(text))
	return "sotd:v1:" + namespace + ":" + hex.EncodeToString(hash[:])
}
