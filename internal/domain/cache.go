package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

const DefaultCacheTTL = time.Hour

type CacheEntry struct {
	Question  string
	Tenant    string
	Result    string
	CreatedAt time.Time
}

// CacheKey derives the entry identity from the question and tenant. An absent
// tenant is the empty string, so it never collides with a present one.
func CacheKey(question, tenant string) string {
	sum := sha256.Sum256([]byte(question + "\x00" + tenant))
	return hex.EncodeToString(sum[:])
}

func (e CacheEntry) Key() string {
	return CacheKey(e.Question, e.Tenant)
}

func (e CacheEntry) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.CreatedAt) >= ttl
}

type CacheStats struct {
	Total     int
	Valid     int
	Expired   int
	SizeBytes int64
}
