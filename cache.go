package sportysky

import (
	"github.com/gregjones/httpcache"

	"github.com/sportrizer/sportysky-go/transport"
)

// CacheConfig configures HTTP response caching. What gets cached, and for how
// long, is decided by the response headers (RFC 7234), not by this package.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"` // Enable caching
	Dir     string `yaml:"dir"`     // Directory for an on-disk cache; empty keeps it in memory
}

// DefaultCacheConfig returns the default cache configuration (disabled).
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{}
}

// newCache builds the cache described by config, or nil when caching is off.
func newCache(config CacheConfig) httpcache.Cache {
	if !config.Enabled {
		return nil
	}
	if config.Dir == "" {
		return transport.NewMemoryCache()
	}
	return transport.NewDiskCache(config.Dir)
}
