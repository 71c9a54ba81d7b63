package transport

import (
	"net/http"

	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
)

// NewMemoryCache returns an in-process HTTP cache.
func NewMemoryCache() httpcache.Cache {
	return httpcache.NewMemoryCache()
}

// NewDiskCache returns an HTTP cache persisted under dir.
func NewDiskCache(dir string) httpcache.Cache {
	return diskcache.New(dir)
}

// CachingRoundTripper wraps next with cache. A nil next means
// http.DefaultTransport.
func CachingRoundTripper(cache httpcache.Cache, next http.RoundTripper) http.RoundTripper {
	t := httpcache.NewTransport(cache)
	t.Transport = next
	t.MarkCachedResponses = true
	return t
}

// FromCache reports whether resp was served from the HTTP cache.
func FromCache(resp *http.Response) bool {
	return resp != nil && resp.Header.Get(httpcache.XFromCache) != ""
}
