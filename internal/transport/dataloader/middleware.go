package dataloader

import (
	"net/http"
	"sync"
)

// Middleware attaches a lazily built Loaders set to each request. Requests
// that never render words (auth, health, imports) skip building loaders.
func Middleware(repos *Repos) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lazy := sync.OnceValue(func() *Loaders { return NewLoaders(repos) })
			next.ServeHTTP(w, r.WithContext(withLazyLoaders(r.Context(), lazy)))
		})
	}
}
