package middleware

import (
	"net/http"
	"time"
)

// NoWriteDeadline lifts the server's WriteTimeout for the given paths, which
// serve long-lived streams. It has to wrap the router: the deadline lives on
// the connection's own ResponseWriter.
func NoWriteDeadline(next http.Handler, paths ...string) http.Handler {
	streaming := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		streaming[p] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := streaming[r.URL.Path]; ok {
			_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})
		}
		next.ServeHTTP(w, r)
	})
}
