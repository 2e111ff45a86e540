package router

import "net/http"

// Middleware decorates an http.Handler with cross-cutting behavior.
type Middleware func(next http.Handler) http.Handler

// Chain wraps h with the given middlewares.
//
// The first middleware in the list is the outermost one, so it sees the
// request first and the response last.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] == nil {
			continue
		}
		h = mws[i](h)
	}
	return h
}
