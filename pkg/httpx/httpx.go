// Package httpx carries the HTTP plumbing shared by every handler: the
// response envelope, the middleware chain, bearer authentication, role
// authorization and rate limiting.
package httpx

import "net/http"

type Middleware func(http.Handler) http.Handler

// Chain applies middlewares left to right: Chain(h, A, B) runs A -> B -> h,
// so the first middleware listed is the outermost.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
