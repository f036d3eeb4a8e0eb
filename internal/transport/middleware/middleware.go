// Package middleware holds the HTTP middleware of the operational server.
// Each Middleware is compatible with chi's Router.Use.
package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler
