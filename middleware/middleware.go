// Package middleware decorates codec.Converter values with cross-cutting
// behaviour such as logging and schema checks. Decorators compose with Chain.
package middleware

import "elastic-agent-access/codec"

// Middleware wraps a converter with extra behaviour.
type Middleware func(next codec.Converter) codec.Converter

// Chain combines middlewares into one. The first middleware is the outermost:
// Chain(A, B)(c) is A(B(c)).
func Chain(middlewares ...Middleware) Middleware {
	return func(next codec.Converter) codec.Converter {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}
