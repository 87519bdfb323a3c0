// Package pipeline implements the ordered request-interception chain every
// service wraps around its handlers, plus the exception translator that
// renders any raised error as a standard envelope.
//
// Stages run synchronously on the request's own goroutine in a fixed order
// decided once at construction:
//
//	before: timing → session validation → role authorization →
//	        hours of service → channel access → handler
//	after:  response enveloping → timing
//
// A before-stage short-circuits by returning a typed error; the remaining
// stages and the handler are skipped and the translator renders the error.
// After-stages always run, so timing observes failed requests too.
//
// Per-route exemptions are explicit capability flags set at route
// registration (RouteOptions), not tags discovered by reflection.
package pipeline
