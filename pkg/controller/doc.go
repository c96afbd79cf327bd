// Package controller contains HTTP middlewares used by the transcoding API.
//
// Provided middlewares:
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithRecover: Turns a handler panic into a 500 response.
//   - HTTPMetrics.Middleware: Counts requests and records latencies through an OpenTelemetry meter.
package controller
