// Package server exposes the schema catalog over HTTP.
//
// Router builds a chi router that validates JSON bodies against registered
// schemas, sanitizes values with caller-supplied rules, exports schemas as
// JSON Schema and serves Prometheus metrics. Server runs any handler with
// graceful shutdown when its context is cancelled.
//
//	reg := catalog.Default()
//	h := server.Router(server.RouterOptions{Registry: reg, Metrics: server.NewMetrics()})
//	srv := server.New(server.WithAddr(":8080"))
//	err := srv.Run(ctx, h)
//
// Validation answers 200 with the result body when the value is valid and
// 422 when it is not. Every response carries an X-Request-ID header; a
// well-formed incoming id is kept, otherwise a UUID is generated.
package server
