// Package controller holds the HTTP middlewares wrapped around the API router:
// access logging with request IDs, CORS, per key throttling and OpenTelemetry
// request metrics.
package controller
