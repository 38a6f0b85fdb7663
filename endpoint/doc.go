// Package endpoint exposes grouped health checks over HTTP.
//
// A Handler joins a health.Registry (the contributors) with group.Groups
// (the configured views) and serves one JSON endpoint per group: the
// primary group at the endpoint prefix, named groups below it, and any
// group with an additional path at that path on the server or management
// mux.
//
// # Basic Usage
//
//	handler, err := endpoint.NewHandler(registry, groups)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	mux := http.NewServeMux()
//	handler.RegisterHandlers(mux)        // /health and /health/{group}
//	handler.RegisterServerHandlers(mux)  // e.g. /livez, /readyz
//
// # Visibility
//
// How much of a response is rendered is decided per group: the aggregate
// status is always present, the component tree only when the group's
// show-components setting allows it, and per-component details only when
// show-details allows it. WHEN_AUTHORIZED settings consult the configured
// Authorizer for each request; the default denies everyone, so an
// unconfigured handler never leaks details.
//
// # Observability
//
// Every evaluation records the health.eval.total counter and the
// health.eval.duration_ms histogram, tagged with the group name and the
// aggregate status, and runs inside a "health.eval.<group>" span. Providers
// default to the OpenTelemetry globals.
package endpoint
