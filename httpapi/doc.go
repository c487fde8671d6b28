// Package httpapi exposes the pipeline over HTTP for the presentation client.
//
// Routes
//
//	GET  /healthz        liveness probe
//	GET  /v1/channels    channel set and electrode layout
//	POST /v1/analyze     CSV body → report.Document
//
// /v1/analyze accepts the query parameters id, orientation, delimiter and
// skip_index, each overriding the server's CSV defaults. Unparsable input is
// answered with 400; structurally invalid or degenerate recordings with 422.
package httpapi
