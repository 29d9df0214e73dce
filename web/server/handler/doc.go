// Package handler contains helpers to assemble HTTP handler
// implementations using a composable, clear, and simple API. Each
// endpoint is an ordered pipeline of parsing steps: authentication,
// request processors that extract typed components from the raw
// request, the core handler, and response processors that serialize
// the result. The first step that fails short-circuits into a
// structured JSON error response, so a decode failure never takes down
// the serving process or other in-flight requests.
package handler
