// Package handler provides HTTP handlers for the SkyCast API.
package handler

import "net/http"

// sessionIDHeader carries the opaque session identifier between the client
// and the server. The server mints one when absent and always echoes it.
const sessionIDHeader = "X-Session-Id"

// sessionIDFromRequest extracts the client-supplied session ID, if any.
func sessionIDFromRequest(r *http.Request) string {
	return r.Header.Get(sessionIDHeader)
}
