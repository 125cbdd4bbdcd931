// Package http implements the REST transport of the verifier.
//
// It wires the chi router, the request handlers for document verification,
// verification history, statistics, health, login and version, and the
// middleware that runs before them: panic recovery, trace ids, access
// logging, request timeouts and bearer-token authentication.
package http
