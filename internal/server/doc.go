// Package server runs the verifier's transports: the REST API over HTTP and
// the gRPC health service. Both stop gracefully on SIGTERM, SIGINT or
// SIGQUIT.
package server
