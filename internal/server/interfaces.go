package server

// Server is the lifecycle shared by the HTTP and gRPC transports.
type Server interface {
	// RunServer serves until the server is stopped.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
