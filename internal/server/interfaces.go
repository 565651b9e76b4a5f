package server

// Server is the lifecycle of the volunteer hub API server.
type Server interface {
	// RunServer serves requests until a termination signal arrives, then
	// shuts down gracefully.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight
	// requests up to the shutdown timeout.
	Shutdown()
}
