package server

// Server is the lifecycle contract of the warranty backend process.
//
// RunServer blocks until a shutdown signal arrives or serving fails;
// Shutdown stops listeners and drains in-flight requests.
type Server interface {
	RunServer()
	Shutdown()
}
