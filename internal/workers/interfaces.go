// Package workers provides abstractions for managing and running
// background workers of the client application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to spawn goroutines internally and return
// promptly; workers that also implement [Stopper] are shut down gracefully.
type Worker interface {
	Run()
}

// Stopper is implemented by workers that need a graceful shutdown. Workers
// without it are assumed to stop with the process.
type Stopper interface {
	Stop()
}
