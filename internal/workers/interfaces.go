// Package workers runs the background jobs of the server.
// It defines the Worker interface and a Workers aggregate that runs them
// together until their context is cancelled.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// Sweeper removes expired entries and reports how many went away.
type Sweeper interface {
	Sweep(ctx context.Context) int
}
