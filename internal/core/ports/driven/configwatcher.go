package driven

import "context"

// ConfigWatcher reports when the configuration backing a ConfigStore
// changes outside the running process.
type ConfigWatcher interface {
	// Watch calls onChange after each change until ctx is cancelled.
	// The store has already been reloaded when onChange runs.
	Watch(ctx context.Context, onChange func()) error
}
