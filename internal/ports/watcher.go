package ports

// Watcher monitors a single source file for modification. The adapter
// (fsnotify) debounces rapid events — editors often trigger multiple
// writes per save. Only one Watch call should be active at a time.
type Watcher interface {
	// Watch starts monitoring filePath and invokes onChange after each
	// write, debounced. The callback may be invoked from any goroutine.
	// Returns an error if the file's directory cannot be watched.
	Watch(filePath string, onChange func()) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
