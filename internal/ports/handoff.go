package ports

// Handoff defines the interface for transferring process control to the
// target executable. This is implemented by the process adapter.
type Handoff interface {
	// Exec resolves argv0 on the executable search path and hands control
	// to it with the given argument vector and environment. On platforms
	// with process-image replacement it does not return on success; on
	// others it delegates to a child process and exits with its exit code.
	// A return always means the hand-off failed.
	Exec(argv0 string, argv []string, environ []string) error
}
