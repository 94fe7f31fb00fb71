package process

import (
	"fmt"
	"os/exec"
)

// Replacer implements the Handoff port by replacing the current process
// image with the target executable. On platforms without image replacement
// it spawns the target as a child and propagates its exit code.
type Replacer struct{}

// New creates a new Replacer
func New() *Replacer {
	return &Replacer{}
}

// resolve locates argv0 on the executable search path
func resolve(argv0 string) (string, error) {
	path, err := exec.LookPath(argv0)
	if err != nil {
		return "", fmt.Errorf("failed to locate %s: %w", argv0, err)
	}
	return path, nil
}
