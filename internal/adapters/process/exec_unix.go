//go:build unix

package process

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Exec replaces the current process image with the target executable.
// It returns only if the executable could not be located or started.
func (r *Replacer) Exec(argv0 string, argv []string, environ []string) error {
	path, err := resolve(argv0)
	if err != nil {
		return err
	}

	if err := unix.Exec(path, argv, environ); err != nil {
		return fmt.Errorf("failed to exec %s: %w", path, err)
	}
	return nil
}
