//go:build windows

package process

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Exec runs the target executable as a child process and exits with its
// exit code, since Windows has no process-image replacement. Stdio is
// passed through untouched. It returns only if the executable could not
// be located or started.
func (r *Replacer) Exec(argv0 string, argv []string, environ []string) error {
	path, err := resolve(argv0)
	if err != nil {
		return err
	}

	cmd := exec.Command(path, argv[1:]...)
	cmd.Env = environ
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		return fmt.Errorf("failed to start %s: %w", path, err)
	}

	os.Exit(0)
	return nil
}
