package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tlsnotary/notary-launcher/internal/config"
	"github.com/tlsnotary/notary-launcher/internal/ports"
)

// Launch target and the two fixed configuration files handed to it.
// The paths are deliberately not configurable.
const (
	TargetBinary   = "notary-server"
	ConfigFileFlag = "--config-file"
	DevConfigPath  = "config/config.dev.yaml"
	ProdConfigPath = "config/config.yaml"
)

// Plan describes everything the launcher will do: the status lines to
// emit, in order, and the configuration file the target is started with.
type Plan struct {
	Mode       config.Mode
	Lines      []string
	ConfigPath string
}

// Argv returns the full argument vector for the hand-off. The target is
// always invoked with exactly one flag/value pair.
func (p *Plan) Argv() []string {
	return []string{TargetBinary, ConfigFileFlag, p.ConfigPath}
}

// LauncherService maps the launcher configuration to a launch plan and
// performs the hand-off to the notary server
type LauncherService struct {
	cfg     *config.Config
	handoff ports.Handoff
	stdout  io.Writer
	logger  *slog.Logger
}

// NewLauncherService creates a new LauncherService, receiving context as
// first parameter to retrieve configuration, along with the hand-off port.
func NewLauncherService(ctx context.Context, handoff ports.Handoff) *LauncherService {
	return &LauncherService{
		cfg:     config.GetConfig(ctx),
		handoff: handoff,
		stdout:  os.Stdout,
		logger:  slog.Default().With("component", "launcher"),
	}
}

// NewLauncherServiceWithConfig creates a new LauncherService with explicit
// configuration and output writer.
// This constructor is primarily intended for testing purposes.
func NewLauncherServiceWithConfig(cfg *config.Config, handoff ports.Handoff, stdout io.Writer) *LauncherService {
	return &LauncherService{
		cfg:     cfg,
		handoff: handoff,
		stdout:  stdout,
		logger:  slog.Default().With("component", "launcher"),
	}
}

// Plan computes the launch plan from the configuration. The plan is a pure
// function of the configuration and carries no state across invocations.
func (s *LauncherService) Plan() *Plan {
	mode := s.cfg.Application.Mode()

	lines := []string{
		"Starting notary server launcher",
		"ENV is set to: " + s.cfg.Application.Env,
	}

	if mode.IsDevelopment() {
		// Development-only diagnostic: the signing key is echoed so it
		// can be cross-checked against the dev config. Never emitted in
		// production mode.
		lines = append(lines, s.cfg.Notary.PrivateKey, "Running in dev mode")

		return &Plan{
			Mode:       mode,
			Lines:      lines,
			ConfigPath: DevConfigPath,
		}
	}

	lines = append(lines, "Running in prod mode")

	return &Plan{
		Mode:       mode,
		Lines:      lines,
		ConfigPath: ProdConfigPath,
	}
}

// Run emits the plan's status lines and transfers control to the notary
// server with the mode-selected configuration file. It returns only if
// the hand-off fails; on success the process image is replaced (or the
// adapter exits with the child's exit code).
func (s *LauncherService) Run(environ []string) error {
	plan := s.Plan()

	for _, line := range plan.Lines {
		fmt.Fprintln(s.stdout, line)
	}

	argv := plan.Argv()
	s.logger.Debug("handing off to notary server", "target", argv[0], "configFile", plan.ConfigPath)

	if err := s.handoff.Exec(argv[0], argv, environ); err != nil {
		return fmt.Errorf("failed to launch %s: %w", argv[0], err)
	}

	return nil
}
