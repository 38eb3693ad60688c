// Package cargo refreshes the local sparse index cache by driving the cargo CLI.
package cargo

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"go.trai.ch/crateq/internal/adapters/config"
	"go.trai.ch/crateq/internal/core/domain"
	"go.trai.ch/crateq/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.IndexRefresher = (*Refresher)(nil)

// Refresher implements ports.IndexRefresher. It creates a throwaway project
// and adds the crate to it, which makes cargo fetch the crate's index entry.
type Refresher struct {
	settings  *config.Settings
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new Refresher.
func New(settings *config.Settings, logger ports.Logger, telemetry ports.Telemetry) *Refresher {
	return &Refresher{
		settings:  settings,
		logger:    logger,
		telemetry: telemetry,
	}
}

// ForceRefresh runs `cargo new` and `cargo add <name>` in a disposable directory.
// Non-zero exit statuses are not failures: a crate that does not exist simply
// leaves no cache entry behind.
func (r *Refresher) ForceRefresh(ctx context.Context, name string) (err error) {
	env, err := r.environ()
	if err != nil {
		return err
	}

	dir, err := os.MkdirTemp("", domain.RefreshDirPattern)
	if err != nil {
		return refreshError(err, "failed to create refresh workspace")
	}
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			r.logger.Warn("failed to remove refresh workspace " + dir + ": " + rmErr.Error())
		}
	}()

	//nolint:gosec // path is inside a directory created above
	logFile, err := os.OpenFile(
		filepath.Join(dir, domain.RefreshLogFile),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		domain.PrivateFilePerm,
	)
	if err != nil {
		return zerr.With(refreshError(err, "failed to create refresh log"), "dir", dir)
	}
	defer func() {
		if closeErr := logFile.Close(); closeErr != nil && err == nil {
			err = refreshError(closeErr, "failed to close refresh log")
		}
	}()

	if parent, ok := ports.VertexFromContext(ctx); ok {
		parent.Log(domain.LogLevelDebug, "workspace "+dir)
	}

	if err := r.run(ctx, dir, env, logFile, "new", domain.ScaffoldName); err != nil {
		return err
	}
	return r.run(ctx, filepath.Join(dir, domain.ScaffoldName), env, logFile, "add", name)
}

// environ returns the environment for cargo. A nil result inherits the
// process environment. An explicit cargo home is exported as CARGO_HOME.
func (r *Refresher) environ() ([]string, error) {
	if r.settings == nil || r.settings.CargoHome == "" {
		return nil, nil
	}
	home, err := r.settings.Home()
	if err != nil {
		return nil, err
	}
	return append(os.Environ(), domain.CargoHomeEnv+"="+home), nil
}

// run executes one cargo subcommand in dir. Stderr is appended to log and
// mirrored to the vertex.
func (r *Refresher) run(ctx context.Context, dir string, env []string, log io.Writer, args ...string) error {
	title := domain.CargoBinary
	for _, a := range args {
		title += " " + a
	}
	_, vertex := r.telemetry.Record(ctx, title)

	binary := r.settings.Binary()
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec // binary is configured by the user
	cmd.Dir = dir
	cmd.Env = env
	cmd.Stdout = vertex.Stdout()
	cmd.Stderr = io.MultiWriter(log, vertex.Stderr())

	r.logger.Debug("running " + title + " in " + dir)
	runErr := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case runErr == nil:
		r.logger.Debug(title + " exited with status 0")
		vertex.Complete(nil)
		return nil
	case errors.As(runErr, &exitErr):
		r.logger.Debug(title + " exited with status " + strconv.Itoa(exitErr.ExitCode()))
		vertex.Complete(exitErr)
		return nil
	default:
		err := refreshError(runErr, "failed to run cargo")
		err = zerr.With(err, "command", title)
		err = zerr.With(err, "binary", binary)
		vertex.Complete(err)
		return err
	}
}

func refreshError(cause error, msg string) error {
	return zerr.With(zerr.Wrap(domain.ErrRefreshFailed, msg), "cause", cause.Error())
}
