// Package shell provides the command runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.trai.ch/pinenv/internal/core/domain"
	"go.trai.ch/pinenv/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// stderrTailSize bounds the stderr kept for error reports.
	stderrTailSize = 4096

	// waitDelay is how long a cancelled child may take to exit after the interrupt.
	waitDelay = 5 * time.Second
)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewRunner creates a Runner attached to the process stdio.
func NewRunner(logger ports.Logger) *Runner {
	return NewRunnerWithIO(logger, os.Stdin, os.Stdout, os.Stderr)
}

// NewRunnerWithIO creates a Runner with explicit stdio streams.
func NewRunnerWithIO(logger ports.Logger, stdin io.Reader, stdout, stderr io.Writer) *Runner {
	return &Runner{
		logger: logger,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run executes the command with stdout and stderr streamed to the console.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) error {
	c := r.command(ctx, cmd)
	tail := newTailBuffer(stderrTailSize)

	c.Stdin = r.stdin
	c.Stdout = r.stdout
	c.Stderr = io.MultiWriter(r.stderr, tail)

	return r.wait(c, cmd, tail)
}

// Output executes the command and returns its stdout.
// Stderr lines are reported as warnings.
func (r *Runner) Output(ctx context.Context, cmd domain.Command) (string, error) {
	c := r.command(ctx, cmd)
	tail := newTailBuffer(stderrTailSize)
	warnings := &logWriter{logger: r.logger}

	var stdout bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = io.MultiWriter(warnings, tail)

	err := r.wait(c, cmd, tail)
	warnings.Flush()
	if err != nil {
		return "", err
	}
	return stdout.String(), nil
}

func (r *Runner) command(ctx context.Context, cmd domain.Command) *exec.Cmd {
	env := resolveEnvironment(os.Environ(), cmd.Env)

	// Resolve the executable with the merged PATH so virtualenv binaries win.
	executable := cmd.Program
	if !filepath.IsAbs(executable) && !strings.ContainsRune(executable, filepath.Separator) {
		if lp, err := lookPath(executable, env); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // user provided command
	if len(c.Args) > 0 {
		c.Args[0] = cmd.Program
	}
	c.Dir = cmd.Dir
	c.Env = env

	// Give the child a chance to exit cleanly before it is killed.
	c.Cancel = func() error {
		return c.Process.Signal(os.Interrupt)
	}
	c.WaitDelay = waitDelay

	return c
}

func (r *Runner) wait(c *exec.Cmd, cmd domain.Command, tail *tailBuffer) error {
	if cmd.Label != "" {
		r.logger.Debug("running " + cmd.LogLine())
	} else {
		r.logger.Info("running " + cmd.LogLine())
	}

	err := c.Run()
	if err == nil {
		return nil
	}

	failure := zerr.With(zerr.Wrap(domain.ErrExternalCommandFailed, cmd.String()), "program", cmd.Program)

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// ExitCode is -1 when the child was killed by a signal.
		if code := exitErr.ExitCode(); code >= 0 {
			failure = zerr.With(failure, domain.ExitCodeKey, code)
		}
	} else {
		failure = zerr.With(failure, "reason", err.Error())
	}

	if stderr := strings.TrimSpace(tail.String()); stderr != "" {
		failure = zerr.With(failure, "stderr", stderr)
	}
	return failure
}

// logWriter forwards complete lines to the logger as warnings.
// Partial lines are buffered until a newline or Flush.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emit(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush emits any buffered partial line.
func (w *logWriter) Flush() {
	if len(w.buf) > 0 {
		w.emit(w.buf)
		w.buf = nil
	}
}

func (w *logWriter) emit(line []byte) {
	msg := strings.TrimRight(string(line), "\r")
	if msg != "" {
		w.logger.Warn(msg)
	}
}

// tailBuffer keeps the last max bytes written to it.
type tailBuffer struct {
	max int
	buf []byte
}

func newTailBuffer(maxBytes int) *tailBuffer {
	return &tailBuffer{max: maxBytes}
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.max; over > 0 {
		t.buf = t.buf[over:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	return string(t.buf)
}

// resolveEnvironment merges cmdEnv over sysEnv.
// A PATH entry in cmdEnv is prepended to the system PATH instead of replacing it.
func resolveEnvironment(sysEnv, cmdEnv []string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(cmdEnv))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}

	for _, entry := range cmdEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == "PATH" {
			if sysPath := envMap["PATH"]; sysPath != "" {
				v = v + string(os.PathListSeparator) + sysPath
			}
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if p, ok := strings.CutPrefix(e, "PATH="); ok {
			path = p
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
