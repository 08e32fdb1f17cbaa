// Package runner is the process-invocation layer feeding the parsers.
// It captures a utility's stdout as text and translates execution
// failures into the wifiscan error taxonomy; it is the only part of the
// module that touches the system.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	wifiscan "github.com/wifilab/wifiscan/pkg"
)

var _ wifiscan.CommandRunner = &Runner{}

type Runner struct {
	// ExtraPath is appended to PATH for every invocation. Scan tools
	// like iw often live in /usr/sbin which non-root shells omit.
	ExtraPath string

	// Timeout bounds each invocation. Zero means no limit.
	Timeout time.Duration
}

func New(config wifiscan.Config) *Runner {
	return &Runner{Timeout: config.Timeout}
}

// Run executes name with args and returns its captured stdout, lossily
// decoded to valid UTF-8. A missing binary surfaces as
// *wifiscan.CommandNotFoundError, a non-zero exit as
// *wifiscan.CommandFailedError with the exit code and stderr text.
func (t *Runner) Run(ctx context.Context, name string, args ...string) (string, error) {
	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	// exec resolves the binary against the parent's PATH before the
	// child environment applies, so the ExtraPath lookup happens here.
	path, err := t.lookPath(name)
	if err != nil {
		return "", &wifiscan.CommandNotFoundError{Command: name, Err: err}
	}

	cmd := exec.CommandContext(ctx, path, args...)
	if t.ExtraPath != "" {
		cmd.Env = append(os.Environ(), "PATH="+joinPath(os.Getenv("PATH"), t.ExtraPath))
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("command %q: %w", name, ctx.Err())
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &wifiscan.CommandFailedError{
				Command:  name,
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
			}
		}

		return "", &wifiscan.CommandNotFoundError{Command: name, Err: err}
	}

	return strings.ToValidUTF8(stdout.String(), "�"), nil
}

// lookPath resolves name to an absolute path, searching PATH with
// ExtraPath appended. Names that already carry a directory component
// are passed through the stock lookup.
func (t *Runner) lookPath(name string) (string, error) {
	if t.ExtraPath == "" || strings.ContainsRune(name, os.PathSeparator) {
		return exec.LookPath(name)
	}

	for _, dir := range filepath.SplitList(joinPath(os.Getenv("PATH"), t.ExtraPath)) {
		if dir == "" {
			continue
		}
		path, err := exec.LookPath(filepath.Join(dir, name))
		if err == nil {
			return path, nil
		}
	}

	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

func joinPath(path, extra string) string {
	if path == "" {
		return extra
	}
	return path + string(os.PathListSeparator) + extra
}
