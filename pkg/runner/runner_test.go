package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wifiscan "github.com/wifilab/wifiscan/pkg"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test relies on POSIX shell utilities")
	}
}

func TestRunCapturesStdout(t *testing.T) {
	skipOnWindows(t)

	r := New(wifiscan.Config{})
	out, err := r.Run(context.Background(), "echo", "hello", "world")
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", out)
}

func TestRunMissingBinary(t *testing.T) {
	r := New(wifiscan.Config{})
	_, err := r.Run(context.Background(), "definitely-not-a-real-binary-xyz")

	var notFound *wifiscan.CommandNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "definitely-not-a-real-binary-xyz", notFound.Command)
}

func TestRunNonZeroExit(t *testing.T) {
	skipOnWindows(t)

	r := New(wifiscan.Config{})
	_, err := r.Run(context.Background(), "sh", "-c", "echo oops >&2; exit 3")

	var failed *wifiscan.CommandFailedError
	require.True(t, errors.As(err, &failed))
	assert.Equal(t, 3, failed.ExitCode)
	assert.Equal(t, "oops", failed.Stderr)
}

func TestRunTimeout(t *testing.T) {
	skipOnWindows(t)

	r := New(wifiscan.Config{Timeout: 50 * time.Millisecond})
	_, err := r.Run(context.Background(), "sleep", "5")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunExtraPath(t *testing.T) {
	skipOnWindows(t)

	r := New(wifiscan.Config{})
	r.ExtraPath = "/usr/sbin:/sbin"
	out, err := r.Run(context.Background(), "sh", "-c", "echo $PATH")
	require.NoError(t, err)
	assert.Contains(t, out, "/usr/sbin:/sbin")
}

func TestRunFindsBinaryOnlyInExtraPath(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	script := filepath.Join(dir, "sbin-only-tool")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho found\n"), 0o755))

	r := New(wifiscan.Config{})
	r.ExtraPath = dir
	out, err := r.Run(context.Background(), "sbin-only-tool")
	require.NoError(t, err)
	assert.Equal(t, "found\n", out)
}

func TestRunMissingBinaryWithExtraPath(t *testing.T) {
	r := New(wifiscan.Config{})
	r.ExtraPath = t.TempDir()
	_, err := r.Run(context.Background(), "definitely-not-a-real-binary-xyz")

	var notFound *wifiscan.CommandNotFoundError
	require.True(t, errors.As(err, &notFound))
}
