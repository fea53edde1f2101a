package pidfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/NikolasTh90/healthwatcher/pkg/pidfile"
	"github.com/stretchr/testify/require"
)

func TestPidFileCanBeAcquiredAndReleased(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watcher.pid")
	f := pidfile.New(path)

	require.NoError(t, f.Acquire())
	require.NoError(t, f.Release())

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestPidFileEmptyPathIsNoop(t *testing.T) {
	f := pidfile.New("")

	require.NoError(t, f.Acquire())
	require.NoError(t, f.Release())
}

func TestPidFileCanBeAcquiredWhenStaleFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watcher.pid")
	f := pidfile.New(path)

	require.NoError(t, os.WriteFile(path, []byte("1073741823"), 0o644))
	require.NoError(t, f.Acquire())
	require.NoError(t, f.Release())

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestPidFileCannotBeAcquiredWhileAlreadyHeld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watcher.pid")
	f1 := pidfile.New(path)
	f2 := pidfile.New(path)

	require.NoError(t, f1.Acquire())
	defer func() { require.NoError(t, f1.Release()) }()

	require.Error(t, f2.Acquire())
}
