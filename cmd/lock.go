package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// acquireInstanceLock takes the per-user picker lock without waiting. A second
// picker started while the first is open fails instead of stacking windows.
func acquireInstanceLock() (func(), error) {
	lockPath, err := instanceLockPath()
	if err != nil {
		return func() {}, err
	}
	l := flock.New(lockPath)
	locked, err := l.TryLock()
	if err != nil {
		return func() {}, fmt.Errorf("cannot acquire instance lock: %w", err)
	}
	if !locked {
		return func() {}, fmt.Errorf("yeet is already running (lock: %s)", lockPath)
	}
	return func() { _ = l.Unlock() }, nil
}

// instanceLockPath determines the per-user lock file location.
func instanceLockPath() (string, error) {
	if cacheDir, err := os.UserCacheDir(); err == nil && cacheDir != "" {
		dir := filepath.Join(cacheDir, "yeet")
		if err := os.MkdirAll(dir, 0o755); err == nil {
			return filepath.Join(dir, "yeet.lock"), nil
		}
	}
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return filepath.Join(runtimeDir, "yeet.lock"), nil
	}
	return "", fmt.Errorf("cannot determine writable lock directory")
}
