package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName = "dhyan"
	dbFileName = "dhyan.db"
)

// DefaultDBPath is <UserConfigDir>/dhyan/dhyan.db, used when neither
// --db nor DHYAN_DB_PATH is set.
func DefaultDBPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, dbFileName), nil
}

// EnsureDBDir creates the parent directory of a database file, mode 0700.
func EnsureDBDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create data directory %q: %w", dir, err)
	}
	return nil
}
