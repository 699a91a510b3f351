package cli

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/ardnew/lamb/pkg"
)

// baseConfig is the base name of the configuration files read by [Run]. The
// resolver also uses it as the top-level namespace of a YAML config.
const baseConfig = "config"

var defaultDirMode os.FileMode = 0o700

// userDir returns the pkg.Name subdirectory of the directory reported by
// locate. If locate fails, hidden is tried under the home directory, and
// then under the working directory.
func userDir(locate func() (string, error), hidden string) string {
	if dir, err := locate(); err == nil {
		return filepath.Join(dir, pkg.Name)
	}

	root, err := os.UserHomeDir()
	if err != nil {
		if root, err = os.Getwd(); err != nil {
			root = "."
		}
	}

	return filepath.Join(root, hidden, pkg.Name)
}

// configDir holds the YAML and JSON configuration files.
var configDir = sync.OnceValue(func() string {
	return userDir(os.UserConfigDir, ".config")
})

// cacheDir holds transient output such as CPU and memory profiles.
var cacheDir = sync.OnceValue(func() string {
	return userDir(os.UserCacheDir, ".cache")
})

// configPath joins name onto [configDir].
func configPath(name string) string {
	return filepath.Join(configDir(), name)
}

// mkdirAllRequired creates the configuration and cache directories.
func mkdirAllRequired() error {
	for _, dir := range []string{configDir(), cacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return err
		}
	}

	return nil
}
