package config

import (
	"os"
	"path/filepath"
)

const defaultRuntimeDir = ".footix"

func GetRuntimePath() string {
	return ResolveRuntimePath(os.Getenv("FOOTIX_RUNTIME_PATH"))
}

// ResolveRuntimePath anchors relative paths at the user's home directory.
func ResolveRuntimePath(path string) string {
	if path == "" {
		path = defaultRuntimeDir
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
