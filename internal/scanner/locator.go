package scanner

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveRoot resolves the effective package root for a user-chosen
// directory. Exports unpack either flat or with a top-level "package"
// folder; when the latter exists it becomes the root. The only fatal
// condition of the whole scan lives here: the chosen path must be a
// readable directory. Everything below it degrades to empty results.
func ResolveRoot(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("package path %q: %w", path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("package path %q is not a directory", path)
	}

	nested := filepath.Join(path, "package")
	if info, err := os.Stat(nested); err == nil && info.IsDir() {
		return nested, nil
	}
	return path, nil
}
