package history

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/yohoo/startpage/internal/domain"
)

// DefaultStorePath locates the Chrome history database for the current OS.
// On macOS "Profile 1" is preferred over "Default" when both exist.
// Returns ErrStoreNotFound when no candidate path exists.
func DefaultStorePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	var candidates []string
	switch runtime.GOOS {
	case "darwin":
		candidates = []string{
			filepath.Join(home, "Library", "Application Support", "Google", "Chrome", "Profile 1", "History"),
			filepath.Join(home, "Library", "Application Support", "Google", "Chrome", "Default", "History"),
		}
	case "linux":
		candidates = []string{
			filepath.Join(home, ".config", "google-chrome", "Default", "History"),
		}
	case "windows":
		candidates = []string{
			filepath.Join(home, "AppData", "Local", "Google", "Chrome", "User Data", "Default", "History"),
		}
	default:
		return "", fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: tried %v", domain.ErrStoreNotFound, candidates)
}
