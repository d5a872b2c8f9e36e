package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver resolves word list and config paths for the wordfit binary
type PathResolver struct {
	executableDir string
	configDir     string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		configDir:     PlatformConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: exec=%s, configDir=%s", execPath, pr.configDir)
	return pr, nil
}

// PlatformConfigDir returns the wordfit config directory for the current platform
func PlatformConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "wordfit")
		}
		return filepath.Join(homeDir, ".config", "wordfit")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "wordfit")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "wordfit")
	case "darwin":
		return filepath.Join(homeDir, ".config", "wordfit")
	default:
		return filepath.Join(homeDir, ".wordfit")
	}
}

// ResolveWordList finds the word list file. It tries, in order:
// 1. the path as given (absolute, or relative to the working directory)
// 2. relative to the executable directory
// 3. inside the config directory
// An empty path stays empty so callers fall back to the bundled list.
func (pr *PathResolver) ResolveWordList(userPath string) (string, error) {
	if userPath == "" {
		return "", nil
	}

	candidates := []string{userPath}
	if !filepath.IsAbs(userPath) {
		candidates = append(candidates,
			filepath.Join(pr.executableDir, userPath),
			filepath.Join(pr.configDir, userPath),
		)
	}

	for _, path := range candidates {
		if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
			log.Debugf("Found word list: %s", path)
			return GetAbsolutePath(path), nil
		}
		log.Debugf("Word list candidate not found: %s", path)
	}
	return "", &os.PathError{Op: "resolve", Path: userPath, Err: os.ErrNotExist}
}

// ConfigDir returns the platform config directory
func (pr *PathResolver) ConfigDir() string {
	return pr.configDir
}
