package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ErrConfiguration is returned when a required platform directory cannot be
// resolved.
var ErrConfiguration = errors.New("configuration error")

// VendorDir is the directory under the config and data roots that holds one
// subdirectory per install.
const VendorDir = "JetBrains"

// Roots holds the per-user directories the scanner reads. Resolve them once
// per run with DefaultRoots, or point them at temp directories in tests.
type Roots struct {
	Config string
	Data   string
}

// DefaultRoots resolves the platform-standard config and data directories.
func DefaultRoots() (Roots, error) {
	config, err := os.UserConfigDir()
	if err != nil {
		return Roots{}, fmt.Errorf("%w: could not determine config directory: %v", ErrConfiguration, err)
	}
	data, err := userDataDir()
	if err != nil {
		return Roots{}, fmt.Errorf("%w: could not determine data directory: %v", ErrConfiguration, err)
	}
	return Roots{Config: config, Data: data}, nil
}

// ConfigBase returns <config>/JetBrains.
func (r Roots) ConfigBase() string { return filepath.Join(r.Config, VendorDir) }

// DataBase returns <data>/JetBrains.
func (r Roots) DataBase() string { return filepath.Join(r.Data, VendorDir) }

// userDataDir mirrors os.UserConfigDir for the local data directory.
func userDataDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		dir := os.Getenv("LOCALAPPDATA")
		if dir == "" {
			return "", errors.New("%LOCALAPPDATA% is not defined")
		}
		return dir, nil
	case "darwin", "ios":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	default:
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			if !filepath.IsAbs(dir) {
				return "", errors.New("path in $XDG_DATA_HOME is relative")
			}
			return dir, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share"), nil
	}
}
