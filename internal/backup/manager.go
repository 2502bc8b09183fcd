package backup

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/blackwell-systems/jbinventory/internal/scanner"
)

// DefaultRoot returns ~/.jbinventory/backups.
func DefaultRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: could not determine home directory: %v", scanner.ErrConfiguration, err)
	}
	return filepath.Join(home, ".jbinventory", "backups"), nil
}

// CreateBackup copies the options and eval subdirectories of configPath into
// a new snapshot named "<label>_<YYYYMMDD_HHMMSS>" and returns its path.
// A failed copy leaves the partial snapshot in place.
func (m *Manager) CreateBackup(configPath, label string) (string, error) {
	name := fmt.Sprintf("%s_%s", label, m.now().Format(timestampLayout))
	backupPath := filepath.Join(m.root, name)

	if err := os.MkdirAll(backupPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	for _, sub := range []string{OptionsDir, EvalDir} {
		src := filepath.Join(configPath, sub)
		if _, err := os.Stat(src); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return backupPath, fmt.Errorf("failed to stat %s: %w", src, err)
		}
		if err := copyDir(src, filepath.Join(backupPath, sub)); err != nil {
			return backupPath, fmt.Errorf("failed to back up %s: %w", sub, err)
		}
	}

	return backupPath, nil
}

// ListBackups returns snapshots sorted newest first. A missing root yields an
// empty list.
func (m *Manager) ListBackups() ([]Info, error) {
	entries, err := os.ReadDir(m.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Info{}, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := make([]Info, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat backup %s: %w", entry.Name(), err)
		}
		backups = append(backups, Info{
			Path:    filepath.Join(m.root, entry.Name()),
			Name:    entry.Name(),
			Created: info.ModTime(),
		})
	}

	sort.SliceStable(backups, func(i, j int) bool {
		return backups[i].Created.After(backups[j].Created)
	})
	return backups, nil
}

// DeleteBackup removes a snapshot directory.
func (m *Manager) DeleteBackup(backupPath string) error {
	if _, err := os.Stat(backupPath); err != nil {
		return fmt.Errorf("failed to stat backup: %w", err)
	}
	if err := os.RemoveAll(backupPath); err != nil {
		return fmt.Errorf("failed to delete backup: %w", err)
	}
	return nil
}

// RestoreBackup replaces target's options directory with the snapshot's copy.
// Snapshots without an options directory leave target untouched.
func (m *Manager) RestoreBackup(backupPath, target string) error {
	src := filepath.Join(backupPath, OptionsDir)
	if _, err := os.Stat(src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}

	dst := filepath.Join(target, OptionsDir)
	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf("failed to clear %s: %w", dst, err)
	}
	if err := copyDir(src, dst); err != nil {
		return fmt.Errorf("failed to restore options: %w", err)
	}
	return nil
}

// copyDir recursively copies src to dst, preserving file modes.
func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		if !d.Type().IsRegular() {
			return nil
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
