// Package scanner discovers installed IDEs under the per-user config root.
package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/blackwell-systems/jbinventory/internal/product"
	"github.com/blackwell-systems/jbinventory/internal/status"
)

// Scanner walks the config root and builds Install records.
type Scanner struct {
	roots Roots
}

// New creates a Scanner over the given roots.
func New(roots Roots) *Scanner {
	return &Scanner{roots: roots}
}

// Scan returns one Install per recognized directory under <config>/JetBrains.
// A missing root yields an empty result. Entries that are not directories or
// do not match a known product are skipped.
func (s *Scanner) Scan() ([]product.Install, error) {
	base := s.roots.ConfigBase()

	entries, err := os.ReadDir(base)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []product.Install{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", base, err)
	}

	installs := make([]product.Install, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		inst, ok, err := s.parseProductDir(entry.Name())
		if err != nil {
			return nil, err
		}
		if ok {
			installs = append(installs, inst)
		}
	}

	return installs, nil
}

func (s *Scanner) parseProductDir(name string) (product.Install, bool, error) {
	kind, ok := product.Identify(name)
	if !ok {
		return product.Install{}, false, nil
	}

	configPath := filepath.Join(s.roots.ConfigBase(), name)
	trial, err := status.Infer(configPath)
	if err != nil {
		return product.Install{}, false, fmt.Errorf("failed to infer status for %s: %w", name, err)
	}

	return product.Install{
		Product:     kind,
		Version:     ExtractVersion(name),
		ConfigPath:  configPath,
		DataPath:    filepath.Join(s.roots.DataBase(), name),
		TrialStatus: trial,
	}, true, nil
}

// ExtractVersion returns the first two dot-separated segments starting at
// the first digit in dirName, or "" if there is no digit.
func ExtractVersion(dirName string) string {
	idx := strings.IndexFunc(dirName, unicode.IsDigit)
	if idx < 0 {
		return ""
	}
	parts := strings.SplitN(dirName[idx:], ".", 3)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, ".")
}

// SortInstalls orders installs by product name, then version.
func SortInstalls(installs []product.Install) {
	sort.SliceStable(installs, func(i, j int) bool {
		a, b := installs[i], installs[j]
		if a.Product.DisplayName() != b.Product.DisplayName() {
			return a.Product.DisplayName() < b.Product.DisplayName()
		}
		return a.Version < b.Version
	})
}
