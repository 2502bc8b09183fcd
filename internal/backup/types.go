// Package backup snapshots the mutable subdirectories of an install's config
// directory and restores them.
package backup

import (
	"time"
)

// Subdirectories of a config directory copied into each snapshot.
const (
	OptionsDir = "options"
	EvalDir    = "eval"
)

// timestampLayout formats snapshot names as YYYYMMDD_HHMMSS.
const timestampLayout = "20060102_150405"

// Info describes one snapshot directory.
type Info struct {
	Path string
	Name string
	// Created is the snapshot directory's modification time.
	Created time.Time
}

// Manager creates, lists, deletes and restores snapshots under a root.
type Manager struct {
	root string
	now  func() time.Time
}

// New creates a Manager rooted at root. The root is created on first backup.
func New(root string) *Manager {
	return &Manager{
		root: root,
		now:  time.Now,
	}
}

// Root returns the directory holding snapshots.
func (m *Manager) Root() string {
	return m.root
}
