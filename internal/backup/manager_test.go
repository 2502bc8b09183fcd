package backup

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func setupTestManager(t *testing.T) *Manager {
	t.Helper()

	m := New(filepath.Join(t.TempDir(), "backups"))
	m.now = func() time.Time {
		return time.Date(2025, 3, 14, 9, 26, 53, 0, time.Local)
	}
	return m
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestCreateBackup(t *testing.T) {
	m := setupTestManager(t)
	configPath := t.TempDir()

	writeFile(t, filepath.Join(configPath, "options", "other.xml"), []byte("<xml/>"))
	writeFile(t, filepath.Join(configPath, "options", "nested", "keymap.xml"), []byte("keys"))
	writeFile(t, filepath.Join(configPath, "eval", "state.key"), []byte{0x00, 0x01})
	writeFile(t, filepath.Join(configPath, "plugins", "ignored.jar"), []byte("jar"))

	backupPath, err := m.CreateBackup(configPath, "PyCharm_2024.3")
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}

	if got := filepath.Base(backupPath); got != "PyCharm_2024.3_20250314_092653" {
		t.Errorf("backup name = %q", got)
	}
	if filepath.Dir(backupPath) != m.Root() {
		t.Errorf("backup created outside root: %s", backupPath)
	}

	for _, rel := range []string{
		filepath.Join("options", "other.xml"),
		filepath.Join("options", "nested", "keymap.xml"),
		filepath.Join("eval", "state.key"),
	} {
		if _, err := os.Stat(filepath.Join(backupPath, rel)); err != nil {
			t.Errorf("expected %s in backup: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(backupPath, "plugins")); !os.IsNotExist(err) {
		t.Errorf("plugins should not be backed up")
	}
}

func TestCreateBackupWithoutSubdirs(t *testing.T) {
	m := setupTestManager(t)

	backupPath, err := m.CreateBackup(t.TempDir(), "Fleet_")
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}
	entries, err := os.ReadDir(backupPath)
	if err != nil {
		t.Fatalf("backup dir missing: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty backup, got %d entries", len(entries))
	}
}

func TestBackupRestoreRoundTrip(t *testing.T) {
	m := setupTestManager(t)
	configPath := t.TempDir()
	content := []byte("line one\r\nline two\x00\n")
	writeFile(t, filepath.Join(configPath, "options", "F"), content)

	backupPath, err := m.CreateBackup(configPath, "GoLand_2024.3")
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}

	target := t.TempDir()
	writeFile(t, filepath.Join(target, "options", "stale.xml"), []byte("old"))

	if err := m.RestoreBackup(backupPath, target); err != nil {
		t.Fatalf("RestoreBackup() error = %v", err)
	}

	got, err := os.ReadFile(filepath.Join(target, "options", "F"))
	if err != nil {
		t.Fatalf("restored file missing: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("restored content = %q, want %q", got, content)
	}
	if _, err := os.Stat(filepath.Join(target, "options", "stale.xml")); !os.IsNotExist(err) {
		t.Errorf("options should be replaced wholesale")
	}
}

func TestListBackupsMissingRoot(t *testing.T) {
	m := setupTestManager(t)

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestListBackupsNewestFirst(t *testing.T) {
	m := setupTestManager(t)
	base := time.Now().Add(-time.Hour)

	names := []string{"CLion_2024.1_a", "CLion_2024.1_b", "CLion_2024.1_c"}
	for i, name := range names {
		dir := filepath.Join(m.Root(), name)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
		mtime := base.Add(time.Duration(i) * time.Minute)
		if err := os.Chtimes(dir, mtime, mtime); err != nil {
			t.Fatal(err)
		}
	}
	writeFile(t, filepath.Join(m.Root(), "stray.txt"), []byte("x"))

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() error = %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(backups))
	}
	for i, want := range []string{"CLion_2024.1_c", "CLion_2024.1_b", "CLion_2024.1_a"} {
		if backups[i].Name != want {
			t.Errorf("backups[%d] = %s, want %s", i, backups[i].Name, want)
		}
		if !strings.HasPrefix(backups[i].Path, m.Root()) {
			t.Errorf("backups[%d] path = %s", i, backups[i].Path)
		}
	}
}

func TestDeleteBackup(t *testing.T) {
	m := setupTestManager(t)
	configPath := t.TempDir()
	writeFile(t, filepath.Join(configPath, "options", "other.xml"), []byte("<xml/>"))

	backupPath, err := m.CreateBackup(configPath, "Rider_2024.2")
	if err != nil {
		t.Fatalf("CreateBackup() error = %v", err)
	}
	if err := m.DeleteBackup(backupPath); err != nil {
		t.Fatalf("DeleteBackup() error = %v", err)
	}
	if _, err := os.Stat(backupPath); !os.IsNotExist(err) {
		t.Errorf("backup still exists after delete")
	}

	if err := m.DeleteBackup(backupPath); err == nil {
		t.Error("expected error deleting missing backup")
	}
}
