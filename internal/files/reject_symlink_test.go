package files

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestRejectSymlinkPath_PlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analysis.log")
	if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := RejectSymlinkPath(path); err != nil {
		t.Fatalf("plain file rejected: %v", err)
	}
}

func TestRejectSymlinkPath_MissingFileAllowed(t *testing.T) {
	dir := t.TempDir()
	if err := RejectSymlinkPath(filepath.Join(dir, "not-created-yet.log")); err != nil {
		t.Fatalf("missing target should be allowed: %v", err)
	}
}

func TestRejectSymlinkPath_EmptyPath(t *testing.T) {
	if err := RejectSymlinkPath("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestRejectSymlinkPath_Symlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}
	dir := t.TempDir()
	target := filepath.Join(dir, "real.log")
	if err := os.WriteFile(target, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "link.log")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}
	if err := RejectSymlinkPath(link); err == nil {
		t.Fatal("expected symlink to be rejected")
	}
}
