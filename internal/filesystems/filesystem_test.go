package filesystems_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/auditdb/stackgen/internal/filesystems"
)

func TestMemoryFS_AddFile(t *testing.T) {
	mfs := filesystems.NewMemoryFS()
	content := []byte("hello world")
	mfs.AddFile("test.txt", content)

	result, err := mfs.ReadFile("test.txt")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if string(result) != "hello world" {
		t.Fatalf("expected 'hello world', got '%s'", string(result))
	}
}

func TestMemoryFS_ReadFile_NotFound(t *testing.T) {
	mfs := filesystems.NewMemoryFS()

	_, err := mfs.ReadFile("nonexistent.txt")
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestMemoryFS_WriteFile(t *testing.T) {
	mfs := filesystems.NewMemoryFS()
	data := []byte("first")
	if err := mfs.WriteFile("./out/Dockerfile", data, 0o600); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	data[0] = 'X'

	content, err := mfs.ReadFile("out/Dockerfile")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(content) != "first" {
		t.Errorf("expected stored copy 'first', got '%s'", string(content))
	}
	if mode, _ := mfs.Mode("out/Dockerfile"); mode != 0o600 {
		t.Errorf("expected mode 0600, got %o", mode)
	}

	if err := mfs.WriteFile("out/Dockerfile", []byte("second"), 0o644); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	content, _ = mfs.ReadFile("out/Dockerfile")
	if string(content) != "second" {
		t.Errorf("expected overwrite, got '%s'", string(content))
	}
}

func TestMemoryFS_Files(t *testing.T) {
	mfs := filesystems.NewMemoryFS()
	mfs.AddFile("b.txt", nil)
	mfs.AddFile("a.txt", nil)

	if files := mfs.Files(); !slices.Equal(files, []string{"a.txt", "b.txt"}) {
		t.Errorf("expected sorted files, got %v", files)
	}
	if !filesystems.Exists(mfs, "a.txt") || filesystems.Exists(mfs, "c.txt") {
		t.Errorf("unexpected Exists result")
	}
}

func TestLocalFS_WriteFile(t *testing.T) {
	root := t.TempDir()
	lfs := filesystems.NewLocalFS(root)

	if err := lfs.WriteFile("nested/docker-compose.yml", []byte("services: {}\n"), 0o644); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	content, err := os.ReadFile(filepath.Join(root, "nested", "docker-compose.yml"))
	if err != nil {
		t.Fatalf("expected file on disk, got %v", err)
	}
	if string(content) != "services: {}\n" {
		t.Errorf("unexpected content '%s'", string(content))
	}

	read, err := lfs.ReadFile("nested/docker-compose.yml")
	if err != nil || string(read) != string(content) {
		t.Errorf("expected ReadFile to resolve against the root, got %v", err)
	}

	if _, err := lfs.ReadFile("missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}
