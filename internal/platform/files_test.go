package platform

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirNested(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "a", "b", "proj")

	if err := (OSFileSystem{}).CreateDir(dir); err != nil {
		t.Fatalf("CreateDir failed: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", dir)
	}
}

func TestCreateDirExisting(t *testing.T) {
	tmp := t.TempDir()

	err := (OSFileSystem{}).CreateDir(tmp)
	if !errors.Is(err, ErrExists) {
		t.Fatalf("CreateDir on existing dir = %v, want ErrExists", err)
	}
}

func TestCreateDirOverFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "file")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if err := (OSFileSystem{}).CreateDir(path); !errors.Is(err, ErrExists) {
		t.Fatalf("CreateDir over a file = %v, want ErrExists", err)
	}
}

func TestCreateTruncates(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "in.txt")
	if err := os.WriteFile(path, []byte("old content"), 0644); err != nil {
		t.Fatal(err)
	}

	f, err := (OSFileSystem{}).Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := io.WriteString(f, "new"); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Errorf("content = %q, want %q", string(data), "new")
	}
}

func TestCreateMissingParent(t *testing.T) {
	tmp := t.TempDir()
	if _, err := (OSFileSystem{}).Create(filepath.Join(tmp, "missing", "x")); err == nil {
		t.Fatal("expected error creating file in a missing directory")
	}
}
