package platform

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if downloadsDir == "" {
		t.Fatal("Downloads directory is empty")
	}

	// Both the desktop and the Android location end with a Download(s) folder
	if !strings.HasPrefix(filepath.Base(downloadsDir), "Download") {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.png")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_EmptyPath(t *testing.T) {
	err := OpenFileWithDefaultApp("  ")
	if err == nil {
		t.Fatal("Expected error for empty path, got nil")
	}
	if !strings.Contains(err.Error(), "file path is empty") {
		t.Errorf("Expected 'file path is empty' error, got: %v", err)
	}
}

func TestUniquePath(t *testing.T) {
	dir := t.TempDir()

	first, err := UniquePath(dir, "converted-image.png")
	if err != nil {
		t.Fatalf("UniquePath failed: %v", err)
	}
	if first != filepath.Join(dir, "converted-image.png") {
		t.Errorf("Expected plain name for free path, got %s", first)
	}

	if err := os.WriteFile(first, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	second, err := UniquePath(dir, "converted-image.png")
	if err != nil {
		t.Fatalf("UniquePath failed: %v", err)
	}
	if second != filepath.Join(dir, "converted-image (1).png") {
		t.Errorf("Expected numbered name, got %s", second)
	}

	if err := os.WriteFile(second, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	third, err := UniquePath(dir, "converted-image.png")
	if err != nil {
		t.Fatalf("UniquePath failed: %v", err)
	}
	if third != filepath.Join(dir, "converted-image (2).png") {
		t.Errorf("Expected second numbered name, got %s", third)
	}
}

func TestDirSaver_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	var saved []string
	saver := NewDirSaver(dir)
	saver.OnSaved = func(path string) { saved = append(saved, path) }

	for i := 0; i < 2; i++ {
		if err := saver.Save(context.Background(), "converted-image.webp", []byte("RIFF")); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	if len(saved) != 2 {
		t.Fatalf("Expected 2 saved paths, got %d", len(saved))
	}
	if filepath.Base(saved[0]) != "converted-image.webp" {
		t.Errorf("Unexpected first name: %s", saved[0])
	}
	if filepath.Base(saved[1]) != "converted-image (1).webp" {
		t.Errorf("Unexpected second name: %s", saved[1])
	}

	data, err := os.ReadFile(saved[1])
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if string(data) != "RIFF" {
		t.Errorf("Saved content = %q, expected %q", data, "RIFF")
	}
}

func TestDirSaver_RejectsPathNames(t *testing.T) {
	saver := NewDirSaver(t.TempDir())

	for _, name := range []string{"", "../escape.png", "sub/dir.png"} {
		if err := saver.Save(context.Background(), name, []byte("x")); err == nil {
			t.Errorf("Expected error for name %q", name)
		}
	}
}

func TestDirSaver_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	if err := NewDirSaver(dir).Save(ctx, "converted-image.png", []byte("x")); err == nil {
		t.Fatal("Expected error for canceled context")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("Expected nothing written, found %d entries", len(entries))
	}
}

func TestMediaTypeOf(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"photo.png", "image/png"},
		{"photo.JPG", "image/jpeg"},
		{"/a/b/photo.jpeg", "image/jpeg"},
		{"anim.gif", "image/gif"},
		{"pic.webp", "image/webp"},
		{"scan.tiff", "image/tiff"},
		{"notes.txt", "text/plain"},
		{"README", DefaultMediaType},
		{"archive.unknownext", DefaultMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := MediaTypeOf(tt.path); got != tt.expected {
				t.Errorf("MediaTypeOf(%q) = %q, expected %q", tt.path, got, tt.expected)
			}
		})
	}
}
