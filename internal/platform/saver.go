package platform

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DirSaver saves converted images into a directory without overwriting
// existing files.
type DirSaver struct {
	Dir string

	// OnSaved is called with the final path after a successful save
	OnSaved func(path string)
}

// NewDirSaver creates a saver writing into dir
func NewDirSaver(dir string) *DirSaver {
	return &DirSaver{Dir: dir}
}

// Save writes data to Dir under name, picking "name (n).ext" if name is taken
func (d *DirSaver) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if name == "" || filepath.Base(name) != name {
		return fmt.Errorf("invalid file name %q", name)
	}
	if err := CreateDirectoryIfNotExists(d.Dir); err != nil {
		return fmt.Errorf("creating %s: %w", d.Dir, err)
	}

	path, err := UniquePath(d.Dir, name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	_ = NotifyMediaScanner(path)
	if d.OnSaved != nil {
		d.OnSaved(path)
	}
	return nil
}
