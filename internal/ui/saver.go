package ui

import (
	"context"
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/ytget/image-converter/internal/config"
	"github.com/ytget/image-converter/internal/platform"
)

// HostSaver is the desktop "save these bytes under this name" capability.
// Depending on settings it asks for a location with the save dialog or writes
// straight into the download directory.
type HostSaver struct {
	window   fyne.Window
	settings *config.Settings
}

// NewHostSaver creates a saver bound to window
func NewHostSaver(window fyne.Window, settings *config.Settings) *HostSaver {
	return &HostSaver{window: window, settings: settings}
}

// Save stores data under name. It must not be called on the UI goroutine
// when the save dialog is enabled, since it waits for the dialog to close.
// The wait ends when ctx is done, so a dialog closed without answering
// cannot block the caller forever.
func (h *HostSaver) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !h.settings.GetAskSaveLocation() {
		saver := platform.NewDirSaver(h.settings.GetDownloadDirectory())
		saver.OnSaved = h.onSaved
		return saver.Save(ctx, name, data)
	}

	done := make(chan error, 1)
	fyne.Do(func() {
		h.showSaveDialog(name, data, done)
	})

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// showSaveDialog opens the save dialog prefilled with name in the download directory
func (h *HostSaver) showSaveDialog(name string, data []byte, done chan<- error) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			done <- err
			return
		}
		if writer == nil {
			log.Printf("Save of %s canceled", name)
			done <- nil
			return
		}
		err = writeAndClose(writer, data)
		done <- err
		if err == nil && writer.URI().Scheme() == "file" {
			h.onSaved(writer.URI().Path())
		}
	}, h.window)

	fd.SetFileName(name)
	dir := h.settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err == nil {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			fd.SetLocation(lister)
		}
	}
	fd.Show()
}

// writeAndClose writes data to writer and closes it, reporting the first error
func writeAndClose(writer fyne.URIWriteCloser, data []byte) error {
	_, writeErr := writer.Write(data)
	closeErr := writer.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		return fmt.Errorf("writing %s: %w", writer.URI(), err)
	}
	return nil
}

// onSaved logs the saved path and reveals it when enabled
func (h *HostSaver) onSaved(path string) {
	log.Printf("Saved converted image: %s", path)
	if !h.settings.GetAutoRevealSaved() {
		return
	}
	if err := platform.OpenFileInManager(path); err != nil {
		log.Printf("Error revealing file %s: %v", path, err)
	}
}
