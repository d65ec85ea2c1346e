package convert

import (
	"context"

	"github.com/ytget/image-converter/internal/model"
)

// Converter defines the interface for the conversion service.
type Converter interface {
	SetUpdateCallback(func(model.Stage))
	SelectFile(src model.SourceFile) error
	SelectPath(path string) error
	SetFormat(f model.Format) error
	Format() model.Format
	Source() (model.SourceFile, bool)
	Result() (*model.ConvertedResult, bool)
	Stage() model.Stage
	Convert(ctx context.Context) error
	Download(ctx context.Context) error
}

// Notifier receives transient user-visible messages. Implementations render
// them; the pipeline never waits on them.
type Notifier interface {
	Notify(n model.Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(model.Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n model.Notification) {
	f(n)
}

// Saver is the host capability "save these bytes under this name".
type Saver interface {
	Save(ctx context.Context, name string, data []byte) error
}

// SaverFunc adapts a function to the Saver interface.
type SaverFunc func(ctx context.Context, name string, data []byte) error

// Save calls f(ctx, name, data).
func (f SaverFunc) Save(ctx context.Context, name string, data []byte) error {
	return f(ctx, name, data)
}
