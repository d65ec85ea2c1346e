package convert

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ytget/image-converter/internal/codec"
	"github.com/ytget/image-converter/internal/model"
	"github.com/ytget/image-converter/internal/platform"
)

var (
	// ErrInvalidFileType is returned when the selected file is not declared as an image
	ErrInvalidFileType = errors.New("invalid file type")

	// ErrConversionFailed wraps every decode, surface or encode failure
	ErrConversionFailed = errors.New("conversion failed")

	// ErrConversionInProgress is returned when Convert is triggered while a
	// conversion of the same selection is still running
	ErrConversionInProgress = errors.New("conversion already in progress")

	errNoSaver = errors.New("no saver configured")
)

// Service handles image conversion for one converter screen
type Service struct {
	mu       sync.Mutex
	notifier Notifier
	saver    Saver
	onUpdate func(model.Stage) // callback for UI updates

	format model.Format
	source *model.SourceFile
	result *model.ConvertedResult
	stage  model.Stage

	// generation increments on every accepted file pick; a conversion only
	// stores its result if the generation it started under is still current.
	generation uint64
	running    bool
	runningGen uint64
}

// Option configures a Service
type Option func(*Service)

// WithFormat sets the initially selected target format
func WithFormat(f model.Format) Option {
	return func(s *Service) {
		if f.IsValid() {
			s.format = f
		}
	}
}

// NewService creates a new conversion service
func NewService(notifier Notifier, saver Saver, opts ...Option) *Service {
	s := &Service{
		notifier: notifier,
		saver:    saver,
		format:   model.DefaultFormat,
		stage:    model.StageIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetUpdateCallback sets the callback function for stage updates
func (s *Service) SetUpdateCallback(callback func(model.Stage)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SelectFile validates and accepts a newly picked source file. An invalid
// pick emits one notification and leaves all state untouched. A valid pick
// replaces the source and clears any existing result immediately.
func (s *Service) SelectFile(src model.SourceFile) error {
	if !src.IsImage() {
		log.Printf("Rejected %q: declared media type %q is not an image", src.Name, src.MediaType)
		s.notify(model.InvalidFileType)
		return fmt.Errorf("%w: %s (%s)", ErrInvalidFileType, src.Name, src.MediaType)
	}

	s.mu.Lock()
	s.source = &src
	s.result = nil
	s.generation++
	resetStage := s.stage != model.StageIdle
	s.stage = model.StageIdle
	callback := s.onUpdate
	s.mu.Unlock()

	log.Printf("Selected %q (%s, %d bytes)", src.Name, src.MediaType, src.Size())
	if resetStage && callback != nil {
		callback(model.StageIdle)
	}
	return nil
}

// SelectPath reads a file from disk and selects it, declaring its media type
// from the file extension.
func (s *Service) SelectPath(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return s.SelectFile(model.SourceFile{
		Name:      filepath.Base(path),
		MediaType: platform.MediaTypeOf(path),
		Data:      data,
	})
}

// SetFormat changes the format the next conversion targets. It never
// invalidates an existing result.
func (s *Service) SetFormat(f model.Format) error {
	if !f.IsValid() {
		return fmt.Errorf("%w: %q", model.ErrUnknownFormat, f)
	}
	s.mu.Lock()
	s.format = f
	s.mu.Unlock()
	return nil
}

// Format returns the currently selected target format
func (s *Service) Format() model.Format {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.format
}

// Source returns the selected source file, if any
func (s *Service) Source() (model.SourceFile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.source == nil {
		return model.SourceFile{}, false
	}
	return *s.source, true
}

// Result returns the converted result, if any
func (s *Service) Result() (*model.ConvertedResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.result != nil
}

// Stage returns the stage of the current selection's conversion
func (s *Service) Stage() model.Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// Convert runs decode -> draw -> encode for the selected source in the
// selected format. Without a source it is a silent no-op. Failures emit a
// single notification, keep the source selected and leave any previous
// result in place.
func (s *Service) Convert(ctx context.Context) error {
	s.mu.Lock()
	if s.source == nil {
		s.mu.Unlock()
		return nil
	}
	if s.running && s.runningGen == s.generation {
		s.mu.Unlock()
		return ErrConversionInProgress
	}
	gen := s.generation
	src := *s.source
	format := s.format
	s.running = true
	s.runningGen = gen
	s.mu.Unlock()

	defer s.release(gen)

	log.Printf("Converting %q to %s", src.Name, format)
	result, err := s.run(ctx, gen, src, format)
	if err != nil {
		if !s.setStage(gen, model.StageFailed) {
			log.Printf("Discarding failed conversion of %q: selection changed", src.Name)
			return nil
		}
		log.Printf("Conversion of %q to %s failed: %v", src.Name, format, err)
		s.notify(model.ConversionFailed)
		return fmt.Errorf("%w: %w", ErrConversionFailed, err)
	}

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		log.Printf("Discarding conversion of %q: selection changed", src.Name)
		return nil
	}
	s.result = result
	s.stage = model.StageDone
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(model.StageDone)
	}
	log.Printf("Conversion %s finished: %s %s, %d bytes", result.ID, result.Dimensions(), result.Format, len(result.Data))
	s.notify(model.ConversionSucceeded)
	return nil
}

// run performs the pipeline steps. Only decoding suspends.
func (s *Service) run(ctx context.Context, gen uint64, src model.SourceFile, format model.Format) (*model.ConvertedResult, error) {
	s.setStage(gen, model.StageDecoding)
	img, err := codec.Decode(ctx, src.Data)
	if err != nil {
		return nil, err
	}

	s.setStage(gen, model.StageDrawing)
	surface, err := codec.SurfaceFor(img)
	if err != nil {
		return nil, err
	}
	codec.Draw(surface, img)

	s.setStage(gen, model.StageEncoding)
	data, err := codec.Encode(surface, format)
	if err != nil {
		return nil, err
	}

	b := surface.Bounds()
	return &model.ConvertedResult{
		ID:         model.NewResultID(),
		SourceName: src.Name,
		Format:     format,
		Data:       data,
		Width:      b.Dx(),
		Height:     b.Dy(),
		CreatedAt:  time.Now(),
	}, nil
}

// Download hands the converted result to the Saver under
// "converted-image.<ext>", where ext comes from the format stamped on the
// result. Without a result it is a silent no-op. No notification is emitted
// either way.
func (s *Service) Download(ctx context.Context) error {
	s.mu.Lock()
	result := s.result
	s.mu.Unlock()

	if result == nil {
		return nil
	}
	if s.saver == nil {
		return errNoSaver
	}

	name := result.FileName()
	if err := s.saver.Save(ctx, name, result.Data); err != nil {
		log.Printf("Saving %s failed: %v", name, err)
		return fmt.Errorf("saving %s: %w", name, err)
	}
	return nil
}

// setStage records a stage transition for generation gen and reports it.
// It returns false when gen is no longer the current selection.
func (s *Service) setStage(gen uint64, stage model.Stage) bool {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return false
	}
	s.stage = stage
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(stage)
	}
	return true
}

// release clears the in-flight flag if it still belongs to gen
func (s *Service) release(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running && s.runningGen == gen {
		s.running = false
	}
}

// notify calls the notifier if set
func (s *Service) notify(n model.Notification) {
	if s.notifier != nil {
		s.notifier.Notify(n)
	}
}
