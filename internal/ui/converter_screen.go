package ui

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-converter/internal/config"
	"github.com/ytget/image-converter/internal/convert"
	"github.com/ytget/image-converter/internal/model"
	"github.com/ytget/image-converter/internal/platform"
)

// ConverterScreen renders the conversion pipeline state and forwards user
// actions to the conversion service
type ConverterScreen struct {
	ctx      context.Context
	window   fyne.Window
	svc      convert.Converter
	settings *config.Settings
	loc      *Localization
	onBack   func()

	// UI components
	chooseBtn    *widget.Button
	fileLabel    *widget.Label
	formatSelect *widget.Select
	formatRow    *fyne.Container
	convertBtn   *widget.Button
	progress     *widget.ProgressBarInfinite
	stageLabel   *widget.Label
	preview      *canvas.Image
	resultLabel  *widget.Label
	downloadBtn  *widget.Button
	resultBox    *fyne.Container
	content      fyne.CanvasObject

	shownResultID string
}

// NewConverterScreen creates the converter screen for svc. Conversions and
// saves started from the screen stop when ctx is canceled.
func NewConverterScreen(ctx context.Context, window fyne.Window, svc convert.Converter, settings *config.Settings, loc *Localization, onBack func()) *ConverterScreen {
	if ctx == nil {
		ctx = context.Background()
	}
	s := &ConverterScreen{
		ctx:      ctx,
		window:   window,
		svc:      svc,
		settings: settings,
		loc:      loc,
		onBack:   onBack,
	}

	s.createUI()
	s.svc.SetUpdateCallback(s.onStageUpdate)
	s.refresh()
	return s
}

// Content returns the screen's root object
func (s *ConverterScreen) Content() fyne.CanvasObject {
	return s.content
}

// createUI creates the converter screen UI
func (s *ConverterScreen) createUI() {
	backBtn := widget.NewButtonWithIcon(s.loc.GetText(KeyBack), theme.NavigateBackIcon(), func() {
		if s.onBack != nil {
			s.onBack()
		}
	})
	backBtn.Importance = widget.LowImportance

	title := centeredText(IconImage+" "+s.loc.GetText(KeyConverterTitle), theme.SizeNameHeadingText, true)

	// Picker area
	icon := widget.NewIcon(theme.FileImageIcon())
	s.chooseBtn = widget.NewButtonWithIcon(s.loc.GetText(KeyChooseImage), theme.FolderOpenIcon(), s.onChooseFile)
	s.fileLabel = widget.NewLabel(s.loc.GetText(KeyNoFileSelected))
	s.fileLabel.Alignment = fyne.TextAlignCenter
	s.fileLabel.Truncation = fyne.TextTruncateEllipsis
	hint := widget.NewLabel(s.loc.GetText(KeyDropHint))
	hint.Alignment = fyne.TextAlignCenter
	hint.Importance = widget.LowImportance

	dropZoneBorder := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	dropZoneBorder.StrokeColor = theme.Color(theme.ColorNamePrimary)
	dropZoneBorder.StrokeWidth = 2
	dropZoneBorder.CornerRadius = theme.InputRadiusSize()
	dropZoneBorder.SetMinSize(fyne.NewSize(0, DropZoneMinHeight))
	dropZone := container.NewStack(dropZoneBorder, container.NewCenter(container.NewVBox(
		container.NewCenter(icon),
		container.NewCenter(s.chooseBtn),
		hint,
		s.fileLabel,
	)))

	// Format and convert row, shown once a file is selected
	labels := make([]string, 0, len(model.Formats()))
	for _, f := range model.Formats() {
		labels = append(labels, f.Label())
	}
	s.formatSelect = widget.NewSelect(labels, nil)
	s.formatSelect.SetSelected(s.svc.Format().Label())
	s.formatSelect.OnChanged = s.onFormatChanged

	s.convertBtn = widget.NewButtonWithIcon(s.loc.GetText(KeyConvert), theme.UploadIcon(), s.onConvert)
	s.convertBtn.Importance = widget.HighImportance

	s.progress = widget.NewProgressBarInfinite()
	s.progress.Hide()
	s.stageLabel = widget.NewLabel("")

	s.formatRow = container.NewVBox(
		container.NewCenter(container.NewHBox(
			widget.NewLabel(s.loc.GetText(KeyTargetFormat)),
			container.NewGridWrap(fyne.NewSize(SelectMinWidth, s.formatSelect.MinSize().Height), s.formatSelect),
			s.convertBtn,
		)),
		s.progress,
		container.NewCenter(s.stageLabel),
	)

	// Result preview and download
	s.preview = canvas.NewImageFromResource(nil)
	s.preview.FillMode = canvas.ImageFillContain
	s.preview.ScaleMode = canvas.ImageScaleSmooth
	s.preview.SetMinSize(fyne.NewSize(PreviewMaxWidth, PreviewMaxHeight))

	s.resultLabel = widget.NewLabel("")
	s.resultLabel.Alignment = fyne.TextAlignCenter

	s.downloadBtn = widget.NewButtonWithIcon(s.loc.GetText(KeyDownload), theme.DownloadIcon(), s.onDownload)

	previewCaption := widget.NewLabelWithStyle(s.loc.GetText(KeyConvertedAlt), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	s.resultBox = container.NewVBox(
		widget.NewSeparator(),
		previewCaption,
		s.preview,
		s.resultLabel,
		container.NewCenter(s.downloadBtn),
	)

	card := widget.NewCard("", "", container.NewVBox(dropZone, s.formatRow, s.resultBox))

	body := container.NewVBox(
		container.NewHBox(backBtn),
		title,
		card,
	)

	background := canvas.NewHorizontalGradient(ColorBrandPurple, ColorBrandBlush)
	s.content = container.NewStack(background, container.NewVScroll(container.NewPadded(body)))
}

// onChooseFile opens the file dialog, limited to image files like an
// accept="image/*" input
func (s *ConverterScreen) onChooseFile() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.Printf("File dialog error: %v", err)
			return
		}
		if reader == nil {
			return // canceled
		}
		s.loadFromReader(reader)
	}, s.window)
	fd.SetFilter(storage.NewExtensionFileFilter(platform.ImageExtensions))
	fd.Show()
}

// HandleDrop accepts the first dropped file. Dropped files are not filtered,
// so non-images reach the media type check.
func (s *ConverterScreen) HandleDrop(uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}
	reader, err := storage.Reader(uris[0])
	if err != nil {
		log.Printf("Cannot open dropped file %s: %v", uris[0], err)
		dialog.ShowError(fmt.Errorf("%s: %w", s.loc.GetText(KeyErrorOpeningFile), err), s.window)
		return
	}
	s.loadFromReader(reader)
}

// loadFromReader reads a picked file and hands it to the service
func (s *ConverterScreen) loadFromReader(reader fyne.URIReadCloser) {
	src, err := readSource(reader)
	if err != nil {
		log.Printf("Reading %s failed: %v", reader.URI(), err)
		dialog.ShowError(fmt.Errorf("%s: %w", s.loc.GetText(KeyErrorReadingFile), err), s.window)
		return
	}
	s.LoadSource(src)
}

// LoadSource selects src. Invalid picks are reported by the service's
// notifier and leave the screen unchanged.
func (s *ConverterScreen) LoadSource(src model.SourceFile) {
	if err := s.svc.SelectFile(src); err != nil {
		log.Printf("File rejected: %v", err)
		return
	}
	s.refresh()
}

// onFormatChanged forwards the selector value to the service and remembers it
func (s *ConverterScreen) onFormatChanged(label string) {
	f, err := model.FormatFromLabel(label)
	if err != nil {
		log.Printf("Unknown format label %q", label)
		return
	}
	if err := s.svc.SetFormat(f); err != nil {
		log.Printf("SetFormat: %v", err)
		return
	}
	s.settings.SetTargetFormat(f)
}

// onConvert runs the conversion off the UI goroutine
func (s *ConverterScreen) onConvert() {
	s.convertBtn.Disable()
	go func() {
		if err := s.svc.Convert(s.ctx); err != nil {
			log.Printf("Convert: %v", err)
		}
		fyne.Do(s.refresh)
	}()
}

// onDownload hands the result to the saver. The save dialog needs the UI
// goroutine free, so the service call runs in the background.
func (s *ConverterScreen) onDownload() {
	go func() {
		if err := s.svc.Download(s.ctx); err != nil {
			log.Printf("Download: %v", err)
		}
	}()
}

// onStageUpdate is the service's update callback
func (s *ConverterScreen) onStageUpdate(stage model.Stage) {
	log.Printf("Conversion stage: %s", stage)
	fyne.Do(s.refresh)
}

// refresh syncs every widget with the service state
func (s *ConverterScreen) refresh() {
	src, hasSource := s.svc.Source()
	if hasSource {
		s.fileLabel.SetText(src.Name + MiddleDotSeparator + formatFileSize(int64(src.Size())))
		s.formatRow.Show()
	} else {
		s.fileLabel.SetText(s.loc.GetText(KeyNoFileSelected))
		s.formatRow.Hide()
	}

	stage := s.svc.Stage()
	if stage.IsActive() {
		s.convertBtn.Disable()
		s.progress.Show()
		s.progress.Start()
	} else {
		s.convertBtn.Enable()
		s.progress.Stop()
		s.progress.Hide()
	}
	s.stageLabel.SetText(s.loc.StageText(stage))

	result, ok := s.svc.Result()
	if !ok {
		s.shownResultID = ""
		s.preview.Resource = nil
		s.preview.Refresh()
		s.resultBox.Hide()
		return
	}

	if result.ID != s.shownResultID {
		s.shownResultID = result.ID
		s.preview.Resource = fyne.NewStaticResource(result.FileName(), result.Data)
		s.preview.Refresh()
	}
	s.resultLabel.SetText(strings.Join([]string{
		result.Format.Label(),
		result.Dimensions(),
		formatFileSize(int64(len(result.Data))),
	}, MiddleDotSeparator))
	s.resultBox.Show()
}

// readSource reads a picked file and declares its media type from the name
func readSource(reader fyne.URIReadCloser) (model.SourceFile, error) {
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return model.SourceFile{}, err
	}

	uri := reader.URI()
	return model.SourceFile{
		Name:      uri.Name(),
		MediaType: mediaTypeOf(uri),
		Data:      data,
	}, nil
}

// mediaTypeOf uses the extension, falling back to what the storage
// repository reports for names without one (Android content URIs)
func mediaTypeOf(uri fyne.URI) string {
	mediaType := platform.MediaTypeOf(uri.Name())
	if mediaType != platform.DefaultMediaType {
		return mediaType
	}
	if repoType := uri.MimeType(); repoType != "" && uri.Extension() == "" {
		return repoType
	}
	return mediaType
}

// formatFileSize formats file size in bytes to human readable format
func formatFileSize(bytes int64) string {
	if bytes < FileSizeUnit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(FileSizeUnit), 0
	for n := bytes / FileSizeUnit; n >= FileSizeUnit; n /= FileSizeUnit {
		div *= FileSizeUnit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), FileSizeUnits[exp])
}
