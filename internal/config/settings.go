package config

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/ytget/image-converter/internal/model"
	"github.com/ytget/image-converter/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir     = "download_directory"
	KeyTargetFormat    = "target_format"
	KeyLanguage        = "app_language"
	KeyAskSaveLocation = "ask_save_location"
	KeyAutoRevealSaved = "auto_reveal_on_save"
)

// Default values
const (
	DefaultTargetFormat    = model.DefaultFormat
	DefaultLanguage        = "system"
	DefaultAskSaveLocation = true
	DefaultAutoRevealSaved = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the directory converted images are saved to
// when the save dialog is skipped
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = filepath.Join(os.TempDir(), "converted-images")
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetTargetFormat returns the format preselected on the converter screen
func (s *Settings) GetTargetFormat() model.Format {
	f, err := model.ParseFormat(s.app.Preferences().String(KeyTargetFormat))
	if err != nil {
		s.SetTargetFormat(DefaultTargetFormat)
		return DefaultTargetFormat
	}
	return f
}

// SetTargetFormat sets the preselected format. Unknown formats reset it to the default.
func (s *Settings) SetTargetFormat(f model.Format) {
	if !f.IsValid() {
		f = DefaultTargetFormat
	}
	s.app.Preferences().SetString(KeyTargetFormat, f.String())
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAskSaveLocation returns whether Download opens a save dialog instead of
// writing straight into the download directory
func (s *Settings) GetAskSaveLocation() bool {
	return s.app.Preferences().BoolWithFallback(KeyAskSaveLocation, DefaultAskSaveLocation)
}

// SetAskSaveLocation sets whether Download opens a save dialog
func (s *Settings) SetAskSaveLocation(ask bool) {
	s.app.Preferences().SetBool(KeyAskSaveLocation, ask)
}

// GetAutoRevealSaved returns whether to reveal saved images in the file manager
func (s *Settings) GetAutoRevealSaved() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealSaved, DefaultAutoRevealSaved)
}

// SetAutoRevealSaved sets whether to reveal saved images in the file manager
func (s *Settings) SetAutoRevealSaved(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealSaved, autoReveal)
}

// GetFormatOptions returns the target formats in selector order
func (s *Settings) GetFormatOptions() []model.Format {
	return model.Formats()
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
