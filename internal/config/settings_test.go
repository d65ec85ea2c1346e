package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/image-converter/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Error("Download directory should not be empty")
	}

	// Default is persisted on first read
	if app.Preferences().String(KeyDownloadDir) != dir {
		t.Error("Default download directory should be stored in preferences")
	}

	customDir := "/custom/images"
	settings.SetDownloadDirectory(customDir)

	retrievedDir := settings.GetDownloadDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, retrievedDir)
	}
}

func TestTargetFormat(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if f := settings.GetTargetFormat(); f != DefaultTargetFormat {
		t.Errorf("Expected default format %s, got %s", DefaultTargetFormat, f)
	}

	settings.SetTargetFormat(model.FormatWEBP)
	if f := settings.GetTargetFormat(); f != model.FormatWEBP {
		t.Errorf("Expected format %s, got %s", model.FormatWEBP, f)
	}

	// Unknown formats fall back to the default
	settings.SetTargetFormat(model.Format("tiff"))
	if f := settings.GetTargetFormat(); f != DefaultTargetFormat {
		t.Errorf("Unknown format should reset to %s, got %s", DefaultTargetFormat, f)
	}

	// Garbage written by an older version is repaired on read
	app.Preferences().SetString(KeyTargetFormat, "bogus")
	if f := settings.GetTargetFormat(); f != DefaultTargetFormat {
		t.Errorf("Invalid stored format should read as %s, got %s", DefaultTargetFormat, f)
	}
	if stored := app.Preferences().String(KeyTargetFormat); stored != DefaultTargetFormat.String() {
		t.Errorf("Invalid stored format should be repaired, got %q", stored)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("pt")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "pt" {
		t.Errorf("Expected language 'pt', got %s", retrievedLang)
	}
}

func TestSaveBehaviour(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAskSaveLocation() != DefaultAskSaveLocation {
		t.Errorf("Expected ask-save default %v", DefaultAskSaveLocation)
	}
	if settings.GetAutoRevealSaved() != DefaultAutoRevealSaved {
		t.Errorf("Expected auto-reveal default %v", DefaultAutoRevealSaved)
	}

	settings.SetAskSaveLocation(false)
	settings.SetAutoRevealSaved(true)

	if settings.GetAskSaveLocation() {
		t.Error("Ask-save should be disabled")
	}
	if !settings.GetAutoRevealSaved() {
		t.Error("Auto-reveal should be enabled")
	}
}

func TestGetFormatOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetFormatOptions()
	expectedOptions := []model.Format{model.FormatPNG, model.FormatJPEG, model.FormatWEBP}

	if len(options) != len(expectedOptions) {
		t.Fatalf("Expected %d format options, got %d", len(expectedOptions), len(options))
	}

	for i, expected := range expectedOptions {
		if options[i] != expected {
			t.Errorf("Format option %d: expected %s, got %s", i, expected, options[i])
		}
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
