package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "image-converter.png"
)

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// LogoOrDefault returns the logo, or the theme's image icon when the file is missing
func LogoOrDefault() fyne.Resource {
	if res, err := LoadLogoResource(); err == nil {
		return res
	}
	return theme.FileImageIcon()
}
