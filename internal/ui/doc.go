package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It hosts the landing screen and the converter screen, wires user actions to the
// conversion service and renders notifications as toasts. All UI strings are
// localized via Localization.
