package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconClose  = "×"
	IconImage  = "🖼"
	IconGames  = "👥"
	IconTrophy = "🏆"
	IconStar   = "⭐"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Layout sizing
const (
	PreviewMaxWidth   float32 = 480
	PreviewMaxHeight  float32 = 320
	DropZoneMinHeight float32 = 140
	SelectMinWidth    float32 = 120
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 96
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 360
)

// File size formatting
const (
	FileSizeUnit  = 1024
	FileSizeUnits = "KMGTPE"
)
