package model

// Severity distinguishes informational notifications from error ones
type Severity string

const (
	SeverityNormal      Severity = "normal"
	SeverityDestructive Severity = "destructive"
)

// Notification is a transient user-visible message. Key identifies the
// message for translation; Title and Description are the English text.
type Notification struct {
	Key         string
	Title       string
	Description string
	Severity    Severity
}

// IsDestructive reports whether the notification describes an error
func (n Notification) IsDestructive() bool {
	return n.Severity == SeverityDestructive
}

// Canonical notifications emitted by the application
var (
	InvalidFileType = Notification{
		Key:         "invalid_file_type",
		Title:       "Invalid file type",
		Description: "Please select an image file",
		Severity:    SeverityDestructive,
	}

	ConversionSucceeded = Notification{
		Key:         "conversion_succeeded",
		Title:       "Success!",
		Description: "Image converted successfully",
		Severity:    SeverityNormal,
	}

	ConversionFailed = Notification{
		Key:         "conversion_failed",
		Title:       "Error",
		Description: "Failed to convert image",
		Severity:    SeverityDestructive,
	}

	ComingSoon = Notification{
		Key:         "coming_soon",
		Title:       "Coming Soon!",
		Description: "The game will be available shortly.",
		Severity:    SeverityNormal,
	}
)
