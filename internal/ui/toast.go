package ui

import (
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-converter/internal/model"
)

// Toaster renders notifications as auto-hiding toasts in the top-right
// corner of a window. Only the most recent toast is shown.
type Toaster struct {
	window   fyne.Window
	loc      *Localization
	autoHide time.Duration

	mu      sync.Mutex
	current *widget.PopUp
	title   string
}

// NewToaster creates a toaster for window
func NewToaster(window fyne.Window, loc *Localization) *Toaster {
	return &Toaster{
		window:   window,
		loc:      loc,
		autoHide: ToastAutoHide,
	}
}

// Notify shows n. It is safe to call from any goroutine.
func (t *Toaster) Notify(n model.Notification) {
	title, description := t.loc.NotificationText(n)
	log.Printf("Notification %s: %s - %s", n.Key, title, description)

	fyne.Do(func() {
		t.show(title, description, n.IsDestructive())
	})
}

// show builds and displays a toast, replacing the visible one
func (t *Toaster) show(title, description string, destructive bool) {
	titleText := canvas.NewText(title, theme.Color(theme.ColorNameForeground))
	titleText.TextStyle = fyne.TextStyle{Bold: true}
	if destructive {
		titleText.Color = theme.Color(theme.ColorNameError)
	}

	descriptionLabel := widget.NewLabel(description)
	descriptionLabel.Wrapping = fyne.TextWrapWord

	var popup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if popup != nil {
			popup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, nil, closeBtn, titleText)
	content := container.NewVBox(header, descriptionLabel)
	if destructive {
		// Thin error-coloured bar marks failures at a glance
		bar := canvas.NewRectangle(theme.Color(theme.ColorNameError))
		bar.SetMinSize(fyne.NewSize(4, 0))
		content = container.NewBorder(nil, nil, bar, nil, content)
	}

	popup = widget.NewPopUp(content, t.window.Canvas())

	canvasSize := t.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	popup.Resize(toastSize)
	popup.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))

	t.mu.Lock()
	previous := t.current
	t.current = popup
	t.title = title
	t.mu.Unlock()

	if previous != nil {
		previous.Hide()
	}
	popup.Show()

	go func() {
		time.Sleep(t.autoHide)
		fyne.Do(func() {
			popup.Hide()
			t.mu.Lock()
			if t.current == popup {
				t.current = nil
				t.title = ""
			}
			t.mu.Unlock()
		})
	}()
}

// visibleTitle returns the title of the toast currently shown
func (t *Toaster) visibleTitle() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil || !t.current.Visible() {
		return "", false
	}
	return t.title, true
}
