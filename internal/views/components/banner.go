package components

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// bannerDuration is how long a notification stays visible.
const bannerDuration = 3 * time.Second

// ErrorColor is the banner tint for input errors.
var ErrorColor color.Color = color.NRGBA{R: 0xD9, G: 0x30, B: 0x25, A: 0xFF}

// Banner is the transient notification strip shown after each calculation
// or input error. It hides itself after bannerDuration.
type Banner struct {
	container  *fyne.Container
	background *canvas.Rectangle
	label      *widget.Label

	hideTimer *time.Timer
}

func NewBanner() *Banner {
	background := canvas.NewRectangle(color.Transparent)

	label := widget.NewLabel("")
	label.Alignment = fyne.TextAlignCenter
	label.Wrapping = fyne.TextWrapWord

	stack := container.NewStack(background, label)
	stack.Hide()

	return &Banner{
		container:  stack,
		background: background,
		label:      label,
	}
}

func (b *Banner) GetContainer() *fyne.Container {
	return b.container
}

// Show displays the message over the given background tint and restarts
// the auto-hide timer.
func (b *Banner) Show(message string, tint color.Color) {
	b.label.SetText(message)
	b.background.FillColor = tint
	b.background.Refresh()
	b.container.Show()

	if b.hideTimer != nil {
		b.hideTimer.Stop()
	}
	b.hideTimer = time.AfterFunc(bannerDuration, func() {
		fyne.Do(b.Hide)
	})
}

// Hide removes the banner immediately.
func (b *Banner) Hide() {
	b.container.Hide()
}

// Visible reports whether the banner is currently shown.
func (b *Banner) Visible() bool {
	return b.container.Visible()
}

// Message returns the current banner text.
func (b *Banner) Message() string {
	return b.label.Text
}
