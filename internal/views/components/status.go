package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"bmi-buddy/internal/bmi"
)

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	unitsLabel  *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	unitsLabel := widget.NewLabel("Units: metric")

	mainContainer := container.NewBorder(
		nil, nil,
		statusLabel,
		unitsLabel,
	)

	return &StatusBar{
		container:   mainContainer,
		statusLabel: statusLabel,
		unitsLabel:  unitsLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) SetUnits(units bmi.UnitSystem) {
	sb.unitsLabel.SetText(fmt.Sprintf("Units: %s", units))
}

func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}
