package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"bmi-buddy/internal/bmi"
)

const (
	metricOption   = "Metric (kg, cm)"
	imperialOption = "Imperial (lbs, in)"
)

// UnitSelector is the two-option unit system toggle.
type UnitSelector struct {
	container *fyne.Container
	radio     *widget.RadioGroup

	changeHandler func(bmi.UnitSystem)

	// updating suppresses the change handler while a render sets the
	// selection, so restoring a preference cannot loop back as a toggle.
	updating bool
}

func NewUnitSelector() *UnitSelector {
	selector := &UnitSelector{}

	selector.radio = widget.NewRadioGroup([]string{metricOption, imperialOption}, func(selected string) {
		if selector.updating || selected == "" {
			return
		}
		if selector.changeHandler != nil {
			selector.changeHandler(unitsForOption(selected))
		}
	})
	selector.radio.Horizontal = true
	selector.radio.Required = true
	selector.radio.SetSelected(metricOption)

	selector.container = container.NewHBox(selector.radio)

	return selector
}

func (us *UnitSelector) GetContainer() *fyne.Container {
	return us.container
}

// SetChangeHandler registers the callback for user-made toggles.
func (us *UnitSelector) SetChangeHandler(handler func(bmi.UnitSystem)) {
	us.changeHandler = handler
}

// SetUnits moves the selection without firing the change handler.
func (us *UnitSelector) SetUnits(units bmi.UnitSystem) {
	us.updating = true
	us.radio.SetSelected(optionForUnits(units))
	us.updating = false
}

// Units returns the currently selected unit system.
func (us *UnitSelector) Units() bmi.UnitSystem {
	return unitsForOption(us.radio.Selected)
}

func optionForUnits(units bmi.UnitSystem) string {
	if units == bmi.Imperial {
		return imperialOption
	}
	return metricOption
}

func unitsForOption(option string) bmi.UnitSystem {
	if option == imperialOption {
		return bmi.Imperial
	}
	return bmi.Metric
}
