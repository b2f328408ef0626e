package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"bmi-buddy/internal/bmi"
)

// InputForm holds the two numeric entries and the Calculate button.
type InputForm struct {
	container   *fyne.Container
	weightLabel *widget.Label
	heightLabel *widget.Label
	weightEntry *widget.Entry
	heightEntry *widget.Entry
	calculate   *widget.Button

	calculateHandler func(weightText, heightText string)
}

func NewInputForm() *InputForm {
	form := &InputForm{}

	form.weightLabel = widget.NewLabel("")
	form.heightLabel = widget.NewLabel("")
	form.weightEntry = widget.NewEntry()
	form.heightEntry = widget.NewEntry()

	form.calculate = widget.NewButton("Calculate", func() {
		if form.calculateHandler != nil {
			form.calculateHandler(form.weightEntry.Text, form.heightEntry.Text)
		}
	})
	form.calculate.Importance = widget.HighImportance

	form.SetUnits(bmi.Metric)

	form.container = container.NewVBox(
		form.weightLabel,
		form.weightEntry,
		form.heightLabel,
		form.heightEntry,
		form.calculate,
	)

	return form
}

func (f *InputForm) GetContainer() *fyne.Container {
	return f.container
}

// SetCalculateHandler registers the callback for the Calculate button.
func (f *InputForm) SetCalculateHandler(handler func(weightText, heightText string)) {
	f.calculateHandler = handler
}

// SetUnits relabels both entries for the unit system.
func (f *InputForm) SetUnits(units bmi.UnitSystem) {
	f.weightLabel.SetText(fmt.Sprintf("Weight (%s)", units.WeightUnit()))
	f.heightLabel.SetText(fmt.Sprintf("Height (%s)", units.HeightUnit()))

	if units == bmi.Imperial {
		f.weightEntry.SetPlaceHolder("e.g. 154")
		f.heightEntry.SetPlaceHolder("e.g. 69")
	} else {
		f.weightEntry.SetPlaceHolder("e.g. 70")
		f.heightEntry.SetPlaceHolder("e.g. 175")
	}
}

// Clear empties both entries.
func (f *InputForm) Clear() {
	f.weightEntry.SetText("")
	f.heightEntry.SetText("")
}

// Values returns the raw entry texts.
func (f *InputForm) Values() (weightText, heightText string) {
	return f.weightEntry.Text, f.heightEntry.Text
}
