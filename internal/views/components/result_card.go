package components

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"bmi-buddy/internal/bmi"
)

var (
	underweightColor = color.NRGBA{R: 0x42, G: 0x85, B: 0xF4, A: 0xFF}
	healthyColor     = color.NRGBA{R: 0x34, G: 0xA8, B: 0x53, A: 0xFF}
	overweightColor  = color.NRGBA{R: 0xFB, G: 0x8C, B: 0x00, A: 0xFF}
	obesityColor     = color.NRGBA{R: 0xD9, G: 0x30, B: 0x25, A: 0xFF}
	neutralColor     = color.NRGBA{R: 0x9E, G: 0x9E, B: 0x9E, A: 0xFF}
)

// CategoryColor returns the display color for a category.
func CategoryColor(category bmi.Category) color.Color {
	switch category {
	case bmi.Underweight:
		return underweightColor
	case bmi.HealthyWeight:
		return healthyColor
	case bmi.Overweight:
		return overweightColor
	default:
		return obesityColor
	}
}

// ResultCard displays the rounded BMI value and its category, color-coded.
type ResultCard struct {
	container    *fyne.Container
	valueText    *canvas.Text
	categoryText *canvas.Text
}

func NewResultCard() *ResultCard {
	valueText := canvas.NewText("--", neutralColor)
	valueText.TextSize = 40
	valueText.TextStyle = fyne.TextStyle{Bold: true}
	valueText.Alignment = fyne.TextAlignCenter

	categoryText := canvas.NewText("", neutralColor)
	categoryText.TextSize = 18
	categoryText.Alignment = fyne.TextAlignCenter

	return &ResultCard{
		container:    container.NewVBox(valueText, categoryText),
		valueText:    valueText,
		categoryText: categoryText,
	}
}

func (rc *ResultCard) GetContainer() *fyne.Container {
	return rc.container
}

// SetResult renders the result, or clears the card when result is nil.
func (rc *ResultCard) SetResult(result *bmi.Result) {
	if result == nil {
		rc.valueText.Text = "--"
		rc.valueText.Color = neutralColor
		rc.categoryText.Text = ""
		rc.categoryText.Color = neutralColor
	} else {
		tint := CategoryColor(result.Category)
		rc.valueText.Text = strconv.FormatFloat(result.Value, 'f', 2, 64)
		rc.valueText.Color = tint
		rc.categoryText.Text = string(result.Category)
		rc.categoryText.Color = tint
	}

	rc.valueText.Refresh()
	rc.categoryText.Refresh()
}

// Value returns the currently displayed value text.
func (rc *ResultCard) Value() string {
	return rc.valueText.Text
}

// Category returns the currently displayed category text.
func (rc *ResultCard) Category() string {
	return rc.categoryText.Text
}
