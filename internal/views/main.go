package views

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"bmi-buddy/internal/bmi"
	"bmi-buddy/internal/models"
	"bmi-buddy/internal/views/components"
)

// MainView assembles the single-screen form: unit toggle, weight and height
// entries, Calculate button, transient banner, color-coded result block and
// a status bar.
type MainView struct {
	// UI Components
	window        fyne.Window
	mainContainer *fyne.Container
	unitSelector  *components.UnitSelector
	form          *components.InputForm
	banner        *components.Banner
	resultCard    *components.ResultCard
	statusBar     *components.StatusBar

	// Event handlers - connected to controller
	calculateHandler  func(weightText, heightText string)
	unitChangeHandler func(bmi.UnitSystem)
}

// NewMainView creates a new main view
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents() {
	mv.unitSelector = components.NewUnitSelector()
	mv.form = components.NewInputForm()
	mv.banner = components.NewBanner()
	mv.resultCard = components.NewResultCard()
	mv.statusBar = components.NewStatusBar()
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	content := container.NewVBox(
		mv.banner.GetContainer(),
		mv.unitSelector.GetContainer(),
		mv.form.GetContainer(),
		widget.NewSeparator(),
		mv.resultCard.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		nil,                          // top
		mv.statusBar.GetContainer(), // bottom
		nil,                         // left
		nil,                         // right
		content,                     // center
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	mv.unitSelector.SetChangeHandler(func(units bmi.UnitSystem) {
		if mv.unitChangeHandler != nil {
			mv.unitChangeHandler(units)
		}
	})

	mv.form.SetCalculateHandler(func(weightText, heightText string) {
		if mv.calculateHandler != nil {
			mv.calculateHandler(weightText, heightText)
		}
	})
}

// Event handler setters - called by controller wiring

// SetCalculateHandler sets the handler for the Calculate button.
func (mv *MainView) SetCalculateHandler(handler func(weightText, heightText string)) {
	mv.calculateHandler = handler
}

// SetUnitChangeHandler sets the handler for unit toggles.
func (mv *MainView) SetUnitChangeHandler(handler func(bmi.UnitSystem)) {
	mv.unitChangeHandler = handler
}

// Render and notification methods - called by controller

// RenderSnapshot redraws the whole screen from one state snapshot.
func (mv *MainView) RenderSnapshot(snapshot models.Snapshot) {
	fyne.Do(func() {
		mv.unitSelector.SetUnits(snapshot.Units)
		mv.form.SetUnits(snapshot.Units)
		mv.resultCard.SetResult(snapshot.Result)
		mv.statusBar.SetUnits(snapshot.Units)
	})
}

// ClearInputs empties both entry fields.
func (mv *MainView) ClearInputs() {
	fyne.Do(func() {
		mv.form.Clear()
	})
}

// ShowResult flashes the notification banner for a calculation.
func (mv *MainView) ShowResult(result bmi.Result) {
	fyne.Do(func() {
		message := fmt.Sprintf("%s: %s", result.Category, result.Advice)
		mv.banner.Show(message, components.CategoryColor(result.Category))
		mv.statusBar.SetStatus("Calculated")
	})
}

// ShowInvalidInput flashes the red notification banner.
func (mv *MainView) ShowInvalidInput(message string) {
	fyne.Do(func() {
		mv.banner.Show(message, components.ErrorColor)
		mv.statusBar.SetStatus("Invalid input")
	})
}

// Show displays the view
func (mv *MainView) Show() {
	fyne.Do(func() {
		mv.window.Show()
	})
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}
