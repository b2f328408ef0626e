package main

import (
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"bmi-buddy/internal/bmi"
	"bmi-buddy/internal/controllers"
	"bmi-buddy/internal/logger"
	"bmi-buddy/internal/models"
	"bmi-buddy/internal/prefs"
	"bmi-buddy/internal/views"
)

const (
	AppName    = "BMI Buddy"
	AppID      = "com.healthtools.bmibuddy"
	AppVersion = "1.0.0"

	WindowWidth  = 360
	WindowHeight = 560
)

// Application wires the Fyne app, the MVC components and the preference
// store together.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	log     logger.Logger

	controller *controllers.MainController
	view       *views.MainView

	stateRepo *models.StateRepository
	store     prefs.Store
}

func main() {
	application := NewApplication()

	setupGracefulShutdown(application)

	application.Run()
}

// NewApplication creates and initializes the application.
func NewApplication() *Application {
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.SetFixedSize(true)

	log := logger.NewConsoleLogger(logger.ParseLevel(logger.LevelFromEnv()))

	log.Info("bootstrap", "application starting", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
		"log_level":  logger.LevelFromEnv(),
	})

	// The preference storage is ready as soon as the Fyne app exists, so
	// the store is constructed before anything reads from it.
	store := prefs.NewFyneStore(fyneApp.Preferences(), log)
	stateRepo := models.NewStateRepository(models.Snapshot{Units: bmi.Metric})

	controller := controllers.NewMainController(stateRepo, store, log)
	view := views.NewMainView(window)

	view.SetCalculateHandler(controller.Calculate)
	view.SetUnitChangeHandler(func(units bmi.UnitSystem) {
		controller.ChangeUnitSystem(units)
	})
	controller.SetView(view)

	return &Application{
		fyneApp:    fyneApp,
		window:     window,
		log:        log,
		controller: controller,
		view:       view,
		stateRepo:  stateRepo,
		store:      store,
	}
}

// Run shows the window and blocks until the application exits.
func (app *Application) Run() {
	// Apply the saved unit system without blocking the UI thread. A toggle
	// made before the load completes wins; see MainController.RestoreUnitSystem.
	go app.controller.RestoreUnitSystem()

	app.window.SetCloseIntercept(func() {
		app.cleanup()
		app.window.Close()
	})

	app.window.ShowAndRun()
}

func (app *Application) cleanup() {
	app.controller.Shutdown()

	app.log.Info("bootstrap", "application stopped", nil)
}

// setupGracefulShutdown configures signal handling for graceful shutdown
func setupGracefulShutdown(application *Application) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan

		application.log.Info("bootstrap", "system signal received", map[string]interface{}{
			"signal": sig.String(),
		})

		fyne.Do(func() {
			application.cleanup()
			application.fyneApp.Quit()
		})
	}()
}
