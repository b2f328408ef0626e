package controllers

import (
	"sync"

	"bmi-buddy/internal/bmi"
	"bmi-buddy/internal/logger"
	"bmi-buddy/internal/models"
	"bmi-buddy/internal/prefs"
)

// View is the surface the controller drives. MainView implements it; tests
// substitute a stub.
type View interface {
	// RenderSnapshot redraws the unit selector, input labels and result
	// block from the snapshot. The pure render step: no decisions, no state.
	RenderSnapshot(snapshot models.Snapshot)

	// ClearInputs empties both entry fields.
	ClearInputs()

	// ShowResult flashes the transient notification for a calculation.
	ShowResult(result bmi.Result)

	// ShowInvalidInput flashes the red notification with the fixed message.
	ShowInvalidInput(message string)
}

// MainController connects form events to the calculator, the state
// repository and the preference store.
type MainController struct {
	stateRepo *models.StateRepository
	store     prefs.Store
	log       logger.Logger

	view        View
	unsubscribe func()

	// toggleGeneration counts manual unit toggles so a late-arriving
	// startup load cannot overwrite a choice the user already made.
	mu               sync.Mutex
	toggleGeneration uint64
}

// NewMainController creates a new main controller
func NewMainController(stateRepo *models.StateRepository, store prefs.Store, log logger.Logger) *MainController {
	return &MainController{
		stateRepo: stateRepo,
		store:     store,
		log:       log,
	}
}

// SetView associates the view and starts rendering state replacements.
func (mc *MainController) SetView(view View) {
	mc.view = view
	mc.unsubscribe = mc.stateRepo.Subscribe(view.RenderSnapshot)

	// Paint the initial state before any event arrives.
	view.RenderSnapshot(mc.stateRepo.Current())
}

// Calculate handles the Calculate button. On success the snapshot is
// replaced with the new result; on invalid input nothing is mutated and the
// prior displayed result survives.
func (mc *MainController) Calculate(weightText, heightText string) {
	snapshot := mc.stateRepo.Current()

	result, err := bmi.Calculate(weightText, heightText, snapshot.Units)
	if err != nil {
		mc.log.Warning("controller", "calculation rejected", map[string]interface{}{
			"error": err.Error(),
			"units": snapshot.Units.String(),
		})

		if mc.view != nil {
			mc.view.ShowInvalidInput(bmi.InvalidInputMessage)
		}
		return
	}

	mc.stateRepo.Replace(models.Snapshot{
		Units:  snapshot.Units,
		Result: &result,
	})

	if mc.view != nil {
		mc.view.ShowResult(result)
	}

	mc.log.Info("controller", "bmi calculated", map[string]interface{}{
		"value":    result.Value,
		"category": string(result.Category),
		"units":    snapshot.Units.String(),
	})
}

// ChangeUnitSystem handles a manual toggle: clear both inputs and the
// displayed result, then persist the choice in the background. In-progress
// entries are discarded, not converted. The returned channel closes when
// the preference write has completed.
func (mc *MainController) ChangeUnitSystem(units bmi.UnitSystem) <-chan struct{} {
	mc.mu.Lock()
	mc.toggleGeneration++
	mc.mu.Unlock()

	mc.stateRepo.Replace(models.Snapshot{Units: units})

	if mc.view != nil {
		mc.view.ClearInputs()
	}

	mc.log.Info("controller", "unit system changed", map[string]interface{}{
		"units": units.String(),
	})

	return mc.store.Save(units)
}

// RestoreUnitSystem applies the persisted unit system. Run it in the
// background at startup; if the user toggles before the load returns, the
// loaded value is discarded instead of overwriting the manual choice.
func (mc *MainController) RestoreUnitSystem() {
	mc.mu.Lock()
	generation := mc.toggleGeneration
	mc.mu.Unlock()

	units := mc.store.Load()

	mc.mu.Lock()
	superseded := mc.toggleGeneration != generation
	mc.mu.Unlock()

	if superseded {
		mc.log.Debug("controller", "saved unit system superseded by manual toggle", map[string]interface{}{
			"loaded": units.String(),
		})
		return
	}

	mc.stateRepo.Replace(models.Snapshot{Units: units})
}

// Shutdown detaches the controller from the state repository.
func (mc *MainController) Shutdown() {
	if mc.unsubscribe != nil {
		mc.unsubscribe()
		mc.unsubscribe = nil
	}
}
