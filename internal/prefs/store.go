package prefs

import (
	"fyne.io/fyne/v2"

	"bmi-buddy/internal/bmi"
	"bmi-buddy/internal/logger"
)

// UnitSystemKey is the single persisted key.
const UnitSystemKey = "bmiUnitSystem"

// Store persists the last-chosen unit system across launches.
type Store interface {
	// Load returns the last persisted unit system, or Metric when nothing
	// was stored or the stored value is unreadable.
	Load() bmi.UnitSystem

	// Save persists the choice in the background. The returned channel is
	// closed once the write has completed; callers are free to ignore it.
	// Failures are logged, never surfaced.
	Save(units bmi.UnitSystem) <-chan struct{}
}

// FyneStore backs Store with the Fyne application preferences, the
// device-local key-value storage. The preferences object is ready as soon
// as the Fyne app exists, so construction is the readiness barrier.
type FyneStore struct {
	prefs fyne.Preferences
	log   logger.Logger
}

// NewFyneStore creates a store over the given preferences.
func NewFyneStore(prefs fyne.Preferences, log logger.Logger) *FyneStore {
	return &FyneStore{
		prefs: prefs,
		log:   log,
	}
}

func (s *FyneStore) Load() bmi.UnitSystem {
	raw := s.prefs.StringWithFallback(UnitSystemKey, bmi.Metric.String())
	units := bmi.ParseUnitSystem(raw)

	s.log.Debug("preferences", "unit system loaded", map[string]interface{}{
		"stored": raw,
		"units":  units.String(),
	})

	return units
}

func (s *FyneStore) Save(units bmi.UnitSystem) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)

		s.prefs.SetString(UnitSystemKey, units.String())

		s.log.Debug("preferences", "unit system saved", map[string]interface{}{
			"units": units.String(),
		})
	}()

	return done
}
