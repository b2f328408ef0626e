package prefs_test

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"bmi-buddy/internal/bmi"
	"bmi-buddy/internal/logger"
	"bmi-buddy/internal/prefs"
)

func TestFyneStore_LoadDefaultsToMetric(t *testing.T) {
	app := test.NewApp()

	store := prefs.NewFyneStore(app.Preferences(), logger.NewNop())

	require.Equal(t, bmi.Metric, store.Load())
}

func TestFyneStore_SaveThenLoad(t *testing.T) {
	app := test.NewApp()

	store := prefs.NewFyneStore(app.Preferences(), logger.NewNop())

	// Save is fire-and-forget for the UI; the channel lets tests await
	// the write instead of racing it.
	<-store.Save(bmi.Imperial)

	require.Equal(t, bmi.Imperial, store.Load())
	require.Equal(t, "imperial", app.Preferences().String(prefs.UnitSystemKey))
}

func TestFyneStore_SaveOverwritesPriorValue(t *testing.T) {
	app := test.NewApp()

	store := prefs.NewFyneStore(app.Preferences(), logger.NewNop())

	<-store.Save(bmi.Imperial)
	<-store.Save(bmi.Metric)

	require.Equal(t, bmi.Metric, store.Load())
}

func TestFyneStore_LoadIgnoresUnrecognizedValue(t *testing.T) {
	app := test.NewApp()
	app.Preferences().SetString(prefs.UnitSystemKey, "stone")

	store := prefs.NewFyneStore(app.Preferences(), logger.NewNop())

	require.Equal(t, bmi.Metric, store.Load())
}
