package models_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bmi-buddy/internal/bmi"
	"bmi-buddy/internal/models"
)

func TestStateRepository_CurrentReturnsInitialSnapshot(t *testing.T) {
	repo := models.NewStateRepository(models.Snapshot{Units: bmi.Imperial})

	snapshot := repo.Current()
	require.Equal(t, bmi.Imperial, snapshot.Units)
	require.Nil(t, snapshot.Result)
}

func TestStateRepository_ReplaceNotifiesSubscribers(t *testing.T) {
	repo := models.NewStateRepository(models.Snapshot{Units: bmi.Metric})

	var received []models.Snapshot
	repo.Subscribe(func(snapshot models.Snapshot) {
		received = append(received, snapshot)
	})

	result := bmi.Result{Value: 22.86, Category: bmi.HealthyWeight}
	repo.Replace(models.Snapshot{Units: bmi.Metric, Result: &result})

	require.Len(t, received, 1)
	require.Equal(t, bmi.Metric, received[0].Units)
	require.NotNil(t, received[0].Result)
	require.Equal(t, 22.86, received[0].Result.Value)
}

func TestStateRepository_ReplaceWithEqualSnapshotStillNotifies(t *testing.T) {
	initial := models.Snapshot{Units: bmi.Metric}
	repo := models.NewStateRepository(initial)

	notified := 0
	repo.Subscribe(func(models.Snapshot) {
		notified++
	})

	// Every event replaces the snapshot wholesale, even when nothing in
	// it changed; the render step runs per event, not per difference.
	repo.Replace(initial)
	repo.Replace(initial)

	require.Equal(t, 2, notified)
}

func TestStateRepository_UnsubscribeStopsNotifications(t *testing.T) {
	repo := models.NewStateRepository(models.Snapshot{Units: bmi.Metric})

	notified := 0
	unsubscribe := repo.Subscribe(func(models.Snapshot) {
		notified++
	})

	repo.Replace(models.Snapshot{Units: bmi.Imperial})
	unsubscribe()
	repo.Replace(models.Snapshot{Units: bmi.Metric})

	require.Equal(t, 1, notified)
}
