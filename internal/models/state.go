package models

import (
	firm "github.com/davidroman0O/firm-go"

	"bmi-buddy/internal/bmi"
)

// Snapshot is the entire UI state: the active unit system and the currently
// displayed result. A nil Result means nothing is displayed. Snapshots are
// immutable; every event replaces the whole value.
type Snapshot struct {
	Units  bmi.UnitSystem
	Result *bmi.Result
}

// StateRepository holds the current Snapshot behind a reactive signal.
// Subscribers receive each replacement and render from it.
type StateRepository struct {
	signal *firm.Signal[Snapshot]
}

// NewStateRepository creates a repository seeded with the initial snapshot.
func NewStateRepository(initial Snapshot) *StateRepository {
	signal := firm.NewSignal(initial)

	// Every event replaces the snapshot wholesale; notify on each
	// replacement even when the new value compares equal.
	signal.SetEqualityFn(func(a, b Snapshot) bool {
		return false
	})

	return &StateRepository{signal: signal}
}

// Current returns the snapshot as of now.
func (sr *StateRepository) Current() Snapshot {
	return sr.signal.Peek()
}

// Replace installs a new snapshot and notifies subscribers synchronously.
func (sr *StateRepository) Replace(snapshot Snapshot) {
	sr.signal.Set(snapshot)
}

// Subscribe registers a render listener. The returned function removes it.
func (sr *StateRepository) Subscribe(listener func(Snapshot)) func() {
	return sr.signal.Subscribe(listener)
}
