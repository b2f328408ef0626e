package bmi

// UnitSystem selects the input units and the formula branch.
type UnitSystem int

const (
	Metric UnitSystem = iota
	Imperial
)

// String returns the persisted wire form of the unit system.
func (u UnitSystem) String() string {
	if u == Imperial {
		return "imperial"
	}
	return "metric"
}

// ParseUnitSystem maps a stored string back to a unit system.
// Anything unrecognized resolves to Metric.
func ParseUnitSystem(raw string) UnitSystem {
	if raw == "imperial" {
		return Imperial
	}
	return Metric
}

// WeightUnit returns the weight unit label for the system.
func (u UnitSystem) WeightUnit() string {
	if u == Imperial {
		return "lbs"
	}
	return "kg"
}

// HeightUnit returns the height unit label for the system.
func (u UnitSystem) HeightUnit() string {
	if u == Imperial {
		return "in"
	}
	return "cm"
}
