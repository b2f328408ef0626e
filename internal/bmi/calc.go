package bmi

import (
	"math"
	"strconv"
	"strings"
)

// Category is one of the four BMI classifications.
type Category string

const (
	Underweight   Category = "Underweight"
	HealthyWeight Category = "Healthy Weight"
	Overweight    Category = "Overweight"
	Obesity       Category = "Obesity"
)

// Measurement holds one validated weight/height pair. It is scoped to a
// single calculation and never retained.
type Measurement struct {
	Weight float64
	Height float64
}

// Result is the derived value object for one calculation.
type Result struct {
	Value    float64
	Category Category
	Advice   string
}

// ParseMeasurement validates both raw inputs. Either field that is not a
// finite positive number yields an InvalidInputError and no Measurement.
func ParseMeasurement(weightText, heightText string) (Measurement, error) {
	weight, err := parsePositive("weight", weightText)
	if err != nil {
		return Measurement{}, err
	}

	height, err := parsePositive("height", heightText)
	if err != nil {
		return Measurement{}, err
	}

	return Measurement{Weight: weight, Height: height}, nil
}

// Calculate parses both inputs and computes the categorized BMI result for
// the given unit system. It is pure: same inputs, same result, no state.
func Calculate(weightText, heightText string, units UnitSystem) (Result, error) {
	m, err := ParseMeasurement(weightText, heightText)
	if err != nil {
		return Result{}, err
	}

	var value float64
	switch units {
	case Imperial:
		value = (m.Weight / (m.Height * m.Height)) * 703
	default:
		heightMeters := m.Height / 100
		value = m.Weight / (heightMeters * heightMeters)
	}

	value = roundToTwoDecimals(value)
	category := Classify(value)

	return Result{
		Value:    value,
		Category: category,
		Advice:   adviceFor(category),
	}, nil
}

// Classify partitions the BMI value into a category. The branch chain is
// kept exactly as shipped: values in [24.9, 25) and values >= 29.9 both
// reach the final fallback branch.
func Classify(value float64) Category {
	switch {
	case value < 18.5:
		return Underweight
	case value >= 18.5 && value < 24.9:
		return HealthyWeight
	case value >= 25 && value < 29.9:
		return Overweight
	default:
		return Obesity
	}
}

func adviceFor(category Category) string {
	switch category {
	case Underweight:
		return "You are below the healthy weight range. Eating a bit more could help."
	case HealthyWeight:
		return "You are within the healthy weight range. Keep it up!"
	case Overweight:
		return "You are above the healthy weight range. A bit more activity could help."
	default:
		return "You are well above the healthy weight range. Consider talking to a professional."
	}
}

func parsePositive(field, raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return 0, NewInvalidInputError(field, raw)
	}
	return value, nil
}

// roundToTwoDecimals rounds half away from zero.
func roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
