package bmi_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bmi-buddy/internal/bmi"
)

func TestCalculate_MetricScenario(t *testing.T) {
	result, err := bmi.Calculate("70", "175", bmi.Metric)
	require.NoError(t, err)

	require.Equal(t, 22.86, result.Value)
	require.Equal(t, bmi.HealthyWeight, result.Category)
	require.NotEmpty(t, result.Advice)
}

func TestCalculate_ImperialScenario(t *testing.T) {
	result, err := bmi.Calculate("90", "70", bmi.Imperial)
	require.NoError(t, err)

	require.Equal(t, 12.91, result.Value)
	require.Equal(t, bmi.Underweight, result.Category)
}

func TestCalculate_RoundsHalfAwayFromZero(t *testing.T) {
	// 80 / 1.79^2 = 24.968... rounds up to 24.97
	result, err := bmi.Calculate("80", "179", bmi.Metric)
	require.NoError(t, err)
	require.Equal(t, 24.97, result.Value)
}

func TestCalculate_TrimsSurroundingWhitespace(t *testing.T) {
	result, err := bmi.Calculate(" 70 ", "\t175\n", bmi.Metric)
	require.NoError(t, err)
	require.Equal(t, 22.86, result.Value)
}

func TestCalculate_RejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		weight string
		height string
	}{
		{"empty weight", "", "175"},
		{"empty height", "70", ""},
		{"non-numeric weight", "abc", "175"},
		{"non-numeric height", "70", "abc"},
		{"zero weight", "0", "175"},
		{"zero height", "70", "0"},
		{"negative weight", "-5", "170"},
		{"negative height", "70", "-170"},
		{"nan weight", "NaN", "175"},
		{"infinite height", "70", "+Inf"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := bmi.Calculate(tc.weight, tc.height, bmi.Metric)
			require.Error(t, err)

			var invalid *bmi.InvalidInputError
			require.True(t, errors.As(err, &invalid))

			assert.Equal(t, bmi.Result{}, result)
		})
	}
}

func TestClassify_PartitionBoundaries(t *testing.T) {
	cases := []struct {
		value    float64
		expected bmi.Category
	}{
		{10, bmi.Underweight},
		{18.49, bmi.Underweight},
		{18.5, bmi.HealthyWeight},
		{22.86, bmi.HealthyWeight},
		{24.89, bmi.HealthyWeight},
		{25, bmi.Overweight},
		{27.5, bmi.Overweight},
		{29.89, bmi.Overweight},
		{29.9, bmi.Obesity},
		{45, bmi.Obesity},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, bmi.Classify(tc.value), "value %v", tc.value)
	}
}

// The branch chain ships with a gap: values in [24.9, 25) skip every
// explicit range and land in the Obesity fallback. That behavior is kept
// on purpose; this test exists so any change to it is a visible diff.
func TestClassify_GapFallsToObesity(t *testing.T) {
	assert.Equal(t, bmi.Obesity, bmi.Classify(24.9))
	assert.Equal(t, bmi.Obesity, bmi.Classify(24.95))
	assert.Equal(t, bmi.Obesity, bmi.Classify(24.99))
}

func TestCalculate_GapScenario(t *testing.T) {
	// 68 / 1.65^2 = 24.977... rounds to 24.98, inside the gap.
	result, err := bmi.Calculate("68", "165", bmi.Metric)
	require.NoError(t, err)

	require.Equal(t, 24.98, result.Value)
	require.Equal(t, bmi.Obesity, result.Category)
}

func TestCalculate_IsDeterministic(t *testing.T) {
	first, err := bmi.Calculate("82", "169", bmi.Metric)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := bmi.Calculate("82", "169", bmi.Metric)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestInvalidInputError_Message(t *testing.T) {
	err := bmi.NewInvalidInputError("weight", "abc")

	assert.Contains(t, err.Error(), "weight")
	assert.Contains(t, err.Error(), "abc")
}
