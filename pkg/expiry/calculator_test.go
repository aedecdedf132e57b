package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := ParseDate(value, time.UTC)
	require.NoError(t, err)
	return date
}

func TestCalculate_KnownIngredients(t *testing.T) {
	purchase := mustDate(t, "2024-02-27")

	for _, option := range Options() {
		t.Run(option.Name, func(t *testing.T) {
			got, ok := Calculate(option.Name, purchase)
			require.True(t, ok)
			assert.Equal(t, purchase.AddDate(0, 0, option.FridgeLifeDays), got)
		})
	}
}

func TestCalculate_Eggs(t *testing.T) {
	got, ok := Calculate("Eggs", mustDate(t, "2024-01-01"))
	require.True(t, ok)
	assert.Equal(t, "2024-01-22", FormatDate(got))
}

func TestCalculate_CrossesMonthAndLeapDay(t *testing.T) {
	got, ok := Calculate("Butter", mustDate(t, "2024-02-15"))
	require.True(t, ok)
	assert.Equal(t, "2024-03-16", FormatDate(got))
}

func TestCalculate_NoResult(t *testing.T) {
	purchase := mustDate(t, "2024-01-01")

	t.Run("unknown name", func(t *testing.T) {
		_, ok := Calculate("Bread", purchase)
		assert.False(t, ok)
	})

	t.Run("case sensitive", func(t *testing.T) {
		_, ok := Calculate("eggs", purchase)
		assert.False(t, ok)
	})

	t.Run("empty name", func(t *testing.T) {
		_, ok := Calculate("", purchase)
		assert.False(t, ok)
	})

	t.Run("unset purchase date", func(t *testing.T) {
		_, ok := Calculate("Milk", time.Time{})
		assert.False(t, ok)
	})
}

func TestCalculate_IgnoresTimeOfDay(t *testing.T) {
	purchase := time.Date(2024, 1, 1, 23, 45, 0, 0, time.UTC)
	got, ok := Calculate("Chicken", purchase)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), got)
}

func TestOptions_ReturnsCopy(t *testing.T) {
	options := Options()
	require.Len(t, options, 10)
	options[0].FridgeLifeDays = 999

	milk, ok := Lookup("Milk")
	require.True(t, ok)
	assert.Equal(t, 7, milk.FridgeLifeDays)
}

func TestFormatDate_Unset(t *testing.T) {
	assert.Equal(t, "", FormatDate(time.Time{}))
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("01/02/2024", time.UTC)
	assert.Error(t, err)
}
