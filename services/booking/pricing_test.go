package booking

import (
	"testing"

	"jobmate/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBookingCost(t *testing.T) {
	profile := &models.EmployeeProfile{
		HourlyRate:  20,
		DailyRate:   150,
		MonthlyRate: 3000,
	}

	t.Run("hourly", func(t *testing.T) {
		cost, rate := CalculateBookingCost(profile, models.DurationHourly, 3)
		assert.Equal(t, 60.0, cost)
		assert.Equal(t, 20.0, rate)
	})

	t.Run("daily", func(t *testing.T) {
		cost, rate := CalculateBookingCost(profile, models.DurationDaily, 2)
		assert.Equal(t, 300.0, cost)
		assert.Equal(t, 150.0, rate)
	})

	t.Run("monthly", func(t *testing.T) {
		cost, rate := CalculateBookingCost(profile, models.DurationMonthly, 1)
		assert.Equal(t, 3000.0, cost)
		assert.Equal(t, 3000.0, rate)
	})

	t.Run("unknown duration type prices as free", func(t *testing.T) {
		cost, rate := CalculateBookingCost(profile, models.DurationType("yearly"), 4)
		assert.Equal(t, 0.0, cost)
		assert.Equal(t, 0.0, rate)
	})
}
