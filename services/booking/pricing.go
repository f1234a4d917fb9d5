package booking

import "jobmate/models"

// RateFor maps a duration type to the employee's corresponding stored rate.
// An unrecognized duration type yields 0, so the booking silently prices as
// free rather than erroring. TODO: surface unknown duration types as
// validation errors once all clients send the enum.
func RateFor(profile *models.EmployeeProfile, durationType models.DurationType) float64 {
	switch durationType {
	case models.DurationHourly:
		return profile.HourlyRate
	case models.DurationDaily:
		return profile.DailyRate
	case models.DurationMonthly:
		return profile.MonthlyRate
	}
	return 0
}

// CalculateBookingCost runs the pricing engine: rate × duration. It returns
// the total cost and the rate that was applied.
func CalculateBookingCost(profile *models.EmployeeProfile, durationType models.DurationType, durationValue int) (cost, rate float64) {
	rate = RateFor(profile, durationType)
	return rate * float64(durationValue), rate
}
