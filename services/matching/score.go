package matching

import "math"

// DefaultMaxProximityKm is the distance at which the proximity score decays
// to zero.
const DefaultMaxProximityKm = 50.0

// SkillScore returns the fraction of required skills the employee holds.
// An empty requirement scores 1.0. This is recall, not Jaccard: skills the
// employee holds beyond the requirement are irrelevant and never penalized.
func SkillScore(employeeSkillIDs, requiredSkillIDs []string) float64 {
	if len(requiredSkillIDs) == 0 {
		return 1.0
	}
	held := make(map[string]struct{}, len(employeeSkillIDs))
	for _, id := range employeeSkillIDs {
		held[id] = struct{}{}
	}
	required := make(map[string]struct{}, len(requiredSkillIDs))
	for _, id := range requiredSkillIDs {
		required[id] = struct{}{}
	}
	overlap := 0
	for id := range required {
		if _, ok := held[id]; ok {
			overlap++
		}
	}
	return float64(overlap) / float64(len(required))
}

// RatingScore normalizes a 0-5 star average rating to [0,1].
func RatingScore(avgRating float64) float64 {
	return avgRating / 5.0
}

// ProximityScore returns 1 at the same point, decaying linearly to 0 at or
// beyond maxKm. A missing coordinate on either side yields a neutral 0.5
// rather than penalizing unknown locations.
func ProximityScore(customerLat, customerLng, employeeLat, employeeLng *float64, maxKm float64) float64 {
	if customerLat == nil || customerLng == nil || employeeLat == nil || employeeLng == nil {
		return 0.5
	}
	distanceKm := haversine(*customerLat, *customerLng, *employeeLat, *employeeLng)
	score := 1 - distanceKm/maxKm
	if score < 0 {
		return 0
	}
	return score
}

// haversine calculates the great-circle distance (in km) between two lat/lon points.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}

// round rounds x to the given number of decimal places.
func round(x float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(x*shift) / shift
}
