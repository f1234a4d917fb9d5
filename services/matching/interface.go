package matching

import "jobmate/models"

// RankRequest carries the inputs of a ranking run. Zero values fall back to
// the defaults: available-only candidates and a limit of 20.
type RankRequest struct {
	RequiredSkillIDs []string            `json:"required_skill_ids,omitempty"`
	CustomerLat      *float64            `json:"customer_lat,omitempty"`
	CustomerLng      *float64            `json:"customer_lng,omitempty"`
	Availability     models.Availability `json:"availability,omitempty"`
	Limit            int                 `json:"limit,omitempty"`
}

// ScoreBreakdown exposes the rounded sub-scores behind a match score.
type ScoreBreakdown struct {
	Skill     float64 `json:"skill"`
	Rating    float64 `json:"rating"`
	Proximity float64 `json:"proximity"`
}

// RankedEmployee is one ranking result: the profile, its combined match
// score, and the sub-score breakdown for explainability.
type RankedEmployee struct {
	Profile   models.EmployeeProfile `json:"profile"`
	Score     float64                `json:"score"`
	Breakdown ScoreBreakdown         `json:"breakdown"`
}

// MatchingService ranks and searches employees. Both operations are
// read-only and safe to run concurrently.
//
// The weighted-sum ranking is a placeholder heuristic: a learned model can
// replace it behind the same RankRequest contract.
type MatchingService interface {
	RankEmployees(req RankRequest) ([]RankedEmployee, error)
	SmartSearch(query string) ([]models.EmployeeProfile, error)
	TopRated(limit int) ([]models.EmployeeProfile, error)
}
