package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	employeeRepo "jobmate/database/repository/employee"
	"jobmate/models"

	"github.com/go-redis/redis/v8"
)

// Weights of the match score components.
const (
	SkillWeight     = 0.50
	RatingWeight    = 0.30
	ProximityWeight = 0.20
)

// DefaultLimit caps the result list when the request does not set one.
const DefaultLimit = 20

const matchCacheTTL = 5 * time.Minute

// DefaultMatchingService is the weighted-sum implementation of MatchingService.
// CacheClient is optional; when set, ranking results are cached briefly.
type DefaultMatchingService struct {
	EmployeeRepo employeeRepo.EmployeeRepository
	CacheClient  *redis.Client
}

// RankEmployees scores every candidate in the requested availability state
// and returns the top entries by match score.
//
// Ties are broken deterministically by profile ID ascending.
func (s *DefaultMatchingService) RankEmployees(req RankRequest) ([]RankedEmployee, error) {
	ctx := context.Background()

	if req.Availability == "" {
		req.Availability = models.AvailabilityAvailable
	}
	if req.Limit <= 0 {
		req.Limit = DefaultLimit
	}

	// Try to get from cache.
	cacheKey, err := rankCacheKey(req)
	if err == nil && s.CacheClient != nil {
		cached, cacheErr := s.CacheClient.Get(ctx, cacheKey).Result()
		if cacheErr == nil && cached != "" {
			var ranked []RankedEmployee
			if jsonErr := json.Unmarshal([]byte(cached), &ranked); jsonErr == nil {
				return ranked, nil
			}
			// If unmarshal fails, we fall through to re-computation.
		}
	}

	profiles, err := s.EmployeeRepo.GetByAvailability(req.Availability)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve employee profiles: %w", err)
	}

	ranked := make([]RankedEmployee, 0, len(profiles))
	for _, profile := range profiles {
		sScore := SkillScore(profile.SkillIDs, req.RequiredSkillIDs)
		rScore := RatingScore(profile.AvgRating)
		pScore := ProximityScore(req.CustomerLat, req.CustomerLng, profile.Latitude, profile.Longitude, DefaultMaxProximityKm)

		score := round(sScore*SkillWeight+rScore*RatingWeight+pScore*ProximityWeight, 4)

		ranked = append(ranked, RankedEmployee{
			Profile: profile,
			Score:   score,
			Breakdown: ScoreBreakdown{
				Skill:     round(sScore, 2),
				Rating:    round(rScore, 2),
				Proximity: round(pScore, 2),
			},
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Profile.ID < ranked[j].Profile.ID
	})
	if len(ranked) > req.Limit {
		ranked = ranked[:req.Limit]
	}

	// Cache the result.
	if s.CacheClient != nil && cacheKey != "" {
		if rankedBytes, err := json.Marshal(ranked); err == nil {
			s.CacheClient.Set(ctx, cacheKey, rankedBytes, matchCacheTTL)
		}
	}

	return ranked, nil
}

// SmartSearch tokenizes the query on whitespace and returns available
// employees matching any token in any searched field. Tokens are
// OR-combined: "plumber downtown" matches anyone matching either token.
func (s *DefaultMatchingService) SmartSearch(query string) ([]models.EmployeeProfile, error) {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return []models.EmployeeProfile{}, nil
	}
	profiles, err := s.EmployeeRepo.Search(tokens)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return profiles, nil
}

// TopRated returns available employees ordered by average rating, for the
// browse page's default listing.
func (s *DefaultMatchingService) TopRated(limit int) ([]models.EmployeeProfile, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	profiles, err := s.EmployeeRepo.TopRatedAvailable(limit)
	if err != nil {
		return nil, fmt.Errorf("top-rated query failed: %w", err)
	}
	return profiles, nil
}

// rankCacheKey derives a cache key from the JSON representation of the request.
func rankCacheKey(req RankRequest) (string, error) {
	reqBytes, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal rank request: %w", err)
	}
	return fmt.Sprintf("match:%x", reqBytes), nil
}
