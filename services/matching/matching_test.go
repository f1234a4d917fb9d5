package matching

import (
	"fmt"
	"testing"

	"jobmate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeEmployeeRepo serves canned profiles and records the queries it saw.
type fakeEmployeeRepo struct {
	profiles []models.EmployeeProfile

	gotAvailability models.Availability
	gotTokens       []string
	gotLimit        int
	searchCalls     int
}

func (f *fakeEmployeeRepo) Create(*models.EmployeeProfile) error { return nil }
func (f *fakeEmployeeRepo) Update(*models.EmployeeProfile) error { return nil }
func (f *fakeEmployeeRepo) Delete(string) error { return nil }
func (f *fakeEmployeeRepo) GetByID(string) (*models.EmployeeProfile, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) GetByUserID(string) (*models.EmployeeProfile, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) GetByAvailability(availability models.Availability) ([]models.EmployeeProfile, error) {
	f.gotAvailability = availability
	return f.profiles, nil
}
func (f *fakeEmployeeRepo) TopRatedAvailable(limit int) ([]models.EmployeeProfile, error) {
	f.gotLimit = limit
	return f.profiles, nil
}
func (f *fakeEmployeeRepo) Search(tokens []string) ([]models.EmployeeProfile, error) {
	f.searchCalls++
	f.gotTokens = tokens
	return f.profiles, nil
}
func (f *fakeEmployeeRepo) Unverified() ([]models.EmployeeProfile, error) { return nil, nil }
func (f *fakeEmployeeRepo) CountUnverified() (int64, error) { return 0, nil }
func (f *fakeEmployeeRepo) SetVerified(string) error { return nil }
func (f *fakeEmployeeRepo) SetAvgRating(string, float64) error { return nil }
func (f *fakeEmployeeRepo) UpdateSetDocument(string, bson.M) error { return nil }

func TestRankEmployeesDefaults(t *testing.T) {
	repo := &fakeEmployeeRepo{}
	for i := 0; i < DefaultLimit+5; i++ {
		repo.profiles = append(repo.profiles, models.EmployeeProfile{
			ID:        fmt.Sprintf("emp-%02d", i),
			AvgRating: 3,
		})
	}
	svc := &DefaultMatchingService{EmployeeRepo: repo}

	ranked, err := svc.RankEmployees(RankRequest{})
	require.NoError(t, err)

	assert.Equal(t, models.AvailabilityAvailable, repo.gotAvailability)
	assert.Len(t, ranked, DefaultLimit)
}

func TestRankEmployeesScoring(t *testing.T) {
	repo := &fakeEmployeeRepo{
		profiles: []models.EmployeeProfile{
			{
				ID:        "strong",
				SkillIDs:  []string{"plumbing", "wiring"},
				AvgRating: 5,
			},
			{
				ID:        "weak",
				SkillIDs:  []string{"gardening"},
				AvgRating: 2,
			},
		},
	}
	svc := &DefaultMatchingService{EmployeeRepo: repo}

	ranked, err := svc.RankEmployees(RankRequest{
		RequiredSkillIDs: []string{"plumbing", "wiring"},
	})
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	// Full skill match, full rating, neutral proximity:
	// 0.50*1 + 0.30*1 + 0.20*0.5 = 0.90
	assert.Equal(t, "strong", ranked[0].Profile.ID)
	assert.Equal(t, 0.9, ranked[0].Score)
	assert.Equal(t, ScoreBreakdown{Skill: 1, Rating: 1, Proximity: 0.5}, ranked[0].Breakdown)

	// No skill match, 2/5 rating, neutral proximity:
	// 0.50*0 + 0.30*0.4 + 0.20*0.5 = 0.22
	assert.Equal(t, "weak", ranked[1].Profile.ID)
	assert.Equal(t, 0.22, ranked[1].Score)

	for _, r := range ranked {
		assert.GreaterOrEqual(t, r.Score, 0.0)
		assert.LessOrEqual(t, r.Score, 1.0)
	}
}

func TestRankEmployeesProximityOrdering(t *testing.T) {
	nairobi := models.EmployeeProfile{
		ID:        "near",
		Latitude:  floatPtr(-1.2921),
		Longitude: floatPtr(36.8219),
		AvgRating: 4,
	}
	thika := models.EmployeeProfile{
		ID:        "farther",
		Latitude:  floatPtr(-1.0333),
		Longitude: floatPtr(37.0693),
		AvgRating: 4,
	}
	repo := &fakeEmployeeRepo{profiles: []models.EmployeeProfile{thika, nairobi}}
	svc := &DefaultMatchingService{EmployeeRepo: repo}

	ranked, err := svc.RankEmployees(RankRequest{
		CustomerLat: floatPtr(-1.2921),
		CustomerLng: floatPtr(36.8219),
	})
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "near", ranked[0].Profile.ID)
	assert.Equal(t, "farther", ranked[1].Profile.ID)
}

func TestRankEmployeesTieBreak(t *testing.T) {
	repo := &fakeEmployeeRepo{
		profiles: []models.EmployeeProfile{
			{ID: "bbb", AvgRating: 4},
			{ID: "aaa", AvgRating: 4},
		},
	}
	svc := &DefaultMatchingService{EmployeeRepo: repo}

	ranked, err := svc.RankEmployees(RankRequest{})
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
	assert.Equal(t, "aaa", ranked[0].Profile.ID)
	assert.Equal(t, "bbb", ranked[1].Profile.ID)
}

func TestRankEmployeesExplicitLimit(t *testing.T) {
	repo := &fakeEmployeeRepo{
		profiles: []models.EmployeeProfile{
			{ID: "a", AvgRating: 5},
			{ID: "b", AvgRating: 4},
			{ID: "c", AvgRating: 3},
		},
	}
	svc := &DefaultMatchingService{EmployeeRepo: repo}

	ranked, err := svc.RankEmployees(RankRequest{Limit: 2})
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "a", ranked[0].Profile.ID)
	assert.Equal(t, "b", ranked[1].Profile.ID)
}

func TestSmartSearchTokenizes(t *testing.T) {
	repo := &fakeEmployeeRepo{profiles: []models.EmployeeProfile{{ID: "x"}}}
	svc := &DefaultMatchingService{EmployeeRepo: repo}

	results, err := svc.SmartSearch("  plumber   downtown ")
	require.NoError(t, err)
	assert.Equal(t, []string{"plumber", "downtown"}, repo.gotTokens)
	assert.Len(t, results, 1)
}

func TestTopRatedDefaultsLimit(t *testing.T) {
	repo := &fakeEmployeeRepo{profiles: []models.EmployeeProfile{{ID: "x"}}}
	svc := &DefaultMatchingService{EmployeeRepo: repo}

	profiles, err := svc.TopRated(0)
	require.NoError(t, err)
	assert.Equal(t, DefaultLimit, repo.gotLimit)
	assert.Len(t, profiles, 1)

	_, err = svc.TopRated(5)
	require.NoError(t, err)
	assert.Equal(t, 5, repo.gotLimit)
}

func TestSmartSearchEmptyQuery(t *testing.T) {
	repo := &fakeEmployeeRepo{}
	svc := &DefaultMatchingService{EmployeeRepo: repo}

	results, err := svc.SmartSearch("   ")
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, repo.searchCalls)
}
