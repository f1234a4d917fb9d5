// File: database/repository/employee/employeeMongoQueries.go
package employeeRepo

import (
	"fmt"
	"regexp"
	"time"

	"jobmate/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID retrieves an employee profile by its unique ID.
func (r *MongoEmployeeRepo) GetByID(id string) (*models.EmployeeProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.EmployeeProfile
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to fetch employee profile with id %s: %w", id, err)
	}
	return &profile, nil
}

// GetByUserID retrieves the employee profile owned by the given user.
func (r *MongoEmployeeRepo) GetByUserID(userID string) (*models.EmployeeProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.EmployeeProfile
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch employee profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

// GetByAvailability returns profiles in the given availability state with the
// owning user joined on. An empty availability returns all profiles.
func (r *MongoEmployeeRepo) GetByAvailability(availability models.Availability) ([]models.EmployeeProfile, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	var pipeline mongo.Pipeline
	if availability != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"availability": availability}}})
	}
	pipeline = append(pipeline, lookupUserStages()...)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("availability query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.EmployeeProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode employee profiles: %w", err)
	}
	return profiles, nil
}

// TopRatedAvailable returns available profiles ordered by rating descending.
func (r *MongoEmployeeRepo) TopRatedAvailable(limit int) ([]models.EmployeeProfile, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"availability": models.AvailabilityAvailable}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "avg_rating", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
	}
	pipeline = append(pipeline, lookupUserStages()...)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("top-rated query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.EmployeeProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode employee profiles: %w", err)
	}
	return profiles, nil
}

// Search returns available profiles matching any token against skill name,
// bio, city, first name, last name or username. Tokens are OR-combined, so
// the result is the union of per-token matches; the single aggregation keeps
// it deduplicated.
func (r *MongoEmployeeRepo) Search(tokens []string) ([]models.EmployeeProfile, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if len(tokens) == 0 {
		return []models.EmployeeProfile{}, nil
	}

	var orClauses bson.A
	for _, token := range tokens {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(token), Options: "i"}
		orClauses = append(orClauses,
			bson.M{"skill_docs.name": re},
			bson.M{"bio": re},
			bson.M{"user.city": re},
			bson.M{"user.first_name": re},
			bson.M{"user.last_name": re},
			bson.M{"user.username": re},
		)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"availability": models.AvailabilityAvailable}}},
	}
	pipeline = append(pipeline, lookupUserStages()...)
	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "skills",
			"localField":   "skill_ids",
			"foreignField": "id",
			"as":           "skill_docs",
		}}},
		bson.D{{Key: "$match", Value: bson.M{"$or": orClauses}}},
		bson.D{{Key: "$project", Value: bson.M{"skill_docs": 0}}},
	)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("search query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.EmployeeProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode employee profiles: %w", err)
	}
	return profiles, nil
}

// Unverified returns profiles pending admin verification.
func (r *MongoEmployeeRepo) Unverified() ([]models.EmployeeProfile, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"verified": false}}},
	}
	pipeline = append(pipeline, lookupUserStages()...)

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("unverified query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.EmployeeProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode employee profiles: %w", err)
	}
	return profiles, nil
}

// CountUnverified returns the number of profiles pending verification.
func (r *MongoEmployeeRepo) CountUnverified() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"verified": false})
	if err != nil {
		return 0, fmt.Errorf("failed to count unverified profiles: %w", err)
	}
	return count, nil
}
