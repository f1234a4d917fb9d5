// File: database/repository/employee/employeeMongoCrud.go
package employeeRepo

import (
	"fmt"
	"time"

	"jobmate/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new employee profile document.
func (r *MongoEmployeeRepo) Create(profile *models.EmployeeProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to create employee profile: %w", err)
	}
	return nil
}

// Update modifies an existing employee profile document.
func (r *MongoEmployeeRepo) Update(profile *models.EmployeeProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	profile.UpdatedAt = time.Now()
	// The joined user is query-time decoration, never persisted.
	profile.User = nil
	filter := bson.M{"id": profile.ID}
	update := bson.M{"$set": profile}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update employee profile with id %s: %w", profile.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("employee profile with id %s not found", profile.ID)
	}
	return nil
}

// Delete removes an employee profile document by its ID.
func (r *MongoEmployeeRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete employee profile with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("employee profile with id %s not found", id)
	}
	return nil
}

// UpdateSetDocument patches an employee profile with the specified fields.
func (r *MongoEmployeeRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updated_at"] = time.Now()
	update := bson.M{"$set": updateDoc}

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update employee profile with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("employee profile with id %s not found", id)
	}
	return nil
}

// SetVerified marks an employee profile as verified.
func (r *MongoEmployeeRepo) SetVerified(id string) error {
	return r.UpdateSetDocument(id, bson.M{"verified": true})
}

// SetAvgRating writes the recomputed rating aggregate. The single $set keeps
// concurrent recomputes from leaving a partial value; each caller writes a
// full recomputation, so the last write is always a consistent average.
func (r *MongoEmployeeRepo) SetAvgRating(userID string, avg float64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID}
	update := bson.M{"$set": bson.M{"avg_rating": avg, "updated_at": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update rating for employee user %s: %w", userID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("employee profile for user %s not found", userID)
	}
	return nil
}
