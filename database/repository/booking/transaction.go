// File: database/repository/booking/transaction.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"jobmate/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplyTransition moves a booking into the next status, guarded by the
// required current status. The status write and any completion counter
// updates run inside one session transaction: two concurrent transitions on
// the same booking cannot both pass the precondition, and the aggregate
// counters never move unless the status write landed.
func (r *MongoBookingRepo) ApplyTransition(id string, required, next models.BookingStatus, effects *CompletionEffects) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		filter := bson.M{"id": id}
		if required != "" {
			filter["status"] = required
		}
		update := bson.M{"$set": bson.M{"status": next, "updated_at": time.Now()}}

		result, err := r.coll.UpdateOne(sc, filter, update)
		if err != nil {
			return nil, fmt.Errorf("failed to update booking %s status: %w", id, err)
		}
		if result.MatchedCount == 0 {
			return nil, ErrStatusConflict
		}

		if effects != nil {
			if err := r.applyCompletionEffects(sc, effects); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	return err
}

// applyCompletionEffects increments the employee's job counter and, when a
// customer profile exists, the customer's booking and spend aggregates.
func (r *MongoBookingRepo) applyCompletionEffects(ctx context.Context, effects *CompletionEffects) error {
	now := time.Now()

	result, err := r.employees.UpdateOne(ctx,
		bson.M{"user_id": effects.EmployeeUserID},
		bson.M{
			"$inc": bson.M{"total_jobs": 1},
			"$set": bson.M{"updated_at": now},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to increment jobs for employee %s: %w", effects.EmployeeUserID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("employee profile for user %s not found", effects.EmployeeUserID)
	}

	// A missing customer profile is tolerated; only the employee side is
	// required to exist.
	_, err = r.customers.UpdateOne(ctx,
		bson.M{"user_id": effects.CustomerUserID},
		bson.M{
			"$inc": bson.M{"total_bookings": 1, "total_spent": effects.TotalCost},
			"$set": bson.M{"updated_at": now},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to update customer aggregates for %s: %w", effects.CustomerUserID, err)
	}
	return nil
}
