package skillRepo

import (
	"context"
	"fmt"
	"time"

	"jobmate/database"
	"jobmate/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SkillRepository defines methods for skill catalogue access.
type SkillRepository interface {
	Create(skill *models.Skill) error
	GetByID(id string) (*models.Skill, error)
	GetByIDs(ids []string) ([]models.Skill, error)
	GetByName(name string) (*models.Skill, error)
	GetAll() ([]models.Skill, error)
}

// MongoSkillRepo implements SkillRepository using MongoDB.
type MongoSkillRepo struct {
	coll *mongo.Collection
}

// NewMongoSkillRepo creates a new instance of SkillRepository using MongoDB.
func NewMongoSkillRepo() SkillRepository {
	repo := &MongoSkillRepo{coll: database.Collection("skills")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoSkillRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create skill indexes: %w", err)
	}
	return nil
}

// Create inserts a new skill document.
func (r *MongoSkillRepo) Create(skill *models.Skill) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	skill.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, skill)
	if err != nil {
		return fmt.Errorf("failed to create skill: %w", err)
	}
	return nil
}

// GetByID retrieves a skill by its unique ID.
func (r *MongoSkillRepo) GetByID(id string) (*models.Skill, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var skill models.Skill
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&skill); err != nil {
		return nil, fmt.Errorf("failed to fetch skill with id %s: %w", id, err)
	}
	return &skill, nil
}

// GetByIDs retrieves the skills matching the given IDs.
func (r *MongoSkillRepo) GetByIDs(ids []string) ([]models.Skill, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer cursor.Close(ctx)

	var skills []models.Skill
	if err := cursor.All(ctx, &skills); err != nil {
		return nil, fmt.Errorf("failed to decode skills: %w", err)
	}
	return skills, nil
}

// GetByName retrieves a skill by name, or nil when none exists.
func (r *MongoSkillRepo) GetByName(name string) (*models.Skill, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var skill models.Skill
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&skill); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch skill %q: %w", name, err)
	}
	return &skill, nil
}

// GetAll retrieves the full skill catalogue ordered by name.
func (r *MongoSkillRepo) GetAll() ([]models.Skill, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer cursor.Close(ctx)

	var skills []models.Skill
	if err := cursor.All(ctx, &skills); err != nil {
		return nil, fmt.Errorf("failed to decode skills: %w", err)
	}
	return skills, nil
}
