package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"exercise-tracker/internal/model"
)

type exerciseEventDocument struct {
	ID         primitive.ObjectID `bson:"_id"`
	Type       string             `bson:"type"`
	ExerciseID string             `bson:"exercise_id"`
	UserID     string             `bson:"user_id"`
	Date       string             `bson:"date"`
	Duration   float64            `bson:"duration"`
	OccurredAt time.Time          `bson:"occurred_at"`
	CreatedAt  time.Time          `bson:"created_at"`
}

type MongoExerciseEventRepository struct {
	coll *mongo.Collection
}

func NewMongoExerciseEventRepository(db *mongo.Database) *MongoExerciseEventRepository {
	return &MongoExerciseEventRepository{coll: db.Collection(eventsCollection)}
}

func (r *MongoExerciseEventRepository) Create(ctx context.Context, event *model.ExerciseEvent) error {
	doc := exerciseEventDocument{
		ID:         primitive.NewObjectID(),
		Type:       event.Type,
		ExerciseID: event.ExerciseID,
		UserID:     event.UserID,
		Date:       event.Date,
		Duration:   event.Duration,
		OccurredAt: event.OccurredAt,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("create exercise event failed: %w", err)
	}
	event.CreatedAt = doc.CreatedAt
	return nil
}
