package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"exercise-tracker/internal/model"
)

type exerciseDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	UserID      string             `bson:"user_id"`
	Username    string             `bson:"username"`
	Description string             `bson:"description"`
	Duration    float64            `bson:"duration"`
	Date        string             `bson:"date"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d exerciseDocument) toModel() model.Exercise {
	return model.Exercise{
		ID:          d.ID.Hex(),
		UserID:      d.UserID,
		Username:    d.Username,
		Description: d.Description,
		Duration:    d.Duration,
		Date:        d.Date,
		CreatedAt:   d.CreatedAt,
	}
}

type MongoExerciseRepository struct {
	coll *mongo.Collection
}

func NewMongoExerciseRepository(db *mongo.Database) *MongoExerciseRepository {
	return &MongoExerciseRepository{coll: db.Collection(exercisesCollection)}
}

// EnsureIndexes creates the owner/date index backing range queries.
func (r *MongoExerciseRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create exercise index failed: %w", err)
	}
	return nil
}

func (r *MongoExerciseRepository) Create(ctx context.Context, exercise *model.Exercise) error {
	doc := exerciseDocument{
		ID:          primitive.NewObjectID(),
		UserID:      exercise.UserID,
		Username:    exercise.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("create exercise failed: %w", err)
	}
	*exercise = doc.toModel()
	return nil
}

func (r *MongoExerciseRepository) ListByUserRange(ctx context.Context, filter ExerciseFilter) ([]model.Exercise, error) {
	query := bson.M{
		"user_id": filter.UserID,
		"date":    bson.M{"$gte": filter.From, "$lte": filter.To},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list exercises failed: %w", err)
	}

	var docs []exerciseDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode exercises failed: %w", err)
	}

	exercises := make([]model.Exercise, 0, len(docs))
	for _, doc := range docs {
		exercises = append(exercises, doc.toModel())
	}
	return exercises, nil
}
