package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"exercise-tracker/internal/model"
)

const (
	usersCollection     = "users"
	exercisesCollection = "exercises"
	eventsCollection    = "exercise_events"
)

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Username  string             `bson:"username"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d userDocument) toModel() model.User {
	return model.User{
		ID:        d.ID.Hex(),
		Username:  d.Username,
		CreatedAt: d.CreatedAt,
	}
}

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(usersCollection)}
}

func (r *MongoUserRepository) Create(ctx context.Context, user *model.User) error {
	doc := userDocument{
		ID:        primitive.NewObjectID(),
		Username:  user.Username,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("create user failed: %w", err)
	}
	*user = doc.toModel()
	return nil
}

// GetByID returns nil, nil for unknown ids, including ids that are not
// valid ObjectID hex strings.
func (r *MongoUserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc userDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by id failed: %w", err)
	}
	user := doc.toModel()
	return &user, nil
}

func (r *MongoUserRepository) List(ctx context.Context) ([]model.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list users failed: %w", err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users failed: %w", err)
	}

	users := make([]model.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.toModel())
	}
	return users, nil
}
