package app

import (
	"context"

	"exercise-tracker/internal/model"
	"exercise-tracker/internal/repository"
)

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	// GetByID returns nil, nil when the user does not exist.
	GetByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type ExerciseStore interface {
	Create(ctx context.Context, exercise *model.Exercise) error
	ListByUserRange(ctx context.Context, filter repository.ExerciseFilter) ([]model.Exercise, error)
}

type LogCache interface {
	// GetLog returns nil on a miss along with the key a fresh result is
	// stored under. An empty key means the result must not be cached.
	GetLog(ctx context.Context, filter repository.ExerciseFilter) (*model.ExerciseLog, string, error)
	SetLog(ctx context.Context, key string, log *model.ExerciseLog) error
	Invalidate(ctx context.Context, userID string) error
}

type EventPublisher interface {
	PublishExerciseEvent(ctx context.Context, event model.ExerciseEvent) error
}
