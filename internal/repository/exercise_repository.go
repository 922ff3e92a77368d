package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"exercise-tracker/internal/model"
)

// ExerciseFilter selects one owner's exercises dated within [From, To].
// Bounds are compared as strings. Limit <= 0 means no cap.
type ExerciseFilter struct {
	UserID string
	From   string
	To     string
	Limit  int
}

type ExerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) Create(ctx context.Context, exercise *model.Exercise) error {
	if err := r.db.WithContext(ctx).Create(exercise).Error; err != nil {
		return fmt.Errorf("create exercise failed: %w", err)
	}
	return nil
}

func (r *ExerciseRepository) ListByUserRange(ctx context.Context, filter ExerciseFilter) ([]model.Exercise, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", filter.UserID, filter.From, filter.To).
		Order("date ASC, created_at ASC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	exercises := make([]model.Exercise, 0)
	if err := query.Find(&exercises).Error; err != nil {
		return nil, fmt.Errorf("list exercises failed: %w", err)
	}
	return exercises, nil
}
