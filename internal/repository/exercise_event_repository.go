package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"exercise-tracker/internal/model"
)

type ExerciseEventRepository struct {
	db *gorm.DB
}

func NewExerciseEventRepository(db *gorm.DB) *ExerciseEventRepository {
	return &ExerciseEventRepository{db: db}
}

func (r *ExerciseEventRepository) Create(ctx context.Context, event *model.ExerciseEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("create exercise event failed: %w", err)
	}
	return nil
}
