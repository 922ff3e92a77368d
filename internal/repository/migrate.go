package repository

import (
	"fmt"

	"gorm.io/gorm"

	"exercise-tracker/internal/model"
)

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.Exercise{}, &model.ExerciseEvent{}); err != nil {
		return fmt.Errorf("auto migrate tables failed: %w", err)
	}
	return nil
}
