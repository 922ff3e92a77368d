package model

import "time"

const EventExerciseCreated = "exercise.created"

type ExerciseEvent struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	Type       string    `gorm:"size:32;not null;index" json:"type"`
	ExerciseID string    `gorm:"size:64;not null;index" json:"exercise_id"`
	UserID     string    `gorm:"size:64;not null;index" json:"user_id"`
	Date       string    `gorm:"size:10" json:"date"`
	Duration   float64   `json:"duration"`
	OccurredAt time.Time `json:"occurred_at"`
	CreatedAt  time.Time `json:"-"`
}
