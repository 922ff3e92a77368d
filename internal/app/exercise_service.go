package app

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"exercise-tracker/internal/model"
	"exercise-tracker/internal/repository"
)

type ExerciseService struct {
	users     UserStore
	exercises ExerciseStore
	cache     LogCache
	publisher EventPublisher
	timeout   time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

type CreateExerciseInput struct {
	UserID      string
	Description string
	// Duration is nil when the client did not send a usable number.
	Duration *float64
	Date     string
}

// LogQuery holds the raw log filters as received from the client.
type LogQuery struct {
	UserID string
	From   string
	To     string
	Limit  string
}

// NewExerciseService wires the exercise service. cache and publisher may be nil.
func NewExerciseService(
	users UserStore,
	exercises ExerciseStore,
	cache LogCache,
	publisher EventPublisher,
	timeout time.Duration,
	log zerolog.Logger,
) *ExerciseService {
	return &ExerciseService{
		users:     users,
		exercises: exercises,
		cache:     cache,
		publisher: publisher,
		timeout:   timeout,
		log:       log.With().Str("component", "exercise-service").Logger(),
		now:       time.Now,
	}
}

func (s *ExerciseService) CreateExercise(ctx context.Context, input CreateExerciseInput) (*model.ExerciseReceipt, error) {
	userID := strings.TrimSpace(input.UserID)
	description := strings.TrimSpace(input.Description)
	if userID == "" || description == "" || input.Duration == nil {
		return nil, validationError(msgExerciseInput)
	}

	date := s.now().UTC().Format(isoDateLayout)
	if raw := strings.TrimSpace(input.Date); raw != "" {
		normalized, ok := NormalizeDate(raw)
		if !ok {
			return nil, validationError(msgInvalidDate)
		}
		date = normalized
	}

	ctx, cancel := withStorageTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFoundError(msgInvalidUserID)
	}

	exercise := &model.Exercise{
		UserID:      userID,
		Username:    user.Username,
		Description: description,
		Duration:    *input.Duration,
		Date:        date,
	}
	if err := s.exercises.Create(ctx, exercise); err != nil {
		return nil, err
	}

	s.afterCreate(ctx, exercise)

	return &model.ExerciseReceipt{
		ID:          exercise.ID,
		UserID:      exercise.UserID,
		Username:    exercise.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        DisplayDate(exercise.Date),
	}, nil
}

// GetLogs returns the user's exercises dated within the requested bounds.
// A query that matches nothing is reported as ErrEmptyResult.
func (s *ExerciseService) GetLogs(ctx context.Context, query LogQuery) (*model.ExerciseLog, error) {
	userID := strings.TrimSpace(query.UserID)
	if userID == "" {
		return nil, validationError(msgLogUserRequired)
	}

	filter := repository.ExerciseFilter{
		UserID: userID,
		From:   query.From,
		To:     query.To,
		Limit:  ParseLimit(query.Limit),
	}
	if filter.From == "" {
		filter.From = minLogDate
	}
	if filter.To == "" {
		filter.To = maxLogDate
	}

	ctx, cancel := withStorageTimeout(ctx, s.timeout)
	defer cancel()

	cached, cacheKey := s.cachedLog(ctx, filter)
	if cached != nil {
		return cached, nil
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFoundError(msgLogUserMissing)
	}

	exercises, err := s.exercises.ListByUserRange(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(exercises) == 0 {
		return nil, emptyResultError(msgNoExercises)
	}

	result := &model.ExerciseLog{
		ID:       userID,
		Username: user.Username,
		Count:    len(exercises),
		Log:      make([]model.LogEntry, 0, len(exercises)),
	}
	for _, e := range exercises {
		result.Log = append(result.Log, model.LogEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        DisplayDate(e.Date),
		})
	}

	if cacheKey != "" {
		if err := s.cache.SetLog(ctx, cacheKey, result); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("cache exercise log failed")
		}
	}
	return result, nil
}

// ParseLimit turns the raw limit query value into a cap. Anything that is
// not a positive integer disables the cap.
func ParseLimit(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

func (s *ExerciseService) cachedLog(ctx context.Context, filter repository.ExerciseFilter) (*model.ExerciseLog, string) {
	if s.cache == nil {
		return nil, ""
	}
	cached, key, err := s.cache.GetLog(ctx, filter)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", filter.UserID).Msg("read cached exercise log failed")
		return nil, ""
	}
	return cached, key
}

func (s *ExerciseService) afterCreate(ctx context.Context, exercise *model.Exercise) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, exercise.UserID); err != nil {
			s.log.Warn().Err(err).Str("user_id", exercise.UserID).Msg("invalidate exercise log cache failed")
		}
	}
	if s.publisher != nil {
		event := model.ExerciseEvent{
			Type:       model.EventExerciseCreated,
			ExerciseID: exercise.ID,
			UserID:     exercise.UserID,
			Date:       exercise.Date,
			Duration:   exercise.Duration,
			OccurredAt: s.now().UTC(),
		}
		if err := s.publisher.PublishExerciseEvent(ctx, event); err != nil {
			s.log.Warn().Err(err).Str("exercise_id", exercise.ID).Msg("publish exercise event failed")
		}
	}
}
