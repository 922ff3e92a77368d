package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"exercise-tracker/internal/model"
	"exercise-tracker/internal/repository"
)

type memoryUserStore struct {
	mu     sync.Mutex
	nextID int
	users  []model.User
	err    error
}

func (s *memoryUserStore) Create(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.nextID++
	user.ID = fmt.Sprintf("user-%d", s.nextID)
	s.users = append(s.users, *user)
	return nil
}

func (s *memoryUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (s *memoryUserStore) List(_ context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return append([]model.User(nil), s.users...), nil
}

type memoryExerciseStore struct {
	mu        sync.Mutex
	nextID    int
	exercises []model.Exercise
	queries   int
	// afterList runs once the listing is taken, outside the lock.
	afterList func()
}

func (s *memoryExerciseStore) Create(_ context.Context, exercise *model.Exercise) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	exercise.ID = fmt.Sprintf("exercise-%d", s.nextID)
	s.exercises = append(s.exercises, *exercise)
	return nil
}

func (s *memoryExerciseStore) ListByUserRange(_ context.Context, filter repository.ExerciseFilter) ([]model.Exercise, error) {
	s.mu.Lock()
	s.queries++
	out := make([]model.Exercise, 0)
	for _, e := range s.exercises {
		if e.UserID == filter.UserID && e.Date >= filter.From && e.Date <= filter.To {
			out = append(out, e)
		}
	}
	hook := s.afterList
	s.afterList = nil
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	if hook != nil {
		hook()
	}
	return out, nil
}

// memoryLogCache mirrors the redis cache: keys carry a per-user version.
type memoryLogCache struct {
	mu          sync.Mutex
	entries     map[string]*model.ExerciseLog
	versions    map[string]int
	invalidated []string
	getErr      error
}

func newMemoryLogCache() *memoryLogCache {
	return &memoryLogCache{
		entries:  make(map[string]*model.ExerciseLog),
		versions: make(map[string]int),
	}
}

func (c *memoryLogCache) GetLog(_ context.Context, filter repository.ExerciseFilter) (*model.ExerciseLog, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, "", c.getErr
	}
	key := fmt.Sprintf("%s:v%d:%s:%s:%d", filter.UserID, c.versions[filter.UserID], filter.From, filter.To, filter.Limit)
	return c.entries[key], key, nil
}

func (c *memoryLogCache) SetLog(_ context.Context, key string, log *model.ExerciseLog) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = log
	return nil
}

func (c *memoryLogCache) Invalidate(_ context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, userID)
	c.versions[userID]++
	return nil
}

type recordingPublisher struct {
	events []model.ExerciseEvent
	err    error
}

func (p *recordingPublisher) PublishExerciseEvent(_ context.Context, event model.ExerciseEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

var errStorageDown = errors.New("storage down")
