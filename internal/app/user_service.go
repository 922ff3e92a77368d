package app

import (
	"context"
	"strings"
	"time"

	"exercise-tracker/internal/model"
)

type UserService struct {
	users   UserStore
	timeout time.Duration
}

func NewUserService(users UserStore, timeout time.Duration) *UserService {
	return &UserService{users: users, timeout: timeout}
}

// CreateUser stores a new user. Usernames are not required to be unique.
func (s *UserService) CreateUser(ctx context.Context, username string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, validationError(msgUsernameRequired)
	}

	ctx, cancel := withStorageTimeout(ctx, s.timeout)
	defer cancel()

	user := &model.User{Username: username}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	ctx, cancel := withStorageTimeout(ctx, s.timeout)
	defer cancel()

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = make([]model.User, 0)
	}
	return users, nil
}

func withStorageTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
