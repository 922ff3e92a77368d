package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"exercise-tracker/internal/config"
	"exercise-tracker/internal/model"
	"exercise-tracker/internal/platform/sqlite"
)

func TestNewGormStorageMigratesAndPings(t *testing.T) {
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "storage.db"), gormlogger.Discard)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	storage, err := NewGormStorage(config.DriverSQLite, db)
	if err != nil {
		t.Fatalf("NewGormStorage() error = %v", err)
	}

	ctx := context.Background()
	if err := storage.Ping(ctx); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	user := &model.User{Username: "alice"}
	if err := storage.Users.Create(ctx, user); err != nil {
		t.Fatalf("create user through storage: %v", err)
	}
	if err := storage.Events.Create(ctx, &model.ExerciseEvent{Type: model.EventExerciseCreated, ExerciseID: "e1", UserID: user.ID}); err != nil {
		t.Fatalf("create event through storage: %v", err)
	}

	if err := storage.Close(ctx); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := storage.Ping(ctx); err == nil {
		t.Fatal("expected ping to fail after close")
	}
}

func TestOpenStorageDefaultsToSQLite(t *testing.T) {
	cfg := &config.Config{
		Storage: config.StorageConfig{
			Driver:     config.DriverSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "nested", "tracker.db"),
		},
	}

	storage, err := openStorage(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("openStorage() error = %v", err)
	}
	defer storage.Close(context.Background())

	if storage.Driver != config.DriverSQLite {
		t.Fatalf("expected sqlite driver, got %q", storage.Driver)
	}
}

func TestAppCloseWithoutOptionalClients(t *testing.T) {
	a := &App{}
	if err := a.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}
