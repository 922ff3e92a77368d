package bootstrap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/gorm"

	"exercise-tracker/internal/app"
	"exercise-tracker/internal/config"
	"exercise-tracker/internal/pkg/logger"
	mongoClient "exercise-tracker/internal/platform/mongo"
	mysqlClient "exercise-tracker/internal/platform/mysql"
	sqliteClient "exercise-tracker/internal/platform/sqlite"
	"exercise-tracker/internal/repository"
	"exercise-tracker/internal/worker"
)

// Storage bundles the repositories of one backend together with its
// health check and shutdown hooks.
type Storage struct {
	Driver    string
	Users     app.UserStore
	Exercises app.ExerciseStore
	Events    worker.EventStore

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

func (s *Storage) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

func (s *Storage) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// NewGormStorage migrates db and returns storage backed by gorm repositories.
func NewGormStorage(driver string, db *gorm.DB) (*Storage, error) {
	if err := repository.AutoMigrate(db); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db failed: %w", err)
	}

	return &Storage{
		Driver:    driver,
		Users:     repository.NewUserRepository(db),
		Exercises: repository.NewExerciseRepository(db),
		Events:    repository.NewExerciseEventRepository(db),
		ping:      sqlDB.PingContext,
		close: func(context.Context) error {
			return sqlDB.Close()
		},
	}, nil
}

func NewMongoStorage(ctx context.Context, client *mongo.Client, database string) (*Storage, error) {
	db := client.Database(database)
	exercises := repository.NewMongoExerciseRepository(db)
	if err := exercises.EnsureIndexes(ctx); err != nil {
		return nil, err
	}

	return &Storage{
		Driver:    config.DriverMongo,
		Users:     repository.NewMongoUserRepository(db),
		Exercises: exercises,
		Events:    repository.NewMongoExerciseEventRepository(db),
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		close: client.Disconnect,
	}, nil
}

func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverMySQL:
		db, err := mysqlClient.New(ctx, cfg.MySQLDSN(), logger.Gorm(log))
		if err != nil {
			return nil, err
		}
		return gormStorageOrClose(config.DriverMySQL, db)
	case config.DriverMongo:
		client, err := mongoClient.New(ctx, cfg.Mongo.URI)
		if err != nil {
			return nil, err
		}
		storage, err := NewMongoStorage(ctx, client, cfg.Mongo.Database)
		if err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return storage, nil
	default:
		db, err := sqliteClient.Open(cfg.Storage.SQLitePath, logger.Gorm(log))
		if err != nil {
			return nil, err
		}
		return gormStorageOrClose(config.DriverSQLite, db)
	}
}

func gormStorageOrClose(driver string, db *gorm.DB) (*Storage, error) {
	storage, err := NewGormStorage(driver, db)
	if err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return nil, err
	}
	return storage, nil
}
