package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"exercise-tracker/internal/config"
	"exercise-tracker/internal/pkg/logger"
	rabbitmqClient "exercise-tracker/internal/platform/rabbitmq"
	redisClient "exercise-tracker/internal/platform/redis"
	"exercise-tracker/internal/worker"
)

// App owns every long-lived client. Redis and MQConn stay nil when the
// matching feature is disabled in config.
type App struct {
	Config      *config.Config
	Logger      zerolog.Logger
	Storage     *Storage
	Redis       *redis.Client
	MQConn      *amqp.Connection
	EventWorker *worker.ExerciseEventWorker

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format).With().Str("app", cfg.App.Name).Logger()
	a := &App{
		Config:    cfg,
		Logger:    log,
		StartedAt: time.Now(),
	}

	storage, err := openStorage(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	a.Storage = storage
	log.Info().Str("driver", storage.Driver).Msg("storage ready")

	if cfg.Redis.Enabled {
		redisCli, err := redisClient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		a.Redis = redisCli
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis log cache enabled")
	}

	if cfg.RabbitMQ.Enabled {
		mqConn, err := rabbitmqClient.New(ctx, cfg.RabbitMQ.URL, cfg.RabbitMQ.ExerciseQueue)
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		a.MQConn = mqConn

		eventWorker := worker.NewExerciseEventWorker(mqConn, storage.Events, cfg.RabbitMQ.ExerciseQueue, log)
		if err := eventWorker.Start(ctx); err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("start exercise event worker failed: %w", err)
		}
		a.EventWorker = eventWorker
	}

	return a, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.EventWorker != nil {
		a.EventWorker.Close()
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			closeErr = err
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.Storage != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.Storage.Close(ctx); err != nil {
			closeErr = err
		}
	}
	return closeErr
}
