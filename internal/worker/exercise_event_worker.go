package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"exercise-tracker/internal/model"
	"exercise-tracker/internal/platform/rabbitmq"
)

type EventStore interface {
	Create(ctx context.Context, event *model.ExerciseEvent) error
}

// ExerciseEventWorker drains exercise events from RabbitMQ into the
// activity store.
type ExerciseEventWorker struct {
	conn      *amqp.Connection
	store     EventStore
	queueName string
	log       zerolog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewExerciseEventWorker(conn *amqp.Connection, store EventStore, queueName string, log zerolog.Logger) *ExerciseEventWorker {
	return &ExerciseEventWorker{
		conn:      conn,
		store:     store,
		queueName: queueName,
		log:       log.With().Str("component", "exercise-event-worker").Logger(),
	}
}

func (w *ExerciseEventWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open worker channel failed: %w", err)
	}

	if _, err := rabbitmq.DeclareQueue(ch, w.queueName); err != nil {
		_ = ch.Close()
		cancel()
		return err
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume queue failed: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()

		for {
			select {
			case <-workerCtx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				if err := w.handle(workerCtx, d.Body); err != nil {
					w.log.Error().Err(err).Msg("handle exercise event failed")
					_ = d.Nack(false, false)
					continue
				}
				_ = d.Ack(false)
			}
		}
	}()

	w.log.Info().Str("queue", w.queueName).Msg("exercise event worker started")
	return nil
}

func (w *ExerciseEventWorker) handle(ctx context.Context, body []byte) error {
	var event model.ExerciseEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("decode exercise event failed: %w", err)
	}
	if event.Type != model.EventExerciseCreated || event.ExerciseID == "" || event.UserID == "" {
		return fmt.Errorf("unsupported exercise event %q for exercise %q", event.Type, event.ExerciseID)
	}
	return w.store.Create(ctx, &event)
}

func (w *ExerciseEventWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
