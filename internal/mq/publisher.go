package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/shaiso/Genomix/internal/domain"
)

// MessageType — тип сообщения в очереди.
type MessageType string

// Типы сообщений.
const (
	MessageTypeStarted   MessageType = "classifier.started"
	MessageTypeCompleted MessageType = "classifier.completed"
	MessageTypeFailed    MessageType = "classifier.failed"
	MessageTypeReleased  MessageType = "classifier.released"
)

// Publisher публикует события жизненного цикла classifier'ов.
type Publisher struct {
	conn     *Connection
	workerID string
	logger   *slog.Logger
}

// NewPublisher создаёт новый Publisher.
func NewPublisher(conn *Connection, workerID string, logger *slog.Logger) *Publisher {
	return &Publisher{
		conn:     conn,
		workerID: workerID,
		logger:   logger,
	}
}

// Message — сообщение для публикации.
type Message struct {
	// ID — уникальный идентификатор сообщения.
	ID string `json:"id"`

	// Type — тип сообщения.
	Type MessageType `json:"type"`

	// Payload — полезная нагрузка.
	Payload any `json:"payload"`

	// Timestamp — время создания.
	Timestamp time.Time `json:"timestamp"`
}

// ClassifierEventPayload — payload события жизненного цикла.
type ClassifierEventPayload struct {
	ClassifierID string                  `json:"classifier_id"`
	WorkerID     string                  `json:"worker_id"`
	Status       domain.ClassifierStatus `json:"status"`
	Error        string                  `json:"error,omitempty"`
}

// Publish публикует сообщение в обменник событий.
func (p *Publisher) Publish(ctx context.Context, msg *Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	return p.conn.WithChannel(func(ch *amqp.Channel) error {
		err := ch.PublishWithContext(
			ctx,
			string(ExchangeClassifiers), // exchange
			string(RoutingKeyEvents),    // routing key
			false,
			false,
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent, // сообщение переживёт рестарт RabbitMQ
				MessageId:    msg.ID,
				Timestamp:    msg.Timestamp,
				Body:         body,
			},
		)
		if err != nil {
			return fmt.Errorf("publish to %s/%s: %w", ExchangeClassifiers, RoutingKeyEvents, err)
		}

		p.logger.Debug("published message",
			"message_id", msg.ID,
			"type", msg.Type,
		)

		return nil
	})
}

// PublishClassifierEvent публикует событие о переходе classifier'а.
// Best-effort: ошибка публикации логируется и не возвращается наружу —
// источником истины о статусах остаётся core-service.
func (p *Publisher) PublishClassifierEvent(ctx context.Context, msgType MessageType, classifier *domain.Classifier, status domain.ClassifierStatus, errMsg string) {
	msg := &Message{
		ID:   uuid.New().String(),
		Type: msgType,
		Payload: ClassifierEventPayload{
			ClassifierID: classifier.ID,
			WorkerID:     p.workerID,
			Status:       status,
			Error:        errMsg,
		},
		Timestamp: time.Now(),
	}

	if err := p.Publish(ctx, msg); err != nil {
		p.logger.Warn("failed to publish classifier event",
			"classifier_id", classifier.ID,
			"type", msgType,
			"error", err,
		)
	}
}
