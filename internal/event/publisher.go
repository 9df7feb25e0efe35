package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher publishes signup-pipeline events to RabbitMQ
type Publisher struct {
	conn              *RabbitMQConnection
	messagesPublished int64
	messagesFailed    int64
	lastPublishTime   time.Time
}

// NewPublisher creates a new event publisher
func NewPublisher(conn *RabbitMQConnection) *Publisher {
	return &Publisher{
		conn:            conn,
		lastPublishTime: time.Now(),
	}
}

// PublishLeadCaptured publishes a lead event to the lead_events queue
func (p *Publisher) PublishLeadCaptured(ctx context.Context, event LeadCapturedEvent) error {
	if err := p.publish(ctx, LeadQueue, event); err != nil {
		return err
	}
	slog.Info("Lead event published",
		"queue", LeadQueue,
		"lead_id", event.LeadID,
		"source", event.Source,
	)
	return nil
}

// PublishCustomerCreated publishes a customer event to the customer_events queue
func (p *Publisher) PublishCustomerCreated(ctx context.Context, event CustomerCreatedEvent) error {
	if err := p.publish(ctx, CustomerQueue, event); err != nil {
		return err
	}
	slog.Info("Customer event published",
		"queue", CustomerQueue,
		"customer_id", event.CustomerID,
		"agent_id", event.AgentID,
		"total_premium", event.TotalPremium,
	)
	return nil
}

func (p *Publisher) publish(ctx context.Context, queue string, event any) error {
	// Ensure the queue exists
	_, err := p.conn.Channel.QueueDeclare(
		queue, // queue name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		p.messagesFailed++
		return fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.messagesFailed++
		return fmt.Errorf("failed to marshal event for queue %s: %w", queue, err)
	}

	err = p.conn.Channel.PublishWithContext(
		ctx,
		"",    // exchange
		queue, // routing key (queue name)
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		p.messagesFailed++
		return fmt.Errorf("failed to publish event to queue %s: %w", queue, err)
	}

	p.messagesPublished++
	p.lastPublishTime = time.Now()
	return nil
}

// GetMetrics returns publisher metrics
func (p *Publisher) GetMetrics() map[string]any {
	return map[string]any{
		"messages_published": p.messagesPublished,
		"messages_failed":    p.messagesFailed,
		"last_publish_time":  p.lastPublishTime,
	}
}

// HealthCheck returns the health status of the publisher
func (p *Publisher) HealthCheck() PublisherHealthStatus {
	isHealthy := p.conn != nil && p.conn.Connection != nil && !p.conn.Connection.IsClosed()

	return PublisherHealthStatus{
		IsHealthy:         isHealthy,
		MessagesPublished: p.messagesPublished,
		MessagesFailed:    p.messagesFailed,
		LastPublishTime:   p.lastPublishTime,
	}
}

// PublisherHealthStatus represents the health status of the publisher
type PublisherHealthStatus struct {
	IsHealthy         bool      `json:"is_healthy"`
	MessagesPublished int64     `json:"messages_published"`
	MessagesFailed    int64     `json:"messages_failed"`
	LastPublishTime   time.Time `json:"last_publish_time"`
}
