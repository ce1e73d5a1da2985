package common

import (
	"context"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Exchange string

type Queue string

type BindingKey string

// MessageProducer is the publishing half of the broker. Services that only
// emit events depend on this rather than on the full MessageBroker.
type MessageProducer interface {
	Publish(ctx context.Context, msg []byte, key BindingKey, exchange Exchange) error
}

// MessageConsumer is the subscribing half of the broker.
type MessageConsumer interface {
	Consume(key BindingKey, exchange Exchange, queue Queue) (<-chan amqp.Delivery, error)
}

const (
	UserExchange     Exchange   = "user_exchange"
	UserCreatedQueue Queue      = "user_created_queue"
	UserCreatedKey   BindingKey = "user.created"
)

// MessageBroker wraps a single AMQP connection and channel.
type MessageBroker struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewMessageBroker(uri string) (*MessageBroker, error) {
	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, fmt.Errorf("could not connect to AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("could not open channel: %w", err)
	}

	return &MessageBroker{conn: conn, ch: ch}, nil
}

// Close closes the channel and the underlying connection.
func (mb *MessageBroker) Close() error {
	return errors.Join(mb.ch.Close(), mb.conn.Close())
}

// SetupUserExchange declares the durable exchange and queue used for user
// lifecycle events and binds them together. Declaring topology that already
// exists is a no-op on the broker side, so this is safe to run on every
// startup.
func (mb *MessageBroker) SetupUserExchange() error {
	if err := mb.ch.ExchangeDeclare(string(UserExchange), "direct", true, false, false, false, nil); err != nil {
		return err
	}

	if _, err := mb.ch.QueueDeclare(string(UserCreatedQueue), true, false, false, false, nil); err != nil {
		return err
	}

	return mb.ch.QueueBind(string(UserCreatedQueue), string(UserCreatedKey), string(UserExchange), false, nil)
}

// Publish sends a JSON message to the exchange with the given binding key.
// Messages are marked persistent so they survive a broker restart.
func (mb *MessageBroker) Publish(ctx context.Context, msg []byte, key BindingKey, exchange Exchange) error {
	err := mb.ch.PublishWithContext(ctx, string(exchange), string(key), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         msg,
	})
	if err != nil {
		return fmt.Errorf("could not publish message: %w", err)
	}

	return nil
}

// Consume registers a consumer on the queue and returns its delivery channel.
// Deliveries must be acked or nacked by the caller.
func (mb *MessageBroker) Consume(key BindingKey, exchange Exchange, queue Queue) (<-chan amqp.Delivery, error) {
	msgs, err := mb.ch.Consume(string(queue), string(key), false, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("could not consume message: %w", err)
	}

	return msgs, nil
}
