package rmq

import (
	"context"
	"fmt"

	"github.com/golden-vcr/signing-common/sig"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Consumer can receive AMQP messages from a single message queue and verify the
// signature on each delivery before the application acts on it
type Consumer interface {
	Close()
	Recv(ctx context.Context) (<-chan amqp.Delivery, error)
	Verify(d amqp.Delivery) error
}

// NewConsumer initializes a Consumer from an AMQP client connection, configuring it
// to receive messages from an exchange with the given name and to verify them with
// the given verifier
func NewConsumer(conn *amqp.Connection, exchange string, v sig.Verifier) (Consumer, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	if err := declareFanoutExchange(ch, exchange); err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	q, err := declareConsumerQueue(ch, exchange)
	if err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to declare consumer queue: %w", err)
	}

	return &consumer{
		conn:     conn,
		ch:       ch,
		q:        q,
		exchange: exchange,
		v:        v,
	}, nil
}

// consumer is a concrete implementation that uses AMQP under the hood, receiving
// messages from a unique queue that is declared (and bound to a named exchange) for
// the lifetime of the consumer process
type consumer struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	q        *amqp.Queue
	exchange string
	v        sig.Verifier
}

func (c *consumer) Close() {
	c.ch.Close()
	c.conn.Close()
}

func (c *consumer) Recv(ctx context.Context) (<-chan amqp.Delivery, error) {
	autoAck := true
	exclusive := false
	noLocal := false
	noWait := false
	return c.ch.ConsumeWithContext(ctx, c.q.Name, "", autoAck, exclusive, noLocal, noWait, nil)
}

func (c *consumer) Verify(d amqp.Delivery) error {
	return VerifyDelivery(c.v, d)
}

var _ Consumer = (*consumer)(nil)
