package rmq

import (
	"context"
	"fmt"

	"github.com/golden-vcr/signing-common/sig"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Producer can send arbitrary, JSON-formatted messages to a single message queue,
// signing each one so that consumers holding the shared secret can verify it
type Producer interface {
	Send(ctx context.Context, jsonData []byte) error
}

// NewProducer initializes a Producer from an AMQP client connection, configuring it
// to send messages to an exchange with the given name, signed with the given signer
func NewProducer(conn *amqp.Connection, exchange string, s sig.Signer) (Producer, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}
	defer ch.Close()

	if err := declareFanoutExchange(ch, exchange); err != nil {
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &producer{
		conn:     conn,
		exchange: exchange,
		s:        s,
	}, nil
}

// producer is a concrete implementation that uses AMQP under the hood, sending
// signed messages to a named exchange
type producer struct {
	conn     *amqp.Connection
	exchange string
	s        sig.Signer
}

func (p *producer) Send(ctx context.Context, jsonData []byte) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}

	publishing := amqp.Publishing{
		ContentType: "application/json",
		Body:        jsonData,
	}
	if err := signPublishing(p.s, &publishing); err != nil {
		return fmt.Errorf("failed to sign message: %w", err)
	}

	mandatory := false
	immediate := false
	return ch.PublishWithContext(ctx, p.exchange, "", mandatory, immediate, publishing)
}

var _ Producer = (*producer)(nil)
