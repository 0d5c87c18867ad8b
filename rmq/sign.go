package rmq

import (
	"errors"
	"fmt"
	"time"

	"github.com/golden-vcr/signing-common/canon"
	"github.com/golden-vcr/signing-common/sig"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// HeaderMessageId is the AMQP header that carries a unique ID generated for a
	// signed message
	HeaderMessageId = "x-sig-message-id"

	// HeaderTimestamp is the AMQP header that carries an RFC3339 timestamp
	// indicating when the message was published
	HeaderTimestamp = "x-sig-timestamp"

	// HeaderCode is the AMQP header that carries the auth code computed over the
	// message ID, timestamp, and message body
	HeaderCode = "x-sig-code"
)

// ErrUnsigned indicates that a delivery carried no usable signature headers: one or
// more of the required headers was missing or malformed, so no auth code was ever
// recomputed or compared
var ErrUnsigned = errors.New("message is not signed")

// messageParams builds the canonical parameter sequence covered by a message
// signature: the message ID, the publish timestamp, and the message body, in that
// order. Producer and consumer must agree on this sequence exactly.
func messageParams(messageId string, timestamp time.Time, body []byte) []canon.Param {
	return []canon.Param{
		canon.Text(messageId),
		canon.Instant(timestamp),
		canon.Text(string(body)),
	}
}

// signPublishing stamps signature headers onto an outgoing message, generating a
// message ID and timestamp for it if not already present
func signPublishing(s sig.Signer, p *amqp.Publishing) error {
	if p.Headers == nil {
		p.Headers = amqp.Table{}
	}

	messageId, _ := p.Headers[HeaderMessageId].(string)
	if messageId == "" {
		messageId = uuid.NewString()
		p.Headers[HeaderMessageId] = messageId
	}

	timestampValue, _ := p.Headers[HeaderTimestamp].(string)
	if timestampValue == "" {
		timestampValue = time.Now().UTC().Format(time.RFC3339)
		p.Headers[HeaderTimestamp] = timestampValue
	}
	timestamp, err := time.Parse(time.RFC3339, timestampValue)
	if err != nil {
		return fmt.Errorf("failed to parse %s header: %w", HeaderTimestamp, err)
	}

	code, err := s.Sign(messageParams(messageId, timestamp, p.Body))
	if err != nil {
		return fmt.Errorf("failed to compute auth code: %w", err)
	}
	p.Headers[HeaderCode] = code
	return nil
}

// VerifyDelivery recomputes the auth code for a received message and compares it
// against the value of the code header: a missing or malformed header yields
// ErrUnsigned, and a code that doesn't match yields a *sig.MismatchError. Consumers
// must surface a failed delivery as rejected rather than silently dropping it.
func VerifyDelivery(v sig.Verifier, d amqp.Delivery) error {
	messageId, _ := d.Headers[HeaderMessageId].(string)
	if messageId == "" {
		return ErrUnsigned
	}

	timestampValue, _ := d.Headers[HeaderTimestamp].(string)
	if timestampValue == "" {
		return ErrUnsigned
	}
	timestamp, err := time.Parse(time.RFC3339, timestampValue)
	if err != nil {
		return ErrUnsigned
	}

	code, _ := d.Headers[HeaderCode].(string)
	if code == "" {
		return ErrUnsigned
	}

	return v.Verify(code, messageParams(messageId, timestamp, d.Body))
}
