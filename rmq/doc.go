// Package rmq provides utility code to help backend applications connect to a
// RabbitMQ server and exchange signed messages over AMQP queues: every message
// published through this package carries signature headers (see package sig), and
// consumers holding the same shared secret can verify each delivery before acting on
// it, proving that the message was produced by a service with access to the secret
// and that its body was not altered in transit.
package rmq
