package rabbitmq

import (
	"fmt"

	"github.com/streadway/amqp"
)

// Exchange carrying subscription lifecycle events.
const UpgradeExchange = "upgrades"

// QueueConfig binds a queue to the exchange under a routing key.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetUpgradeQueues returns the queues consumed by the mail workers.
func GetUpgradeQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "upgrades.confirmed", RoutingKey: "confirmed"},
	}
}

// SetupChannel opens a channel, declares the exchange and binds the
// queues.
func SetupChannel(conn *amqp.Connection, queues []QueueConfig) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := ch.Qos(10, 0, false); err != nil {
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	err = ch.ExchangeDeclare(
		UpgradeExchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, q := range queues {
		_, err := ch.QueueDeclare(
			q.QueueName,
			true,
			false,
			false,
			false,
			nil,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to declare queue %s: %w", op, q.QueueName, err)
		}

		err = ch.QueueBind(
			q.QueueName,
			q.RoutingKey,
			UpgradeExchange,
			false,
			nil,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to bind queue %s with routing key %s: %w", op, q.QueueName, q.RoutingKey, err)
		}
	}

	return ch, nil
}
