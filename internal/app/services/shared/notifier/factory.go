package notifier

import (
	"context"

	"github.com/OzanKutlar/Ders-Control/internal/app/config"
	"github.com/OzanKutlar/Ders-Control/internal/app/contracts"
	"github.com/OzanKutlar/Ders-Control/internal/app/drivers/messaging"

	"go.uber.org/zap"
)

// New returns the RabbitMQ notifier when a queue is configured and the
// no-op notifier otherwise. The returned func closes the broker connection.
func New(logger *zap.Logger, internalConfig *config.InternalConfig, driverConfig *config.DriverConfig) (contracts.CommitNotifier, func(context.Context) error, error) {
	queue := internalConfig.Planner.NotifyQueue
	if queue == "" {
		return NewNoopNotifier(), func(context.Context) error { return nil }, nil
	}

	conn, err := messaging.NewRabbitMQ(driverConfig)
	if err != nil {
		return nil, nil, err
	}
	n, err := NewRabbitMQNotifier(logger, conn, queue)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	return n, func(context.Context) error { return conn.Close() }, nil
}
