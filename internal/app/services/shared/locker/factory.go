package locker

import (
	"context"

	"github.com/OzanKutlar/Ders-Control/internal/app/config"
	"github.com/OzanKutlar/Ders-Control/internal/app/contracts"
	"github.com/OzanKutlar/Ders-Control/internal/app/drivers/database"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/constvars"

	"go.uber.org/zap"
)

// New picks a redis lock when the committed list is shared through
// redis, and a process-local lock otherwise.
func New(ctx context.Context, logger *zap.Logger, internalConfig *config.InternalConfig, driverConfig *config.DriverConfig) (contracts.LockerService, func(context.Context) error, error) {
	if internalConfig.Planner.StoreDriver != constvars.StoreDriverRedis {
		return NewMemoryLocker(), func(context.Context) error { return nil }, nil
	}
	client, err := database.NewRedisClient(ctx, driverConfig)
	if err != nil {
		return nil, nil, err
	}
	return NewRedisLocker(client, logger), func(context.Context) error { return client.Close() }, nil
}
