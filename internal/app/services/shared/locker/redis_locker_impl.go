package locker

import (
	"context"
	"errors"
	"time"

	"github.com/OzanKutlar/Ders-Control/internal/app/contracts"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/constvars"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/exceptions"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// lockClient is the part of *redis.Client the locker needs.
type lockClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisLocker struct {
	client lockClient
	Log    *zap.Logger
}

func NewRedisLocker(client *redis.Client, logger *zap.Logger) contracts.LockerService {
	return &redisLocker{
		client: client,
		Log:    logger,
	}
}

func (s *redisLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	lockValue := uuid.NewString()
	acquired, err := s.client.SetNX(ctx, key, lockValue, expiration).Result()
	if err != nil {
		s.Log.Error("redisLocker.TryLock error calling SetNX",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, key),
			zap.Error(err),
		)
		return false, "", exceptions.ErrRedisSet(err)
	}

	if !acquired {
		s.Log.Info("redisLocker.TryLock not acquired",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, key),
		)
		return false, "", nil
	}

	s.Log.Debug("redisLocker.TryLock acquired lock",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLockKey, key),
		zap.String(constvars.LoggingLockValueKey, lockValue),
	)
	return true, lockValue, nil
}

func (s *redisLocker) Unlock(ctx context.Context, key, lockValue string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	storedVal, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		s.Log.Info("redisLocker.Unlock no lock found to release",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, key),
		)
		return nil
	}
	if err != nil {
		s.Log.Error("redisLocker.Unlock error retrieving value from redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRedisGet(err)
	}

	if storedVal != lockValue {
		err := exceptions.ErrRedisUnlock(nil)
		s.Log.Error("redisLocker.Unlock lock ownership mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, key),
			zap.Error(err),
		)
		return err
	}

	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.Log.Error("redisLocker.Unlock error deleting lock from redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}
