package contracts

import (
	"context"
	"time"
)

// LockerService guards the read-modify-write of the committed course list.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}
