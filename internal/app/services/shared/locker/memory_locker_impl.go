package locker

import (
	"context"
	"sync"
	"time"

	"github.com/OzanKutlar/Ders-Control/internal/app/contracts"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/exceptions"

	"github.com/google/uuid"
)

type heldLock struct {
	value     string
	expiresAt time.Time
}

// memoryLocker holds locks for a single process, enough for the file
// stores which are never shared between hosts.
type memoryLocker struct {
	mu    sync.Mutex
	locks map[string]heldLock
	now   func() time.Time
}

func NewMemoryLocker() contracts.LockerService {
	return &memoryLocker{
		locks: make(map[string]heldLock),
		now:   time.Now,
	}
}

func (l *memoryLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if held, ok := l.locks[key]; ok && l.now().Before(held.expiresAt) {
		return false, "", nil
	}
	value := uuid.NewString()
	l.locks[key] = heldLock{value: value, expiresAt: l.now().Add(expiration)}
	return true, value, nil
}

func (l *memoryLocker) Unlock(ctx context.Context, key, lockValue string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	held, ok := l.locks[key]
	if !ok {
		return nil
	}
	if held.value != lockValue {
		return exceptions.ErrRedisUnlock(nil)
	}
	delete(l.locks, key)
	return nil
}
