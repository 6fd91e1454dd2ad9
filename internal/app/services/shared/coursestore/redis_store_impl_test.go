package coursestore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRedisKV struct {
	mock.Mock
}

func (m *mockRedisKV) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return redis.NewStringResult(args.String(0), args.Error(1))
}

func (m *mockRedisKV) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return redis.NewStatusResult(args.String(0), args.Error(1))
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Key Loads Empty", func(t *testing.T) {
		kv := new(mockRedisKV)
		kv.On("Get", ctx, "committed").Return("", redis.Nil)

		courses, err := (&redisStore{client: kv, key: "committed"}).Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, courses)
		kv.AssertExpectations(t)
	})

	t.Run("Save Writes The Whole List", func(t *testing.T) {
		kv := new(mockRedisKV)
		expected, err := EncodeCoursesJSON(sampleCourses())
		require.NoError(t, err)
		kv.On("Set", ctx, "committed", expected, time.Duration(0)).Return("OK", nil)
		kv.On("Get", ctx, "committed").Return(string(expected), nil)

		store := &redisStore{client: kv, key: "committed"}
		require.NoError(t, store.Save(ctx, sampleCourses()))

		courses, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, sampleCourses(), courses)
		kv.AssertExpectations(t)
	})

	t.Run("Backend Errors Are Wrapped", func(t *testing.T) {
		kv := new(mockRedisKV)
		kv.On("Get", ctx, "committed").Return("", errors.New("connection refused"))

		_, err := (&redisStore{client: kv, key: "committed"}).Load(ctx)
		assert.ErrorContains(t, err, "connection refused")
	})
}
