package coursestore

import (
	"context"
	"errors"
	"time"

	"github.com/OzanKutlar/Ders-Control/internal/app/contracts"
	"github.com/OzanKutlar/Ders-Control/internal/app/models"
	"github.com/OzanKutlar/Ders-Control/internal/pkg/exceptions"

	"github.com/redis/go-redis/v9"
)

// redisKV is the slice of the go-redis client the store needs.
type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisStore struct {
	client redisKV
	key    string
}

// NewRedisStore keeps the committed courses as one JSON value under key.
func NewRedisStore(client *redis.Client, key string) contracts.CourseStore {
	return &redisStore{client: client, key: key}
}

func (s *redisStore) Load(ctx context.Context) ([]models.Course, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []models.Course{}, nil
	}
	if err != nil {
		return nil, exceptions.ErrRedisGet(err)
	}
	return DecodeCoursesJSON(data)
}

func (s *redisStore) Save(ctx context.Context, courses []models.Course) error {
	data, err := EncodeCoursesJSON(courses)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}
