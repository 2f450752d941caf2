package idempotency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix префикс ключей обработанных платежных событий
const keyPrefix = "payments:event:"

const claimedValue = "1"

// Store реестр обработанных событий платежного провайдера поверх Redis
type Store struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewStore создает реестр событий; ttl - время хранения отметки
func NewStore(client redis.Cmdable, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Claim атомарно отмечает событие как обрабатываемое
// Возвращает false, если событие уже было отмечено ранее
func (s *Store) Claim(ctx context.Context, eventID string) (bool, error) {
	ok, err := s.client.SetNX(ctx, key(eventID), claimedValue, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("%w: Claim - setnx %s: %v", ErrStore, eventID, err)
	}
	return ok, nil
}

// Release снимает отметку, чтобы повторная доставка события была обработана
func (s *Store) Release(ctx context.Context, eventID string) error {
	if err := s.client.Del(ctx, key(eventID)).Err(); err != nil {
		return fmt.Errorf("%w: Release - del %s: %v", ErrStore, eventID, err)
	}
	return nil
}

func key(eventID string) string {
	return keyPrefix + eventID
}
