package idempotency

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ttl = 72 * time.Hour

func TestStore_Claim(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewStore(db, ttl)

	mock.ExpectSetNX("payments:event:evt_1", "1", ttl).SetVal(true)
	mock.ExpectSetNX("payments:event:evt_1", "1", ttl).SetVal(false)

	first, err := store.Claim(context.Background(), "evt_1")
	require.NoError(t, err)
	assert.True(t, first)

	second, err := store.Claim(context.Background(), "evt_1")
	require.NoError(t, err)
	assert.False(t, second)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Claim_RedisDown(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewStore(db, ttl)

	mock.ExpectSetNX("payments:event:evt_1", "1", ttl).SetErr(errors.New("connection refused"))

	_, err := store.Claim(context.Background(), "evt_1")

	assert.ErrorIs(t, err, ErrStore)
}

func TestStore_Release(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewStore(db, ttl)

	mock.ExpectDel("payments:event:evt_1").SetVal(1)

	require.NoError(t, store.Release(context.Background(), "evt_1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
