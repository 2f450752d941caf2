package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewError_MatchesKind(t *testing.T) {
	errSlotTaken := NewError(ErrConflict, "create_booking: slot is already taken")
	wrapped := fmt.Errorf("%w: CreateBooking - insert: %v", errSlotTaken, "duplicate key")

	assert.True(t, errors.Is(wrapped, errSlotTaken))
	assert.True(t, errors.Is(wrapped, ErrConflict))
	assert.False(t, errors.Is(wrapped, ErrNotFound))
	assert.Equal(t, ErrConflict, KindOf(wrapped))
	assert.Equal(t, "create_booking: slot is already taken", errSlotTaken.Error())
}

func TestKindOf_Untyped(t *testing.T) {
	assert.Nil(t, KindOf(errors.New("boom")))
	assert.Nil(t, KindOf(nil))
}
