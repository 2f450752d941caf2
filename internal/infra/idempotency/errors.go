package idempotency

import "errors"

// ErrStore возвращается при недоступности Redis
var ErrStore = errors.New("idempotency: store unavailable")
