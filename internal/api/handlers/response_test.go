package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		kind error
		want int
	}{
		{domain.ErrValidation, http.StatusBadRequest},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrConflict, http.StatusConflict},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrTemporal, http.StatusUnprocessableEntity},
		{domain.ErrPayment, http.StatusBadGateway},
		{domain.ErrConfiguration, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		err := domain.NewError(tt.kind, "op failed")
		if domain.KindOf(tt.kind) == nil {
			err = tt.kind
		}
		assert.Equal(t, tt.want, StatusFromError(err), tt.kind.Error())
	}
}

func TestRespondDomainError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondDomainError(rec, errors.New("pq: connection refused"), "не удалось")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, http.StatusInternalServerError, body.Code)
	assert.Equal(t, msgInternalError, body.Message)
}

func TestDecodeAndValidate(t *testing.T) {
	type payload struct {
		ServiceID string `json:"serviceId" validate:"required,uuid"`
		Date      string `json:"date" validate:"required"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"serviceId":"nope"}`))
	var p payload
	err := DecodeAndValidate(req, &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ServiceID(uuid)")
	assert.Contains(t, err.Error(), "Date(required)")

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(
		`{"serviceId":"7b1f8d9e-3c7a-4a55-9d1e-0a2b3c4d5e6f","date":"2025-03-11T10:00:00Z"}`))
	assert.NoError(t, DecodeAndValidate(req, &p))
}
