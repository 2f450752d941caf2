package list_shops

import (
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
)

type Handler struct {
	service ShopService
	logger  Logger
}

func NewHandler(service ShopService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shops, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /shops - Failed to list shops: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, shops)
}

// HandlePopular GET /api/v1/shops/popular
func (h *Handler) HandlePopular(w http.ResponseWriter, r *http.Request) {
	shops, err := h.service.ListPopular(r.Context())
	if err != nil {
		h.logger.Error("GET /shops/popular - Failed to list popular shops: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, shops)
}
