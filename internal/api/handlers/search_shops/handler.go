package search_shops

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/shops"
)

const msgMissingService = "параметр service обязателен"

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

// Handle GET /api/v1/shops/search?service=<name>
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceName := r.URL.Query().Get("service")

	result, err := h.service.Search(r.Context(), serviceName)
	if err != nil {
		if errors.Is(err, shops.ErrInvalidInput) {
			h.logger.Warn("GET /shops/search - Missing service name")
			handlers.RespondBadRequest(w, msgMissingService)
			return
		}
		h.logger.Error("GET /shops/search - Failed to search shops: service=%q, error=%v", serviceName, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
