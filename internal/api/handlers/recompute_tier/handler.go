package recompute_tier

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/detailhub/booking-service/internal/api/handlers"
	"github.com/detailhub/booking-service/internal/service/loyalty"
)

const (
	msgInvalidCustomerID = "invalid customer ID"
	msgNotFound          = "customer not found"
)

type Handler struct {
	service LoyaltyService
	logger  Logger
}

func NewHandler(service LoyaltyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/customers/{customerId}/tier/recompute
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	customerID, err := strconv.ParseInt(vars["customerId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /customers/{id}/tier/recompute - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	result, err := h.service.RecomputeTier(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, loyalty.ErrCustomerNotFound):
			h.logger.Warn("POST /customers/{id}/tier/recompute - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /customers/{id}/tier/recompute - Failed: customer_id=%d, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /customers/{id}/tier/recompute - Recomputed: customer_id=%d, tier=%s", customerID, result.Tier)
	handlers.RespondJSON(w, http.StatusOK, result)
}
