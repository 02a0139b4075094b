package add_spend

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/detailhub/booking-service/internal/api/handlers"
	"github.com/detailhub/booking-service/internal/service/loyalty"
	"github.com/detailhub/booking-service/internal/service/loyalty/models"
)

const (
	msgInvalidCustomerID  = "invalid customer ID"
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "customer not found"
	msgInvalidAmount      = "amount must be positive"
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

// Handle POST /api/v1/customers/{customerId}/spending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	customerID, err := strconv.ParseInt(vars["customerId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /customers/{id}/spending - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	var req models.AddSpendRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers/{id}/spending - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.AddSpend(r.Context(), customerID, &req); err != nil {
		switch {
		case errors.Is(err, loyalty.ErrCustomerNotFound):
			h.logger.Warn("POST /customers/{id}/spending - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, loyalty.ErrInvalidInput):
			h.logger.Warn("POST /customers/{id}/spending - Invalid amount: customer_id=%d, amount=%.2f",
				customerID, req.Amount)
			handlers.RespondBadRequest(w, msgInvalidAmount)

		default:
			h.logger.Error("POST /customers/{id}/spending - Failed: customer_id=%d, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /customers/{id}/spending - Recorded: customer_id=%d, amount=%.2f", customerID, req.Amount)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
