package update_loyalty

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
	msgInvalidInput       = "points must be non-zero and type must be set"
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

// Handle POST /api/v1/customers/{customerId}/loyalty
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	customerID, err := strconv.ParseInt(vars["customerId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /customers/{id}/loyalty - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	var req models.AppendTransactionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers/{id}/loyalty - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AppendTransaction(r.Context(), customerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, loyalty.ErrCustomerNotFound):
			h.logger.Warn("POST /customers/{id}/loyalty - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, loyalty.ErrInvalidInput):
			h.logger.Warn("POST /customers/{id}/loyalty - Invalid input: customer_id=%d, %v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /customers/{id}/loyalty - Failed to append: customer_id=%d, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /customers/{id}/loyalty - Transaction recorded: customer_id=%d, transaction_id=%d, points=%d",
		customerID, result.ID, result.Points)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
