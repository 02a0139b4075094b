package get_loyalty

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

// LoyaltyWithHistoryResponse is the loyalty state plus the ledger, returned
// when the caller asks for history inline.
type LoyaltyWithHistoryResponse struct {
	models.LoyaltyResponse
	Transactions []models.TransactionResponse `json:"transactions"`
}

// Handle GET /api/v1/customers/{customerId}/loyalty?includeHistory=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	customerID, err := strconv.ParseInt(vars["customerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /customers/{id}/loyalty - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	result, err := h.service.GetLoyalty(r.Context(), customerID)
	if err != nil {
		h.respondServiceError(w, customerID, err)
		return
	}

	if r.URL.Query().Get("includeHistory") != "true" {
		h.logger.Info("GET /customers/{id}/loyalty - Retrieved: customer_id=%d, tier=%s", customerID, result.Tier)
		handlers.RespondJSON(w, http.StatusOK, result)
		return
	}

	history, err := h.service.GetTransactions(r.Context(), customerID)
	if err != nil {
		h.respondServiceError(w, customerID, err)
		return
	}

	h.logger.Info("GET /customers/{id}/loyalty - Retrieved with history: customer_id=%d, transactions=%d",
		customerID, len(history.Transactions))
	handlers.RespondJSON(w, http.StatusOK, &LoyaltyWithHistoryResponse{
		LoyaltyResponse: *result,
		Transactions:    history.Transactions,
	})
}

func (h *Handler) respondServiceError(w http.ResponseWriter, customerID int64, err error) {
	switch {
	case errors.Is(err, loyalty.ErrCustomerNotFound):
		h.logger.Warn("GET /customers/{id}/loyalty - Customer not found: customer_id=%d", customerID)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("GET /customers/{id}/loyalty - Failed: customer_id=%d, error=%v", customerID, err)
		handlers.RespondInternalError(w)
	}
}
