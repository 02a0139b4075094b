package price_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/detailhub/booking-service/internal/api/handlers"
	priceService "github.com/detailhub/booking-service/internal/usecase/price_service"
)

const (
	msgInvalidServiceID       = "invalid service ID"
	msgInvalidRequestBody     = "invalid request body"
	msgServiceNotFound        = "service not found"
	msgUnsupportedVehicleType = "vehicle type not supported for this service"
)

type Handler struct {
	useCase PriceServiceUseCase
	logger  Logger
}

func NewHandler(useCase PriceServiceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/services/{serviceId}/calculate-price
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /services/{id}/calculate-price - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req PriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services/{id}/calculate-price - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &priceService.Request{
		ServiceID:   serviceID,
		VehicleType: req.VehicleType,
	})
	if err != nil {
		switch {
		case errors.Is(err, priceService.ErrServiceNotFound):
			h.logger.Warn("POST /services/{id}/calculate-price - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, priceService.ErrUnsupportedVehicleType):
			h.logger.Warn("POST /services/{id}/calculate-price - Unsupported vehicle type: service_id=%d, vehicle=%s",
				serviceID, req.VehicleType)
			handlers.RespondBadRequest(w, msgUnsupportedVehicleType)

		default:
			h.logger.Error("POST /services/{id}/calculate-price - Failed to quote: service_id=%d, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services/{id}/calculate-price - Quoted service_id=%d, vehicle=%s, price=%.2f",
		serviceID, req.VehicleType, result.FinalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
