package price_package

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/detailhub/booking-service/internal/api/handlers"
	pricePackage "github.com/detailhub/booking-service/internal/usecase/price_package"
)

const (
	msgInvalidPackageID   = "invalid package ID"
	msgInvalidRequestBody = "invalid request body"
	msgPackageNotFound    = "package not found"
)

type Handler struct {
	useCase PricePackageUseCase
	logger  Logger
}

func NewHandler(useCase PricePackageUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/packages/{packageId}/calculate-price
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	packageID, err := strconv.ParseInt(vars["packageId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /packages/{id}/calculate-price - Invalid package ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	var req PriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /packages/{id}/calculate-price - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &pricePackage.Request{
		PackageID:   packageID,
		VehicleType: req.VehicleType,
	})
	if err != nil {
		switch {
		case errors.Is(err, pricePackage.ErrPackageNotFound):
			h.logger.Warn("POST /packages/{id}/calculate-price - Package not found: package_id=%d", packageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		default:
			h.logger.Error("POST /packages/{id}/calculate-price - Failed to quote: package_id=%d, error=%v", packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /packages/{id}/calculate-price - Quoted package_id=%d, vehicle=%s, price=%.2f",
		packageID, req.VehicleType, result.FinalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
