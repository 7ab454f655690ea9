package apierr

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/cocosforest/internal/domain"
	"github.com/GlebRadaev/cocosforest/internal/service/forestservice"
	"github.com/GlebRadaev/cocosforest/pkg/grid"
	"github.com/GlebRadaev/cocosforest/pkg/utils"
)

// Status maps a service error to its HTTP status.
func Status(err error) int {
	switch {
	case domain.IsValidation(err):
		return http.StatusBadRequest
	case forestservice.IsPlacementError(err),
		errors.Is(err, domain.ErrAssetNotPlantable),
		errors.Is(err, domain.ErrAssetNotDecoration),
		errors.Is(err, domain.ErrNotReceiptBased):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrConcurrencyConflict),
		errors.Is(err, domain.ErrDuplicateEntry),
		errors.Is(err, domain.ErrForestExists),
		errors.Is(err, domain.ErrNotAchieved),
		errors.Is(err, domain.ErrPlantDead),
		errors.Is(err, domain.ErrPlantNotDead),
		errors.Is(err, domain.ErrWaterLimit),
		errors.Is(err, grid.ErrOccupied):
		return http.StatusConflict
	case domain.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as a utils.Response. Internal errors are logged and
// hidden from the caller.
func Respond(w http.ResponseWriter, err error) {
	code := Status(err)
	if code == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
		utils.RespondWithError(w, code, "Internal server error")
		return
	}
	utils.RespondWithError(w, code, err.Error())
}
