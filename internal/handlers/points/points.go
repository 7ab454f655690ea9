package points

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/cocosforest/internal/domain"
	"github.com/GlebRadaev/cocosforest/internal/dto"
	"github.com/GlebRadaev/cocosforest/internal/handlers/apierr"
	"github.com/GlebRadaev/cocosforest/pkg/auth"
	"github.com/GlebRadaev/cocosforest/pkg/utils"
)

//go:generate mockgen -source=points.go -destination=mock_points.go -package=points

type Service interface {
	Balance(ctx context.Context, userID int) (int64, error)
	History(ctx context.Context, userID int, limit int) ([]domain.LedgerEntry, error)
}

type PointsHandler struct {
	pointService Service
}

func New(pointService Service) *PointsHandler {
	return &PointsHandler{
		pointService: pointService,
	}
}

// Balance godoc
//
//	@Summary		Get points balance
//	@Description	Retrieve the current points balance of the authenticated user.
//	@Tags			Points
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PointsBalanceResponseDTO	"Current balance"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		404	{object}	utils.Response					"Points account not found"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/points [get]
func (h *PointsHandler) Balance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.pointService.Balance(r.Context(), userID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PointsBalanceResponseDTO{Balance: balance})
}

// History godoc
//
//	@Summary		Get ledger history
//	@Description	Ledger entries of the authenticated user, newest first.
//	@Tags			Points
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int						false	"Maximum number of entries"
//	@Success		200		{array}		dto.LedgerEntryDTO		"Ledger entries"
//	@Success		204		{object}	utils.Response			"No entries"
//	@Failure		400		{object}	utils.Response			"Invalid limit"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/points/history [get]
func (h *PointsHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		if limit, err = strconv.Atoi(raw); err != nil || limit < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
	}

	entries, err := h.pointService.History(r.Context(), userID, limit)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "History is empty")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromLedgerEntries(entries))
}
