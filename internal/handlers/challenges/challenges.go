package challenges

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/cocosforest/internal/domain"
	"github.com/GlebRadaev/cocosforest/internal/dto"
	"github.com/GlebRadaev/cocosforest/internal/handlers/apierr"
	"github.com/GlebRadaev/cocosforest/pkg/auth"
	"github.com/GlebRadaev/cocosforest/pkg/utils"
)

//go:generate mockgen -source=challenges.go -destination=mock_challenges.go -package=challenges

type Service interface {
	Today(ctx context.Context, userID int) (*domain.TodayView, error)
	Claim(ctx context.Context, userID int, instanceID int64) (int64, error)
	VerifyReceipt(ctx context.Context, userID, challengeID int, ocrText string) (*domain.ReceiptVerdict, error)
	UpdateSteps(ctx context.Context, userID int, steps int) ([]domain.TodayItem, error)
}

type ChallengeHandler struct {
	challengeService Service
}

func New(challengeService Service) *ChallengeHandler {
	return &ChallengeHandler{
		challengeService: challengeService,
	}
}

// Today godoc
//
//	@Summary		Today's challenges
//	@Description	Create missing instances for the current day, evaluate them and return the board.
//	@Tags			Challenges
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.TodayResponseDTO	"Challenges of the day"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/challenges/today [get]
func (h *ChallengeHandler) Today(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	view, err := h.challengeService.Today(r.Context(), userID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TodayResponseDTO{
		Date:  view.Date.Format(time.DateOnly),
		Items: dto.FromTodayItems(view.Items),
	})
}

// Claim godoc
//
//	@Summary		Claim a challenge reward
//	@Description	Pay the reward of an achieved instance. Repeated claims return the amount paid earlier.
//	@Tags			Challenges
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Challenge instance id"
//	@Success		200	{object}	dto.ClaimResponseDTO	"Reward paid"
//	@Failure		400	{object}	utils.Response			"Invalid instance id"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Instance not found"
//	@Failure		409	{object}	utils.Response			"Challenge not achieved"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/challenges/instances/{id}/claim [post]
func (h *ChallengeHandler) Claim(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	instanceID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || instanceID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid instance id")
		return
	}

	awarded, err := h.challengeService.Claim(r.Context(), userID, instanceID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ClaimResponseDTO{
		InstanceID: instanceID,
		Awarded:    awarded,
	})
}

// Receipt godoc
//
//	@Summary		Verify a receipt
//	@Description	Check OCR text of a receipt against a receipt-verified challenge. A rejected receipt changes nothing.
//	@Tags			Challenges
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Challenge id"
//	@Param			request	body		dto.ReceiptRequestDTO	true	"OCR text"
//	@Success		200		{object}	dto.ReceiptResponseDTO	"Verification verdict"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		404		{object}	utils.Response			"Challenge not found"
//	@Failure		422		{object}	utils.Response			"Challenge is not verified by receipt"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/challenges/{id}/receipt [post]
func (h *ChallengeHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	challengeID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || challengeID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid challenge id")
		return
	}

	var req dto.ReceiptRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.OCRText) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "ocrText is required")
		return
	}

	verdict, err := h.challengeService.VerifyReceipt(r.Context(), userID, challengeID, req.OCRText)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReceiptResponseDTO{
		Verified:   verdict.Verified,
		Reason:     verdict.Reason,
		InstanceID: verdict.InstanceID,
		Awarded:    verdict.Awarded,
	})
}

// Steps godoc
//
//	@Summary		Report today's steps
//	@Description	Store the step count of the current day and re-evaluate step challenges.
//	@Tags			Challenges
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.StepsRequestDTO		true	"Step count"
//	@Success		200		{object}	dto.StepsResponseDTO	"Re-evaluated step challenges"
//	@Failure		400		{object}	utils.Response			"Invalid request"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/steps [put]
func (h *ChallengeHandler) Steps(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.StepsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items, err := h.challengeService.UpdateSteps(r.Context(), userID, req.Steps)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StepsResponseDTO{Items: dto.FromTodayItems(items)})
}
