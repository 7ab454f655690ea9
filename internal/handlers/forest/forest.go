package forest

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/cocosforest/internal/domain"
	"github.com/GlebRadaev/cocosforest/internal/dto"
	"github.com/GlebRadaev/cocosforest/internal/handlers/apierr"
	"github.com/GlebRadaev/cocosforest/pkg/auth"
	"github.com/GlebRadaev/cocosforest/pkg/utils"
)

//go:generate mockgen -source=forest.go -destination=mock_forest.go -package=forest

type Service interface {
	CreateForest(ctx context.Context, userID int) (*domain.Forest, error)
	GetForest(ctx context.Context, userID int) (*domain.ForestView, error)
	Assets(ctx context.Context) ([]domain.Asset, error)
	ExpandForest(ctx context.Context, userID int) (*domain.Forest, error)
	MovePond(ctx context.Context, userID, x, y int) (*domain.Forest, error)
	Plant(ctx context.Context, userID, x, y, assetID int) (*domain.Plant, error)
	Water(ctx context.Context, userID, plantID int) (*domain.Plant, error)
	Move(ctx context.Context, userID, plantID, x, y int) (*domain.Plant, error)
	Remove(ctx context.Context, userID, plantID int) error
	PlaceDecoration(ctx context.Context, userID, assetID, x, y int) (*domain.Decoration, error)
	RemoveDecoration(ctx context.Context, userID, decorationID int) (int64, error)
}

type ForestHandler struct {
	forestService Service
}

func New(forestService Service) *ForestHandler {
	return &ForestHandler{
		forestService: forestService,
	}
}

// Create godoc
//
//	@Summary		Create the user's forest
//	@Description	Create an empty 8x8 forest with the pond in the centre.
//	@Tags			Forest
//	@Security		BearerAuth
//	@Produce		json
//	@Success		201	{object}	dto.ForestDTO	"Forest created"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		409	{object}	utils.Response	"Forest already exists"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/forest [post]
func (h *ForestHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	forest, err := h.forestService.CreateForest(r.Context(), userID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromForest(forest))
}

// Get godoc
//
//	@Summary		Get the user's forest
//	@Description	Forest layout with every plant and decoration.
//	@Tags			Forest
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ForestDTO	"Forest"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Forest not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/forest [get]
func (h *ForestHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	view, err := h.forestService.GetForest(r.Context(), userID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromForestView(view))
}

// Assets godoc
//
//	@Summary		List the asset catalog
//	@Description	Trees, flowers and decorations that can be bought, with their prices.
//	@Tags			Forest
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AssetDTO	"Active assets"
//	@Success		204	"No assets on sale"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/forest/assets [get]
func (h *ForestHandler) Assets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.forestService.Assets(r.Context())
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	if len(assets) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromAssets(assets))
}

// Expand godoc
//
//	@Summary		Expand the forest
//	@Description	Grow the forest by two cells per side for 1000 points. Occupants keep their place relative to the centre.
//	@Tags			Forest
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ForestDTO	"Expanded forest"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		402	{object}	utils.Response	"Insufficient funds"
//	@Failure		404	{object}	utils.Response	"Forest not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/forest/expand [post]
func (h *ForestHandler) Expand(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	forest, err := h.forestService.ExpandForest(r.Context(), userID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromForest(forest))
}

// MovePond godoc
//
//	@Summary		Move the pond
//	@Description	Move the 2x2 pond. Its top-left cell must keep one cell of border and cover no occupant.
//	@Tags			Forest
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CellRequestDTO	true	"Top-left pond cell"
//	@Success		200		{object}	dto.ForestDTO		"Forest with the moved pond"
//	@Failure		400		{object}	utils.Response		"Invalid request"
//	@Failure		401		{object}	utils.Response		"User not authorized"
//	@Failure		404		{object}	utils.Response		"Forest not found"
//	@Failure		422		{object}	utils.Response		"Invalid pond position"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/forest/pond [put]
func (h *ForestHandler) MovePond(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CellRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	forest, err := h.forestService.MovePond(r.Context(), userID, req.X, req.Y)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromForest(forest))
}

// Plant godoc
//
//	@Summary		Plant a tree or flower
//	@Description	Place a new SMALL plant on a free cell and pay its price.
//	@Tags			Plants
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PlantRequestDTO	true	"Asset and cell"
//	@Success		201		{object}	dto.PlantDTO		"Planted"
//	@Failure		400		{object}	utils.Response		"Invalid request"
//	@Failure		401		{object}	utils.Response		"User not authorized"
//	@Failure		402		{object}	utils.Response		"Insufficient funds"
//	@Failure		404		{object}	utils.Response		"Forest or asset not found"
//	@Failure		409		{object}	utils.Response		"Cell occupied"
//	@Failure		422		{object}	utils.Response		"Invalid position"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/forest/plants [post]
func (h *ForestHandler) Plant(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PlantRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	plant, err := h.forestService.Plant(r.Context(), userID, req.X, req.Y, req.AssetID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromPlant(plant))
}

// Water godoc
//
//	@Summary		Water a plant
//	@Description	Heal a living plant by 5 for 50 points, at most three times a day.
//	@Tags			Plants
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Plant id"
//	@Success		200	{object}	dto.PlantDTO	"Watered plant"
//	@Failure		400	{object}	utils.Response	"Invalid plant id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		402	{object}	utils.Response	"Insufficient funds"
//	@Failure		404	{object}	utils.Response	"Plant not found"
//	@Failure		409	{object}	utils.Response	"Plant is dead or the daily limit is reached"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/forest/plants/{id}/water [post]
func (h *ForestHandler) Water(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	plantID, ok := pathID(w, r, "Invalid plant id")
	if !ok {
		return
	}

	plant, err := h.forestService.Water(r.Context(), userID, plantID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromPlant(plant))
}

// Move godoc
//
//	@Summary		Move a plant
//	@Description	Move a plant to another free cell.
//	@Tags			Plants
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Plant id"
//	@Param			request	body		dto.CellRequestDTO	true	"Target cell"
//	@Success		200		{object}	dto.PlantDTO		"Moved plant"
//	@Failure		400		{object}	utils.Response		"Invalid request"
//	@Failure		401		{object}	utils.Response		"User not authorized"
//	@Failure		404		{object}	utils.Response		"Plant not found"
//	@Failure		409		{object}	utils.Response		"Cell occupied"
//	@Failure		422		{object}	utils.Response		"Invalid position"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/forest/plants/{id}/position [put]
func (h *ForestHandler) Move(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	plantID, ok := pathID(w, r, "Invalid plant id")
	if !ok {
		return
	}
	var req dto.CellRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	plant, err := h.forestService.Move(r.Context(), userID, plantID, req.X, req.Y)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromPlant(plant))
}

// Remove godoc
//
//	@Summary		Remove a dead plant
//	@Tags			Plants
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Plant id"
//	@Success		200	{string}	string			"Plant removed"
//	@Failure		400	{object}	utils.Response	"Invalid plant id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Plant not found"
//	@Failure		409	{object}	utils.Response	"Plant is alive"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/forest/plants/{id} [delete]
func (h *ForestHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	plantID, ok := pathID(w, r, "Invalid plant id")
	if !ok {
		return
	}

	if err := h.forestService.Remove(r.Context(), userID, plantID); err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "plant removed")
}

// PlaceDecoration godoc
//
//	@Summary		Place a decoration
//	@Description	Place a decoration on a free cell and pay its price.
//	@Tags			Decorations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DecorationRequestDTO	true	"Asset and cell"
//	@Success		201		{object}	dto.DecorationDTO			"Placed"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient funds"
//	@Failure		409		{object}	utils.Response				"Cell occupied"
//	@Failure		422		{object}	utils.Response				"Invalid position or asset"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/forest/decorations [post]
func (h *ForestHandler) PlaceDecoration(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DecorationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	decoration, err := h.forestService.PlaceDecoration(r.Context(), userID, req.AssetID, req.X, req.Y)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromDecoration(decoration))
}

// RemoveDecoration godoc
//
//	@Summary		Remove a decoration
//	@Description	Remove a decoration and refund its current price.
//	@Tags			Decorations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Decoration id"
//	@Success		200	{object}	dto.RefundResponseDTO	"Refunded points"
//	@Failure		400	{object}	utils.Response			"Invalid decoration id"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Decoration not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/forest/decorations/{id} [delete]
func (h *ForestHandler) RemoveDecoration(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	decorationID, ok := pathID(w, r, "Invalid decoration id")
	if !ok {
		return
	}

	refunded, err := h.forestService.RemoveDecoration(r.Context(), userID, decorationID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RefundResponseDTO{Refunded: refunded})
}

func pathID(w http.ResponseWriter, r *http.Request, msg string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return 0, false
	}
	return id, true
}
