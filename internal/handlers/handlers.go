package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/cocosforest/docs"
	"github.com/GlebRadaev/cocosforest/internal/config"
	challengehandlers "github.com/GlebRadaev/cocosforest/internal/handlers/challenges"
	foresthandlers "github.com/GlebRadaev/cocosforest/internal/handlers/forest"
	pointshandlers "github.com/GlebRadaev/cocosforest/internal/handlers/points"
	"github.com/GlebRadaev/cocosforest/internal/metrics"
	"github.com/GlebRadaev/cocosforest/internal/service"
	"github.com/GlebRadaev/cocosforest/pkg/auth"
	"github.com/GlebRadaev/cocosforest/pkg/ratelimit"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type ChallengeHandler interface {
	Today(w http.ResponseWriter, r *http.Request)
	Claim(w http.ResponseWriter, r *http.Request)
	Receipt(w http.ResponseWriter, r *http.Request)
	Steps(w http.ResponseWriter, r *http.Request)
}

type PointsHandler interface {
	Balance(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type ForestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Assets(w http.ResponseWriter, r *http.Request)
	Expand(w http.ResponseWriter, r *http.Request)
	MovePond(w http.ResponseWriter, r *http.Request)
	Plant(w http.ResponseWriter, r *http.Request)
	Water(w http.ResponseWriter, r *http.Request)
	Move(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
	PlaceDecoration(w http.ResponseWriter, r *http.Request)
	RemoveDecoration(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	ChallengeHandler ChallengeHandler
	PointsHandler    PointsHandler
	ForestHandler    ForestHandler

	Auth      func(http.Handler) http.Handler
	RateLimit func(http.Handler) http.Handler
}

func New(s *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		ChallengeHandler: challengehandlers.New(s.ChallengeService),
		PointsHandler:    pointshandlers.New(s.PointService),
		ForestHandler:    foresthandlers.New(s.ForestService),
		Auth:             auth.AuthMiddleware(auth.NewJWTService(cfg.JWTSecret)),
		RateLimit:        ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst).Handler,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(h.Auth, h.RateLimit)

		r.Route("/challenges", func(r chi.Router) {
			r.Get("/today", h.ChallengeHandler.Today)
			r.Post("/instances/{id}/claim", h.ChallengeHandler.Claim)
			r.Post("/{id}/receipt", h.ChallengeHandler.Receipt)
		})
		r.Put("/steps", h.ChallengeHandler.Steps)

		r.Route("/points", func(r chi.Router) {
			r.Get("/", h.PointsHandler.Balance)
			r.Get("/history", h.PointsHandler.History)
		})

		r.Route("/forest", func(r chi.Router) {
			r.Post("/", h.ForestHandler.Create)
			r.Get("/", h.ForestHandler.Get)
			r.Get("/assets", h.ForestHandler.Assets)
			r.Post("/expand", h.ForestHandler.Expand)
			r.Put("/pond", h.ForestHandler.MovePond)
			r.Route("/plants", func(r chi.Router) {
				r.Post("/", h.ForestHandler.Plant)
				r.Post("/{id}/water", h.ForestHandler.Water)
				r.Put("/{id}/position", h.ForestHandler.Move)
				r.Delete("/{id}", h.ForestHandler.Remove)
			})
			r.Route("/decorations", func(r chi.Router) {
				r.Post("/", h.ForestHandler.PlaceDecoration)
				r.Delete("/{id}", h.ForestHandler.RemoveDecoration)
			})
		})
	})

	return r
}
