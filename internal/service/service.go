package service

import (
	"time"

	"github.com/GlebRadaev/cocosforest/internal/pg"
	"github.com/GlebRadaev/cocosforest/internal/repo"
	"github.com/GlebRadaev/cocosforest/internal/service/challengeservice"
	"github.com/GlebRadaev/cocosforest/internal/service/forestservice"
	"github.com/GlebRadaev/cocosforest/internal/service/pointservice"
)

type Services struct {
	PointService     *pointservice.Service
	ChallengeService *challengeservice.Service
	ForestService    *forestservice.Service
}

// New wires the services. The point service is the only ledger writer and
// the other two pay through it.
func New(repo *repo.Repositories, txManager pg.TXManager, loc *time.Location) *Services {
	pointService := pointservice.New(repo.BalanceRepo, repo.LedgerRepo, txManager)
	challengeService := challengeservice.New(repo.ChallengeRepo, repo.ActivityRepo, pointService, txManager, loc)
	forestService := forestservice.New(repo.ForestRepo, repo.PlantRepo, pointService, txManager, loc)

	return &Services{
		PointService:     pointService,
		ChallengeService: challengeService,
		ForestService:    forestService,
	}
}
