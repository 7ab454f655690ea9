package repo

import (
	"github.com/GlebRadaev/cocosforest/internal/pg"
	activityrepo "github.com/GlebRadaev/cocosforest/internal/repo/activity-repo"
	balancerepo "github.com/GlebRadaev/cocosforest/internal/repo/balance-repo"
	challengerepo "github.com/GlebRadaev/cocosforest/internal/repo/challenge-repo"
	forestrepo "github.com/GlebRadaev/cocosforest/internal/repo/forest-repo"
	ledgerrepo "github.com/GlebRadaev/cocosforest/internal/repo/ledger-repo"
	plantrepo "github.com/GlebRadaev/cocosforest/internal/repo/plant-repo"
	"github.com/GlebRadaev/cocosforest/internal/service/challengeservice"
	"github.com/GlebRadaev/cocosforest/internal/service/forestservice"
	"github.com/GlebRadaev/cocosforest/internal/service/pointservice"
)

type Repositories struct {
	BalanceRepo   pointservice.BalanceRepo
	LedgerRepo    pointservice.LedgerRepo
	ChallengeRepo challengeservice.ChallengeRepo
	ActivityRepo  challengeservice.ActivityRepo
	ForestRepo    forestservice.ForestRepo
	PlantRepo     forestservice.PlantRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		BalanceRepo:   balancerepo.New(conn),
		LedgerRepo:    ledgerrepo.New(conn),
		ChallengeRepo: challengerepo.New(conn),
		ActivityRepo:  activityrepo.New(conn),
		ForestRepo:    forestrepo.New(conn),
		PlantRepo:     plantrepo.New(conn),
	}
}
