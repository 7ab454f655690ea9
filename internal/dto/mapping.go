package dto

import (
	"github.com/GlebRadaev/cocosforest/internal/domain"
)

func FromTodayItems(items []domain.TodayItem) []ChallengeItemDTO {
	res := make([]ChallengeItemDTO, len(items))
	for i, it := range items {
		res[i] = ChallengeItemDTO{
			ID:           it.ID,
			ChallengeID:  it.ChallengeID,
			Title:        it.Title,
			Rule:         it.Rule,
			RewardPoints: it.RewardPoints,
			Status:       string(it.Status),
			Claimable:    it.Claimable,
			Metrics:      it.Metrics,
			Awarded:      it.Awarded,
			AwardedAt:    it.AwardedAt,
			Message:      it.Message,
		}
	}
	return res
}

func FromLedgerEntries(entries []domain.LedgerEntry) []LedgerEntryDTO {
	res := make([]LedgerEntryDTO, len(entries))
	for i, e := range entries {
		res[i] = LedgerEntryDTO{
			EntryID:      e.EntryID.String(),
			Direction:    string(e.Direction),
			Amount:       e.Amount,
			BalanceAfter: e.BalanceAfter,
			Reason:       string(e.Reason),
			Reference:    e.Reference,
			Description:  e.Description,
			CreatedAt:    e.CreatedAt,
		}
	}
	return res
}

func FromPlant(p *domain.Plant) PlantDTO {
	return PlantDTO{
		ID:              p.ID,
		AssetID:         p.AssetID,
		X:               p.X,
		Y:               p.Y,
		Stage:           string(p.Stage),
		Health:          p.Health,
		MaxHealth:       p.MaxHealth,
		GrowthDays:      p.GrowthDays,
		IsDead:          p.IsDead,
		DeadHighlight:   p.DeadHighlight,
		WaterCountToday: p.WaterCountToday,
		LastWateredDate: p.LastWateredDate,
		PlantedAt:       p.PlantedAt,
	}
}

func FromDecoration(d *domain.Decoration) DecorationDTO {
	return DecorationDTO{
		ID:       d.ID,
		AssetID:  d.AssetID,
		X:        d.X,
		Y:        d.Y,
		PlacedAt: d.PlacedAt,
	}
}

func FromAssets(assets []domain.Asset) []AssetDTO {
	res := make([]AssetDTO, 0, len(assets))
	for _, a := range assets {
		res = append(res, AssetDTO{
			ID:          a.ID,
			Name:        a.Name,
			Kind:        string(a.Kind),
			PricePoints: a.PricePoints,
		})
	}
	return res
}

func FromForest(f *domain.Forest) ForestDTO {
	return ForestDTO{
		ID:          f.ID,
		Size:        f.Size,
		PondX:       f.PondX,
		PondY:       f.PondY,
		Plants:      []PlantDTO{},
		Decorations: []DecorationDTO{},
	}
}

func FromForestView(v *domain.ForestView) ForestDTO {
	res := FromForest(&v.Forest)
	for i := range v.Plants {
		res.Plants = append(res.Plants, FromPlant(&v.Plants[i]))
	}
	for i := range v.Decorations {
		res.Decorations = append(res.Decorations, FromDecoration(&v.Decorations[i]))
	}
	return res
}
