package domain

type GrowthStage string

const (
	StageSmall  GrowthStage = "SMALL"
	StageMedium GrowthStage = "MEDIUM"
	StageLarge  GrowthStage = "LARGE"
)

type stageRule struct {
	maxHealth       int
	growthThreshold int
	next            GrowthStage
}

var stageRules = map[GrowthStage]stageRule{
	StageSmall:  {maxHealth: 60, growthThreshold: 40, next: StageMedium},
	StageMedium: {maxHealth: 80, growthThreshold: 65, next: StageLarge},
	StageLarge:  {maxHealth: 100, growthThreshold: 80},
}

// Stages lists growth stages from youngest to oldest.
func Stages() []GrowthStage {
	return []GrowthStage{StageSmall, StageMedium, StageLarge}
}

func (s GrowthStage) MaxHealth() int {
	return stageRules[s].maxHealth
}

func (s GrowthStage) GrowthThreshold() int {
	return stageRules[s].growthThreshold
}

// Next returns the following stage; false for the final stage.
func (s GrowthStage) Next() (GrowthStage, bool) {
	next := stageRules[s].next
	return next, next != ""
}

func (s GrowthStage) Valid() bool {
	_, ok := stageRules[s]
	return ok
}
