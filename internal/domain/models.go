package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Direction string

const (
	DirectionEarn  Direction = "EARN"
	DirectionSpend Direction = "SPEND"
)

type Reason string

const (
	ReasonPlant            Reason = "PLANT"
	ReasonWater            Reason = "WATER"
	ReasonExpand           Reason = "EXPAND"
	ReasonDecorate         Reason = "DECORATE"
	ReasonDecorationRefund Reason = "DECORATION_REFUND"
	ReasonChallengeReward  Reason = "CHALLENGE_REWARD"
	ReasonTreeReward       Reason = "TREE_REWARD"
)

type Balance struct {
	UserID         int       `db:"user_id"`
	CurrentBalance int64     `db:"current_balance"`
	EarnedTotal    int64     `db:"earned_total"`
	SpentTotal     int64     `db:"spent_total"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type LedgerEntry struct {
	ID             int64     `db:"id"`
	EntryID        uuid.UUID `db:"entry_id"`
	UserID         int       `db:"user_id"`
	Direction      Direction `db:"direction"`
	Amount         int64     `db:"amount"`
	BalanceAfter   int64     `db:"balance_after"`
	Reason         Reason    `db:"reason"`
	Reference      string    `db:"reference"`
	Description    string    `db:"description"`
	IdempotencyKey string    `db:"idempotency_key"`
	CreatedAt      time.Time `db:"created_at"`
}

// IdempotencyKey identifies one logical ledger operation.
func IdempotencyKey(userID int, reason Reason, reference string) string {
	return fmt.Sprintf("%d:%s:%s", userID, reason, reference)
}

type MetricType string

const (
	MetricAmount     MetricType = "AMOUNT"
	MetricEmission   MetricType = "EMISSION"
	MetricAttendance MetricType = "ATTENDANCE"
	MetricSteps      MetricType = "STEPS"
)

type Comparator string

const (
	AtMost  Comparator = "AT_MOST"
	AtLeast Comparator = "AT_LEAST"
)

// Compare applies the comparator to value against threshold.
func (c Comparator) Compare(value, threshold decimal.Decimal) bool {
	switch c {
	case AtMost:
		return value.LessThanOrEqual(threshold)
	case AtLeast:
		return value.GreaterThanOrEqual(threshold)
	}
	return false
}

func (c Comparator) Symbol() string {
	if c == AtMost {
		return "≤"
	}
	return "≥"
}

type Verification string

const (
	VerificationMetric  Verification = "METRIC"
	VerificationReceipt Verification = "RECEIPT"
)

type ChallengeStatus string

const (
	StatusPending ChallengeStatus = "PENDING"
	StatusDone    ChallengeStatus = "DONE"
	StatusFail    ChallengeStatus = "FAIL"
)

type Challenge struct {
	ID               int             `db:"id"`
	Code             string          `db:"code"`
	Title            string          `db:"title"`
	Description      string          `db:"description"`
	MetricType       MetricType      `db:"metric_type"`
	Comparator       Comparator      `db:"comparator"`
	Threshold        decimal.Decimal `db:"threshold"`
	RewardPoints     int64           `db:"reward_points"`
	FilterConditions string          `db:"filter_conditions"`
	Verification     Verification    `db:"verification"`
	Active           bool            `db:"active"`
}

// Misconfigured reports a metric challenge that lacks the data needed to judge it.
func (c *Challenge) Misconfigured() bool {
	if c.Verification == VerificationReceipt {
		return false
	}
	if c.MetricType == "" {
		return true
	}
	return c.MetricType != MetricAttendance && c.Comparator == ""
}

type ChallengeInstance struct {
	ID                  int64           `db:"id"`
	UserID              int             `db:"user_id"`
	ChallengeID         int             `db:"challenge_id"`
	ChallengeDate       time.Time       `db:"challenge_date"`
	Status              ChallengeStatus `db:"status"`
	RewardGrantedAmount int64           `db:"reward_granted_amount"`
	AchievedAt          *time.Time      `db:"achieved_at"`
	CreatedAt           time.Time       `db:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at"`
}

func (i *ChallengeInstance) Rewarded() bool {
	return i.RewardGrantedAmount > 0
}

// RewardCandidate is a DONE instance whose reward has not been paid yet.
type RewardCandidate struct {
	InstanceID   int64 `db:"id"`
	UserID       int   `db:"user_id"`
	RewardPoints int64 `db:"reward_points"`
}

type CardTransaction struct {
	ID         int64           `db:"id"`
	UserID     int             `db:"user_id"`
	Amount     decimal.Decimal `db:"amount"`
	Category   string          `db:"category"`
	Merchant   string          `db:"merchant"`
	ApprovedAt time.Time       `db:"approved_at"`
	Status     string          `db:"status"`
}

type TodayItem struct {
	ID           int64
	ChallengeID  int
	Title        string
	Rule         string
	RewardPoints int64
	Status       ChallengeStatus
	Claimable    bool
	Metrics      map[string]any
	Awarded      int64
	AwardedAt    *time.Time
	Message      string
}

type TodayView struct {
	Date  time.Time
	Items []TodayItem
}

type ReceiptVerdict struct {
	Verified   bool
	Reason     string
	InstanceID int64
	Awarded    int64
}

type AssetKind string

const (
	AssetTree       AssetKind = "TREE"
	AssetFlower     AssetKind = "FLOWER"
	AssetDecoration AssetKind = "DECORATION"
)

type Asset struct {
	ID          int       `db:"id"`
	Name        string    `db:"name"`
	Kind        AssetKind `db:"kind"`
	PricePoints int64     `db:"price_points"`
	Active      bool      `db:"active"`
}

func (a *Asset) Plantable() bool {
	return a.Kind == AssetTree || a.Kind == AssetFlower
}

type Forest struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Size      int       `db:"size"`
	PondX     int       `db:"pond_x"`
	PondY     int       `db:"pond_y"`
	CreatedAt time.Time `db:"created_at"`
}

type Plant struct {
	ID              int         `db:"id"`
	ForestID        int         `db:"forest_id"`
	AssetID         int         `db:"asset_id"`
	X               int         `db:"x"`
	Y               int         `db:"y"`
	Stage           GrowthStage `db:"growth_stage"`
	Health          int         `db:"health"`
	MaxHealth       int         `db:"max_health"`
	GrowthDays      int         `db:"growth_days"`
	IsDead          bool        `db:"is_dead"`
	DeadHighlight   bool        `db:"dead_highlight"`
	WaterCountToday int         `db:"water_count_today"`
	WaterTotal      int         `db:"water_total"`
	LastWateredDate *time.Time  `db:"last_watered_date"`
	PlantedAt       time.Time   `db:"planted_at"`
	UpdatedAt       time.Time   `db:"updated_at"`
}

type Decoration struct {
	ID       int       `db:"id"`
	ForestID int       `db:"forest_id"`
	AssetID  int       `db:"asset_id"`
	X        int       `db:"x"`
	Y        int       `db:"y"`
	PlacedAt time.Time `db:"placed_at"`
}

type ForestView struct {
	Forest      Forest
	Plants      []Plant
	Decorations []Decoration
}

// TreeOwner is a user together with the number of mature trees they own.
type TreeOwner struct {
	UserID int
	Trees  int
}

type PhaseResult struct {
	Phase    string
	Affected int64
	Skipped  bool
}

type BatchReport struct {
	Date          time.Time
	Phases        []PhaseResult
	RewardedUsers int
	FailedUsers   int
}

type SettlementReport struct {
	Date          time.Time
	Failed        int64
	Granted       int
	GrantFailures int
}
