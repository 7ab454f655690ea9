package dto

import "time"

type CellRequestDTO struct {
	X int `json:"x" example:"1"`
	Y int `json:"y" example:"2"`
}

type PlantRequestDTO struct {
	AssetID int `json:"assetId" example:"1"`
	X       int `json:"x" example:"1"`
	Y       int `json:"y" example:"2"`
}

type DecorationRequestDTO struct {
	AssetID int `json:"assetId" example:"7"`
	X       int `json:"x" example:"0"`
	Y       int `json:"y" example:"0"`
}

type PlantDTO struct {
	ID              int        `json:"id" example:"42"`
	AssetID         int        `json:"assetId" example:"1"`
	X               int        `json:"x" example:"1"`
	Y               int        `json:"y" example:"2"`
	Stage           string     `json:"stage" example:"SMALL"`
	Health          int        `json:"health" example:"60"`
	MaxHealth       int        `json:"maxHealth" example:"60"`
	GrowthDays      int        `json:"growthDays" example:"0"`
	IsDead          bool       `json:"isDead" example:"false"`
	DeadHighlight   bool       `json:"deadHighlight" example:"false"`
	WaterCountToday int        `json:"waterCountToday" example:"1"`
	LastWateredDate *time.Time `json:"lastWateredDate,omitempty"`
	PlantedAt       time.Time  `json:"plantedAt"`
}

type DecorationDTO struct {
	ID       int       `json:"id" example:"5"`
	AssetID  int       `json:"assetId" example:"7"`
	X        int       `json:"x" example:"0"`
	Y        int       `json:"y" example:"0"`
	PlacedAt time.Time `json:"placedAt"`
}

type ForestDTO struct {
	ID          int             `json:"id" example:"1"`
	Size        int             `json:"size" example:"8"`
	PondX       int             `json:"pondX" example:"3"`
	PondY       int             `json:"pondY" example:"3"`
	Plants      []PlantDTO      `json:"plants"`
	Decorations []DecorationDTO `json:"decorations"`
}

type AssetDTO struct {
	ID          int    `json:"id" example:"1"`
	Name        string `json:"name" example:"Pine"`
	Kind        string `json:"kind" example:"TREE"`
	PricePoints int64  `json:"pricePoints" example:"200"`
}

type RefundResponseDTO struct {
	Refunded int64 `json:"refunded" example:"100"`
}
