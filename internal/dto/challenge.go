package dto

import "time"

type ChallengeItemDTO struct {
	ID           int64          `json:"id" example:"11"`
	ChallengeID  int            `json:"challengeId" example:"3"`
	Title        string         `json:"title" example:"Cafe budget"`
	Rule         string         `json:"rule" example:"Goal: AMOUNT ≤ 5,000 KRW"`
	RewardPoints int64          `json:"rewardPoints" example:"50"`
	Status       string         `json:"status" example:"DONE"`
	Claimable    bool           `json:"claimable" example:"true"`
	Metrics      map[string]any `json:"metrics,omitempty"`
	Awarded      int64          `json:"awarded" example:"0"`
	AwardedAt    *time.Time     `json:"awardedAt,omitempty"`
	Message      string         `json:"message" example:"You spent 3,000 KRW so far"`
}

type TodayResponseDTO struct {
	Date  string             `json:"date" example:"2024-06-01"`
	Items []ChallengeItemDTO `json:"items"`
}

type ClaimResponseDTO struct {
	InstanceID int64 `json:"instanceId" example:"11"`
	Awarded    int64 `json:"awarded" example:"50"`
}

type ReceiptRequestDTO struct {
	OCRText string `json:"ocrText" example:"CAFE RECEIPT\nTOTAL 4,500\n텀블러 할인 -300"`
}

type ReceiptResponseDTO struct {
	Verified   bool   `json:"verified" example:"true"`
	Reason     string `json:"reason,omitempty" example:"no_reusable_cup"`
	InstanceID int64  `json:"instanceId,omitempty" example:"11"`
	Awarded    int64  `json:"awarded" example:"30"`
}

type StepsRequestDTO struct {
	Steps int `json:"steps" example:"8500"`
}

type StepsResponseDTO struct {
	Items []ChallengeItemDTO `json:"items"`
}
