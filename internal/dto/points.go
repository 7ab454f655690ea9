package dto

import "time"

type PointsBalanceResponseDTO struct {
	Balance int64 `json:"balance" example:"800"`
}

type LedgerEntryDTO struct {
	EntryID      string    `json:"entryId" example:"5f1e7a9e-0b7e-4f43-9a57-1f6e3c3c2c11"`
	Direction    string    `json:"direction" example:"SPEND"`
	Amount       int64     `json:"amount" example:"200"`
	BalanceAfter int64     `json:"balanceAfter" example:"800"`
	Reason       string    `json:"reason" example:"PLANT"`
	Reference    string    `json:"reference,omitempty" example:"42"`
	Description  string    `json:"description,omitempty" example:"plant Pine"`
	CreatedAt    time.Time `json:"createdAt" example:"2024-06-01T14:00:00+09:00"`
}
