package domain

import "errors"

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrInvalidInput  = errors.New("invalid input")

	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrConcurrencyConflict = errors.New("balance changed concurrently")
	ErrDuplicateEntry      = errors.New("ledger entry already applied")
	ErrLedgerWrite         = errors.New("failed to append ledger entry")
	ErrLedgerMismatch      = errors.New("balance does not match ledger")

	ErrAccountNotFound   = errors.New("points account not found")
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrInstanceNotFound  = errors.New("challenge instance not found")
	ErrNotAchieved       = errors.New("challenge not achieved")
	ErrNotReceiptBased   = errors.New("challenge is not verified by receipt")

	ErrForestNotFound     = errors.New("forest not found")
	ErrForestExists       = errors.New("forest already exists")
	ErrAssetNotFound      = errors.New("asset not found")
	ErrAssetNotPlantable  = errors.New("asset cannot be planted")
	ErrAssetNotDecoration = errors.New("asset is not a decoration")
	ErrPlantNotFound      = errors.New("plant not found")
	ErrDecorationNotFound = errors.New("decoration not found")
	ErrPlantDead          = errors.New("plant is dead")
	ErrPlantNotDead       = errors.New("only dead plants can be removed")
	ErrWaterLimit         = errors.New("daily watering limit reached")

	ErrExternalService = errors.New("external service failure")
)

// IsValidation groups the errors a caller fixes by changing the request.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidAmount) || errors.Is(err, ErrInvalidInput)
}

// IsNotFound groups the missing-entity errors.
func IsNotFound(err error) bool {
	for _, target := range []error{
		ErrAccountNotFound, ErrChallengeNotFound, ErrInstanceNotFound,
		ErrForestNotFound, ErrAssetNotFound, ErrPlantNotFound, ErrDecorationNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
