package pg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		constraint string
		expected   bool
	}{
		{
			name:     "Plain error",
			err:      errors.New("boom"),
			expected: false,
		},
		{
			name:     "Unique violation, any constraint",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: "points_ledger_idempotency_key_key"},
			expected: true,
		},
		{
			name:       "Wrapped unique violation on named constraint",
			err:        fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "plants_forest_id_x_y_key"}),
			constraint: "plants_forest_id_x_y_key",
			expected:   true,
		},
		{
			name:       "Unique violation on other constraint",
			err:        &pgconn.PgError{Code: "23505", ConstraintName: "plants_forest_id_x_y_key"},
			constraint: "points_ledger_idempotency_key_key",
			expected:   false,
		},
		{
			name:     "Check violation",
			err:      &pgconn.PgError{Code: "23514"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsUniqueViolation(tt.err, tt.constraint))
		})
	}
}
