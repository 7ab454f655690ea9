package points

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/cocosforest/internal/domain"
	"github.com/GlebRadaev/cocosforest/internal/dto"
	"github.com/GlebRadaev/cocosforest/pkg/auth"
)

func NewMock(t *testing.T) (*PointsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.PointsBalanceResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().Balance(ctx, 1).Return(int64(800), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.PointsBalanceResponseDTO{Balance: 800},
		},
		{
			name: "No account",
			prepareMock: func() {
				service.EXPECT().Balance(ctx, 1).Return(int64(0), domain.ErrAccountNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().Balance(ctx, 1).Return(int64(0), errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/points", nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()
			handler.Balance(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.PointsBalanceResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestHistoryHandler(t *testing.T) {
	handler, service := NewMock(t)
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)
	entryID := uuid.New()
	createdAt := time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		query        string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.LedgerEntryDTO
	}{
		{
			name:  "Entries with explicit limit",
			query: "?limit=10",
			prepareMock: func() {
				service.EXPECT().History(ctx, 1, 10).Return([]domain.LedgerEntry{{
					EntryID:      entryID,
					UserID:       1,
					Direction:    domain.DirectionSpend,
					Amount:       200,
					BalanceAfter: 800,
					Reason:       domain.ReasonPlant,
					Reference:    "42",
					Description:  "plant Pine",
					CreatedAt:    createdAt,
				}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.LedgerEntryDTO{{
				EntryID:      entryID.String(),
				Direction:    "SPEND",
				Amount:       200,
				BalanceAfter: 800,
				Reason:       "PLANT",
				Reference:    "42",
				Description:  "plant Pine",
				CreatedAt:    createdAt,
			}},
		},
		{
			name:  "Empty history",
			query: "",
			prepareMock: func() {
				service.EXPECT().History(ctx, 1, 0).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "Invalid limit",
			query:        "?limit=-3",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Database error",
			query: "",
			prepareMock: func() {
				service.EXPECT().History(ctx, 1, 0).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/points/history"+tt.query, nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()
			handler.History(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.LedgerEntryDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
