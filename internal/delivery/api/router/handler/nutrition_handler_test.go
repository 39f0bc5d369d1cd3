package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"gymtrack/internal/domain/entity"
	"gymtrack/internal/domain/nutrition"
	mockUsecase "gymtrack/internal/mocks/usecase"
	"gymtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNutritionHandler_Daily(t *testing.T) {
	fixedNow := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	daily := &usecase.DailyNutrition{
		Date:      "2026-03-09",
		Consumed:  nutrition.Value{Calories: 1200, Protein: 80},
		Target:    nutrition.Value{Calories: 2000, Protein: 150},
		Remaining: nutrition.Value{Calories: 800, Protein: 70},
		MealCount: 2,
	}

	tests := []struct {
		name          string
		query         string
		wantReference time.Time
		wantStatus    int
		callsUsecase  bool
	}{
		{
			name:          "defaults to now",
			wantReference: fixedNow,
			wantStatus:    http.StatusOK,
			callsUsecase:  true,
		},
		{
			name:          "explicit reference",
			query:         "?at=2026-03-08T23:30:00%2B07:00",
			wantReference: time.Date(2026, 3, 8, 16, 30, 0, 0, time.UTC),
			wantStatus:    http.StatusOK,
			callsUsecase:  true,
		},
		{
			name:       "malformed reference",
			query:      "?at=yesterday",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := uuid.New()
			e, auth := newTestEcho(t, userID)
			nutritionUC := mockUsecase.NewMockNutritionUsecase(t)
			h := NewNutritionHandler(NutritionHandlerParams{NutritionUC: nutritionUC, Logger: discardLogger()})
			h.now = func() time.Time { return fixedNow }
			e.GET("/nutrition/daily", h.Daily, auth.Authenticate)

			if tt.callsUsecase {
				nutritionUC.EXPECT().
					Daily(mock.Anything, userID, mock.MatchedBy(func(ref time.Time) bool { return ref.Equal(tt.wantReference) })).
					Return(daily, nil)
			}

			rec := doRequest(e, http.MethodGet, "/nutrition/daily"+tt.query, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var env struct {
				Data usecase.DailyNutrition `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.Equal(t, 800, env.Data.Remaining.Calories)
			assert.Equal(t, 2, env.Data.MealCount)
		})
	}
}

func TestNutritionHandler_Suggestions(t *testing.T) {
	fixedNow := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	suggestions := &usecase.FoodSuggestions{
		Date:      "2026-03-09",
		Remaining: nutrition.Value{Calories: 600},
		Foods: []nutrition.Suggestion{
			{Food: entity.Food{ID: "pho", Name: "Pho", Calories: 450, IsLiked: true}, Quantity: 100, Nutrition: nutrition.Value{Calories: 450}},
			{Food: entity.Food{ID: "che", Name: "Che", Calories: 200}, Quantity: 100, Nutrition: nutrition.Value{Calories: 200}},
		},
	}

	tests := []struct {
		name          string
		query         string
		wantLimit     int
		wantReference time.Time
		wantStatus    int
		callsUsecase  bool
	}{
		{
			name:          "defaults",
			wantReference: fixedNow,
			wantStatus:    http.StatusOK,
			callsUsecase:  true,
		},
		{
			name:          "limit and reference",
			query:         "?limit=5&at=2026-03-08T20:00:00Z",
			wantLimit:     5,
			wantReference: time.Date(2026, 3, 8, 20, 0, 0, 0, time.UTC),
			wantStatus:    http.StatusOK,
			callsUsecase:  true,
		},
		{
			name:       "limit too large",
			query:      "?limit=500",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed reference",
			query:      "?at=tonight",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := uuid.New()
			e, auth := newTestEcho(t, userID)
			nutritionUC := mockUsecase.NewMockNutritionUsecase(t)
			h := NewNutritionHandler(NutritionHandlerParams{NutritionUC: nutritionUC, Logger: discardLogger()})
			h.now = func() time.Time { return fixedNow }
			e.GET("/foods/suggestions", h.Suggestions, auth.Authenticate)

			if tt.callsUsecase {
				nutritionUC.EXPECT().
					Suggestions(mock.Anything, userID, mock.MatchedBy(func(ref time.Time) bool { return ref.Equal(tt.wantReference) }), tt.wantLimit).
					Return(suggestions, nil)
			}

			rec := doRequest(e, http.MethodGet, "/foods/suggestions"+tt.query, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var env struct {
				Data usecase.FoodSuggestions `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			require.Len(t, env.Data.Foods, 2)
			assert.Equal(t, "pho", env.Data.Foods[0].Food.ID)
			assert.True(t, env.Data.Foods[0].Food.IsLiked)
			assert.Equal(t, 600, env.Data.Remaining.Calories)
		})
	}
}
