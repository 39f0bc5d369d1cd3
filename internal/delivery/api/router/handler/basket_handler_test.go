package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gymtrack/internal/domain/entity"
	domainerrors "gymtrack/internal/domain/errors"
	"gymtrack/internal/domain/nutrition"
	mockUsecase "gymtrack/internal/mocks/usecase"
	"gymtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type basketEnvelope struct {
	Data  *usecase.BasketPreview `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Details any    `json:"details"`
	} `json:"error"`
}

func setupBasketHandler(t *testing.T) (*mockUsecase.MockBasketUsecase, uuid.UUID, func(method, target, body string) (int, basketEnvelope)) {
	t.Helper()

	userID := uuid.New()
	e, auth := newTestEcho(t, userID)
	basketUC := mockUsecase.NewMockBasketUsecase(t)
	h := NewBasketHandler(BasketHandlerParams{BasketUC: basketUC, Logger: discardLogger()})

	g := e.Group("/basket", auth.Authenticate)
	g.GET("", h.Preview)
	g.DELETE("", h.Clear)
	g.POST("/items", h.AddFood)
	g.PUT("/items/:foodId", h.UpdateQuantity)
	g.DELETE("/items/:foodId", h.RemoveFood)
	g.POST("/meal-plan", h.AddMealPlanFood)
	g.POST("/qr", h.AddFromQR)

	call := func(method, target, body string) (int, basketEnvelope) {
		rec := doRequest(e, method, target, body)
		var env basketEnvelope
		if rec.Body.Len() > 0 {
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		}

		return rec.Code, env
	}

	return basketUC, userID, call
}

func TestBasketHandler_AddFood(t *testing.T) {
	preview := &usecase.BasketPreview{
		Lines: []usecase.BasketLine{{
			FoodID:    "pho",
			FoodName:  "Pho",
			Quantity:  150,
			Nutrition: nutrition.Value{Calories: 300, Protein: 15, Fat: 6, Carbs: 45},
		}},
		Totals: nutrition.Value{Calories: 300, Protein: 15, Fat: 6, Carbs: 45},
	}

	t.Run("explicit quantity", func(t *testing.T) {
		basketUC, userID, call := setupBasketHandler(t)
		basketUC.EXPECT().
			AddFood(mock.Anything, userID, "pho", mock.MatchedBy(func(q *float64) bool { return q != nil && *q == 150 })).
			Return(preview, nil)

		code, env := call(http.MethodPost, "/basket/items", `{"food_id":"pho","quantity":150}`)

		assert.Equal(t, http.StatusOK, code)
		require.NotNil(t, env.Data)
		assert.Equal(t, 300, env.Data.Totals.Calories)
		assert.Len(t, env.Data.Lines, 1)
	})

	t.Run("default quantity passes nil", func(t *testing.T) {
		basketUC, userID, call := setupBasketHandler(t)
		basketUC.EXPECT().
			AddFood(mock.Anything, userID, "pho", (*float64)(nil)).
			Return(preview, nil)

		code, _ := call(http.MethodPost, "/basket/items", `{"food_id":"pho"}`)

		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("missing food id", func(t *testing.T) {
		_, _, call := setupBasketHandler(t)

		code, env := call(http.MethodPost, "/basket/items", `{"quantity":150}`)

		assert.Equal(t, http.StatusBadRequest, code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("negative quantity maps to domain error", func(t *testing.T) {
		basketUC, userID, call := setupBasketHandler(t)
		basketUC.EXPECT().
			AddFood(mock.Anything, userID, "pho", mock.Anything).
			Return(nil, domainerrors.ErrInvalidQuantity.WrapMessage("quantity must not be negative"))

		code, env := call(http.MethodPost, "/basket/items", `{"food_id":"pho","quantity":-1}`)

		assert.Equal(t, domainerrors.ErrInvalidQuantity.HTTPCode(), code)
		require.NotNil(t, env.Error)
		assert.Equal(t, domainerrors.ErrInvalidQuantity.ErrorCode(), env.Error.Code)
		assert.Contains(t, env.Error.Details, "quantity must not be negative")
	})
}

func TestBasketHandler_UpdateQuantity(t *testing.T) {
	t.Run("line missing", func(t *testing.T) {
		basketUC, userID, call := setupBasketHandler(t)
		basketUC.EXPECT().
			UpdateQuantity(mock.Anything, userID, "pho", 0.0).
			Return(nil, domainerrors.ErrBasketLineNotFound)

		code, env := call(http.MethodPut, "/basket/items/pho", `{"quantity":0}`)

		assert.Equal(t, domainerrors.ErrBasketLineNotFound.HTTPCode(), code)
		require.NotNil(t, env.Error)
		assert.Equal(t, domainerrors.ErrBasketLineNotFound.ErrorCode(), env.Error.Code)
	})

	t.Run("quantity required", func(t *testing.T) {
		_, _, call := setupBasketHandler(t)

		code, _ := call(http.MethodPut, "/basket/items/pho", `{}`)

		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestBasketHandler_ClearAndRemove(t *testing.T) {
	basketUC, userID, call := setupBasketHandler(t)
	basketUC.EXPECT().RemoveFood(mock.Anything, userID, "pho").Return(&usecase.BasketPreview{}, nil)
	basketUC.EXPECT().Clear(mock.Anything, userID).Return(nil)

	code, env := call(http.MethodDelete, "/basket/items/pho", "")
	assert.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Data)
	assert.Empty(t, env.Data.Lines)

	code, _ = call(http.MethodDelete, "/basket", "")
	assert.Equal(t, http.StatusNoContent, code)
}

func TestBasketHandler_AddMealPlanFood(t *testing.T) {
	basketUC, userID, call := setupBasketHandler(t)
	basketUC.EXPECT().
		AddMealPlanFood(mock.Anything, userID, entity.MealTypeLunch, 2).
		Return(nil, domainerrors.ErrMealPlanFoodNotFound)

	code, env := call(http.MethodPost, "/basket/meal-plan", `{"meal_type":"Lunch","index":2}`)

	assert.Equal(t, http.StatusNotFound, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "MEAL_PLAN_FOOD_NOT_FOUND", env.Error.Code)
}

func TestBasketHandler_AddFromQR(t *testing.T) {
	basketUC, userID, call := setupBasketHandler(t)
	payload := `{"food_id":"pho","type":"food"}`
	basketUC.EXPECT().AddFromQR(mock.Anything, userID, payload).Return(&usecase.BasketPreview{}, nil)

	body, err := json.Marshal(map[string]string{"payload": payload})
	require.NoError(t, err)

	code, _ := call(http.MethodPost, "/basket/qr", string(body))

	assert.Equal(t, http.StatusOK, code)
}

func TestBasketHandler_RequiresToken(t *testing.T) {
	e, auth := newTestEcho(t, uuid.New())
	h := NewBasketHandler(BasketHandlerParams{BasketUC: mockUsecase.NewMockBasketUsecase(t), Logger: discardLogger()})
	e.GET("/basket", h.Preview, auth.Authenticate)

	for name, header := range map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/basket", nil)
			if header != "" {
				req.Header.Set(echo.HeaderAuthorization, header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
