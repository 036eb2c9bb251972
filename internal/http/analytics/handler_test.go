package analytics_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aria-finance/analytics/internal/analytics"
	analyticsHandler "github.com/aria-finance/analytics/internal/http/analytics"
	"github.com/aria-finance/analytics/internal/http/middleware"
	"github.com/aria-finance/analytics/internal/transaction"
)

func setup(t *testing.T) (*analytics.MockRepository, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := analytics.NewMockRepository(ctrl)
	h := analyticsHandler.NewHandler(analytics.NewService(repo))

	r := chi.NewRouter()
	r.Route("/analytics", h.Routes)

	return repo, r
}

func doRequest(handler http.Handler, userID uuid.UUID, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestHandler_Spending(t *testing.T) {
	userID := uuid.New()

	t.Run("WithoutCompareYieldsNulls", func(t *testing.T) {
		repo, handler := setup(t)

		repo.EXPECT().
			SpendingByCategory(gomock.Any(), userID, gomock.Any(), gomock.Any()).
			Return([]analytics.CategorySpend{{Category: transaction.CategoryFood, Total: 100, Count: 2, Avg: 50}}, nil)
		repo.EXPECT().
			DailySpending(gomock.Any(), userID, gomock.Any(), gomock.Any()).
			Return(nil, nil)

		rec := doRequest(handler, userID, "/analytics/spending?period=week")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Status string `json:"status"`
			Data   struct {
				Period           string          `json:"period"`
				PreviousSpending json.RawMessage `json:"previousSpending"`
				Comparison       json.RawMessage `json:"comparison"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		assert.Equal(t, "success", body.Status)
		assert.Equal(t, "week", body.Data.Period)
		assert.Equal(t, "null", string(body.Data.PreviousSpending))
		assert.Equal(t, "null", string(body.Data.Comparison))
	})

	t.Run("StoreErrorYieldsFixedMessage", func(t *testing.T) {
		repo, handler := setup(t)

		repo.EXPECT().
			SpendingByCategory(gomock.Any(), userID, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		rec := doRequest(handler, userID, "/analytics/spending")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"status":"error","message":"Failed to get spending analytics"}`, rec.Body.String())
	})
}

func TestHandler_Budget(t *testing.T) {
	userID := uuid.New()

	t.Run("NoLimits", func(t *testing.T) {
		repo, handler := setup(t)

		repo.EXPECT().
			BudgetLimits(gomock.Any(), userID).
			Return(analytics.BudgetLimits{}, nil)

		rec := doRequest(handler, userID, "/analytics/budget")
		require.Equal(t, http.StatusOK, rec.Code)

		assert.JSONEq(t,
			`{"status":"success","message":"No budget limits set","data":{"hasLimits":false}}`,
			rec.Body.String())
	})

	t.Run("Error", func(t *testing.T) {
		repo, handler := setup(t)

		repo.EXPECT().
			BudgetLimits(gomock.Any(), userID).
			Return(analytics.BudgetLimits{}, errors.New("db error"))

		rec := doRequest(handler, userID, "/analytics/budget")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"status":"error","message":"Failed to get budget analysis"}`, rec.Body.String())
	})
}

func TestHandler_HealthScore(t *testing.T) {
	userID := uuid.New()

	repo, handler := setup(t)

	repo.EXPECT().
		TotalsByType(gomock.Any(), userID, gomock.Any(), gomock.Any()).
		Return([]analytics.TypeTotal{{Type: transaction.TypeIncome, Total: 3000}, {Type: transaction.TypeExpense, Total: 2000}}, nil)
	repo.EXPECT().BillStatusCounts(gomock.Any(), userID).Return(nil, nil)
	repo.EXPECT().MonthlyExpenseTotals(gomock.Any(), userID, gomock.Any()).Return(nil, nil)
	repo.EXPECT().ActiveIncomes(gomock.Any(), userID).Return(nil, nil)
	repo.EXPECT().CountTransactionsSince(gomock.Any(), userID, gomock.Any()).Return(0, nil)

	rec := doRequest(handler, userID, "/analytics/health-score")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string `json:"status"`
		Data   struct {
			Score           int      `json:"score"`
			Rating          string   `json:"rating"`
			Recommendations []string `json:"recommendations"`
			Factors         []struct {
				Name string `json:"name"`
			} `json:"factors"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "success", body.Status)
	// 30 savings + 0 diversification + 0 tracking; bill and consistency omitted.
	assert.Equal(t, 30, body.Data.Score)
	assert.Equal(t, "poor", body.Data.Rating)
	require.Len(t, body.Data.Factors, 3)
	assert.Equal(t, "Savings Rate", body.Data.Factors[0].Name)
}

func TestHandler_MissingUser(t *testing.T) {
	_, handler := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/analytics/dashboard", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"Not authorized"}`, rec.Body.String())
}
