package analytics

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aria-finance/analytics/internal/analytics"
	"github.com/aria-finance/analytics/internal/http/middleware"
	"github.com/aria-finance/analytics/internal/http/respond"
)

type Handler struct {
	svc *analytics.Service
}

func NewHandler(svc *analytics.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/dashboard", h.dashboard)
	r.Get("/spending", h.spending)
	r.Get("/trends", h.trends)
	r.Get("/budget", h.budget)
	r.Get("/health-score", h.healthScore)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	dashboard, err := h.svc.Dashboard(r.Context(), userID)
	if err != nil {
		slog.Error("dashboard analytics failed", "user_id", userID, "error", err)
		respond.Error(w, http.StatusInternalServerError, "Failed to get dashboard analytics")

		return
	}

	respond.Success(w, toDashboardResponse(dashboard))
}

func (h *Handler) spending(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	period := analytics.ParsePeriod(r.URL.Query().Get("period"))
	compare := r.URL.Query().Get("compare") == "true"

	report, err := h.svc.Spending(r.Context(), userID, period, compare)
	if err != nil {
		slog.Error("spending analytics failed", "user_id", userID, "error", err)
		respond.Error(w, http.StatusInternalServerError, "Failed to get spending analytics")

		return
	}

	respond.Success(w, toSpendingResponse(report))
}

func (h *Handler) trends(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	months, _ := strconv.Atoi(r.URL.Query().Get("months"))

	report, err := h.svc.Trends(r.Context(), userID, months)
	if err != nil {
		slog.Error("trend analytics failed", "user_id", userID, "error", err)
		respond.Error(w, http.StatusInternalServerError, "Failed to get income vs expense trends")

		return
	}

	respond.Success(w, toTrendResponse(report))
}

func (h *Handler) budget(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	report, err := h.svc.Budget(r.Context(), userID)
	if err != nil {
		slog.Error("budget analysis failed", "user_id", userID, "error", err)
		respond.Error(w, http.StatusInternalServerError, "Failed to get budget analysis")

		return
	}

	if !report.HasLimits {
		respond.SuccessMessage(w, "No budget limits set", toBudgetResponse(report))
		return
	}

	respond.Success(w, toBudgetResponse(report))
}

func (h *Handler) healthScore(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	report, err := h.svc.HealthScore(r.Context(), userID)
	if err != nil {
		slog.Error("health score failed", "user_id", userID, "error", err)
		respond.Error(w, http.StatusInternalServerError, "Failed to get financial health score")

		return
	}

	respond.Success(w, toHealthResponse(report))
}
