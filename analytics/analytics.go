package analytics

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"expense-tracker-backend/expense"
)

type Handler struct {
	store expense.Store
}

func NewHandler(store expense.Store) *Handler {
	return &Handler{
		store: store,
	}
}

// Get spending summary, optionally filtered to one month
func (h *Handler) HandleGetSummary(c *gin.Context) {
	userID := c.GetString("user_id")

	window, err := expense.ResolveWindow(c.Query("month"), c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Month must be between 1 and 12 and year must be a positive number"})
		return
	}

	records, err := h.store.FindByOwnerAndWindow(c.Request.Context(), userID, window)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not fetch expenses"})
		return
	}

	c.JSON(http.StatusOK, Aggregate(records))
}

// Get six-month spending trend ending at the current month
func (h *Handler) HandleGetTrend(c *gin.Context) {
	userID := c.GetString("user_id")

	points, err := Trend(c.Request.Context(), h.store, userID, TrendMonths, time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not fetch expenses"})
		return
	}

	c.JSON(http.StatusOK, points)
}
