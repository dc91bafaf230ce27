package expense

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"expense-tracker-backend/config"
)

type Handler struct {
	store  Store
	config *config.Config
}

func NewHandler(store Store, config *config.Config) *Handler {
	return &Handler{
		store:  store,
		config: config,
	}
}

const dateLayout = "2006-01-02"

// parseDate accepts the date-picker format (YYYY-MM-DD) or a full
// timestamp. Time-of-day is kept on the record but plays no part in
// month bucketing.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Get all expenses for user, newest first, optionally filtered to one month
func (h *Handler) HandleGetExpenses(c *gin.Context) {
	userID := c.GetString("user_id")

	window, err := ResolveWindow(c.Query("month"), c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Month must be between 1 and 12 and year must be a positive number"})
		return
	}

	expenses, err := h.store.FindByOwnerAndWindow(c.Request.Context(), userID, window)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not fetch expenses"})
		return
	}

	// The store gives no ordering guarantee
	sort.Slice(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})

	c.JSON(http.StatusOK, expenses)
}

// Create expense
func (h *Handler) HandleCreateExpense(c *gin.Context) {
	userID := c.GetString("user_id")
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	category, err := ParseCategory(req.Category)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category: " + req.Category})
		return
	}

	date := time.Now().UTC()
	if req.Date != "" {
		date, err = parseDate(req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
	}

	expense := Expense{
		ID:       primitive.NewObjectID().Hex(),
		UserID:   userID,
		Title:    req.Title,
		Amount:   req.Amount,
		Category: category,
		Date:     date,
		Note:     req.Note,
	}

	if err := h.store.Insert(c.Request.Context(), expense); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not create expense"})
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// Get single expense
func (h *Handler) HandleGetExpense(c *gin.Context) {
	userID := c.GetString("user_id")

	expense, ok := h.fetchOwned(c, userID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, expense)
}

// Update expense
func (h *Handler) HandleUpdateExpense(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	expense, ok := h.fetchOwned(c, userID)
	if !ok {
		return
	}

	if req.Title != "" {
		expense.Title = req.Title
	}
	if req.Amount != 0 {
		expense.Amount = req.Amount
	}
	if req.Note != "" {
		expense.Note = req.Note
	}
	if req.Category != "" {
		category, err := ParseCategory(req.Category)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category: " + req.Category})
			return
		}
		expense.Category = category
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		expense.Date = date
	}

	if err := h.store.Update(c.Request.Context(), expense); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not update expense"})
		return
	}

	c.JSON(http.StatusOK, expense)
}

// Delete expense
func (h *Handler) HandleDeleteExpense(c *gin.Context) {
	userID := c.GetString("user_id")

	expense, ok := h.fetchOwned(c, userID)
	if !ok {
		return
	}

	if err := h.store.DeleteByID(c.Request.Context(), expense.ID); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not delete expense"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

// fetchOwned loads the record from the :id param and runs the ownership
// check. A missing id and a foreign record stay distinguishable: the
// first is 404, the second 401.
func (h *Handler) fetchOwned(c *gin.Context, userID string) (Expense, bool) {
	expense, err := h.store.FindByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return Expense{}, false
	} else if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not fetch expense"})
		return Expense{}, false
	}

	if !Authorize(expense, userID) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return Expense{}, false
	}

	return expense, true
}
