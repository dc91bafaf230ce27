package expense

import "time"

// Category classifies an expense for aggregation. The set is closed:
// requests carrying any other label are rejected at ingestion.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryShopping      Category = "Shopping"
	CategoryHealth        Category = "Health"
	CategoryEntertainment Category = "Entertainment"
	CategoryEducation     Category = "Education"
	CategoryBills         Category = "Bills"
	CategoryOther         Category = "Other"
)

// Categories returns the closed label set in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryHealth,
		CategoryEntertainment,
		CategoryEducation,
		CategoryBills,
		CategoryOther,
	}
}

// ParseCategory validates a label against the closed set.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if s == string(c) {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

type Expense struct {
	ID       string    `bson:"_id,omitempty" json:"id,omitempty"`
	UserID   string    `bson:"user_id" json:"user_id"`
	Title    string    `bson:"title" json:"title"`
	Amount   float64   `bson:"amount" json:"amount"`
	Category Category  `bson:"category" json:"category"`
	Date     time.Time `bson:"date" json:"date"`
	Note     string    `bson:"note,omitempty" json:"note,omitempty"`
}

type CreateExpenseRequest struct {
	Title    string  `json:"title" binding:"required"`
	Amount   float64 `json:"amount" binding:"gte=0"`
	Category string  `json:"category" binding:"required"`
	Date     string  `json:"date"`
	Note     string  `json:"note"`
}

type UpdateExpenseRequest struct {
	Title    string  `json:"title"`
	Amount   float64 `json:"amount" binding:"gte=0"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	Note     string  `json:"note"`
}

// Authorize reports whether the caller owns the record. A failed check
// maps to ErrUnauthorized, never to ErrNotFound: the record exists, it
// just belongs to someone else.
func Authorize(e Expense, owner string) bool {
	return e.UserID == owner
}
