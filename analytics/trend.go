package analytics

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"expense-tracker-backend/expense"
)

// TrendMonths is the length of the rolling series the trend endpoint
// serves.
const TrendMonths = 6

// TrendPoint is one month's aggregated total within the rolling series.
type TrendPoint struct {
	Month string  `json:"month"`
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

// Source is the slice of the record store the trend generator needs.
type Source interface {
	FindByOwnerAndWindow(ctx context.Context, owner string, w expense.Window) ([]expense.Expense, error)
}

// Trend builds a series of exactly monthsBack points, oldest first,
// ending at now's calendar month. Only now's year and month matter;
// the day is ignored. Months with no expenses emit a zero total rather
// than being skipped. The per-month store queries are independent, so
// they fan out concurrently; points land in the slice by month offset,
// never by completion order. The first store error cancels the rest
// and propagates.
func Trend(ctx context.Context, src Source, owner string, monthsBack int, now time.Time) ([]TrendPoint, error) {
	points := make([]TrendPoint, monthsBack)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < monthsBack; i++ {
		i := i
		g.Go(func() error {
			year, month := monthsBefore(now, monthsBack-1-i)
			records, err := src.FindByOwnerAndWindow(ctx, owner, expense.MonthWindow(year, month))
			if err != nil {
				return err
			}
			points[i] = TrendPoint{
				Month: month.String()[:3],
				Year:  year,
				Total: Aggregate(records).Total,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

// monthsBefore returns the calendar month offset months before now.
// Normalizing to the first of the month keeps AddDate from skewing on
// short months (Mar 31 minus one month must be Feb, not Mar).
func monthsBefore(now time.Time, offset int) (int, time.Month) {
	t := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -offset, 0)
	return t.Year(), t.Month()
}
