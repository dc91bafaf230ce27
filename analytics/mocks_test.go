package analytics

import (
	"context"

	"expense-tracker-backend/expense"
)

// MockStore is a mock implementation of expense.Store
type MockStore struct {
	FindByOwnerAndWindowFunc func(ctx context.Context, owner string, w expense.Window) ([]expense.Expense, error)
	FindByIDFunc             func(ctx context.Context, id string) (expense.Expense, error)
	InsertFunc               func(ctx context.Context, e expense.Expense) error
	UpdateFunc               func(ctx context.Context, e expense.Expense) error
	DeleteByIDFunc           func(ctx context.Context, id string) error
}

func (m *MockStore) FindByOwnerAndWindow(ctx context.Context, owner string, w expense.Window) ([]expense.Expense, error) {
	if m.FindByOwnerAndWindowFunc != nil {
		return m.FindByOwnerAndWindowFunc(ctx, owner, w)
	}
	return nil, nil
}

func (m *MockStore) FindByID(ctx context.Context, id string) (expense.Expense, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return expense.Expense{}, expense.ErrNotFound
}

func (m *MockStore) Insert(ctx context.Context, e expense.Expense) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, e)
	}
	return nil
}

func (m *MockStore) Update(ctx context.Context, e expense.Expense) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *MockStore) DeleteByID(ctx context.Context, id string) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return nil
}
