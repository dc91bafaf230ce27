package expense

import "context"

// MockStore is a mock implementation of Store
type MockStore struct {
	FindByOwnerAndWindowFunc func(ctx context.Context, owner string, w Window) ([]Expense, error)
	FindByIDFunc             func(ctx context.Context, id string) (Expense, error)
	InsertFunc               func(ctx context.Context, e Expense) error
	UpdateFunc               func(ctx context.Context, e Expense) error
	DeleteByIDFunc           func(ctx context.Context, id string) error
}

func (m *MockStore) FindByOwnerAndWindow(ctx context.Context, owner string, w Window) ([]Expense, error) {
	if m.FindByOwnerAndWindowFunc != nil {
		return m.FindByOwnerAndWindowFunc(ctx, owner, w)
	}
	return nil, nil
}

func (m *MockStore) FindByID(ctx context.Context, id string) (Expense, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return Expense{}, ErrNotFound
}

func (m *MockStore) Insert(ctx context.Context, e Expense) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, e)
	}
	return nil
}

func (m *MockStore) Update(ctx context.Context, e Expense) error {
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
