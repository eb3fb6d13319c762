package player

import (
	"context"
	"sync"
)

// MockStore is a mock implementation of the PlayerStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	ListAllFunc                 func(ctx context.Context) ([]PlayerWithPassports, error)
	GetByIDFunc                 func(ctx context.Context, id int) (*Player, error)
	SearchByAgeFunc             func(ctx context.Context, age int) ([]AgedPlayer, error)
	SearchByPositionFunc        func(ctx context.Context, position string) ([]PlayerWithPassports, error)
	SearchByPassportCountryFunc func(ctx context.Context, country string) ([]PlayerWithPassports, error)
	CreateFunc                  func(ctx context.Context, in CreateInput) (*Player, error)
	UpdateFunc                  func(ctx context.Context, id int, in UpdateInput) (*Player, error)
	DeleteFunc                  func(ctx context.Context, id int) error

	CreateCalls []CreateInput
	UpdateCalls []struct {
		ID    int
		Input UpdateInput
	}
	DeleteCalls []int
}

var _ PlayerStore = (*MockStore)(nil)

func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) ListAll(ctx context.Context) ([]PlayerWithPassports, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return []PlayerWithPassports{}, nil
}

func (m *MockStore) GetByID(ctx context.Context, id int) (*Player, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &Player{ID: id}, nil
}

func (m *MockStore) SearchByAge(ctx context.Context, age int) ([]AgedPlayer, error) {
	if m.SearchByAgeFunc != nil {
		return m.SearchByAgeFunc(ctx, age)
	}
	return []AgedPlayer{}, nil
}

func (m *MockStore) SearchByPosition(ctx context.Context, position string) ([]PlayerWithPassports, error) {
	if m.SearchByPositionFunc != nil {
		return m.SearchByPositionFunc(ctx, position)
	}
	return []PlayerWithPassports{}, nil
}

func (m *MockStore) SearchByPassportCountry(ctx context.Context, country string) ([]PlayerWithPassports, error) {
	if m.SearchByPassportCountryFunc != nil {
		return m.SearchByPassportCountryFunc(ctx, country)
	}
	return []PlayerWithPassports{}, nil
}

func (m *MockStore) Create(ctx context.Context, in CreateInput) (*Player, error) {
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, in)
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	return &Player{ID: 1, LastName: in.LastName, FirstName: in.FirstName, BirthDate: in.BirthDate}, nil
}

func (m *MockStore) Update(ctx context.Context, id int, in UpdateInput) (*Player, error) {
	m.mu.Lock()
	m.UpdateCalls = append(m.UpdateCalls, struct {
		ID    int
		Input UpdateInput
	}{id, in})
	m.mu.Unlock()
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, in)
	}
	return &Player{ID: id}, nil
}

func (m *MockStore) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	m.DeleteCalls = append(m.DeleteCalls, id)
	m.mu.Unlock()
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
