package passport

import (
	"context"
	"sync"
)

// MockStore is a mock implementation of the PassportStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	GetAllFunc           func(ctx context.Context) ([]Passport, error)
	GetByIDFunc          func(ctx context.Context, id int) (*Passport, error)
	SearchByCountryFunc  func(ctx context.Context, country string) ([]Passport, error)
	GetByPlayerFunc      func(ctx context.Context, playerID int) ([]Passport, error)
	ReplaceForPlayerFunc func(ctx context.Context, playerID int, passportIDs []int) error

	ReplaceForPlayerCalls []struct {
		PlayerID    int
		PassportIDs []int
	}
}

var _ PassportStore = (*MockStore)(nil)

func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) GetAll(ctx context.Context) ([]Passport, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return []Passport{}, nil
}

func (m *MockStore) GetByID(ctx context.Context, id int) (*Passport, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStore) SearchByCountry(ctx context.Context, country string) ([]Passport, error) {
	if m.SearchByCountryFunc != nil {
		return m.SearchByCountryFunc(ctx, country)
	}
	return []Passport{}, nil
}

func (m *MockStore) GetByPlayer(ctx context.Context, playerID int) ([]Passport, error) {
	if m.GetByPlayerFunc != nil {
		return m.GetByPlayerFunc(ctx, playerID)
	}
	return []Passport{}, nil
}

func (m *MockStore) ReplaceForPlayer(ctx context.Context, playerID int, passportIDs []int) error {
	m.mu.Lock()
	m.ReplaceForPlayerCalls = append(m.ReplaceForPlayerCalls, struct {
		PlayerID    int
		PassportIDs []int
	}{playerID, passportIDs})
	m.mu.Unlock()
	if m.ReplaceForPlayerFunc != nil {
		return m.ReplaceForPlayerFunc(ctx, playerID, passportIDs)
	}
	return nil
}
