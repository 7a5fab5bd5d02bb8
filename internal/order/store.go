package order

import (
	"context"
	"sync"

	"museum-shop/internal/model"
)

// Store defines the process-lifetime order log. It is injectable so tests
// can use a fresh instance instead of shared process-wide state. Orders are
// never mutated or deleted once appended, and are lost on restart.
type Store interface {
	// Append adds an order to the log.
	Append(ctx context.Context, order *model.Order) error

	// All returns every order in append order.
	All(ctx context.Context) ([]model.Order, error)
}

// memoryStore implements Store with a mutex-guarded slice; append is a
// read-modify-write and callers may submit concurrently.
type memoryStore struct {
	mu     sync.Mutex
	orders []model.Order
}

// NewMemoryStore creates an empty in-memory order store.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Append(ctx context.Context, order *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, *order)
	return nil
}

func (s *memoryStore) All(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]model.Order, len(s.orders))
	copy(orders, s.orders)
	return orders, nil
}
