package store

import (
	"context"
	"slices"
	"sync"

	"github.com/lucy1234dev/server/internal/product/entity"
)

type InMemoryStore struct {
	mu       sync.RWMutex
	products []entity.Product
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Append(ctx context.Context, product entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, product)

	return nil
}

func (s *InMemoryStore) List(ctx context.Context) ([]entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.products), nil
}
