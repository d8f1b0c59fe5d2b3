package store

import (
	"context"
	"sync"

	"github.com/lucy1234dev/server/internal/pkg/pkgerror"
	"github.com/lucy1234dev/server/internal/signup/entity"
)

type InMemoryStore struct {
	mu    sync.RWMutex
	users map[string]entity.User
	order []string
	otps  map[string]entity.OTP
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		users: make(map[string]entity.User),
		otps:  make(map[string]entity.OTP),
	}
}

func (s *InMemoryStore) CreateUser(ctx context.Context, user entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Email]; exists {
		return pkgerror.ErrConflict
	}

	s.users[user.Email] = user
	s.order = append(s.order, user.Email)

	return nil
}

func (s *InMemoryStore) GetUser(ctx context.Context, email string) (entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return entity.User{}, pkgerror.ErrNotFound
	}

	return user, nil
}

func (s *InMemoryStore) MarkVerified(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return pkgerror.ErrNotFound
	}

	user.Verified = true
	s.users[email] = user

	return nil
}

func (s *InMemoryStore) ListUsers(ctx context.Context) ([]entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]entity.User, 0, len(s.order))
	for _, email := range s.order {
		users = append(users, s.users[email])
	}

	return users, nil
}

func (s *InMemoryStore) SaveOTP(ctx context.Context, otp entity.OTP) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.otps[otp.Email] = otp

	return nil
}

func (s *InMemoryStore) GetOTP(ctx context.Context, email string) (entity.OTP, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	otp, ok := s.otps[email]
	if !ok {
		return entity.OTP{}, pkgerror.ErrNotFound
	}

	return otp, nil
}

func (s *InMemoryStore) DeleteOTP(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.otps, email)

	return nil
}
