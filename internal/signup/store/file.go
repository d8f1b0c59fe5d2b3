package store

import (
	"context"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/lucy1234dev/server/internal/pkg/pkgerror"
	"github.com/lucy1234dev/server/internal/pkg/pkgfile"
	"github.com/lucy1234dev/server/internal/signup/entity"
)

const (
	usersFile = "users.json"
	otpsFile  = "otps.json"
)

// FileStore keeps users and OTPs in two JSON documents keyed by email.
//
// Every operation reloads the documents, so edits made on disk while the
// server runs are picked up on the next request.
type FileStore struct {
	mu        sync.Mutex
	usersPath string
	otpsPath  string
}

type userRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
}

type otpRecord struct {
	OTP       string  `json:"otp"`
	Timestamp float64 `json:"timestamp"`
}

func NewFileStore(dataDir string) *FileStore {
	return &FileStore{
		usersPath: filepath.Join(dataDir, usersFile),
		otpsPath:  filepath.Join(dataDir, otpsFile),
	}
}

func (s *FileStore) CreateUser(ctx context.Context, user entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return err
	}

	if _, exists := users[user.Email]; exists {
		return pkgerror.ErrConflict
	}

	users[user.Email] = toUserRecord(user)

	return pkgfile.SaveJSON(s.usersPath, users)
}

func (s *FileStore) GetUser(ctx context.Context, email string) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return entity.User{}, err
	}

	rec, ok := users[email]
	if !ok {
		return entity.User{}, pkgerror.ErrNotFound
	}

	return rec.toEntity(), nil
}

func (s *FileStore) MarkVerified(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return err
	}

	rec, ok := users[email]
	if !ok {
		return pkgerror.ErrNotFound
	}

	rec.Verified = true
	users[email] = rec

	return pkgfile.SaveJSON(s.usersPath, users)
}

// ListUsers returns users ordered by creation time, then email.
func (s *FileStore) ListUsers(ctx context.Context) ([]entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadUsers()
	if err != nil {
		return nil, err
	}

	list := make([]entity.User, 0, len(users))
	for _, rec := range users {
		list = append(list, rec.toEntity())
	}

	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].Email < list[j].Email
	})

	return list, nil
}

func (s *FileStore) SaveOTP(ctx context.Context, otp entity.OTP) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	otps, err := s.loadOTPs()
	if err != nil {
		return err
	}

	otps[otp.Email] = otpRecord{
		OTP:       otp.Code,
		Timestamp: float64(otp.IssuedAt.UnixNano()) / float64(time.Second),
	}

	return pkgfile.SaveJSON(s.otpsPath, otps)
}

func (s *FileStore) GetOTP(ctx context.Context, email string) (entity.OTP, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	otps, err := s.loadOTPs()
	if err != nil {
		return entity.OTP{}, err
	}

	rec, ok := otps[email]
	if !ok {
		return entity.OTP{}, pkgerror.ErrNotFound
	}

	return entity.OTP{
		Email:    email,
		Code:     rec.OTP,
		IssuedAt: time.Unix(0, int64(rec.Timestamp*float64(time.Second))),
	}, nil
}

func (s *FileStore) DeleteOTP(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	otps, err := s.loadOTPs()
	if err != nil {
		return err
	}

	if _, ok := otps[email]; !ok {
		return nil
	}
	delete(otps, email)

	return pkgfile.SaveJSON(s.otpsPath, otps)
}

func (s *FileStore) loadUsers() (map[string]userRecord, error) {
	users := map[string]userRecord{}
	ok, err := pkgfile.LoadJSON(s.usersPath, &users)
	if err != nil {
		return nil, err
	}
	if !ok || users == nil {
		users = map[string]userRecord{}
	}
	return users, nil
}

func (s *FileStore) loadOTPs() (map[string]otpRecord, error) {
	otps := map[string]otpRecord{}
	ok, err := pkgfile.LoadJSON(s.otpsPath, &otps)
	if err != nil {
		return nil, err
	}
	if !ok || otps == nil {
		otps = map[string]otpRecord{}
	}
	return otps, nil
}

func toUserRecord(user entity.User) userRecord {
	return userRecord{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Verified:     user.Verified,
		CreatedAt:    user.CreatedAt,
	}
}

func (r userRecord) toEntity() entity.User {
	return entity.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Verified:     r.Verified,
		CreatedAt:    r.CreatedAt,
	}
}
