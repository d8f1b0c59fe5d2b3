package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/lucy1234dev/server/internal/pkg/pkgerror"
	"github.com/lucy1234dev/server/internal/pkg/pkghash"
	"github.com/lucy1234dev/server/internal/pkg/pkgvalidator"
	"github.com/lucy1234dev/server/internal/signup/entity"
	"golang.org/x/crypto/bcrypt"
)

type testStore struct {
	mu    sync.Mutex
	users map[string]entity.User
	order []string
	otps  map[string]entity.OTP
}

func newTestStore() *testStore {
	return &testStore{
		users: make(map[string]entity.User),
		otps:  make(map[string]entity.OTP),
	}
}

func (s *testStore) CreateUser(ctx context.Context, user entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return pkgerror.ErrConflict
	}
	s.users[user.Email] = user
	s.order = append(s.order, user.Email)
	return nil
}

func (s *testStore) GetUser(ctx context.Context, email string) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return entity.User{}, pkgerror.ErrNotFound
	}
	return user, nil
}

func (s *testStore) MarkVerified(ctx context.Context, email string) error {
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

func (s *testStore) ListUsers(ctx context.Context) ([]entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.User, 0, len(s.order))
	for _, email := range s.order {
		out = append(out, s.users[email])
	}
	return out, nil
}

func (s *testStore) SaveOTP(ctx context.Context, otp entity.OTP) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.otps[otp.Email] = otp
	return nil
}

func (s *testStore) GetOTP(ctx context.Context, email string) (entity.OTP, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	otp, ok := s.otps[email]
	if !ok {
		return entity.OTP{}, pkgerror.ErrNotFound
	}
	return otp, nil
}

func (s *testStore) DeleteOTP(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.otps, email)
	return nil
}

type sentOTP struct {
	email  string
	code   string
	resend bool
}

type testSender struct {
	mu   sync.Mutex
	sent []sentOTP
}

func (s *testSender) Send(ctx context.Context, email, code string, resend bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sentOTP{email: email, code: code, resend: resend})
	return nil
}

type syncRunner struct{}

func (syncRunner) Go(ctx context.Context, f func(ctx context.Context) error) {
	_ = f(ctx)
}

type testID struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func (t *testID) Generate() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.n++
	return fmt.Sprintf("%s-%d", t.prefix, t.n)
}

// plainHasher keeps tests fast; bcrypt is covered in pkghash.
type plainHasher struct{}

func (plainHasher) Hash(secret string) (string, error) {
	return "hashed:" + secret, nil
}

func (plainHasher) Verify(hash, secret string) error {
	if hash != "hashed:"+secret {
		return pkghash.ErrMismatch
	}
	return nil
}

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	uc     *Usecase
	store  *testStore
	sender *testSender
	clock  *manualClock
}

func newFixture() fixture {
	store := newTestStore()
	sender := &testSender{}
	clock := &manualClock{now: time.Unix(1_700_000_000, 0)}

	uc := New(Dependency{
		Store:     store,
		Sender:    sender,
		Runner:    syncRunner{},
		Clock:     clock,
		ID:        &testID{prefix: "user"},
		Codes:     &testID{prefix: "otp"},
		Hasher:    plainHasher{},
		Validator: pkgvalidator.New(),
	})

	return fixture{uc: uc, store: store, sender: sender, clock: clock}
}

func assertStatus(t *testing.T, err error, status int, msg string) {
	t.Helper()

	var perr *pkgerror.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected pkgerror.Error, got %T (%v)", err, err)
	}
	if perr.StatusCode() != status {
		t.Fatalf("expected status %d, got %d", status, perr.StatusCode())
	}
	if perr.Msg() != msg {
		t.Fatalf("expected message %q, got %q", msg, perr.Msg())
	}
}

func TestSignupStoresUserAndSendsOTP(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	res, err := f.uc.Signup(ctx, SignupInput{Name: "Jane", Email: "jane@flowers.com", Password: "Passw0rd"})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if res.UserID != "user-1" || res.Email != "jane@flowers.com" {
		t.Fatalf("unexpected result: %+v", res)
	}

	user, err := f.store.GetUser(ctx, "jane@flowers.com")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if user.Verified {
		t.Fatalf("expected user unverified")
	}
	if user.PasswordHash != "hashed:Passw0rd" {
		t.Fatalf("expected hashed password, got %q", user.PasswordHash)
	}

	otp, err := f.store.GetOTP(ctx, "jane@flowers.com")
	if err != nil {
		t.Fatalf("GetOTP: %v", err)
	}
	if otp.Code != "otp-1" {
		t.Fatalf("unexpected otp: %q", otp.Code)
	}
	if len(f.sender.sent) != 1 || f.sender.sent[0].code != "otp-1" || f.sender.sent[0].resend {
		t.Fatalf("unexpected deliveries: %+v", f.sender.sent)
	}
}

func TestSignupCheckOrder(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if _, err := f.uc.Signup(ctx, SignupInput{Name: "Jane", Email: "jane@flowers.com", Password: "Passw0rd"}); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	// Duplicate wins over a weak password.
	_, err := f.uc.Signup(ctx, SignupInput{Name: "Jane", Email: "jane@flowers.com", Password: "weak"})
	assertStatus(t, err, http.StatusConflict, "User already exists.")

	// Invalid email wins over a weak password.
	_, err = f.uc.Signup(ctx, SignupInput{Name: "X", Email: "not-an-email", Password: "weak"})
	assertStatus(t, err, http.StatusBadRequest, "Invalid email.")

	_, err = f.uc.Signup(ctx, SignupInput{Name: "X", Email: "x@flowers.com", Password: "weakpassword"})
	assertStatus(t, err, http.StatusBadRequest, "Weak password.")

	if len(f.sender.sent) != 1 {
		t.Fatalf("expected only one otp delivery, got %d", len(f.sender.sent))
	}
}

func TestVerifyOTP(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	err := f.uc.VerifyOTP(ctx, "ghost@flowers.com", "000000")
	assertStatus(t, err, http.StatusNotFound, "No OTP found for this email.")

	if _, err := f.uc.Signup(ctx, SignupInput{Name: "Jane", Email: "jane@flowers.com", Password: "Passw0rd"}); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	err = f.uc.VerifyOTP(ctx, "jane@flowers.com", "wrong")
	assertStatus(t, err, http.StatusBadRequest, "Invalid OTP.")

	if err := f.uc.VerifyOTP(ctx, "jane@flowers.com", "otp-1"); err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}

	user, _ := f.store.GetUser(ctx, "jane@flowers.com")
	if !user.Verified {
		t.Fatalf("expected user verified")
	}
	if _, err := f.store.GetOTP(ctx, "jane@flowers.com"); !errors.Is(err, pkgerror.ErrNotFound) {
		t.Fatalf("expected otp consumed, got %v", err)
	}

	err = f.uc.VerifyOTP(ctx, "jane@flowers.com", "otp-1")
	assertStatus(t, err, http.StatusNotFound, "No OTP found for this email.")
}

func TestVerifyOTPWithoutUser(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if err := f.store.SaveOTP(ctx, entity.OTP{Email: "orphan@flowers.com", Code: "111111"}); err != nil {
		t.Fatalf("SaveOTP: %v", err)
	}

	if err := f.uc.VerifyOTP(ctx, "orphan@flowers.com", "111111"); err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}
}

func TestResendOTPCooldown(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	err := f.uc.ResendOTP(ctx, "ghost@flowers.com")
	assertStatus(t, err, http.StatusNotFound, "No signup found for this email.")

	if _, err := f.uc.Signup(ctx, SignupInput{Name: "Jane", Email: "jane@flowers.com", Password: "Passw0rd"}); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	f.clock.Advance(100*time.Second + 500*time.Millisecond)
	err = f.uc.ResendOTP(ctx, "jane@flowers.com")
	assertStatus(t, err, http.StatusForbidden, "Wait 199 seconds before resending OTP.")

	f.clock.Advance(200 * time.Second)
	if err := f.uc.ResendOTP(ctx, "jane@flowers.com"); err != nil {
		t.Fatalf("ResendOTP: %v", err)
	}

	otp, _ := f.store.GetOTP(ctx, "jane@flowers.com")
	if otp.Code != "otp-2" {
		t.Fatalf("expected new otp, got %q", otp.Code)
	}
	if !otp.IssuedAt.Equal(f.clock.Now()) {
		t.Fatalf("expected issued_at reset")
	}
	if last := f.sender.sent[len(f.sender.sent)-1]; !last.resend || last.code != "otp-2" {
		t.Fatalf("unexpected resend delivery: %+v", last)
	}

	// The cooldown restarts from the resend.
	err = f.uc.ResendOTP(ctx, "jane@flowers.com")
	assertStatus(t, err, http.StatusForbidden, "Wait 300 seconds before resending OTP.")
}

func TestLogin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.uc.Login(ctx, "ghost@flowers.com", "Passw0rd")
	assertStatus(t, err, http.StatusNotFound, "user not found.")

	if _, err := f.uc.Signup(ctx, SignupInput{Name: "Jane", Email: "jane@flowers.com", Password: "Passw0rd"}); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	_, err = f.uc.Login(ctx, "jane@flowers.com", "Passw0rd")
	assertStatus(t, err, http.StatusForbidden, "Email not verified. Please verify OTP first.")

	if err := f.uc.VerifyOTP(ctx, "jane@flowers.com", "otp-1"); err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}

	_, err = f.uc.Login(ctx, "jane@flowers.com", "Wrong0ne")
	assertStatus(t, err, http.StatusUnauthorized, "incorrect password")

	res, err := f.uc.Login(ctx, "jane@flowers.com", "Passw0rd")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.User.Name != "Jane" {
		t.Fatalf("unexpected user: %+v", res.User)
	}
}

func TestUsersAndVerifiedUsers(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	for _, email := range []string{"a@flowers.com", "b@flowers.com"} {
		if _, err := f.uc.Signup(ctx, SignupInput{Name: "N", Email: email, Password: "Passw0rd"}); err != nil {
			t.Fatalf("Signup: %v", err)
		}
	}
	if err := f.uc.VerifyOTP(ctx, "b@flowers.com", "otp-2"); err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}

	users, err := f.uc.Users(ctx)
	if err != nil {
		t.Fatalf("Users: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}

	verified, err := f.uc.VerifiedUsers(ctx)
	if err != nil {
		t.Fatalf("VerifiedUsers: %v", err)
	}
	if len(verified) != 1 || verified[0].Email != "b@flowers.com" {
		t.Fatalf("unexpected verified users: %+v", verified)
	}
}

func TestSignupMissingDependency(t *testing.T) {
	uc := New(Dependency{})

	_, err := uc.Signup(context.Background(), SignupInput{Email: "a@flowers.com"})
	assertStatus(t, err, http.StatusInternalServerError, "Internal server error")
}

func newBcryptUsecase(store *testStore) *Usecase {
	return New(Dependency{
		Store:     store,
		Runner:    syncRunner{},
		Clock:     &manualClock{now: time.Unix(1_700_000_000, 0)},
		ID:        &testID{prefix: "user"},
		Codes:     &testID{prefix: "otp"},
		Hasher:    pkghash.NewBcrypt(bcrypt.MinCost),
		Validator: pkgvalidator.New(),
	})
}

func TestSignupAndLoginWithLongPassword(t *testing.T) {
	store := newTestStore()
	uc := newBcryptUsecase(store)
	ctx := context.Background()
	password := "Passw0rd" + strings.Repeat("a", 70)

	if _, err := uc.Signup(ctx, SignupInput{Name: "Jane", Email: "jane@flowers.com", Password: password}); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if err := uc.VerifyOTP(ctx, "jane@flowers.com", "otp-1"); err != nil {
		t.Fatalf("VerifyOTP: %v", err)
	}

	if _, err := uc.Login(ctx, "jane@flowers.com", password); err != nil {
		t.Fatalf("Login: %v", err)
	}

	_, err := uc.Login(ctx, "jane@flowers.com", password[:72])
	assertStatus(t, err, http.StatusUnauthorized, "incorrect password")
}

func TestLoginWithoutStoredHash(t *testing.T) {
	store := newTestStore()
	uc := newBcryptUsecase(store)
	ctx := context.Background()

	legacy := entity.User{ID: "legacy", Name: "Old", Email: "old@flowers.com", Verified: true}
	if err := store.CreateUser(ctx, legacy); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	_, err := uc.Login(ctx, "old@flowers.com", "Passw0rd")
	assertStatus(t, err, http.StatusUnauthorized, "incorrect password")
}
