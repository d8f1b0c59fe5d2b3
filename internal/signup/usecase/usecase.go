package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lucy1234dev/server/internal/pkg/pkgerror"
	"github.com/lucy1234dev/server/internal/pkg/pkghash"
	"github.com/lucy1234dev/server/internal/pkg/pkguid"
	"github.com/lucy1234dev/server/internal/pkg/pkgvalidator"
	"github.com/lucy1234dev/server/internal/signup/entity"
)

// DefaultResendCooldown is how long a user waits before another OTP is sent.
const DefaultResendCooldown = 5 * time.Minute

type Store interface {
	CreateUser(ctx context.Context, user entity.User) error
	GetUser(ctx context.Context, email string) (entity.User, error)
	MarkVerified(ctx context.Context, email string) error
	ListUsers(ctx context.Context) ([]entity.User, error)
	SaveOTP(ctx context.Context, otp entity.OTP) error
	GetOTP(ctx context.Context, email string) (entity.OTP, error)
	DeleteOTP(ctx context.Context, email string) error
}

type OTPSender interface {
	Send(ctx context.Context, email, code string, resend bool) error
}

type Runner interface {
	Go(ctx context.Context, f func(ctx context.Context) error)
}

type Validator interface {
	Var(field any, tag string) bool
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Store          Store
	Sender         OTPSender
	Runner         Runner
	Clock          Clock
	ID             pkguid.StringID
	Codes          pkguid.StringID
	Hasher         pkghash.Hasher
	Validator      Validator
	ResendCooldown time.Duration
	RootCtx        context.Context
}

type Usecase struct {
	store     Store
	sender    OTPSender
	runner    Runner
	clock     Clock
	id        pkguid.StringID
	codes     pkguid.StringID
	hasher    pkghash.Hasher
	validator Validator
	cooldown  time.Duration
	rootCtx   context.Context
}

func New(dep Dependency) *Usecase {
	root := dep.RootCtx
	if root == nil {
		root = context.Background()
	}

	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	codes := dep.Codes
	if codes == nil {
		codes = pkguid.NewDigits(6)
	}

	cooldown := dep.ResendCooldown
	if cooldown <= 0 {
		cooldown = DefaultResendCooldown
	}

	return &Usecase{
		store:     dep.Store,
		sender:    dep.Sender,
		runner:    dep.Runner,
		clock:     clock,
		id:        dep.ID,
		codes:     codes,
		hasher:    dep.Hasher,
		validator: dep.Validator,
		cooldown:  cooldown,
		rootCtx:   root,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Signup registers an unverified user and sends them an OTP.
//
// Checks run in a fixed order: duplicate email, email format, password strength.
func (u *Usecase) Signup(ctx context.Context, in SignupInput) (SignupResult, error) {
	if u.store == nil || u.id == nil || u.hasher == nil || u.validator == nil {
		return SignupResult{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	_, err := u.store.GetUser(ctx, in.Email)
	if err == nil {
		return SignupResult{}, pkgerror.NewBusiness("User already exists.", pkgerror.CodeConflict)
	}
	if !errors.Is(err, pkgerror.ErrNotFound) {
		return SignupResult{}, normalizeErr(err)
	}

	if !u.validator.Var(in.Email, pkgvalidator.TagEmail) {
		return SignupResult{}, pkgerror.NewBusiness("Invalid email.", pkgerror.CodeBadRequest)
	}

	if !u.validator.Var(in.Password, pkgvalidator.TagStrongPassword) {
		return SignupResult{}, pkgerror.NewBusiness("Weak password.", pkgerror.CodeBadRequest)
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return SignupResult{}, pkgerror.NewServer(err)
	}

	user := entity.User{
		ID:           u.id.Generate(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    u.clock.Now(),
	}
	if err := u.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, pkgerror.ErrConflict) {
			return SignupResult{}, pkgerror.NewBusiness("User already exists.", pkgerror.CodeConflict)
		}
		return SignupResult{}, normalizeErr(err)
	}

	if err := u.issueOTP(ctx, user.Email, false); err != nil {
		return SignupResult{}, err
	}

	return SignupResult{UserID: user.ID, Email: user.Email}, nil
}

// VerifyOTP consumes the outstanding OTP for email and marks the user verified.
func (u *Usecase) VerifyOTP(ctx context.Context, email, code string) error {
	otp, err := u.store.GetOTP(ctx, email)
	if err != nil {
		if errors.Is(err, pkgerror.ErrNotFound) {
			return pkgerror.NewBusiness("No OTP found for this email.", pkgerror.CodeNotFound)
		}
		return normalizeErr(err)
	}

	if subtle.ConstantTimeCompare([]byte(otp.Code), []byte(code)) != 1 {
		return pkgerror.NewBusiness("Invalid OTP.", pkgerror.CodeBadRequest)
	}

	if err := u.store.DeleteOTP(ctx, email); err != nil {
		return normalizeErr(err)
	}

	// An OTP may outlive its user record when the users file was edited by hand.
	if err := u.store.MarkVerified(ctx, email); err != nil && !errors.Is(err, pkgerror.ErrNotFound) {
		return normalizeErr(err)
	}

	return nil
}

// ResendOTP replaces the outstanding OTP once the cooldown has passed.
func (u *Usecase) ResendOTP(ctx context.Context, email string) error {
	otp, err := u.store.GetOTP(ctx, email)
	if err != nil {
		if errors.Is(err, pkgerror.ErrNotFound) {
			return pkgerror.NewBusiness("No signup found for this email.", pkgerror.CodeNotFound)
		}
		return normalizeErr(err)
	}

	elapsed := u.clock.Now().Sub(otp.IssuedAt)
	if elapsed < u.cooldown {
		remaining := int((u.cooldown - elapsed).Seconds())
		return pkgerror.NewBusiness(
			fmt.Sprintf("Wait %d seconds before resending OTP.", remaining),
			pkgerror.CodeForbidden,
		)
	}

	return u.issueOTP(ctx, email, true)
}

// Login checks credentials of a verified user.
func (u *Usecase) Login(ctx context.Context, email, password string) (LoginResult, error) {
	user, err := u.store.GetUser(ctx, email)
	if err != nil {
		if errors.Is(err, pkgerror.ErrNotFound) {
			return LoginResult{}, pkgerror.NewBusiness("user not found.", pkgerror.CodeNotFound)
		}
		return LoginResult{}, normalizeErr(err)
	}

	if !user.Verified {
		return LoginResult{}, pkgerror.NewBusiness("Email not verified. Please verify OTP first.", pkgerror.CodeForbidden)
	}

	if err := u.hasher.Verify(user.PasswordHash, password); err != nil {
		if errors.Is(err, pkghash.ErrMismatch) {
			return LoginResult{}, pkgerror.NewBusiness("incorrect password", pkgerror.CodeUnauthorized)
		}
		return LoginResult{}, pkgerror.NewServer(err)
	}

	return LoginResult{User: user}, nil
}

func (u *Usecase) Users(ctx context.Context) ([]entity.User, error) {
	users, err := u.store.ListUsers(ctx)
	if err != nil {
		return nil, normalizeErr(err)
	}
	return users, nil
}

func (u *Usecase) VerifiedUsers(ctx context.Context) ([]entity.User, error) {
	users, err := u.Users(ctx)
	if err != nil {
		return nil, err
	}
	return FilterVerified(users), nil
}

func (u *Usecase) issueOTP(ctx context.Context, email string, resend bool) error {
	otp := entity.OTP{
		Email:    email,
		Code:     u.codes.Generate(),
		IssuedAt: u.clock.Now(),
	}
	if err := u.store.SaveOTP(ctx, otp); err != nil {
		return normalizeErr(err)
	}

	u.deliver(otp, resend)

	return nil
}

func (u *Usecase) deliver(otp entity.OTP, resend bool) {
	if u.sender == nil {
		return
	}

	send := func(ctx context.Context) error {
		if err := u.sender.Send(ctx, otp.Email, otp.Code, resend); err != nil {
			slog.ErrorContext(ctx, "otp delivery failed", "email", otp.Email, "error", err)
			return err
		}
		return nil
	}

	if u.runner == nil {
		//nolint:errcheck // logged inside send
		send(u.rootCtx)
		return
	}

	u.runner.Go(u.rootCtx, send)
}

func normalizeErr(err error) error {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	return pkgerror.NewServer(err)
}
