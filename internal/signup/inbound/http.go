package inbound

import (
	"context"
	"net/http"

	"github.com/lucy1234dev/server/internal/pkg/pkgrouter"
	"github.com/lucy1234dev/server/internal/signup/entity"
	"github.com/lucy1234dev/server/internal/signup/usecase"
)

// HomeMessage is returned by the signup router's own root.
const HomeMessage = "🌼 Welcome to Flower Shop Signup API 🌼"

type uc interface {
	Signup(ctx context.Context, in usecase.SignupInput) (usecase.SignupResult, error)
	VerifyOTP(ctx context.Context, email, code string) error
	ResendOTP(ctx context.Context, email string) error
	Login(ctx context.Context, email, password string) (usecase.LoginResult, error)
	Users(ctx context.Context) ([]entity.User, error)
	VerifiedUsers(ctx context.Context) ([]entity.User, error)
}

type validator interface {
	Validate(i any) error
}

func RegisterHTTPEndpoint(g *pkgrouter.Group, uc uc, v validator) {
	end := &HTTPEndpoint{uc: uc, validator: v}

	g.Handle(http.MethodGet, "/", http.HandlerFunc(end.Home))

	g.POST("/signup", end.Signup)
	g.POST("/verify-otp", end.VerifyOTP)
	g.POST("/resend-otp", end.ResendOTP)
	g.POST("/login", end.Login)

	g.GET("/users", end.Users)
	g.GET("/verified-users", end.VerifiedUsers)
}
