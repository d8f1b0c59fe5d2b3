package inbound

import (
	"context"
	"net/http"

	"github.com/lucy1234dev/server/internal/pkg/pkgrouter"
	"github.com/lucy1234dev/server/internal/signup/usecase"
)

type HTTPEndpoint struct {
	uc        uc
	validator validator
}

func (h *HTTPEndpoint) Home(w http.ResponseWriter, _ *http.Request) {
	pkgrouter.WriteJSON(w, map[string]string{"message": HomeMessage}, http.StatusOK)
}

func (h *HTTPEndpoint) Signup(ctx context.Context, r *http.Request) (any, error) {
	var req SignupRequest
	if err := h.bind(r, &req); err != nil {
		return nil, err
	}

	result, err := h.uc.Signup(ctx, usecase.SignupInput{
		Name:     value(req.Name),
		Email:    value(req.Email),
		Password: value(req.Password),
	})
	if err != nil {
		return nil, err
	}

	return SignupResponse{UserID: result.UserID, Email: result.Email}, nil
}

func (h *HTTPEndpoint) VerifyOTP(ctx context.Context, r *http.Request) (any, error) {
	var req VerifyOTPRequest
	if err := h.bind(r, &req); err != nil {
		return nil, err
	}

	if err := h.uc.VerifyOTP(ctx, value(req.Email), value(req.OTP)); err != nil {
		return nil, err
	}

	return VerifyOTPResponse{Email: value(req.Email), Verified: true}, nil
}

func (h *HTTPEndpoint) ResendOTP(ctx context.Context, r *http.Request) (any, error) {
	var req ResendOTPRequest
	if err := h.bind(r, &req); err != nil {
		return nil, err
	}

	if err := h.uc.ResendOTP(ctx, value(req.Email)); err != nil {
		return nil, err
	}

	return ResendOTPResponse{Email: value(req.Email)}, nil
}

func (h *HTTPEndpoint) Login(ctx context.Context, r *http.Request) (any, error) {
	var req LoginRequest
	if err := h.bind(r, &req); err != nil {
		return nil, err
	}

	result, err := h.uc.Login(ctx, value(req.Email), value(req.Password))
	if err != nil {
		return nil, err
	}

	return LoginResponse{User: toHTTPUser(result.User)}, nil
}

func (h *HTTPEndpoint) Users(ctx context.Context, _ *http.Request) (any, error) {
	users, err := h.uc.Users(ctx)
	if err != nil {
		return nil, err
	}

	return toUserList(users), nil
}

func (h *HTTPEndpoint) VerifiedUsers(ctx context.Context, _ *http.Request) (any, error) {
	users, err := h.uc.VerifiedUsers(ctx)
	if err != nil {
		return nil, err
	}

	return toUserList(users), nil
}

func (h *HTTPEndpoint) bind(r *http.Request, v any) error {
	if err := pkgrouter.BindJSON(r, v); err != nil {
		return err
	}
	if h.validator == nil {
		return nil
	}
	return h.validator.Validate(v)
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
