package inbound

import "github.com/lucy1234dev/server/internal/signup/entity"

// Request fields are pointers so `required` rejects a missing key but lets an
// empty string through to the usecase checks.
type SignupRequest struct {
	Name     *string `json:"name" validate:"required"`
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

type VerifyOTPRequest struct {
	Email *string `json:"email" validate:"required"`
	OTP   *string `json:"otp" validate:"required"`
}

type ResendOTPRequest struct {
	Email *string `json:"email" validate:"required"`
}

type LoginRequest struct {
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

type SignupResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func (SignupResponse) Message() string {
	return "User registered. OTP sent to console."
}

type VerifyOTPResponse struct {
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

func (VerifyOTPResponse) Message() string {
	return "OTP verified successfully. User is now verified."
}

type ResendOTPResponse struct {
	Email string `json:"email"`
}

func (ResendOTPResponse) Message() string {
	return "OTP resent. Check console."
}

type LoginResponse struct {
	User User `json:"user"`
}

func (r LoginResponse) Message() string {
	return "Login successful. welcome " + r.User.Name + "!"
}

type UserList []User

func (l UserList) Meta() map[string]any {
	return map[string]any{"total": len(l)}
}

func toHTTPUser(u entity.User) User {
	return User{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Verified: u.Verified,
	}
}

func toUserList(users []entity.User) UserList {
	list := make(UserList, 0, len(users))
	for _, u := range users {
		list = append(list, toHTTPUser(u))
	}
	return list
}
