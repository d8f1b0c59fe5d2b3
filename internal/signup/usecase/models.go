package usecase

import "github.com/lucy1234dev/server/internal/signup/entity"

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

type SignupResult struct {
	UserID string
	Email  string
}

type LoginResult struct {
	User entity.User
}

// FilterVerified returns the users whose email has been confirmed.
func FilterVerified(users []entity.User) []entity.User {
	verified := make([]entity.User, 0, len(users))
	for _, u := range users {
		if u.Verified {
			verified = append(verified, u)
		}
	}
	return verified
}
