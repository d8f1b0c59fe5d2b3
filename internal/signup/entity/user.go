package entity

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Verified     bool
	CreatedAt    time.Time
}
