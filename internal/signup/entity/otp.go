package entity

import "time"

// OTP is the outstanding one-time password for an email. There is at most
// one per email; issuing a new one replaces the previous code.
type OTP struct {
	Email    string
	Code     string
	IssuedAt time.Time
}
