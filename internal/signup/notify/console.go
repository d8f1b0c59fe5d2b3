package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// ConsoleSender delivers OTPs by printing them, standing in for an email
// provider during development.
type ConsoleSender struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsoleSender returns a sender writing to out, or stdout when out is nil.
func NewConsoleSender(out io.Writer) *ConsoleSender {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleSender{out: out}
}

func (c *ConsoleSender) Send(ctx context.Context, email, code string, resend bool) error {
	line := fmt.Sprintf("[OTP] Your OTP for %s is: %s\n", email, code)
	if resend {
		line = fmt.Sprintf("[OTP] Resent OTP for %s: %s\n", email, code)
	}

	c.mu.Lock()
	_, err := io.WriteString(c.out, line)
	c.mu.Unlock()
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "otp delivered to console", "email", email, "resend", resend)

	return nil
}
