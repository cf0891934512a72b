package redis

import (
	"context"
	"time"
)

// LoginLimiter throttles PIN attempts per library card.
type LoginLimiter struct {
	client      *Client
	maxAttempts int64
	window      time.Duration
}

func NewLoginLimiter(client *Client, maxAttempts int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{client: client, maxAttempts: int64(maxAttempts), window: window}
}

func (l *LoginLimiter) Allow(ctx context.Context, cardNumber string) (bool, error) {
	allowed, _, err := l.client.FixedWindowAllow(ctx, loginScope(cardNumber), l.maxAttempts, l.window)
	return allowed, err
}

// Reset clears the window after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, cardNumber string) error {
	return l.client.ResetWindow(ctx, loginScope(cardNumber))
}

func loginScope(cardNumber string) string {
	return "login:" + cardNumber
}
