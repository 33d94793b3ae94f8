package auth

import (
	"context"
	"fmt"
	"log"
	"time"
)

// SMSSender is the outbound SMS transport. Only the simulated implementation
// exists; real delivery is explicitly out of scope.
type SMSSender interface {
	SendVerification(ctx context.Context, phone, code string) error
	SendInvitation(ctx context.Context, phone, inviter, role string) error
}

// MockSMS logs messages instead of sending them, after an artificial delay
// that stands in for the provider round trip.
type MockSMS struct {
	Delay time.Duration
}

func NewMockSMS(delay time.Duration) *MockSMS {
	return &MockSMS{Delay: delay}
}

func (m *MockSMS) SendVerification(ctx context.Context, phone, code string) error {
	if err := m.wait(ctx, m.Delay); err != nil {
		return err
	}
	log.Printf("[SMS MOCK] verification code %s for %s", code, phone)
	return nil
}

func (m *MockSMS) SendInvitation(ctx context.Context, phone, inviter, role string) error {
	// invitations simulate a slower provider call than verification sends
	if err := m.wait(ctx, m.Delay+m.Delay/2); err != nil {
		return err
	}
	msg := fmt.Sprintf("%s has invited you to join TaskFlow Calendar as a %s.", inviter, role)
	log.Printf("[SMS MOCK] invitation to %s: %s", phone, msg)
	return nil
}

func (m *MockSMS) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
