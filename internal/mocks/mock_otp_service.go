package mocks

import (
	"context"
	"time"

	"github.com/Mental-Health-Matters/Psych/domain"
)

// MockOTPService implements domain.OTPService for testing
type MockOTPService struct {
	IssueFunc     func(ctx context.Context, user *domain.User) error
	VerifyFunc    func(ctx context.Context, user *domain.User, code string) error
	CanResendFunc func(ctx context.Context, email string) (bool, int64, error)
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Issue stamps a code on the user and pretends to send it
func (m *MockOTPService) Issue(ctx context.Context, user *domain.User) error {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, user)
	}
	// Default behavior: deterministic code, ten minute window
	expiry := time.Now().Add(10 * time.Minute)
	user.OTP = "123456"
	user.OTPExpiresAt = &expiry
	return nil
}

// Verify checks the submitted code
func (m *MockOTPService) Verify(ctx context.Context, user *domain.User, code string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, user, code)
	}
	// Default behavior: mirrors the real outcome ordering
	if !user.HasPendingOTP() {
		return domain.ErrOTPNotSet
	}
	if user.OTP != code {
		return domain.ErrOTPMismatch
	}
	if time.Now().After(*user.OTPExpiresAt) {
		return domain.ErrOTPExpired
	}
	user.OTP = ""
	user.OTPExpiresAt = nil
	return nil
}

// CanResend reports whether the throttle window is open
func (m *MockOTPService) CanResend(ctx context.Context, email string) (bool, int64, error) {
	if m.CanResendFunc != nil {
		return m.CanResendFunc(ctx, email)
	}
	return true, 0, nil
}
