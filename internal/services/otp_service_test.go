package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Mental-Health-Matters/Psych/domain"
	"github.com/Mental-Health-Matters/Psych/internal/mocks"
)

func TestOTPServiceImpl_Issue(t *testing.T) {
	t.Run("stamps the user and mails the code", func(t *testing.T) {
		redisClient := createTestRedis(t)
		mailSvc := mocks.NewMockMailService()
		svc := NewOTPService(mailSvc, redisClient, createTestOTPConfig(t))

		user := createUnverifiedUser(t)
		user.OTP = ""
		user.OTPExpiresAt = nil

		if err := svc.Issue(context.Background(), user); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(user.OTP) != 6 {
			t.Errorf("expected a 6 digit code, got %q", user.OTP)
		}
		for _, r := range user.OTP {
			if r < '0' || r > '9' {
				t.Errorf("non-digit %q in code %q", r, user.OTP)
			}
		}
		if user.OTPExpiresAt == nil || time.Until(*user.OTPExpiresAt) <= 0 {
			t.Error("expiry not stamped in the future")
		}

		sent := mailSvc.Sent()
		if len(sent) != 1 {
			t.Fatalf("expected 1 mail, got %d", len(sent))
		}
		if sent[0].To != user.Email {
			t.Errorf("mailed %s, expected %s", sent[0].To, user.Email)
		}
		if !strings.Contains(sent[0].Body, user.OTP) {
			t.Error("mail body does not carry the code")
		}
	})

	t.Run("second issue inside the resend window is throttled", func(t *testing.T) {
		redisClient := createTestRedis(t)
		mailSvc := mocks.NewMockMailService()
		svc := NewOTPService(mailSvc, redisClient, createTestOTPConfig(t))

		user := createUnverifiedUser(t)
		if err := svc.Issue(context.Background(), user); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err := svc.Issue(context.Background(), user)
		if !errors.Is(err, domain.ErrOTPResendLimit) {
			t.Fatalf("expected ErrOTPResendLimit, got %v", err)
		}
		if len(mailSvc.Sent()) != 1 {
			t.Error("throttled issue must not send mail")
		}
	})

	t.Run("delivery failure leaves nothing behind", func(t *testing.T) {
		redisClient := createTestRedis(t)
		mailSvc := mocks.NewMockMailService()
		mailSvc.SendFunc = func(to, subject, body string) error {
			return errors.New("smtp connection refused")
		}
		svc := NewOTPService(mailSvc, redisClient, createTestOTPConfig(t))

		user := createUnverifiedUser(t)
		user.OTP = ""
		user.OTPExpiresAt = nil

		err := svc.Issue(context.Background(), user)
		if !errors.Is(err, domain.ErrOTPDelivery) {
			t.Fatalf("expected ErrOTPDelivery, got %v", err)
		}
		if user.OTP != "" || user.OTPExpiresAt != nil {
			t.Error("failed delivery must clear the stamped fields")
		}

		// The throttle must not survive a failed delivery.
		canResend, _, err := svc.CanResend(context.Background(), user.Email)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !canResend {
			t.Error("resend window stuck after failed delivery")
		}
	})
}

func TestOTPServiceImpl_Verify(t *testing.T) {
	tests := []struct {
		name          string
		mutateUser    func(user *domain.User)
		code          string
		expectedError error
	}{
		{
			name: "successful verification",
			code: "123456",
		},
		{
			name: "no pending code",
			mutateUser: func(user *domain.User) {
				user.OTP = ""
				user.OTPExpiresAt = nil
			},
			code:          "123456",
			expectedError: domain.ErrOTPNotSet,
		},
		{
			name:          "wrong code",
			code:          "654321",
			expectedError: domain.ErrOTPMismatch,
		},
		{
			name: "expired code",
			mutateUser: func(user *domain.User) {
				past := time.Now().Add(-time.Minute)
				user.OTPExpiresAt = &past
			},
			code:          "123456",
			expectedError: domain.ErrOTPExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redisClient := createTestRedis(t)
			svc := NewOTPService(mocks.NewMockMailService(), redisClient, createTestOTPConfig(t))

			user := createUnverifiedUser(t)
			if tt.mutateUser != nil {
				tt.mutateUser(user)
			}

			err := svc.Verify(context.Background(), user, tt.code)
			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.OTP != "" || user.OTPExpiresAt != nil {
				t.Error("successful verification must clear the code")
			}
		})
	}

	t.Run("attempt counter caps guessing", func(t *testing.T) {
		redisClient := createTestRedis(t)
		config := createTestOTPConfig(t)
		svc := NewOTPService(mocks.NewMockMailService(), redisClient, config)

		user := createUnverifiedUser(t)
		for i := 0; i < config.MaxAttempts; i++ {
			if err := svc.Verify(context.Background(), user, "000000"); !errors.Is(err, domain.ErrOTPMismatch) {
				t.Fatalf("attempt %d: expected ErrOTPMismatch, got %v", i+1, err)
			}
		}

		// The right code no longer helps once attempts run out.
		err := svc.Verify(context.Background(), user, "123456")
		if !errors.Is(err, domain.ErrOTPMaxAttempts) {
			t.Fatalf("expected ErrOTPMaxAttempts, got %v", err)
		}
	})

	t.Run("successful verification resets the throttle", func(t *testing.T) {
		redisClient := createTestRedis(t)
		mailSvc := mocks.NewMockMailService()
		svc := NewOTPService(mailSvc, redisClient, createTestOTPConfig(t))

		user := createUnverifiedUser(t)
		user.OTP = ""
		user.OTPExpiresAt = nil
		if err := svc.Issue(context.Background(), user); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.Verify(context.Background(), user, user.OTP); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		canResend, wait, err := svc.CanResend(context.Background(), user.Email)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !canResend || wait != 0 {
			t.Errorf("expected open window, got canResend=%v wait=%d", canResend, wait)
		}
	})
}

func TestOTPServiceImpl_CanResend(t *testing.T) {
	redisClient := createTestRedis(t)
	config := createTestOTPConfig(t)
	svc := NewOTPService(mocks.NewMockMailService(), redisClient, config)
	email := "student@example.com"

	canResend, wait, err := svc.CanResend(context.Background(), email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !canResend || wait != 0 {
		t.Errorf("fresh email: expected open window, got canResend=%v wait=%d", canResend, wait)
	}

	key := fmt.Sprintf("otp:res:%s", email)
	if err := redisClient.Set(context.Background(), key, 1, config.ResendWindow).Err(); err != nil {
		t.Fatalf("failed to set throttle key: %v", err)
	}

	canResend, wait, err = svc.CanResend(context.Background(), email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if canResend {
		t.Error("expected closed window while the key lives")
	}
	if wait <= 0 || wait > int64(config.ResendWindow.Seconds()) {
		t.Errorf("wait %d outside the window", wait)
	}
}
