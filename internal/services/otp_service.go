package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Mental-Health-Matters/Psych/domain"
)

// OTPServiceImpl implements domain.OTPService. The code and its expiry live
// on the user record; Redis only carries the resend throttle and the
// attempt counter, which need TTL semantics the relational store lacks.
type OTPServiceImpl struct {
	mailSvc     domain.MailService
	redisClient *redis.Client
	config      OTPConfig
}

type OTPConfig struct {
	Length       int
	TTL          time.Duration
	MaxAttempts  int
	ResendWindow time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(mailSvc domain.MailService, redisClient *redis.Client, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		mailSvc:     mailSvc,
		redisClient: redisClient,
		config:      config,
	}
}

// Issue implements domain.OTPService. It stamps a fresh code and expiry on
// the user (the caller persists the record) and dispatches the code by
// email. If dispatch fails nothing sticks: the throttle keys are removed
// and the in-memory fields cleared, so the triggering flow can fail
// atomically.
func (s *OTPServiceImpl) Issue(ctx context.Context, user *domain.User) error {
	resendKey := fmt.Sprintf("otp:res:%s", user.Email)
	attemptsKey := fmt.Sprintf("otp:att:%s", user.Email)

	if canResend, waitTime, _ := s.CanResend(ctx, user.Email); !canResend {
		return fmt.Errorf("%w: wait %d seconds", domain.ErrOTPResendLimit, waitTime)
	}

	code, err := s.generateSecureCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP code: %w", err)
	}

	expiresAt := time.Now().Add(s.config.TTL)
	user.OTP = code
	user.OTPExpiresAt = &expiresAt

	if err := s.redisClient.Set(ctx, attemptsKey, 0, s.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to initialize attempts counter: %w", err)
	}
	if err := s.redisClient.Set(ctx, resendKey, 1, s.config.ResendWindow).Err(); err != nil {
		return fmt.Errorf("failed to set resend throttle: %w", err)
	}

	subject, body := otpMail(code, user.Username, s.config.TTL)
	if err := s.mailSvc.Send(user.Email, subject, body); err != nil {
		s.redisClient.Del(ctx, attemptsKey, resendKey)
		user.OTP = ""
		user.OTPExpiresAt = nil
		return fmt.Errorf("%w: %v", domain.ErrOTPDelivery, err)
	}

	log.Printf("%s: email=%s", domain.OTPIssuedEvent, user.Email)
	return nil
}

// Verify implements domain.OTPService. Outcomes, in order: NotSet when the
// OTP fields are absent, Mismatch when the codes differ, Expired when the
// deadline passed. On success the in-memory fields are cleared; the caller
// persists the cleared state.
func (s *OTPServiceImpl) Verify(ctx context.Context, user *domain.User, code string) error {
	attemptsKey := fmt.Sprintf("otp:att:%s", user.Email)

	attempts, err := s.redisClient.Incr(ctx, attemptsKey).Result()
	if err != nil {
		return fmt.Errorf("failed to increment attempts: %w", err)
	}
	if s.config.MaxAttempts > 0 && attempts > int64(s.config.MaxAttempts) {
		return domain.ErrOTPMaxAttempts
	}

	if !user.HasPendingOTP() {
		return domain.ErrOTPNotSet
	}
	if user.OTP != code {
		return domain.ErrOTPMismatch
	}
	if time.Now().After(*user.OTPExpiresAt) {
		return domain.ErrOTPExpired
	}

	s.redisClient.Del(ctx, attemptsKey, fmt.Sprintf("otp:res:%s", user.Email))
	user.OTP = ""
	user.OTPExpiresAt = nil

	return nil
}

// CanResend implements domain.OTPService with Redis-based throttling
func (s *OTPServiceImpl) CanResend(ctx context.Context, email string) (bool, int64, error) {
	resendKey := fmt.Sprintf("otp:res:%s", email)

	ttl, err := s.redisClient.TTL(ctx, resendKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to check resend TTL: %w", err)
	}

	if ttl <= 0 {
		return true, 0, nil
	}

	return false, int64(ttl.Seconds()), nil
}

// generateSecureCode generates a cryptographically secure numeric code
func (s *OTPServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)

	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}
