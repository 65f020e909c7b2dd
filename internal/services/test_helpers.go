package services

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/Mental-Health-Matters/Psych/domain"
	"github.com/Mental-Health-Matters/Psych/internal/mocks"
)

// createAuthServiceForTest creates an AuthService with mock dependencies.
// Pass nil for any dependency to get the default mock.
func createAuthServiceForTest(t *testing.T,
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	uploadSvc domain.UploadService,
	verifier domain.IdentityVerifier) domain.AuthService {
	t.Helper()

	if userRepo == nil {
		userRepo = mocks.NewMockUserRepository()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}
	if tokenSvc == nil {
		tokenSvc = mocks.NewMockTokenService()
	}
	if otpSvc == nil {
		otpSvc = mocks.NewMockOTPService()
	}
	if uploadSvc == nil {
		uploadSvc = mocks.NewMockUploadService()
	}
	if verifier == nil {
		verifier = mocks.NewMockIdentityVerifier()
	}

	return NewAuthService(userRepo, passwordSvc, tokenSvc, otpSvc, uploadSvc, verifier, 7*24*time.Hour)
}

// createTestRedis starts an in-process redis and returns a client bound to it
func createTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

// createTestOTPConfig creates a test OTP configuration
func createTestOTPConfig(t *testing.T) OTPConfig {
	t.Helper()

	return OTPConfig{
		Length:       6,
		TTL:          10 * time.Minute,
		MaxAttempts:  3,
		ResendWindow: 60 * time.Second,
	}
}

// createVerifiedUser creates a local account that finished OTP verification
func createVerifiedUser(t *testing.T) *domain.User {
	t.Helper()

	return &domain.User{
		ID:             1,
		Email:          "student@example.com",
		Username:       "student",
		FirstName:      "Stu",
		LastName:       "Dent",
		PasswordHash:   "hashed_password123",
		ProfilePicture: "https://res.cloudinary.com/test/image/upload/profile.jpg",
		AuthProvider:   domain.ProviderLocal,
		EmailVerified:  true,
		CreatedAt:      time.Now().Add(-24 * time.Hour),
		UpdatedAt:      time.Now().Add(-1 * time.Hour),
	}
}

// createUnverifiedUser creates a local account that still has a pending OTP
func createUnverifiedUser(t *testing.T) *domain.User {
	t.Helper()

	user := createVerifiedUser(t)
	user.EmailVerified = false
	expiry := time.Now().Add(10 * time.Minute)
	user.OTP = "123456"
	user.OTPExpiresAt = &expiry
	return user
}

// createFederatedUser creates a Google-backed account
func createFederatedUser(t *testing.T) *domain.User {
	t.Helper()

	user := createVerifiedUser(t)
	user.ID = 2
	user.Email = "federated@example.com"
	user.Username = "federated"
	user.PasswordHash = ""
	user.AuthProvider = domain.ProviderGoogle
	return user
}

// createRegisterInput creates a complete registration payload
func createRegisterInput(t *testing.T) domain.RegisterInput {
	t.Helper()

	return domain.RegisterInput{
		FirstName: "Stu",
		LastName:  "Dent",
		Email:     "newuser@example.com",
		Username:  "newuser",
		Password:  "securepassword123",
		Picture:   []byte{0xFF, 0xD8, 0xFF, 0xE0},
	}
}
