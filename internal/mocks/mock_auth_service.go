package mocks

import (
	"context"

	"github.com/Mental-Health-Matters/Psych/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc       func(ctx context.Context, in domain.RegisterInput) (*domain.User, error)
	LoginFunc          func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	VerifyEmailFunc    func(ctx context.Context, userID uint, code string) (*domain.AuthResult, error)
	ResendOTPFunc      func(ctx context.Context, email string) error
	GoogleLoginFunc    func(ctx context.Context, idToken string) (*domain.AuthResult, error)
	GetUserProfileFunc func(ctx context.Context, userID uint) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a local account
func (m *MockAuthService) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, in)
	}
	return &domain.User{ID: 1, Email: in.Email, Username: in.Username, AuthProvider: domain.ProviderLocal}, nil
}

// Login authenticates with email and password
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, domain.ErrInvalidCredentials
}

// VerifyEmail consumes an OTP code and issues the first session
func (m *MockAuthService) VerifyEmail(ctx context.Context, userID uint, code string) (*domain.AuthResult, error) {
	if m.VerifyEmailFunc != nil {
		return m.VerifyEmailFunc(ctx, userID, code)
	}
	return nil, domain.ErrOTPNotSet
}

// ResendOTP reissues the code for an unverified account
func (m *MockAuthService) ResendOTP(ctx context.Context, email string) error {
	if m.ResendOTPFunc != nil {
		return m.ResendOTPFunc(ctx, email)
	}
	return nil
}

// GoogleLogin authenticates with a Google ID token
func (m *MockAuthService) GoogleLogin(ctx context.Context, idToken string) (*domain.AuthResult, error) {
	if m.GoogleLoginFunc != nil {
		return m.GoogleLoginFunc(ctx, idToken)
	}
	return nil, domain.ErrOAuthVerification
}

// GetUserProfile returns the user record for a session
func (m *MockAuthService) GetUserProfile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.GetUserProfileFunc != nil {
		return m.GetUserProfileFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}
