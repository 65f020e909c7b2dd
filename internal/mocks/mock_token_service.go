package mocks

import (
	"fmt"

	"github.com/Mental-Health-Matters/Psych/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateFunc func(userID uint) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate mints a session token
func (m *MockTokenService) Generate(userID uint) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID)
	}
	// Default behavior: predictable fake token
	return fmt.Sprintf("token_for_%d", userID), nil
}

// Validate checks a session token
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}
