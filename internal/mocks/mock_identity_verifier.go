package mocks

import (
	"context"

	"github.com/Mental-Health-Matters/Psych/domain"
)

// MockIdentityVerifier implements domain.IdentityVerifier for testing
type MockIdentityVerifier struct {
	VerifyFunc func(ctx context.Context, idToken string) (*domain.ExternalIdentity, error)
}

// NewMockIdentityVerifier creates a new MockIdentityVerifier with default behaviors
func NewMockIdentityVerifier() *MockIdentityVerifier {
	return &MockIdentityVerifier{}
}

// Verify validates a third-party identity token
func (m *MockIdentityVerifier) Verify(ctx context.Context, idToken string) (*domain.ExternalIdentity, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, idToken)
	}
	// Default behavior: verification failure
	return nil, domain.ErrOAuthVerification
}
