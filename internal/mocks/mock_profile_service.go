package mocks

import (
	"context"

	"github.com/Mental-Health-Matters/Psych/domain"
)

// MockProfileService implements domain.ProfileService for testing
type MockProfileService struct {
	GetDetailsFunc    func(ctx context.Context, userID uint) (*domain.User, *domain.Questionnaire, error)
	UpdateProfileFunc func(ctx context.Context, userID uint, profile domain.ProfileUpdate, answers []domain.QuestionnaireAnswer) (*domain.User, *domain.Questionnaire, error)
	DeleteAccountFunc func(ctx context.Context, requesterID, targetID uint) error
}

// NewMockProfileService creates a new MockProfileService
func NewMockProfileService() *MockProfileService {
	return &MockProfileService{}
}

// GetDetails returns the user and their questionnaire
func (m *MockProfileService) GetDetails(ctx context.Context, userID uint) (*domain.User, *domain.Questionnaire, error) {
	if m.GetDetailsFunc != nil {
		return m.GetDetailsFunc(ctx, userID)
	}
	return nil, nil, domain.ErrUserNotFound
}

// UpdateProfile updates the profile and replaces the questionnaire
func (m *MockProfileService) UpdateProfile(ctx context.Context, userID uint, profile domain.ProfileUpdate, answers []domain.QuestionnaireAnswer) (*domain.User, *domain.Questionnaire, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, profile, answers)
	}
	return nil, nil, domain.ErrUserNotFound
}

// DeleteAccount removes the requester's own account
func (m *MockProfileService) DeleteAccount(ctx context.Context, requesterID, targetID uint) error {
	if m.DeleteAccountFunc != nil {
		return m.DeleteAccountFunc(ctx, requesterID, targetID)
	}
	return nil
}
