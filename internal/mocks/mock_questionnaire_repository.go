package mocks

import (
	"context"

	"github.com/Mental-Health-Matters/Psych/domain"
)

// MockQuestionnaireRepository implements domain.QuestionnaireRepository for testing
type MockQuestionnaireRepository struct {
	FindByUserIDFunc   func(ctx context.Context, userID uint) (*domain.Questionnaire, error)
	ReplaceFunc        func(ctx context.Context, q *domain.Questionnaire) error
	DeleteByUserIDFunc func(ctx context.Context, userID uint) error
}

// NewMockQuestionnaireRepository creates a new MockQuestionnaireRepository
func NewMockQuestionnaireRepository() *MockQuestionnaireRepository {
	return &MockQuestionnaireRepository{}
}

// FindByUserID finds a questionnaire by its owner
func (m *MockQuestionnaireRepository) FindByUserID(ctx context.Context, userID uint) (*domain.Questionnaire, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	// Default behavior: not found
	return nil, domain.ErrQuestionnaireNotFound
}

// Replace upserts the full answer set
func (m *MockQuestionnaireRepository) Replace(ctx context.Context, q *domain.Questionnaire) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, q)
	}
	return nil
}

// DeleteByUserID removes the owner's questionnaire
func (m *MockQuestionnaireRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if m.DeleteByUserIDFunc != nil {
		return m.DeleteByUserIDFunc(ctx, userID)
	}
	return nil
}
