package mocks

import (
	"context"

	"github.com/Mental-Health-Matters/Psych/domain"
)

// MockAppointmentService implements domain.AppointmentService for testing
type MockAppointmentService struct {
	ConfirmFunc func(ctx context.Context, userID uint, req domain.AppointmentRequest) error
}

// NewMockAppointmentService creates a new MockAppointmentService
func NewMockAppointmentService() *MockAppointmentService {
	return &MockAppointmentService{}
}

// Confirm sends the appointment confirmation mails
func (m *MockAppointmentService) Confirm(ctx context.Context, userID uint, req domain.AppointmentRequest) error {
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, userID, req)
	}
	return nil
}
