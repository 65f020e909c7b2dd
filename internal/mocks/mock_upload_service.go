package mocks

import "context"

// MockUploadService implements domain.UploadService for testing
type MockUploadService struct {
	UploadImageFunc func(ctx context.Context, data []byte) (string, error)
}

// NewMockUploadService creates a new MockUploadService with default behaviors
func NewMockUploadService() *MockUploadService {
	return &MockUploadService{}
}

// UploadImage stores the image and returns its public URL
func (m *MockUploadService) UploadImage(ctx context.Context, data []byte) (string, error) {
	if m.UploadImageFunc != nil {
		return m.UploadImageFunc(ctx, data)
	}
	// Default behavior: fake hosted URL
	return "https://res.cloudinary.com/test/image/upload/profile.jpg", nil
}
