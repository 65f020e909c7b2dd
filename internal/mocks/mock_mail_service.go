package mocks

import "sync"

// SentMail records one delivered message
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// MockMailService implements domain.MailService for testing. It records
// every send so tests can assert on recipients and content.
type MockMailService struct {
	SendFunc func(to, subject, body string) error

	mu   sync.Mutex
	sent []SentMail
}

// NewMockMailService creates a new MockMailService with default behaviors
func NewMockMailService() *MockMailService {
	return &MockMailService{}
}

// Send delivers (or pretends to deliver) a message
func (m *MockMailService) Send(to, subject, body string) error {
	if m.SendFunc != nil {
		if err := m.SendFunc(to, subject, body); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, SentMail{To: to, Subject: subject, Body: body})
	return nil
}

// Sent returns a copy of everything delivered so far
func (m *MockMailService) Sent() []SentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMail, len(m.sent))
	copy(out, m.sent)
	return out
}
