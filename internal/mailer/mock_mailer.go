package mailer

import (
	"sync"
)

// Email represents a sent email
type Email struct {
	Recipient    string
	TemplateFile string
	Data         any
}

// MockMailer records emails instead of sending them. Setting Err makes every
// Send call fail after recording.
type MockMailer struct {
	mu     sync.RWMutex
	emails []Email
	sent   chan struct{}
	Err    error
}

func NewMockMailer() *MockMailer {
	return &MockMailer{
		emails: make([]Email, 0),
		sent:   make(chan struct{}, 16),
	}
}

func (m *MockMailer) Send(recipient, templateFile string, data any) error {
	m.mu.Lock()
	m.emails = append(m.emails, Email{
		Recipient:    recipient,
		TemplateFile: templateFile,
		Data:         data,
	})
	err := m.Err
	m.mu.Unlock()

	select {
	case m.sent <- struct{}{}:
	default:
	}

	return err
}

// Sent is signalled after every Send call, which lets tests wait for mails
// sent from background goroutines.
func (m *MockMailer) Sent() <-chan struct{} {
	return m.sent
}

// GetSentEmails returns a copy of all sent emails
func (m *MockMailer) GetSentEmails() []Email {
	m.mu.RLock()
	defer m.mu.RUnlock()

	emails := make([]Email, len(m.emails))
	copy(emails, m.emails)
	return emails
}

func (m *MockMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.emails = make([]Email, 0)
}
