package client

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const devMailboxCap = 100

// DevMessage is a captured, undelivered message.
type DevMessage struct {
	ID       string    `json:"id"`
	To       string    `json:"to"`
	Subject  string    `json:"subject"`
	HTMLBody string    `json:"-"`
	SentAt   time.Time `json:"sentAt"`
}

// DevMailer is the local-development fallback transport. Nothing leaves the
// process; messages are retained in memory and exposed through a preview
// endpoint.
type DevMailer struct {
	baseURL string

	mu       sync.Mutex
	messages map[string]DevMessage
	order    []string
}

func NewDevMailer(baseURL string) *DevMailer {
	return &DevMailer{
		baseURL:  strings.TrimRight(baseURL, "/"),
		messages: make(map[string]DevMessage),
	}
}

func (m *DevMailer) Send(ctx context.Context, to, subject, htmlBody string) (*Delivery, error) {
	msg := DevMessage{
		ID:       uuid.NewString(),
		To:       to,
		Subject:  subject,
		HTMLBody: htmlBody,
		SentAt:   time.Now(),
	}

	m.mu.Lock()
	m.messages[msg.ID] = msg
	m.order = append(m.order, msg.ID)
	if len(m.order) > devMailboxCap {
		delete(m.messages, m.order[0])
		m.order = m.order[1:]
	}
	m.mu.Unlock()

	previewURL := m.baseURL + "/api/dev/mail/" + msg.ID
	log.Printf("[DevMailer] Captured mail to=%s subject=%q preview=%s", to, subject, previewURL)

	return &Delivery{MessageID: msg.ID, PreviewURL: previewURL}, nil
}

func (m *DevMailer) Get(id string) (DevMessage, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msg, ok := m.messages[id]
	return msg, ok
}

// List returns captured messages, newest first.
func (m *DevMailer) List() []DevMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]DevMessage, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		out = append(out, m.messages[m.order[i]])
	}
	return out
}
