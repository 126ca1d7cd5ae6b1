package ui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/core/domain"
	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/core/ports"
)

const (
	welcomeText = "Hello! I'm your AI assistant. I can answer questions based on the documents you've uploaded. Ask me anything about your documents!"
	clearedText = "Chat history cleared. How can I help you with your documents?"
)

// Chat owns the append-only transcript and a single in-flight flag. Input is
// inert while a prior message is awaiting its reply; there is no queuing.
type Chat struct {
	backend  ports.Backend
	prompter ports.Prompter

	mu       sync.Mutex
	messages []domain.Message
	inflight bool
	viewport Viewport
}

func NewChat(backend ports.Backend, prompter ports.Prompter, viewportRows int) *Chat {
	c := &Chat{
		backend:  backend,
		prompter: prompter,
		viewport: NewViewport(viewportRows),
	}
	c.messages = []domain.Message{systemMessage(welcomeText)}
	c.syncViewportLocked()
	c.viewport.ScrollToBottom()
	return c
}

func systemMessage(text string) domain.Message {
	return domain.Message{
		ID:        uuid.NewString(),
		Text:      text,
		IsUser:    false,
		Timestamp: time.Now(),
	}
}

func (c *Chat) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight
}

// Messages returns a snapshot copy of the transcript.
func (c *Chat) Messages() []domain.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Send appends the user's turn, submits it, and appends exactly one
// assistant turn from the reply (which is always well-formed, even on
// transport failure). It reports false when the input was rejected:
// empty/whitespace-only text, or a prior message still in flight.
func (c *Chat) Send(ctx context.Context, text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	c.mu.Lock()
	if c.inflight {
		c.mu.Unlock()
		return false
	}
	c.inflight = true
	c.messages = append(c.messages, domain.Message{
		ID:        uuid.NewString(),
		Text:      trimmed,
		IsUser:    true,
		Timestamp: time.Now(),
	})
	c.syncViewportLocked()
	// The user's own submission always snaps the view to the bottom.
	c.viewport.ScrollToBottom()
	c.mu.Unlock()

	reply := c.backend.SendMessage(ctx, trimmed)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight = false
	meta := reply.Meta
	c.messages = append(c.messages, domain.Message{
		ID:        uuid.NewString(),
		Text:      reply.Message,
		IsUser:    false,
		Timestamp: time.Now(),
		Meta:      &meta,
	})
	// Follow the new message only if the view was already near the bottom,
	// preserving a manually scrolled-up reading position.
	wasNear := c.viewport.NearBottom()
	c.syncViewportLocked()
	if wasNear {
		c.viewport.ScrollToBottom()
	}
	return true
}

// ClearHistory is destructive and confirmed. It replaces the transcript with
// a single fresh system message and never calls the backend.
func (c *Chat) ClearHistory() bool {
	if !c.prompter.Confirm("Are you sure you want to clear the chat history?") {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = []domain.Message{systemMessage(clearedText)}
	c.syncViewportLocked()
	c.viewport.ScrollToBottom()
	return true
}

func (c *Chat) ScrollBy(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewport.ScrollBy(delta)
}

func (c *Chat) NearBottom() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewport.NearBottom()
}

// VisibleLines renders the transcript and returns the slice of lines the
// viewport currently shows.
func (c *Chat) VisibleLines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	lines := transcriptLines(c.messages)
	start, end := c.viewport.Window()
	if start > len(lines) {
		start = len(lines)
	}
	if end > len(lines) {
		end = len(lines)
	}
	return lines[start:end]
}

func (c *Chat) syncViewportLocked() {
	c.viewport.SetContent(len(transcriptLines(c.messages)))
}

func transcriptLines(messages []domain.Message) []string {
	var lines []string
	for _, m := range messages {
		lines = append(lines, formatMessage(m)...)
	}
	return lines
}

func formatMessage(m domain.Message) []string {
	speaker := "assistant"
	if m.IsUser {
		speaker = "you"
	}
	header := fmt.Sprintf("[%s] %s", m.Timestamp.Local().Format("03:04 PM"), speaker)
	if m.Meta != nil {
		header += fmt.Sprintf(" • %d docs", m.Meta.DocumentsUsed)
	}
	lines := []string{header}
	for _, text := range strings.Split(m.Text, "\n") {
		lines = append(lines, "  "+text)
	}
	return lines
}
