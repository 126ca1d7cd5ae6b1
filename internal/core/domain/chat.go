package domain

import (
	"io"
	"time"
)

// ChatMeta carries the grounding metadata attached to an assistant reply.
type ChatMeta struct {
	DocumentsUsed int  `json:"documentsUsed"`
	HasContext    bool `json:"hasContext"`
}

// ChatReply is the chat endpoint's envelope. Unlike the generic Result, a
// transport failure is reported as a fabricated reply with Success=false,
// the error text in Message and zero-valued Meta, so the conversational view
// can always treat the return value as a well-formed assistant turn.
type ChatReply struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Meta    ChatMeta `json:"meta"`
}

// Message is one transcript entry. IDs are client-generated UUIDs, so two
// messages produced in the same clock tick cannot collide.
type Message struct {
	ID        string
	Text      string
	IsUser    bool
	Timestamp time.Time

	// Meta is set only on assistant turns that carried grounding metadata.
	Meta *ChatMeta
}

// UploadFile is a candidate upload as seen by the client: the declared MIME
// type and size are validated before Content is ever read.
type UploadFile struct {
	Name     string
	MIMEType string
	Size     int64
	Content  io.Reader
}
