package ports

import (
	"context"

	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/core/domain"
)

// Backend is the exclusive translator between the views' method vocabulary
// and the webhook backend's wire vocabulary. Every method performs exactly
// one network round-trip and resolves to an envelope; none of them returns
// an error value.
type Backend interface {
	Upload(ctx context.Context, file domain.UploadFile) domain.Result
	ListDocuments(ctx context.Context) domain.DocumentList
	DeleteDocument(ctx context.Context, fileID string) domain.Result
	SendMessage(ctx context.Context, text string) domain.ChatReply
}

// Prompter asks the user to confirm a destructive action.
type Prompter interface {
	Confirm(prompt string) bool
}

// Alerter delivers a blocking, acknowledgment-style notice. Delete failures
// use this instead of inline status text.
type Alerter interface {
	Alert(message string)
}
