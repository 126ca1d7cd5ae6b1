package ui

import (
	"context"
	"sync"

	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/core/domain"
)

// fakeBackend satisfies ports.Backend with pluggable behavior per call.
type fakeBackend struct {
	mu sync.Mutex

	uploadFn func(domain.UploadFile) domain.Result
	listFn   func() domain.DocumentList
	deleteFn func(string) domain.Result
	chatFn   func(string) domain.ChatReply

	uploadCalls int
	listCalls   int
	deleteCalls int
	chatCalls   int

	lastDeletedID string
	lastChatText  string
}

func (f *fakeBackend) Upload(_ context.Context, file domain.UploadFile) domain.Result {
	f.mu.Lock()
	f.uploadCalls++
	fn := f.uploadFn
	f.mu.Unlock()
	if fn != nil {
		return fn(file)
	}
	return domain.Result{Success: true}
}

func (f *fakeBackend) ListDocuments(_ context.Context) domain.DocumentList {
	f.mu.Lock()
	f.listCalls++
	fn := f.listFn
	f.mu.Unlock()
	if fn != nil {
		return fn()
	}
	return domain.DocumentList{Success: true, Documents: []domain.Document{}}
}

func (f *fakeBackend) DeleteDocument(_ context.Context, fileID string) domain.Result {
	f.mu.Lock()
	f.deleteCalls++
	f.lastDeletedID = fileID
	fn := f.deleteFn
	f.mu.Unlock()
	if fn != nil {
		return fn(fileID)
	}
	return domain.Result{Success: true}
}

func (f *fakeBackend) SendMessage(_ context.Context, text string) domain.ChatReply {
	f.mu.Lock()
	f.chatCalls++
	f.lastChatText = text
	fn := f.chatFn
	f.mu.Unlock()
	if fn != nil {
		return fn(text)
	}
	return domain.ChatReply{Success: true, Message: "ok"}
}

func (f *fakeBackend) calls() (upload, list, del, chat int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.uploadCalls, f.listCalls, f.deleteCalls, f.chatCalls
}

type yesPrompter struct{}

func (yesPrompter) Confirm(string) bool { return true }

type noPrompter struct{}

func (noPrompter) Confirm(string) bool { return false }

type recordingAlerter struct {
	mu       sync.Mutex
	messages []string
}

func (a *recordingAlerter) Alert(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = append(a.messages, message)
}

func (a *recordingAlerter) all() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.messages))
	copy(out, a.messages)
	return out
}
