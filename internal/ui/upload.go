package ui

import (
	"context"
	"sync"
	"time"

	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/core/domain"
	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/core/ports"
)

// MaxUploadBytes is the inclusive client-side size limit (50 MiB).
const MaxUploadBytes = 50 * 1024 * 1024

const successClearDelay = 3 * time.Second

var allowedMIMETypes = map[string]struct{}{
	"application/pdf": {},
	"text/plain":      {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusInfo
	StatusSuccess
	StatusError
)

type UploadStatus struct {
	Kind StatusKind
	Text string
}

// Uploader validates a candidate file entirely client-side before any
// network call, then delegates to the backend. Success status is transient;
// failure status persists until the next attempt.
type Uploader struct {
	backend    ports.Backend
	onSuccess  func()
	clearDelay time.Duration

	mu        sync.Mutex
	uploading bool
	status    UploadStatus
	statusGen int
}

func NewUploader(backend ports.Backend, onSuccess func()) *Uploader {
	return &Uploader{
		backend:    backend,
		onSuccess:  onSuccess,
		clearDelay: successClearDelay,
	}
}

func (u *Uploader) Uploading() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.uploading
}

func (u *Uploader) Status() UploadStatus {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.status
}

// Upload reports whether the file was accepted and uploaded. Validation
// violations short-circuit with a user-facing status and issue no network
// request.
func (u *Uploader) Upload(ctx context.Context, file domain.UploadFile) bool {
	u.mu.Lock()
	if u.uploading {
		u.mu.Unlock()
		return false
	}
	if _, ok := allowedMIMETypes[file.MIMEType]; !ok {
		u.setStatusLocked(StatusError, "Please upload a PDF, TXT, or DOCX file.")
		u.mu.Unlock()
		return false
	}
	if file.Size > MaxUploadBytes {
		u.setStatusLocked(StatusError, "File size must be less than 50MB.")
		u.mu.Unlock()
		return false
	}
	u.uploading = true
	u.setStatusLocked(StatusInfo, "Uploading and processing document...")
	u.mu.Unlock()

	result := u.backend.Upload(ctx, file)

	u.mu.Lock()
	u.uploading = false
	if !result.Success {
		u.setStatusLocked(StatusError, "Upload failed: "+result.ErrorText())
		u.mu.Unlock()
		return false
	}
	u.setStatusLocked(StatusSuccess, "Successfully uploaded: "+file.Name)
	gen := u.statusGen
	u.mu.Unlock()

	// The success notice auto-clears unless a newer status replaced it.
	time.AfterFunc(u.clearDelay, func() {
		u.mu.Lock()
		defer u.mu.Unlock()
		if u.statusGen == gen {
			u.status = UploadStatus{}
		}
	})

	if u.onSuccess != nil {
		u.onSuccess()
	}
	return true
}

func (u *Uploader) setStatusLocked(kind StatusKind, text string) {
	u.statusGen++
	u.status = UploadStatus{Kind: kind, Text: text}
}
