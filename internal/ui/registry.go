package ui

import (
	"context"
	"fmt"
	"sync"

	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/core/domain"
	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/core/ports"
)

type RegistryPhase int

const (
	PhaseLoading RegistryPhase = iota
	PhaseError
	PhaseReady
)

func (p RegistryPhase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	default:
		return "ready"
	}
}

// Registry mirrors the backend's document listing. Each fetch replaces the
// list wholesale; the only local mutation ever applied is the optimistic
// removal after a confirmed successful delete.
type Registry struct {
	backend  ports.Backend
	prompter ports.Prompter
	alerter  ports.Alerter

	// onDeleteSuccess notifies the parent, which typically bumps the shared
	// refresh signal and causes a fresh authoritative fetch later.
	onDeleteSuccess func()

	mu          sync.Mutex
	phase       RegistryPhase
	documents   []domain.Document
	errText     string
	deletingID  string
	fetchSeq    int
	refreshSeen int
}

func NewRegistry(backend ports.Backend, prompter ports.Prompter, alerter ports.Alerter, onDeleteSuccess func()) *Registry {
	return &Registry{
		backend:         backend,
		prompter:        prompter,
		alerter:         alerter,
		onDeleteSuccess: onDeleteSuccess,
		phase:           PhaseLoading,
	}
}

func (r *Registry) Phase() RegistryPhase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

func (r *Registry) Err() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errText
}

func (r *Registry) DeletingID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deletingID
}

// Documents returns a snapshot copy of the current listing.
func (r *Registry) Documents() []domain.Document {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Document, len(r.documents))
	copy(out, r.documents)
	return out
}

// Refresh re-enters the loading state and fetches the authoritative
// snapshot. If another Refresh starts while this one is in flight, the stale
// result is discarded so an older snapshot can never overwrite a newer one.
func (r *Registry) Refresh(ctx context.Context) {
	r.mu.Lock()
	r.phase = PhaseLoading
	r.errText = ""
	r.fetchSeq++
	seq := r.fetchSeq
	r.mu.Unlock()

	list := r.backend.ListDocuments(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if seq != r.fetchSeq {
		return
	}
	if list.Success {
		r.phase = PhaseReady
		r.documents = list.Documents
		return
	}
	r.phase = PhaseError
	r.errText = list.Error
	r.documents = nil
}

// SyncRefreshSignal refreshes whenever the externally shared counter has
// moved since the last value this view applied.
func (r *Registry) SyncRefreshSignal(ctx context.Context, signal int) {
	r.mu.Lock()
	if signal == r.refreshSeen {
		r.mu.Unlock()
		return
	}
	r.refreshSeen = signal
	r.mu.Unlock()
	r.Refresh(ctx)
}

// Delete confirms, issues the delete, and on success removes the document
// locally before any re-fetch. On a backend-reported failure the listing is
// left exactly as it was and the failure is raised as a blocking alert.
// Only one delete per document may be in flight at a time.
func (r *Registry) Delete(ctx context.Context, fileID string) bool {
	r.mu.Lock()
	if r.phase != PhaseReady {
		r.mu.Unlock()
		return false
	}
	if r.deletingID == fileID {
		r.mu.Unlock()
		return false
	}
	var fileName string
	found := false
	for _, doc := range r.documents {
		if doc.FileID == fileID {
			fileName = doc.FileName
			found = true
			break
		}
	}
	r.mu.Unlock()

	if !found {
		r.alerter.Alert(fmt.Sprintf("No document with id %q in the current listing.", fileID))
		return false
	}

	if !r.prompter.Confirm(fmt.Sprintf("Are you sure you want to delete %q? This action cannot be undone.", fileName)) {
		return false
	}

	r.mu.Lock()
	r.deletingID = fileID
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		if r.deletingID == fileID {
			r.deletingID = ""
		}
		r.mu.Unlock()
	}()

	result := r.backend.DeleteDocument(ctx, fileID)
	if !result.Success {
		r.alerter.Alert("Failed to delete document: " + result.ErrorText())
		return false
	}

	r.mu.Lock()
	kept := r.documents[:0:0]
	for _, doc := range r.documents {
		if doc.FileID != fileID {
			kept = append(kept, doc)
		}
	}
	r.documents = kept
	// Invalidate any fetch still in flight so a listing snapshotted before
	// the delete cannot bring the row back.
	r.fetchSeq++
	r.mu.Unlock()

	if r.onDeleteSuccess != nil {
		r.onDeleteSuccess()
	}
	return true
}
