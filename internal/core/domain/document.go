package domain

import "time"

type ProcessingStatus string

const (
	StatusUploaded       ProcessingStatus = "uploaded"
	StatusProcessing     ProcessingStatus = "processing"
	StatusVectorizing    ProcessingStatus = "vectorizing"
	StatusCompleted      ProcessingStatus = "completed"
	StatusFailed         ProcessingStatus = "failed"
	StatusVectorMismatch ProcessingStatus = "vector_mismatch"
)

// ParseProcessingStatus maps a backend status string onto the closed
// enumeration. Missing or unknown values default to StatusUploaded.
func ParseProcessingStatus(raw string) ProcessingStatus {
	switch ProcessingStatus(raw) {
	case StatusProcessing, StatusVectorizing, StatusCompleted, StatusFailed, StatusVectorMismatch:
		return ProcessingStatus(raw)
	default:
		return StatusUploaded
	}
}

// Label returns the human-readable form shown in the document listing.
func (s ProcessingStatus) Label() string {
	switch s {
	case StatusUploaded:
		return "Uploaded"
	case StatusProcessing:
		return "Processing"
	case StatusVectorizing:
		return "Vectorizing"
	case StatusCompleted:
		return "Completed"
	case StatusFailed:
		return "Failed"
	case StatusVectorMismatch:
		return "Vector Mismatch"
	default:
		return string(s)
	}
}

// Document is a read-only mirror of a backend-owned record. The backend is
// authoritative for every field; the listing is always replaced wholesale,
// never merged.
type Document struct {
	ID               int64
	FileID           string
	FileName         string
	FileType         string
	FileSize         int64
	FilePath         string
	UploadTime       time.Time
	LastUpdated      time.Time
	ProcessingStatus ProcessingStatus
	StatusDetails    string
	ChunksCreated    int
	VectorCount      int
}

func (d Document) ProgressPercentage() int {
	switch d.ProcessingStatus {
	case StatusCompleted:
		return 100
	case StatusProcessing:
		return 50
	default:
		return 0
	}
}

func (d Document) IsProcessing() bool {
	return d.ProcessingStatus == StatusProcessing
}

func (d Document) IsCompleted() bool {
	return d.ProcessingStatus == StatusCompleted
}

func (d Document) HasFailed() bool {
	return d.ProcessingStatus == StatusFailed
}

// HasVectorMismatch is constant false and does not consult the
// vector_mismatch status value, matching the web client it replaces.
// See DESIGN.md before changing this.
func (d Document) HasVectorMismatch() bool {
	return false
}

// CanBeProcessed reports whether the document is still waiting for the
// backend's scheduled ingestion pass.
func (d Document) CanBeProcessed() bool {
	return d.ProcessingStatus == StatusUploaded
}
