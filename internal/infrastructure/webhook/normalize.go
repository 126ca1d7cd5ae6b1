package webhook

import (
	"time"

	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/core/domain"
)

// documentRecord is the snake_case shape the document-status webhook emits.
type documentRecord struct {
	ID               int64  `json:"id"`
	FileID           string `json:"file_id"`
	FileName         string `json:"file_name"`
	FileType         string `json:"file_type"`
	FileSize         int64  `json:"file_size"`
	FilePath         string `json:"file_path"`
	UploadTime       string `json:"upload_time"`
	UpdatedAt        string `json:"updated_at"`
	ProcessingStatus string `json:"processing_status"`
	ErrorMessage     string `json:"error_message"`
	ChunksCreated    int    `json:"chunks_created"`
	VectorCount      int    `json:"vector_count"`
}

func (r documentRecord) toDomain() domain.Document {
	return domain.Document{
		ID:               r.ID,
		FileID:           r.FileID,
		FileName:         r.FileName,
		FileType:         r.FileType,
		FileSize:         clampNonNegative64(r.FileSize),
		FilePath:         r.FilePath,
		UploadTime:       parseBackendTime(r.UploadTime),
		LastUpdated:      parseBackendTime(r.UpdatedAt),
		ProcessingStatus: domain.ParseProcessingStatus(r.ProcessingStatus),
		StatusDetails:    r.ErrorMessage,
		ChunksCreated:    clampNonNegative(r.ChunksCreated),
		VectorCount:      clampNonNegative(r.VectorCount),
	}
}

// backendTimeLayouts covers the timestamp formats n8n has been observed to
// emit. An unparseable value becomes the zero time and renders as unknown.
var backendTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

func parseBackendTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range backendTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func clampNonNegative64(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
