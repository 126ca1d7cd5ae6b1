package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/core/domain"
	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/observability/metrics"
)

const (
	uploadPath = "/upload-document"
	statusPath = "/document-status"
	deletePath = "/delete-document"
	chatPath   = "/chat"

	// n8n reads the uploaded binary via $binary.data, so the multipart
	// field name must stay "data".
	uploadFieldName = "data"

	serviceName = "assistant-cli"
)

// Client speaks the n8n webhook wire vocabulary. Every method performs one
// network round-trip and resolves to an envelope; transport failures and
// non-2xx statuses are converted, never raised.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *metrics.BackendMetrics
}

func New(baseURL string, timeout time.Duration, logger *slog.Logger, m *metrics.BackendMetrics) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		metrics:    m,
	}
}

// Upload posts the file as multipart form data. The caller has already
// validated type and size. The backend's envelope is returned unchanged;
// ingestion itself runs on the backend's own schedule.
func (c *Client) Upload(ctx context.Context, file domain.UploadFile) domain.Result {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, uploadFieldName, file.Name))
		header.Set("Content-Type", file.MIMEType)

		part, err := writer.CreatePart(header)
		if err == nil {
			_, err = io.Copy(part, file.Content)
		}
		if err == nil {
			err = writer.Close()
		}
		pw.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+uploadPath, pr)
	if err != nil {
		return domain.Failure(fmt.Errorf("create upload request: %w", err))
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	body, err := c.roundTrip(req, "upload")
	if err != nil {
		return domain.Failure(err)
	}

	var result domain.Result
	if err := json.Unmarshal(body, &result); err != nil {
		return domain.Failure(fmt.Errorf("decode upload response: %w", err))
	}
	return result
}

// ListDocuments fetches the full backend snapshot and normalizes each
// snake_case record. A non-array body is treated as an empty listing, never
// as an error; only a transport failure yields Success=false. Documents is
// never nil either way.
func (c *Client) ListDocuments(ctx context.Context) domain.DocumentList {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+statusPath, nil)
	if err != nil {
		return domain.DocumentList{Error: err.Error(), Documents: []domain.Document{}}
	}

	body, err := c.roundTrip(req, "list")
	if err != nil {
		return domain.DocumentList{Error: err.Error(), Documents: []domain.Document{}}
	}

	var records []documentRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return domain.DocumentList{Success: true, Documents: []domain.Document{}}
	}

	docs := make([]domain.Document, 0, len(records))
	for _, rec := range records {
		docs = append(docs, rec.toDomain())
	}
	return domain.DocumentList{Success: true, Documents: docs}
}

// DeleteDocument posts {file_id} and returns the backend's envelope
// unchanged.
func (c *Client) DeleteDocument(ctx context.Context, fileID string) domain.Result {
	body, err := c.postJSON(ctx, deletePath, map[string]string{"file_id": fileID}, "delete")
	if err != nil {
		return domain.Failure(err)
	}

	var result domain.Result
	if err := json.Unmarshal(body, &result); err != nil {
		return domain.Failure(fmt.Errorf("decode delete response: %w", err))
	}
	return result
}

// SendMessage posts {message}. On any failure it fabricates a reply with the
// error text and zero-valued meta, so the caller always receives a
// well-formed assistant turn.
func (c *Client) SendMessage(ctx context.Context, text string) domain.ChatReply {
	body, err := c.postJSON(ctx, chatPath, map[string]string{"message": text}, "chat")
	if err != nil {
		return domain.ChatReply{Success: false, Message: err.Error()}
	}

	var reply domain.ChatReply
	if err := json.Unmarshal(body, &reply); err != nil {
		return domain.ChatReply{Success: false, Message: fmt.Sprintf("decode chat response: %v", err)}
	}
	return reply
}
