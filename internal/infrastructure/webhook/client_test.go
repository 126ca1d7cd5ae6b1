package webhook

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/core/domain"
)

func newTestClient(baseURL string) *Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(baseURL, 5*time.Second, logger, nil)
}

func TestListDocumentsNormalizesRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/document-status" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`[
			{
				"id": 7,
				"file_id": "abc-123",
				"file_name": "contract.pdf",
				"file_type": "application/pdf",
				"file_size": 2048,
				"file_path": "/files/contract.pdf",
				"upload_time": "2025-06-01T10:00:00Z",
				"updated_at": "2025-06-01T10:05:00Z",
				"processing_status": "completed",
				"error_message": "",
				"chunks_created": 12,
				"vector_count": 12
			},
			{
				"file_id": "def-456",
				"file_name": "notes.txt"
			}
		]`))
	}))
	defer server.Close()

	list := newTestClient(server.URL).ListDocuments(context.Background())
	if !list.Success {
		t.Fatalf("ListDocuments() failed: %s", list.Error)
	}
	if len(list.Documents) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(list.Documents))
	}

	first := list.Documents[0]
	if first.FileID != "abc-123" || first.FileName != "contract.pdf" {
		t.Fatalf("unexpected first document: %+v", first)
	}
	if first.ProcessingStatus != domain.StatusCompleted {
		t.Fatalf("expected completed status, got %q", first.ProcessingStatus)
	}
	if first.ProgressPercentage() != 100 || !first.IsCompleted() {
		t.Fatalf("completed document derived fields wrong: %+v", first)
	}
	if first.UploadTime.IsZero() || first.LastUpdated.IsZero() {
		t.Fatalf("timestamps not parsed: %+v", first)
	}

	// A record with no status defaults to uploaded and stays processable.
	second := list.Documents[1]
	if second.ProcessingStatus != domain.StatusUploaded {
		t.Fatalf("expected uploaded default, got %q", second.ProcessingStatus)
	}
	if !second.CanBeProcessed() {
		t.Fatalf("expected CanBeProcessed for defaulted status")
	}
	if second.ChunksCreated != 0 || second.VectorCount != 0 {
		t.Fatalf("expected zero defaults, got %+v", second)
	}
}

func TestListDocumentsNonArrayBodyIsEmptyListing(t *testing.T) {
	bodies := []string{
		`{"success":true,"message":"no table yet"}`,
		`"unexpected"`,
		`42`,
	}
	for _, body := range bodies {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		list := newTestClient(server.URL).ListDocuments(context.Background())
		server.Close()

		if !list.Success {
			t.Fatalf("body %s: expected success, got error %q", body, list.Error)
		}
		if list.Documents == nil || len(list.Documents) != 0 {
			t.Fatalf("body %s: expected empty non-nil list, got %#v", body, list.Documents)
		}
	}
}

func TestListDocumentsTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "db unavailable", http.StatusInternalServerError)
	}))
	defer server.Close()

	list := newTestClient(server.URL).ListDocuments(context.Background())
	if list.Success {
		t.Fatalf("expected failure on 500")
	}
	if list.Documents == nil || len(list.Documents) != 0 {
		t.Fatalf("expected empty non-nil list on failure, got %#v", list.Documents)
	}
	if !strings.Contains(list.Error, "db unavailable") {
		t.Fatalf("expected response body in error, got %q", list.Error)
	}
}

func TestListDocumentsConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	list := newTestClient(server.URL).ListDocuments(context.Background())
	if list.Success {
		t.Fatalf("expected failure when the backend is unreachable")
	}
	if list.Documents == nil || len(list.Documents) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", list.Documents)
	}
}

func TestUploadPostsMultipartDataField(t *testing.T) {
	var gotField, gotFilename, gotContentType, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/upload-document" {
			http.NotFound(w, r)
			return
		}
		file, header, err := r.FormFile("data")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()
		raw, _ := io.ReadAll(file)

		gotField = "data"
		gotFilename = header.Filename
		gotContentType = header.Header.Get("Content-Type")
		gotBody = string(raw)
		_, _ = w.Write([]byte(`{"success":true,"message":"stored"}`))
	}))
	defer server.Close()

	result := newTestClient(server.URL).Upload(context.Background(), domain.UploadFile{
		Name:     "contract.pdf",
		MIMEType: "application/pdf",
		Size:     5,
		Content:  strings.NewReader("%PDF-"),
	})
	if !result.Success {
		t.Fatalf("Upload() failed: %s", result.ErrorText())
	}
	if result.Message != "stored" {
		t.Fatalf("expected backend envelope passthrough, got %+v", result)
	}
	if gotField != "data" || gotFilename != "contract.pdf" {
		t.Fatalf("unexpected multipart part: field=%q filename=%q", gotField, gotFilename)
	}
	if gotContentType != "application/pdf" {
		t.Fatalf("expected declared MIME type on the part, got %q", gotContentType)
	}
	if gotBody != "%PDF-" {
		t.Fatalf("unexpected file body %q", gotBody)
	}
}

func TestUploadNon2xxBecomesFailureEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "disk full", http.StatusInsufficientStorage)
	}))
	defer server.Close()

	result := newTestClient(server.URL).Upload(context.Background(), domain.UploadFile{
		Name:     "notes.txt",
		MIMEType: "text/plain",
		Size:     2,
		Content:  strings.NewReader("hi"),
	})
	if result.Success {
		t.Fatalf("expected failure envelope")
	}
	if !strings.Contains(result.Error, "disk full") {
		t.Fatalf("expected response body in error, got %q", result.Error)
	}
}

func TestDeleteDocumentSendsFileID(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/delete-document" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	result := newTestClient(server.URL).DeleteDocument(context.Background(), "abc-123")
	if !result.Success {
		t.Fatalf("DeleteDocument() failed: %s", result.ErrorText())
	}
	if gotBody != `{"file_id":"abc-123"}` {
		t.Fatalf("unexpected request body %q", gotBody)
	}
}

func TestDeleteDocumentBackendFailurePassesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"document is being processed"}`))
	}))
	defer server.Close()

	result := newTestClient(server.URL).DeleteDocument(context.Background(), "abc-123")
	if result.Success {
		t.Fatalf("expected logical failure to pass through")
	}
	if result.Error != "document is being processed" {
		t.Fatalf("unexpected error %q", result.Error)
	}
}

func TestSendMessagePassesThroughReply(t *testing.T) {
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat" {
			http.NotFound(w, r)
			return
		}
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		_, _ = w.Write([]byte(`{"success":true,"message":"Your contract covers...","meta":{"documentsUsed":2,"hasContext":true}}`))
	}))
	defer server.Close()

	reply := newTestClient(server.URL).SendMessage(context.Background(), "What is in my contract?")
	if gotBody != `{"message":"What is in my contract?"}` {
		t.Fatalf("unexpected request body %q", gotBody)
	}
	if !reply.Success || reply.Meta.DocumentsUsed != 2 || !reply.Meta.HasContext {
		t.Fatalf("unexpected reply %+v", reply)
	}
}

// Chat is the one call whose failure path does not use the generic envelope:
// the client fabricates a well-formed assistant reply instead.
func TestSendMessageSynthesizesReplyOnTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "workflow crashed", http.StatusBadGateway)
	}))
	defer server.Close()

	reply := newTestClient(server.URL).SendMessage(context.Background(), "hello")
	if reply.Success {
		t.Fatalf("expected fabricated failure reply")
	}
	if !strings.Contains(reply.Message, "workflow crashed") {
		t.Fatalf("expected error text in message, got %q", reply.Message)
	}
	if reply.Meta.DocumentsUsed != 0 || reply.Meta.HasContext {
		t.Fatalf("expected zero-valued meta, got %+v", reply.Meta)
	}
}

func TestSendMessageSynthesizesReplyOnBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer server.Close()

	reply := newTestClient(server.URL).SendMessage(context.Background(), "hello")
	if reply.Success {
		t.Fatalf("expected fabricated failure reply on undecodable body")
	}
	if reply.Message == "" {
		t.Fatalf("expected error text in message")
	}
}

func TestParseBackendTimeLayouts(t *testing.T) {
	cases := []string{
		"2025-06-01T10:00:00Z",
		"2025-06-01T10:00:00.123456Z",
		"2025-06-01 10:00:00",
		"2025-06-01T10:00:00",
	}
	for _, raw := range cases {
		if parseBackendTime(raw).IsZero() {
			t.Fatalf("parseBackendTime(%q) returned zero time", raw)
		}
	}
	if !parseBackendTime("not a time").IsZero() {
		t.Fatalf("expected zero time for garbage input")
	}
	if !parseBackendTime("").IsZero() {
		t.Fatalf("expected zero time for empty input")
	}
}
