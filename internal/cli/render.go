package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/core/domain"
	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/ui"
)

func (a *App) renderRegistry() {
	switch a.registry.Phase() {
	case ui.PhaseLoading:
		fmt.Fprintln(a.out, "Loading documents...")
		return
	case ui.PhaseError:
		fmt.Fprintf(a.out, "Error loading documents: %s\n", a.registry.Err())
		fmt.Fprintln(a.out, "Run 'refresh' to try again.")
		return
	}

	docs := a.registry.Documents()
	if len(docs) == 0 {
		fmt.Fprintln(a.out, "No documents uploaded. Upload your first document to get started.")
		return
	}

	totalChunks, totalVectors := 0, 0
	for _, doc := range docs {
		a.renderDocument(doc)
		totalChunks += doc.ChunksCreated
		totalVectors += doc.VectorCount
	}
	plural := ""
	if len(docs) != 1 {
		plural = "s"
	}
	fmt.Fprintf(a.out, "%d document%s uploaded • %d total chunks • %d vectors\n",
		len(docs), plural, totalChunks, totalVectors)
}

func (a *App) renderDocument(doc domain.Document) {
	fmt.Fprintf(a.out, "%-24s  %s\n", doc.FileID, doc.FileName)
	fmt.Fprintf(a.out, "    %s • %s • %d chunks\n",
		formatTimestamp(doc.UploadTime),
		humanize.IBytes(uint64(doc.FileSize)),
		doc.ChunksCreated,
	)

	status := fmt.Sprintf("    %s", doc.ProcessingStatus.Label())
	if pct := doc.ProgressPercentage(); pct > 0 {
		status += fmt.Sprintf(" (%d%%)", pct)
	}
	if !doc.LastUpdated.IsZero() {
		status += " • updated " + humanize.Time(doc.LastUpdated)
	}
	fmt.Fprintln(a.out, status)

	if doc.StatusDetails != "" {
		fmt.Fprintf(a.out, "    %s\n", doc.StatusDetails)
	}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "unknown time"
	}
	return t.Local().Format("Jan 2, 2006 3:04 PM")
}

func (a *App) renderTranscript() {
	fmt.Fprintln(a.out, "--- Chat with your Documents ---")
	for _, line := range a.chat.VisibleLines() {
		fmt.Fprintln(a.out, line)
	}
	if a.chat.InFlight() {
		fmt.Fprintln(a.out, "AI is thinking...")
	}
	if !a.chat.NearBottom() {
		fmt.Fprintln(a.out, "(scrolled up; 'scroll down' to follow new messages)")
	}
}
