package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/core/domain"
	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/ui"
)

func (a *App) uploadFile(ctx context.Context, path string) {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot read %s: %v\n", path, err)
		return
	}
	if info.IsDir() {
		fmt.Fprintf(a.out, "%s is a directory.\n", path)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot open %s: %v\n", path, err)
		return
	}
	defer f.Close()

	a.uploader.Upload(ctx, domain.UploadFile{
		Name:     filepath.Base(path),
		MIMEType: resolveMIMEType(path),
		Size:     info.Size(),
		Content:  f,
	})
	a.renderUploadStatus()
}

func (a *App) renderUploadStatus() {
	status := a.uploader.Status()
	switch status.Kind {
	case ui.StatusSuccess:
		fmt.Fprintf(a.out, "✅ %s\n", status.Text)
	case ui.StatusError:
		fmt.Fprintf(a.out, "❌ %s\n", status.Text)
	case ui.StatusInfo:
		fmt.Fprintln(a.out, status.Text)
	}
}

// resolveMIMEType stands in for the browser-declared type: the extension
// decides for the supported formats, anything else falls through to the
// platform MIME table.
func resolveMIMEType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		if i := strings.Index(t, ";"); i >= 0 {
			t = t[:i]
		}
		return t
	}
	return "application/octet-stream"
}
