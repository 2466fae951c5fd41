package source

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF returns the plain text of every page, one page per line block.
func extractPDF(path string) ([]byte, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", bareCause(err))
	}
	defer f.Close()

	var text strings.Builder
	totalPages := r.NumPage()

	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// keep what the other pages yield
			slog.Debug("skipping unreadable PDF page", "path", path, "page", pageNum, "error", err)
			continue
		}

		text.WriteString(pageText)
		text.WriteString("\n")
	}

	slog.Debug("extracted PDF text", "path", path, "pages", totalPages, "bytes", text.Len())
	return []byte(text.String()), nil
}
