// Package fileextract converts uploaded resume files (PDF, DOCX, plain text)
// into the raw text the analysis engine consumes.
package fileextract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MaxFileSize is the largest resume file accepted for extraction.
const MaxFileSize = 10 << 20 // 10 MB

// Supported MIME types.
const (
	MimePDF  = "application/pdf"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
)

// Error represents a failure to extract text from an uploaded file.
type Error struct {
	Filename string
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error for %s: %s: %v", e.Filename, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error for %s: %s", e.Filename, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// DetectMime maps a filename extension to a supported MIME type. Returns an
// empty string for unsupported extensions.
func DetectMime(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDocx
	case ".txt":
		return MimeText
	default:
		return ""
	}
}

// Text extracts plain text from a resume file. The MIME type selects the
// decoder; pass the result of DetectMime when only a filename is known.
func Text(filename, mime string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", &Error{Filename: filename, Message: "empty file"}
	}
	if len(data) > MaxFileSize {
		return "", &Error{Filename: filename, Message: fmt.Sprintf("file exceeds %d bytes", MaxFileSize)}
	}

	switch mime {
	case MimeText:
		return string(data), nil
	case MimePDF:
		text, err := pdfText(data)
		if err != nil {
			return "", &Error{Filename: filename, Message: "failed to read PDF", Cause: err}
		}
		return text, nil
	case MimeDocx:
		text, err := docxText(data)
		if err != nil {
			return "", &Error{Filename: filename, Message: "failed to read DOCX", Cause: err}
		}
		return text, nil
	default:
		return "", &Error{Filename: filename, Message: fmt.Sprintf("unsupported file type: %s", mime)}
	}
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

var (
	docxParagraph = regexp.MustCompile(`</w:p>`)
	docxTag       = regexp.MustCompile(`<[^>]+>`)
)

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer func() { _ = doc.Close() }()

	// GetContent returns the raw document XML. Paragraph boundaries become
	// newlines before the remaining tags are stripped.
	content := doc.Editable().GetContent()
	content = docxParagraph.ReplaceAllString(content, "\n")
	content = docxTag.ReplaceAllString(content, "")
	return strings.TrimSpace(content), nil
}
