package ingestion

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Supported document media types.
const (
	MediaTypePlain = "text/plain"
	MediaTypeHTML  = "text/html"
	MediaTypePDF   = "application/pdf"
	MediaTypeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Error reports a document extraction failure.
type Error struct {
	MediaType string
	Message   string
	Cause     error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error for %s: %s: %v", e.MediaType, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error for %s: %s", e.MediaType, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ExtractText extracts plain text from an uploaded document, cleans it, and
// substitutes the guidance message when too little usable text came out. The
// media type may carry parameters ("text/plain; charset=utf-8").
func ExtractText(mediaType string, data []byte) (string, error) {
	base := strings.TrimSpace(strings.ToLower(strings.SplitN(mediaType, ";", 2)[0]))

	var (
		text string
		err  error
	)
	switch base {
	case MediaTypePlain:
		text = string(data)
	case MediaTypeHTML:
		text, err = extractHTMLText(data)
	case MediaTypePDF:
		text, err = extractPDFText(data)
	case MediaTypeDOCX:
		text, err = extractDocxText(data)
	default:
		return "", &Error{MediaType: mediaType, Message: "unsupported document type"}
	}
	if err != nil {
		return "", err
	}

	return EnsureUsable(CleanText(text)), nil
}

// extractPDFText concatenates the plain text of every page.
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &Error{MediaType: MediaTypePDF, Message: "failed to read document", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue // skip unreadable pages, keep the rest
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// extractDocxText returns the document's editable content.
func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &Error{MediaType: MediaTypeDOCX, Message: "failed to parse document", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	return doc.Editable().GetContent(), nil
}

// extractHTMLText strips markup and noise elements and returns the body text.
func extractHTMLText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &Error{MediaType: MediaTypeHTML, Message: "failed to parse document", Cause: err}
	}

	doc.Find("nav, footer, header, script, style, noscript").Remove()
	return doc.Find("body").Text(), nil
}
