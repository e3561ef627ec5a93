// Package extract converts uploaded documents into plain text.
// Extraction either yields usable text or a typed failure; callers never
// receive an empty string silently.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrExtractionFailed is the generic extraction failure all PDF-side
	// failures wrap.
	ErrExtractionFailed = errors.New("could not extract text from file")
	// ErrLowTextContent means the PDF decoded but held almost no selectable
	// text, likely a scanned image.
	ErrLowTextContent = fmt.Errorf("%w: the PDF has very little or no selectable text, it might be a scanned image", ErrExtractionFailed)
	// ErrPasswordProtected means the PDF requires a password we do not have
	ErrPasswordProtected = fmt.Errorf("%w: file is password protected", ErrExtractionFailed)
	// ErrMissingOrInvalidFile means the content is not a readable PDF at all
	ErrMissingOrInvalidFile = fmt.Errorf("%w: file is missing or invalid", ErrExtractionFailed)
	// ErrUnsupportedFormat rejects word-processor documents outright
	ErrUnsupportedFormat = errors.New("word documents (.doc, .docx) are not supported, save as PDF or plain text")
	// ErrUnreadableFile means the content could not be decoded as text
	ErrUnreadableFile = errors.New("unsupported file type and failed to read as text")
)

// minTextLength is the floor below which PDF text counts as unusable.
const minTextLength = 20

var whitespaceRun = regexp.MustCompile(`\s+`)

// Extract turns a file's raw content into plain text, dispatching on the
// declared content type and filename.
func Extract(filename, contentType string, data []byte) (string, error) {
	name := strings.ToLower(filename)

	switch {
	case contentType == "text/plain" || strings.HasSuffix(name, ".txt"):
		return fromText(data)

	case contentType == "application/pdf" || strings.HasSuffix(name, ".pdf"):
		return fromPDF(data)

	case strings.Contains(contentType, "wordprocessingml") ||
		contentType == "application/msword" ||
		strings.HasSuffix(name, ".doc") || strings.HasSuffix(name, ".docx"):
		return "", ErrUnsupportedFormat

	default:
		// Best effort: treat anything else as text
		return fromText(data)
	}
}

func fromText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrUnreadableFile
	}
	text := strings.TrimSpace(string(data))
	if text == "" || !hasPrintable(text) {
		return "", ErrUnreadableFile
	}
	return string(data), nil
}

func hasPrintable(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func fromPDF(data []byte) (text string, err error) {
	// The pdf package panics on some malformed documents
	defer func() {
		if r := recover(); r != nil {
			text, err = "", ErrMissingOrInvalidFile
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		if retryable(err) {
			// One retry through the lenient path before surfacing.
			reader, err = pdf.NewReaderEncrypted(bytes.NewReader(data), int64(len(data)), func() string { return "" })
		}
		if err != nil {
			return "", classifyPDFError(err)
		}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A broken page should not lose the rest of the document
			continue
		}
		sb.WriteString(whitespaceRun.ReplaceAllString(strings.TrimSpace(text), " "))
		sb.WriteString("\n")
	}

	return finishPDFText(sb.String())
}

// finishPDFText validates decoded PDF text against the usability floor.
func finishPDFText(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if len(text) < minTextLength {
		return "", ErrLowTextContent
	}
	return text, nil
}

// retryable reports whether the primary decoding failure is worth one
// attempt through the alternate reader configuration.
func retryable(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "malformed") || strings.Contains(msg, "invalid") ||
		strings.Contains(msg, "unsupported")
}

// classifyPDFError maps decoder failures onto the extraction taxonomy.
func classifyPDFError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "password") || strings.Contains(msg, "encrypted"):
		return ErrPasswordProtected
	case strings.Contains(msg, "not a pdf") || strings.Contains(msg, "malformed") ||
		strings.Contains(msg, "eof") || strings.Contains(msg, "trailer"):
		return ErrMissingOrInvalidFile
	default:
		return fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
}
