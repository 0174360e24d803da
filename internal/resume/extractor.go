// Package resume extracts plain text from a résumé PDF for prompt seeding.
package resume

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

const (
	// pdftotextBin is the poppler-utils binary used for extraction.
	pdftotextBin = "pdftotext"

	// DefaultTimeout is the maximum time to wait for text extraction.
	DefaultTimeout = 30 * time.Second
)

// Extractor pulls plain text out of a résumé PDF via pdftotext.
type Extractor struct {
	runner  Runner
	timeout time.Duration
}

// New returns an Extractor backed by the real pdftotext binary.
func New(timeout time.Duration) *Extractor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Extractor{
		runner:  execRunner{},
		timeout: timeout,
	}
}

// newWithRunner is the test seam for stubbing the external command.
func newWithRunner(r Runner, timeout time.Duration) *Extractor {
	e := New(timeout)
	e.runner = r
	return e
}

// Text extracts and normalizes the text content of the PDF at path.
// Layout mode keeps column text in reading order, which matters for
// two-column résumés.
func (e *Extractor) Text(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", &ExtractionError{
			Message: fmt.Sprintf("resume file not readable: %s", path),
			Cause:   err,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	log.Printf("[RESUME] extracting text from %s", path)

	stdout, stderr, err := e.runner.Run(ctx, pdftotextBin, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		msg := strings.TrimSpace(string(stderr))
		if msg == "" {
			msg = "is pdftotext (poppler-utils) installed?"
		}
		return "", &ExtractionError{
			Message: fmt.Sprintf("pdftotext failed: %s", msg),
			Cause:   err,
		}
	}

	text := CleanText(string(stdout))
	if text == "" {
		return "", &ExtractionError{Message: fmt.Sprintf("no text extracted from %s", path)}
	}

	log.Printf("[RESUME] extracted %d chars", len(text))
	return text, nil
}
