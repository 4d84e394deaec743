package extractor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"papertrail-ai/internal/pkg/logger"
)

var ErrUnsupportedFile = errors.New("unsupported file type")

// AcceptedExtensions lists the upload types the extractor understands, lower-case with dot.
var AcceptedExtensions = []string{".pdf", ".png", ".jpg", ".jpeg"}

type File struct {
	Name string
	Data []byte
}

type FileError struct {
	Name string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("Error reading %s: %v", e.Name, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

type Result struct {
	Text     string
	Failures []*FileError
}

func (r Result) Empty() bool {
	return r.Text == ""
}

// PageReader returns the plain text of each page of a paged document, in page order.
type PageReader interface {
	PageTexts(data []byte) ([]string, error)
}

// Recognizer runs optical character recognition over an encoded image.
type Recognizer interface {
	Recognize(data []byte) (string, error)
}

type Extractor struct {
	pages  PageReader
	ocr    Recognizer
	logger logger.ILogger
}

func New(pages PageReader, ocr Recognizer, logger logger.ILogger) *Extractor {
	return &Extractor{
		pages:  pages,
		ocr:    ocr,
		logger: logger,
	}
}

func IsAccepted(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, accepted := range AcceptedExtensions {
		if ext == accepted {
			return true
		}
	}
	return false
}

// Extract pulls text out of every file. A file that fails is recorded and skipped;
// the rest of the batch is still processed.
func (e *Extractor) Extract(ctx context.Context, files []File) Result {
	texts := make([]string, 0, len(files))
	var failures []*FileError

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			failures = append(failures, &FileError{Name: f.Name, Err: err})
			continue
		}

		text, err := e.extractOne(f)
		if err != nil {
			fileErr := &FileError{Name: f.Name, Err: err}
			failures = append(failures, fileErr)
			e.logger.Warn("EXTRACT", "File extraction failed", map[string]interface{}{
				"file":  f.Name,
				"error": err.Error(),
			})
			continue
		}
		texts = append(texts, text)
	}

	combined := strings.TrimSpace(strings.Join(texts, "\n"))
	e.logger.Info("EXTRACT", "Extraction finished", map[string]interface{}{
		"files":    len(files),
		"failures": len(failures),
		"chars":    len(combined),
	})

	return Result{Text: combined, Failures: failures}
}

func (e *Extractor) extractOne(f File) (string, error) {
	ext := strings.ToLower(filepath.Ext(f.Name))
	switch ext {
	case ".pdf":
		pages, err := e.pages.PageTexts(f.Data)
		if err != nil {
			return "", err
		}
		return strings.Join(pages, ""), nil
	case ".png", ".jpg", ".jpeg":
		if err := validateImage(f.Data); err != nil {
			return "", err
		}
		return e.ocr.Recognize(f.Data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFile, ext)
	}
}
