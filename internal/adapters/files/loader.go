package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
	"github.com/shloksachdev/PaperLens/internal/domain"
)

const (
	MimePDF = "application/pdf"

	// DefaultMaxBytes matches what the document service is willing to parse.
	DefaultMaxBytes int64 = 50 << 20
)

var ErrUnsupportedType = errors.New("unsupported document type")

// Loader reads documents from disk and stages them for upload. The content
// type is sniffed from the bytes, never taken from the file extension.
type Loader struct {
	AllowedTypes []string
	MaxBytes     int64
}

func NewLoader() Loader {
	return Loader{AllowedTypes: []string{MimePDF}, MaxBytes: DefaultMaxBytes}
}

func (l Loader) Load(path string) (domain.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("stat document: %w", err)
	}
	if info.IsDir() {
		return domain.Document{}, fmt.Errorf("%w: %s is a directory", domain.ErrInvalidDocument, path)
	}
	if l.MaxBytes > 0 && info.Size() > l.MaxBytes {
		return domain.Document{}, fmt.Errorf("%w: %s is %d bytes, limit is %d", domain.ErrInvalidDocument, path, info.Size(), l.MaxBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("read document: %w", err)
	}

	detected := mimetype.Detect(data)
	if len(l.AllowedTypes) > 0 && !lo.ContainsBy(l.AllowedTypes, detected.Is) {
		return domain.Document{}, fmt.Errorf("%w: %s is %s", ErrUnsupportedType, filepath.Base(path), detected.String())
	}

	doc := domain.Document{
		Name:     filepath.Base(path),
		Data:     data,
		MimeType: detected.String(),
	}
	if err := doc.Validate(); err != nil {
		return domain.Document{}, err
	}

	return doc, nil
}
