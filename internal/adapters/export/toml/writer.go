package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/shloksachdev/PaperLens/internal/ports"
)

const (
	transcriptFileMode = 0o600
	transcriptDirMode  = 0o700
	tempFilePattern    = ".transcript-*.toml.tmp"
)

// Writer exports session transcripts as TOML. A file is replaced atomically
// so a reader never sees a partial transcript. Writes through one Writer are
// serialized.
type Writer struct {
	Now func() time.Time

	mu sync.Mutex
}

var _ ports.TranscriptWriter = (*Writer)(nil)

func NewWriter() *Writer {
	return &Writer{Now: time.Now}
}

func (w *Writer) Write(ctx context.Context, path string, transcript ports.Transcript) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if path == "" {
		return errors.New("transcript path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve transcript path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now
	if w.Now != nil {
		now = w.Now
	}

	data, err := toml.Marshal(toSchema(transcript, now()))
	if err != nil {
		return fmt.Errorf("encode transcript: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return writeAtomic(absPath, data)
}

func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), transcriptDirMode); err != nil {
		return fmt.Errorf("create transcript directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp transcript file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp transcript file: %w", err)
	}

	if err := tempFile.Chmod(transcriptFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp transcript file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp transcript file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace transcript file: %w", err)
	}

	cleanup = false
	return nil
}
