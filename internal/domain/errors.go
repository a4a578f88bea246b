package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport marks every remote exchange that did not complete
	// successfully, whether the connection failed or the service answered
	// with a non-success status.
	ErrTransport = errors.New("transport error")

	ErrNoStagedFile    = errors.New("no file staged for upload")
	ErrUploadPending   = errors.New("upload already in progress")
	ErrNoDocument      = errors.New("no active document")
	ErrAnalysisPending = errors.New("analysis already in progress")
	ErrEmptyQuestion   = errors.New("question is empty")
	ErrInvalidDocument = errors.New("invalid document")
)

// TransportError wraps err as an ErrTransport raised by operation.
func TransportError(operation string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrTransport) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", operation, ErrTransport, err)
}

func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}
