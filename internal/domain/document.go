package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DocumentHandle is the opaque identifier the remote service assigns to an
// accepted document. The zero value means no document is active.
type DocumentHandle string

func (h DocumentHandle) IsZero() bool {
	return h == ""
}

// Document is a file staged for upload.
type Document struct {
	Name     string `validate:"required"`
	Data     []byte `validate:"required,min=1"`
	MimeType string
}

func (d Document) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return nil
}

func (d Document) Size() int {
	return len(d.Data)
}
