package services

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when a file's extension is neither .pdf nor
// .docx. It is never retried; the analyzer turns it into a per-file error entry.
var ErrUnsupportedFormat = errors.New("unsupported file format, please upload PDF or DOCX")

// ExtractionError wraps a parser failure on a supported file format.
type ExtractionError struct {
	Filename string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("error reading %s: %v", e.Filename, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ExternalModelError wraps an embedding or LLM provider failure, including
// per-call timeouts. Not retryable at this layer.
type ExternalModelError struct {
	Op  string
	Err error
}

func (e *ExternalModelError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *ExternalModelError) Unwrap() error {
	return e.Err
}
