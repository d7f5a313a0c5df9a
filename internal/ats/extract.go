package ats

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultMaxFileSize is the largest resume upload accepted.
const DefaultMaxFileSize int64 = 2 * 1024 * 1024

var (
	// ErrUnsupportedFile is returned for uploads that are not plain text.
	ErrUnsupportedFile = errors.New("unsupported file type")
	// ErrFileTooLarge is returned for uploads above the size limit.
	ErrFileTooLarge = errors.New("file too large")
	// ErrEmptyResume is returned when there is no text to score.
	ErrEmptyResume = errors.New("resume text is empty")
)

// ExtractText returns the text of an uploaded resume. Only plain text is
// read; PDF and Word documents are recognised and rejected.
func ExtractText(data []byte, maxSize int64) (string, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	if int64(len(data)) > maxSize {
		return "", fmt.Errorf("%w: %.2fMB exceeds %.2fMB limit", ErrFileTooLarge,
			float64(len(data))/1024/1024, float64(maxSize)/1024/1024)
	}
	if len(data) == 0 {
		return "", ErrEmptyResume
	}

	mt := mimetype.Detect(data)
	switch {
	case mt.Is("text/plain"):
	case mt.Is("application/pdf"),
		mt.Is("application/vnd.openxmlformats-officedocument.wordprocessingml.document"),
		mt.Is("application/msword"):
		return "", fmt.Errorf("%w: %s documents must be converted to text first", ErrUnsupportedFile, mt.Extension())
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFile, mt.String())
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: text is not valid UTF-8", ErrUnsupportedFile)
	}
	return string(data), nil
}
