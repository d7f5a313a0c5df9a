package ats

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText(t *testing.T) {
	text, err := ExtractText([]byte(sampleResume), 0)
	require.NoError(t, err)
	assert.Equal(t, sampleResume, text)

	tests := []struct {
		name string
		data []byte
		max  int64
		want error
	}{
		{"pdf", []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n"), 0, ErrUnsupportedFile},
		{"png", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), 0, ErrUnsupportedFile},
		{"too large", bytes.Repeat([]byte("a"), 11), 10, ErrFileTooLarge},
		{"empty", nil, 0, ErrEmptyResume},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractText(tt.data, tt.max)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
