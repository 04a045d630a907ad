package pdfcpu

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Name(t *testing.T) {
	assert.Equal(t, "pdfcpu", New().Name())
}

func TestExtractor_MissingFile(t *testing.T) {
	e := New()
	_, err := e.ExtractPages(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}

func TestExtractor_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0600))

	e := New()
	_, err := e.ExtractPages(context.Background(), path)
	assert.Error(t, err)
}

func TestExtractor_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := New()
	_, err := e.ExtractPages(ctx, "irrelevant.pdf")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParsePageNumber(t *testing.T) {
	tests := []struct {
		name     string
		expected int
		ok       bool
	}{
		{"page_1.txt", 1, true},
		{"page_12.txt", 12, true},
		{"Content_page_3.txt", 3, true},
		{"notes.txt", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := parsePageNumber(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, n)
		})
	}
}
