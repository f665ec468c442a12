package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// FileSource reads a pre-downloaded extract from local storage
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Describe() string {
	return "file " + s.path
}

func (s *FileSource) Acquire(ctx context.Context) ([]byte, error) {
	slog.Info("Reading grants extract", "source", "file", "path", s.path)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	text, err := decodeText(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	return text, nil
}
