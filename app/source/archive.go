package source

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// extractSingleEntry inflates the only file of a ZIP archive held in memory
func extractSingleEntry(data []byte) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompress, err)
	}

	var files []*zip.File
	for _, file := range reader.File {
		if !file.FileInfo().IsDir() {
			files = append(files, file)
		}
	}

	if len(files) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one file in archive, found %d", ErrDecompress, len(files))
	}

	rc, err := files[0].Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompress, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecompress, files[0].Name, err)
	}

	return content, nil
}

// decodeText decodes UTF-8 input, dropping a leading byte order mark
func decodeText(data []byte) ([]byte, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())

	text, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode UTF-8 text: %w", err)
	}
	return text, nil
}
