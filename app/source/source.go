package source

import (
	"context"
	"errors"
	"fmt"
)

// Acquirer produces the raw XML text of the grants extract
type Acquirer interface {
	Acquire(ctx context.Context) ([]byte, error)
	Describe() string
}

var (
	// ErrRead is returned when a local extract cannot be read
	ErrRead = errors.New("failed to read grants extract")
	// ErrDecompress is returned when the downloaded archive is malformed or
	// does not hold exactly one file
	ErrDecompress = errors.New("failed to decompress grants extract")
)

// FetchError reports a failed download. StatusCode is 0 when no response
// was received.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
