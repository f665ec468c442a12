package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/lysyi3m/grants-import/app/config"
)

// RemoteSource downloads the day's zipped extract over HTTPS
type RemoteSource struct {
	settings   config.SourceSettings
	httpClient *http.Client
	userAgent  string
	now        func() time.Time
}

func NewRemoteSource(settings config.SourceSettings, httpClient *http.Client, userAgent string) *RemoteSource {
	return &RemoteSource{
		settings:   settings,
		httpClient: httpClient,
		userAgent:  userAgent,
		now:        time.Now,
	}
}

func (s *RemoteSource) Describe() string {
	return "remote " + s.URL()
}

// URL returns today's expected extract location
func (s *RemoteSource) URL() string {
	return s.settings.ResolveURL(s.now())
}

func (s *RemoteSource) Acquire(ctx context.Context) ([]byte, error) {
	url := s.URL()
	slog.Info("Downloading grants extract", "source", "remote", "url", url)

	archive, err := s.fetchArchive(ctx, url)
	if err != nil {
		return nil, err
	}

	slog.Debug("Downloaded grants archive", "url", url, "bytes", len(archive))

	content, err := extractSingleEntry(archive)
	if err != nil {
		return nil, err
	}

	text, err := decodeText(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompress, err)
	}

	slog.Debug("Decompressed grants extract", "bytes", len(text))
	return text, nil
}

func (s *RemoteSource) fetchArchive(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	return data, nil
}
