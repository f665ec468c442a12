package database

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/lysyi3m/grants-import/app/grants"
)

// maxErrorBody bounds how much of a rejected response is read for the message
const maxErrorBody = 64 << 10

// RESTGrantRepository inserts grants through a Supabase (PostgREST) endpoint
type RESTGrantRepository struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	userAgent  string
}

// NewRESTGrantRepository creates a repository for the project at baseURL
func NewRESTGrantRepository(baseURL, apiKey string, httpClient *http.Client, userAgent string) *RESTGrantRepository {
	return &RESTGrantRepository{
		endpoint:   strings.TrimRight(baseURL, "/") + "/rest/v1/" + TableName,
		apiKey:     apiKey,
		httpClient: httpClient,
		userAgent:  userAgent,
	}
}

// restError is the error body returned by PostgREST
type restError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// InsertGrant posts a single grant row
func (r *RESTGrantRepository) InsertGrant(ctx context.Context, grant grants.Grant) error {
	body, err := json.Marshal(grant)
	if err != nil {
		return fmt.Errorf("failed to encode grant: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", r.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("apikey", r.apiKey)
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to insert grant: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("insert rejected: HTTP %d: %s", resp.StatusCode, r.errorMessage(resp.Body))
	}

	io.Copy(io.Discard, resp.Body)
	return nil
}

func (r *RESTGrantRepository) errorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil {
		return fmt.Sprintf("failed to read error body: %v", err)
	}

	var restErr restError
	if err := json.Unmarshal(data, &restErr); err == nil && restErr.Message != "" {
		return restErr.Message
	}

	return strings.TrimSpace(string(data))
}

// Close releases idle connections held by the HTTP client
func (r *RESTGrantRepository) Close() error {
	r.httpClient.CloseIdleConnections()
	return nil
}
