// Package dataset implements the load pipeline: fetching the two JSON
// payloads, normalizing them into an immutable snapshot, and replacing the
// current snapshot wholesale on each successful load.
package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Source fetches one raw JSON payload.
type Source interface {
	// Fetch returns the payload bytes, or an error when the payload is
	// unavailable. Availability is a hard precondition: callers treat any
	// error as a whole-load failure.
	Fetch(ctx context.Context) ([]byte, error)
	// Location describes the source for logs and errors.
	Location() string
}

// NewSource selects a source implementation by path scheme: http(s) URLs
// are fetched over the network, anything else is read from the local
// file system.
func NewSource(path string) Source {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return &httpSource{url: path, client: &http.Client{Timeout: 30 * time.Second}}
	}
	return &fileSource{path: path}
}

type fileSource struct {
	path string
}

func (s *fileSource) Fetch(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", s.path, err)
	}
	return data, nil
}

func (s *fileSource) Location() string { return s.path }

type httpSource struct {
	url    string
	client *http.Client
}

func (s *httpSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("dataset: build request %s: %w", s.url, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dataset: fetch %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("dataset: fetch %s: status %d", s.url, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("dataset: read body %s: %w", s.url, err)
	}
	return data, nil
}

func (s *httpSource) Location() string { return s.url }
