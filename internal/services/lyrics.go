// lyrics.ovh implementation of [Lyrics]
package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/charmbracelet/log"
)

const defaultLyricsBaseURL = "https://api.lyrics.ovh"

// LyricsService implements [Lyrics] against the lyrics.ovh API.
//
// Lyrics are a best-effort enrichment: every failure mode collapses into an
// "unavailable" result so callers never need an error branch.
type LyricsService struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

var _ Lyrics = (*LyricsService)(nil)

// NewLyricsService creates a lyrics client.
//
// baseURL defaults to the public lyrics.ovh host and client to
// [http.DefaultClient]. logger may be nil to discard diagnostics.
func NewLyricsService(baseURL string, client *http.Client, logger *log.Logger) *LyricsService {
	if baseURL == "" {
		baseURL = defaultLyricsBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &LyricsService{
		baseURL:    baseURL,
		httpClient: client,
		logger:     logger,
	}
}

// Fetch retrieves lyrics for an (artist, track) pair.
//
// Calls GET /v1/<artist>/<track>. Transport errors, non-2xx statuses, bad
// JSON and a missing lyrics field all return ("", false).
func (l *LyricsService) Fetch(ctx context.Context, artistName, trackName string) (string, bool) {
	apiURL := l.baseURL + "/v1/" + url.PathEscape(artistName) + "/" + url.PathEscape(trackName)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		l.debug("failed to create lyrics request", "error", err)
		return "", false
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		l.debug("lyrics request failed", "error", err)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		l.debug("lyrics unavailable", "status", resp.StatusCode, "artist", artistName, "track", trackName)
		return "", false
	}

	var body struct {
		Lyrics string `json:"lyrics"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		l.debug("failed to decode lyrics response", "error", err)
		return "", false
	}

	if body.Lyrics == "" {
		return "", false
	}

	return body.Lyrics, true
}

func (l *LyricsService) debug(msg string, kv ...any) {
	if l.logger != nil {
		l.logger.Debug(msg, kv...)
	}
}
