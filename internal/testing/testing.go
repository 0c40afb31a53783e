// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/Sachou914/iTunesSekker/internal/models"
)

// MockCatalog is a test double for [services.Catalog]
type MockCatalog struct {
	SearchFn       func(ctx context.Context, term string, entity models.EntityType, limit int) ([]models.CatalogRecord, error)
	AlbumTracksFn  func(ctx context.Context, collectionID int64) ([]models.Track, error)
	ArtistTracksFn func(ctx context.Context, artistID int64, limit int) ([]models.Track, error)
	TrackFn        func(ctx context.Context, trackID int64) (*models.Track, error)
}

func (m *MockCatalog) Search(ctx context.Context, term string, entity models.EntityType, limit int) ([]models.CatalogRecord, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, term, entity, limit)
	}
	return []models.CatalogRecord{}, nil
}

func (m *MockCatalog) LookupAlbumTracks(ctx context.Context, collectionID int64) ([]models.Track, error) {
	if m.AlbumTracksFn != nil {
		return m.AlbumTracksFn(ctx, collectionID)
	}
	return []models.Track{}, nil
}

func (m *MockCatalog) LookupArtistTopTracks(ctx context.Context, artistID int64, limit int) ([]models.Track, error) {
	if m.ArtistTracksFn != nil {
		return m.ArtistTracksFn(ctx, artistID, limit)
	}
	return []models.Track{}, nil
}

func (m *MockCatalog) LookupTrack(ctx context.Context, trackID int64) (*models.Track, error) {
	if m.TrackFn != nil {
		return m.TrackFn(ctx, trackID)
	}
	return &models.Track{TrackID: trackID, TrackName: "mock", ArtistName: "mock"}, nil
}

// MockLyrics is a test double for [services.Lyrics]
type MockLyrics struct {
	FetchFn func(ctx context.Context, artistName, trackName string) (string, bool)
}

func (m *MockLyrics) Fetch(ctx context.Context, artistName, trackName string) (string, bool) {
	if m.FetchFn != nil {
		return m.FetchFn(ctx, artistName, trackName)
	}
	return "", false
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}
