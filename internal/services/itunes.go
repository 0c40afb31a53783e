// iTunes Search API implementation of [Catalog]
//
// Response shapes based on https://performance-partners.apple.com/search-api
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Sachou914/iTunesSekker/internal/models"
	"github.com/Sachou914/iTunesSekker/internal/shared"
	"golang.org/x/time/rate"
)

const defaultCatalogBaseURL = "https://itunes.apple.com"

// searchResponse is the envelope of every search/lookup response.
type searchResponse struct {
	ResultCount int                    `json:"resultCount"`
	Results     []models.CatalogRecord `json:"results"`
}

// CatalogService implements [Catalog] against the iTunes Search API.
//
// The API is unauthenticated but throttled server-side, so every request
// waits on a [rate.Limiter] first. Failures surface immediately; there is no
// retry policy.
type CatalogService struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ Catalog = (*CatalogService)(nil)

// NewCatalogService creates a catalog client.
//
// baseURL defaults to the public iTunes host, client to [http.DefaultClient]
// and requestsPerSec to 3 when non-positive.
func NewCatalogService(baseURL string, client *http.Client, requestsPerSec float64) *CatalogService {
	if baseURL == "" {
		baseURL = defaultCatalogBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	if requestsPerSec <= 0 {
		requestsPerSec = 3
	}

	return &CatalogService{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSec), 1),
	}
}

// doRequest performs a GET against the catalog API and decodes the result envelope.
func (c *CatalogService) doRequest(ctx context.Context, path string, params url.Values) ([]models.CatalogRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrNetwork, err)
	}

	apiURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("%w: catalog API status %d", shared.ErrServiceUnavailable, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: catalog API status %d", shared.ErrNetwork, resp.StatusCode)
	}

	var envelope searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrParse, err)
	}
	if envelope.Results == nil {
		return nil, fmt.Errorf("%w: response has no results array", shared.ErrParse)
	}

	return envelope.Results, nil
}

// Search queries /search for records matching term.
//
// The raw results array is returned as-is; callers disambiguate songs,
// albums and artists via the wrapperType/kind discriminators.
func (c *CatalogService) Search(ctx context.Context, term string, entity models.EntityType, limit int) ([]models.CatalogRecord, error) {
	params := url.Values{
		"term":   {term},
		"entity": {string(entity)},
		"limit":  {strconv.Itoa(limit)},
	}

	return c.doRequest(ctx, "/search", params)
}

// LookupAlbumTracks queries /lookup for the songs of an album.
//
// The response interleaves the collection record with its tracks; only
// wrapperType "track" entries are kept, in API order.
func (c *CatalogService) LookupAlbumTracks(ctx context.Context, collectionID int64) ([]models.Track, error) {
	params := url.Values{
		"id":     {strconv.FormatInt(collectionID, 10)},
		"entity": {string(models.EntitySong)},
	}

	records, err := c.doRequest(ctx, "/lookup", params)
	if err != nil {
		return nil, err
	}

	return filterTracks(records), nil
}

// LookupArtistTopTracks queries /lookup for an artist's popular songs.
func (c *CatalogService) LookupArtistTopTracks(ctx context.Context, artistID int64, limit int) ([]models.Track, error) {
	params := url.Values{
		"id":     {strconv.FormatInt(artistID, 10)},
		"entity": {string(models.EntitySong)},
		"limit":  {strconv.Itoa(limit)},
	}

	records, err := c.doRequest(ctx, "/lookup", params)
	if err != nil {
		return nil, err
	}

	return filterTracks(records), nil
}

// LookupTrack queries /lookup for a single song by id.
func (c *CatalogService) LookupTrack(ctx context.Context, trackID int64) (*models.Track, error) {
	params := url.Values{
		"id": {strconv.FormatInt(trackID, 10)},
	}

	records, err := c.doRequest(ctx, "/lookup", params)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if record.IsTrack() && record.TrackID == trackID {
			track := record.Track()
			return &track, nil
		}
	}

	return nil, fmt.Errorf("%w: id %d", shared.ErrTrackNotFound, trackID)
}

// filterTracks keeps song records, preserving API order.
func filterTracks(records []models.CatalogRecord) []models.Track {
	tracks := []models.Track{}
	for _, record := range records {
		if record.IsTrack() {
			tracks = append(tracks, record.Track())
		}
	}
	return tracks
}
