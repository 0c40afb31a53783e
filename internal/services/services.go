// package services defines clients for the remote HTTP APIs
//
// iTunes catalog (search/lookup), lyrics.ovh (lyrics)
package services

import (
	"context"

	"github.com/Sachou914/iTunesSekker/internal/models"
)

// Catalog defines the operations the application needs from the music catalog API.
type Catalog interface {
	// Search queries the catalog for songs, albums or artists matching term.
	Search(ctx context.Context, term string, entity models.EntityType, limit int) ([]models.CatalogRecord, error)

	// LookupAlbumTracks returns the songs of an album, in API order.
	LookupAlbumTracks(ctx context.Context, collectionID int64) ([]models.Track, error)

	// LookupArtistTopTracks returns up to limit popular songs for an artist.
	LookupArtistTopTracks(ctx context.Context, artistID int64, limit int) ([]models.Track, error)

	// LookupTrack returns a single song by id.
	LookupTrack(ctx context.Context, trackID int64) (*models.Track, error)
}

// Lyrics defines best-effort lyrics retrieval for an (artist, track) pair.
type Lyrics interface {
	// Fetch returns the lyrics text and true, or ("", false) when lyrics are
	// unavailable for any reason. It never fails.
	Fetch(ctx context.Context, artistName, trackName string) (string, bool)
}
