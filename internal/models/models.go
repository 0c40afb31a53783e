package models

import (
	"fmt"

	"github.com/Sachou914/iTunesSekker/internal/shared"
)

// EntityType identifies the kind of catalog record a search targets.
type EntityType string

const (
	EntitySong   EntityType = "song"
	EntityAlbum  EntityType = "album"
	EntityArtist EntityType = "musicArtist"
)

// ParseEntityType converts a user-supplied string into an [EntityType].
//
// Accepts the API values plus a few friendlier aliases.
func ParseEntityType(s string) (EntityType, error) {
	switch s {
	case "song", "track", "single":
		return EntitySong, nil
	case "album":
		return EntityAlbum, nil
	case "musicArtist", "artist":
		return EntityArtist, nil
	default:
		return "", fmt.Errorf("%w: unknown entity type %q", shared.ErrInvalidArgument, s)
	}
}

// Track is the snapshot of a catalog song persisted in the local collection.
//
// Identity is TrackID. A stored Track is a copy of the record at the time it
// was saved, not a live reference into the catalog.
type Track struct {
	TrackID        int64  `json:"trackId"`
	TrackName      string `json:"trackName"`
	ArtistName     string `json:"artistName"`
	CollectionName string `json:"collectionName,omitempty"`
	ArtworkURL     string `json:"artworkUrl100,omitempty"`
	PreviewURL     string `json:"previewUrl,omitempty"`
	ReleaseDate    string `json:"releaseDate,omitempty"`
}

// Validate checks the snapshot carries its identity and display fields.
func (t Track) Validate() error {
	if t.TrackID == 0 {
		return fmt.Errorf("%w: track has no trackId", shared.ErrInvalidArgument)
	}
	if t.TrackName == "" {
		return fmt.Errorf("%w: track %d has no name", shared.ErrInvalidArgument, t.TrackID)
	}
	return nil
}

// CatalogRecord is a raw record from the catalog search/lookup endpoints.
//
// The API returns songs, albums and artists in one results array; WrapperType
// and Kind discriminate between them.
type CatalogRecord struct {
	WrapperType    string `json:"wrapperType"`
	Kind           string `json:"kind,omitempty"`
	TrackID        int64  `json:"trackId,omitempty"`
	CollectionID   int64  `json:"collectionId,omitempty"`
	ArtistID       int64  `json:"artistId,omitempty"`
	TrackName      string `json:"trackName,omitempty"`
	CollectionName string `json:"collectionName,omitempty"`
	ArtistName     string `json:"artistName,omitempty"`
	ArtworkURL     string `json:"artworkUrl100,omitempty"`
	PreviewURL     string `json:"previewUrl,omitempty"`
	ReleaseDate    string `json:"releaseDate,omitempty"`
}

// WrapperTrack is the wrapperType value the API uses for song records.
const WrapperTrack = "track"

// IsTrack reports whether the record is a song.
func (r CatalogRecord) IsTrack() bool {
	return r.WrapperType == WrapperTrack
}

// Track extracts a persistable [Track] snapshot from the record.
func (r CatalogRecord) Track() Track {
	return Track{
		TrackID:        r.TrackID,
		TrackName:      r.TrackName,
		ArtistName:     r.ArtistName,
		CollectionName: r.CollectionName,
		ArtworkURL:     r.ArtworkURL,
		PreviewURL:     r.PreviewURL,
		ReleaseDate:    r.ReleaseDate,
	}
}

// AddResult reports the outcome of adding a track to the collection.
type AddResult int

const (
	// Added means the track was appended and persisted.
	Added AddResult = iota
	// AlreadyPresent means the track id was already saved; storage is untouched.
	AlreadyPresent
)

func (a AddResult) String() string {
	if a == AlreadyPresent {
		return "already present"
	}
	return "added"
}

// Rating bounds. Absence of a rating is represented by 0, never stored.
const (
	MinRating = 1
	MaxRating = 5
)

// ValidRating reports whether r is a storable rating value.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
