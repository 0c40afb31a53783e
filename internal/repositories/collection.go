package repositories

import (
	"encoding/json"
	"fmt"

	"github.com/Sachou914/iTunesSekker/internal/models"
	"github.com/Sachou914/iTunesSekker/internal/shared"
)

// CollectionStore persists the user's saved-track playlist.
//
// The whole collection lives as one JSON array under [CollectionKey];
// insertion order is preserved and at most one entry exists per trackId.
// The store is stateless - every operation reads the blob fresh.
type CollectionStore struct {
	kv KV
}

// NewCollectionStore creates a CollectionStore over the given KV backend
func NewCollectionStore(kv KV) *CollectionStore {
	return &CollectionStore{kv: kv}
}

// List returns the saved tracks in insertion order.
//
// An absent key is a valid empty collection, not an error.
func (s *CollectionStore) List() ([]models.Track, error) {
	return s.load()
}

// Add appends a track snapshot to the collection.
//
// Returns [models.AlreadyPresent] and leaves storage untouched when a track
// with the same id is already saved.
func (s *CollectionStore) Add(track models.Track) (models.AddResult, error) {
	if err := track.Validate(); err != nil {
		return models.Added, err
	}

	tracks, err := s.load()
	if err != nil {
		return models.Added, err
	}

	for _, existing := range tracks {
		if existing.TrackID == track.TrackID {
			return models.AlreadyPresent, nil
		}
	}

	tracks = append(tracks, track)
	if err := s.save(tracks); err != nil {
		return models.Added, err
	}

	return models.Added, nil
}

// Remove deletes the entry matching trackID.
//
// Removing an absent id is a no-op. Ratings for the track are left in place.
func (s *CollectionStore) Remove(trackID int64) error {
	tracks, err := s.load()
	if err != nil {
		return err
	}

	kept := tracks[:0]
	for _, track := range tracks {
		if track.TrackID != trackID {
			kept = append(kept, track)
		}
	}

	if len(kept) == len(tracks) {
		return nil
	}

	return s.save(kept)
}

// Contains reports whether a track id is saved.
func (s *CollectionStore) Contains(trackID int64) (bool, error) {
	tracks, err := s.load()
	if err != nil {
		return false, err
	}

	for _, track := range tracks {
		if track.TrackID == trackID {
			return true, nil
		}
	}

	return false, nil
}

func (s *CollectionStore) load() ([]models.Track, error) {
	data, ok, err := s.kv.Get(CollectionKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Track{}, nil
	}

	var tracks []models.Track
	if err := json.Unmarshal(data, &tracks); err != nil {
		return nil, fmt.Errorf("%w: corrupt collection blob: %v", shared.ErrStorage, err)
	}
	if tracks == nil {
		tracks = []models.Track{}
	}

	return tracks, nil
}

func (s *CollectionStore) save(tracks []models.Track) error {
	data, err := json.Marshal(tracks)
	if err != nil {
		return fmt.Errorf("%w: failed to encode collection: %v", shared.ErrStorage, err)
	}

	return s.kv.Set(CollectionKey, data)
}
