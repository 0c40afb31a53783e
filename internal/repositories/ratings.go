package repositories

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Sachou914/iTunesSekker/internal/models"
	"github.com/Sachou914/iTunesSekker/internal/shared"
)

// RatingStore persists per-track ratings.
//
// The whole map lives as one JSON object under [RatingsKey] with stringified
// track ids as keys. A missing entry means unrated; 0 is never stored.
type RatingStore struct {
	kv KV
}

// NewRatingStore creates a RatingStore over the given KV backend
func NewRatingStore(kv KV) *RatingStore {
	return &RatingStore{kv: kv}
}

// Get returns the rating for trackID, or 0 when unrated.
func (s *RatingStore) Get(trackID int64) (int, error) {
	ratings, err := s.load()
	if err != nil {
		return 0, err
	}

	return ratings[trackID], nil
}

// Set stores a rating for trackID, overwriting any previous value.
//
// Values outside 1..5 are rejected before anything touches storage.
func (s *RatingStore) Set(trackID int64, rating int) error {
	if !models.ValidRating(rating) {
		return fmt.Errorf("%w: rating %d outside %d..%d", shared.ErrInvalidArgument, rating, models.MinRating, models.MaxRating)
	}

	ratings, err := s.load()
	if err != nil {
		return err
	}

	ratings[trackID] = rating
	return s.save(ratings)
}

// All returns every stored rating keyed by track id.
func (s *RatingStore) All() (map[int64]int, error) {
	return s.load()
}

func (s *RatingStore) load() (map[int64]int, error) {
	data, ok, err := s.kv.Get(RatingsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return map[int64]int{}, nil
	}

	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: corrupt ratings blob: %v", shared.ErrStorage, err)
	}

	ratings := make(map[int64]int, len(raw))
	for key, value := range raw {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: corrupt ratings key %q: %v", shared.ErrStorage, key, err)
		}
		ratings[id] = value
	}

	return ratings, nil
}

func (s *RatingStore) save(ratings map[int64]int) error {
	raw := make(map[string]int, len(ratings))
	for id, value := range ratings {
		raw[strconv.FormatInt(id, 10)] = value
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: failed to encode ratings: %v", shared.ErrStorage, err)
	}

	return s.kv.Set(RatingsKey, data)
}
