package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/Sachou914/iTunesSekker/internal/models"
	"github.com/Sachou914/iTunesSekker/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func sampleTrack(id int64, name string) models.Track {
	return models.Track{
		TrackID:    id,
		TrackName:  name,
		ArtistName: "Adele",
		PreviewURL: "https://example.com/preview.m4a",
	}
}

func TestKVRepository(t *testing.T) {
	t.Run("Get on absent key", func(t *testing.T) {
		kv := NewKVRepository(setupTestDB(t))

		_, ok, err := kv.Get("missing")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if ok {
			t.Error("expected absent key to report not found")
		}
	})

	t.Run("Set then Get", func(t *testing.T) {
		kv := NewKVRepository(setupTestDB(t))

		if err := kv.Set("k", []byte(`{"a":1}`)); err != nil {
			t.Fatalf("failed to set: %v", err)
		}

		value, ok, err := kv.Get("k")
		if err != nil {
			t.Fatalf("failed to get: %v", err)
		}
		if !ok {
			t.Fatal("expected key to be present")
		}
		if string(value) != `{"a":1}` {
			t.Errorf("unexpected value %s", value)
		}
	})

	t.Run("Set overwrites whole value", func(t *testing.T) {
		kv := NewKVRepository(setupTestDB(t))

		if err := kv.Set("k", []byte("first")); err != nil {
			t.Fatalf("failed to set: %v", err)
		}
		if err := kv.Set("k", []byte("second")); err != nil {
			t.Fatalf("failed to overwrite: %v", err)
		}

		value, _, err := kv.Get("k")
		if err != nil {
			t.Fatalf("failed to get: %v", err)
		}
		if string(value) != "second" {
			t.Errorf("expected second, got %s", value)
		}
	})
}

func TestCollectionStore(t *testing.T) {
	t.Run("List on empty store", func(t *testing.T) {
		store := NewCollectionStore(NewKVRepository(setupTestDB(t)))

		tracks, err := store.List()
		if err != nil {
			t.Fatalf("expected no error for empty store, got %v", err)
		}
		if len(tracks) != 0 {
			t.Errorf("expected empty collection, got %d tracks", len(tracks))
		}
	})

	t.Run("Add deduplicates by track id", func(t *testing.T) {
		store := NewCollectionStore(NewKVRepository(setupTestDB(t)))
		track := sampleTrack(1544494952, "Hello")

		result, err := store.Add(track)
		if err != nil {
			t.Fatalf("failed to add: %v", err)
		}
		if result != models.Added {
			t.Errorf("expected Added, got %v", result)
		}

		result, err = store.Add(track)
		if err != nil {
			t.Fatalf("second add should not fail: %v", err)
		}
		if result != models.AlreadyPresent {
			t.Errorf("expected AlreadyPresent, got %v", result)
		}

		tracks, err := store.List()
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}
		if len(tracks) != 1 {
			t.Errorf("expected 1 track, got %d", len(tracks))
		}
		if tracks[0].TrackID != track.TrackID {
			t.Errorf("expected track %d, got %d", track.TrackID, tracks[0].TrackID)
		}
	})

	t.Run("Add rejects invalid snapshot", func(t *testing.T) {
		store := NewCollectionStore(NewKVRepository(setupTestDB(t)))

		if _, err := store.Add(models.Track{}); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("List preserves insertion order", func(t *testing.T) {
		store := NewCollectionStore(NewKVRepository(setupTestDB(t)))

		ids := []int64{3, 1, 2}
		for _, id := range ids {
			if _, err := store.Add(sampleTrack(id, "track")); err != nil {
				t.Fatalf("failed to add %d: %v", id, err)
			}
		}

		tracks, err := store.List()
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}
		for i, id := range ids {
			if tracks[i].TrackID != id {
				t.Errorf("position %d: expected %d, got %d", i, id, tracks[i].TrackID)
			}
		}
	})

	t.Run("Remove", func(t *testing.T) {
		db := setupTestDB(t)
		store := NewCollectionStore(NewKVRepository(db))

		for _, id := range []int64{1, 2} {
			if _, err := store.Add(sampleTrack(id, "track")); err != nil {
				t.Fatalf("failed to add %d: %v", id, err)
			}
		}

		if err := store.Remove(1); err != nil {
			t.Fatalf("failed to remove: %v", err)
		}

		tracks, err := store.List()
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}
		if len(tracks) != 1 || tracks[0].TrackID != 2 {
			t.Errorf("expected only track 2 to remain, got %v", tracks)
		}

		t.Run("of absent id is a no-op", func(t *testing.T) {
			if err := store.Remove(99); err != nil {
				t.Fatalf("remove of absent id should not fail: %v", err)
			}
			tracks, err := store.List()
			if err != nil {
				t.Fatalf("failed to list: %v", err)
			}
			if len(tracks) != 1 {
				t.Errorf("expected list to be unchanged, got %d tracks", len(tracks))
			}
		})
	})

	t.Run("round-trips through a fresh store", func(t *testing.T) {
		db := setupTestDB(t)
		store := NewCollectionStore(NewKVRepository(db))

		ids := []int64{10, 20, 30}
		for _, id := range ids {
			if _, err := store.Add(sampleTrack(id, "track")); err != nil {
				t.Fatalf("failed to add %d: %v", id, err)
			}
		}

		// A new store over the same database must see the identical sequence.
		fresh := NewCollectionStore(NewKVRepository(db))
		tracks, err := fresh.List()
		if err != nil {
			t.Fatalf("failed to list from fresh store: %v", err)
		}
		if len(tracks) != len(ids) {
			t.Fatalf("expected %d tracks, got %d", len(ids), len(tracks))
		}
		for i, id := range ids {
			if tracks[i].TrackID != id {
				t.Errorf("position %d: expected %d, got %d", i, id, tracks[i].TrackID)
			}
		}
	})
}

func TestRatingStore(t *testing.T) {
	t.Run("Get on unrated track returns 0", func(t *testing.T) {
		store := NewRatingStore(NewKVRepository(setupTestDB(t)))

		rating, err := store.Get(42)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if rating != 0 {
			t.Errorf("expected 0 for unrated track, got %d", rating)
		}
	})

	t.Run("Set then Get", func(t *testing.T) {
		store := NewRatingStore(NewKVRepository(setupTestDB(t)))

		for rating := models.MinRating; rating <= models.MaxRating; rating++ {
			if err := store.Set(int64(rating), rating); err != nil {
				t.Fatalf("failed to set rating %d: %v", rating, err)
			}

			got, err := store.Get(int64(rating))
			if err != nil {
				t.Fatalf("failed to get rating: %v", err)
			}
			if got != rating {
				t.Errorf("expected %d, got %d", rating, got)
			}
		}
	})

	t.Run("Set overwrites", func(t *testing.T) {
		store := NewRatingStore(NewKVRepository(setupTestDB(t)))

		if err := store.Set(1, 2); err != nil {
			t.Fatalf("failed to set: %v", err)
		}
		if err := store.Set(1, 5); err != nil {
			t.Fatalf("failed to overwrite: %v", err)
		}

		rating, err := store.Get(1)
		if err != nil {
			t.Fatalf("failed to get: %v", err)
		}
		if rating != 5 {
			t.Errorf("expected 5, got %d", rating)
		}
	})

	t.Run("Set rejects out-of-range values", func(t *testing.T) {
		store := NewRatingStore(NewKVRepository(setupTestDB(t)))

		for _, rating := range []int{0, -1, 6, 100} {
			if err := store.Set(1, rating); !errors.Is(err, shared.ErrInvalidArgument) {
				t.Errorf("rating %d: expected ErrInvalidArgument, got %v", rating, err)
			}
		}

		if got, err := store.Get(1); err != nil || got != 0 {
			t.Errorf("expected track to stay unrated, got %d (err %v)", got, err)
		}
	})

	t.Run("All", func(t *testing.T) {
		store := NewRatingStore(NewKVRepository(setupTestDB(t)))

		if err := store.Set(1, 3); err != nil {
			t.Fatalf("failed to set: %v", err)
		}
		if err := store.Set(2, 5); err != nil {
			t.Fatalf("failed to set: %v", err)
		}

		all, err := store.All()
		if err != nil {
			t.Fatalf("failed to load all: %v", err)
		}
		if len(all) != 2 || all[1] != 3 || all[2] != 5 {
			t.Errorf("unexpected ratings map %v", all)
		}
	})

	t.Run("ratings survive collection removal", func(t *testing.T) {
		db := setupTestDB(t)
		kv := NewKVRepository(db)
		collection := NewCollectionStore(kv)
		ratings := NewRatingStore(kv)

		track := sampleTrack(7, "Skyfall")
		if _, err := collection.Add(track); err != nil {
			t.Fatalf("failed to add: %v", err)
		}
		if err := ratings.Set(track.TrackID, 4); err != nil {
			t.Fatalf("failed to rate: %v", err)
		}

		if err := collection.Remove(track.TrackID); err != nil {
			t.Fatalf("failed to remove: %v", err)
		}

		rating, err := ratings.Get(track.TrackID)
		if err != nil {
			t.Fatalf("failed to get rating: %v", err)
		}
		if rating != 4 {
			t.Errorf("expected rating to outlive collection membership, got %d", rating)
		}
	})
}
