package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sachou914/iTunesSekker/internal/models"
)

func testModel(t *testing.T) *Model {
	t.Helper()

	m := NewModel(context.Background(), Deps{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(*Model)
}

func TestNextEntity(t *testing.T) {
	order := []models.EntityType{models.EntitySong, models.EntityAlbum, models.EntityArtist}
	for i, entity := range order {
		want := order[(i+1)%len(order)]
		if got := nextEntity(entity); got != want {
			t.Errorf("nextEntity(%s) = %s, want %s", entity, got, want)
		}
	}
}

func TestUpdateDiscardsStaleResponses(t *testing.T) {
	records := []models.CatalogRecord{
		{WrapperType: "track", TrackID: 1, TrackName: "Hello", ArtistName: "Adele"},
	}

	t.Run("stale results are ignored", func(t *testing.T) {
		m := testModel(t)

		updated, _ := m.Update(resultsMsg{seq: m.seq + 1, records: records, entity: models.EntitySong})
		m = updated.(*Model)

		if m.hasResults {
			t.Error("expected results from an old request to be discarded")
		}
	})

	t.Run("current results are applied", func(t *testing.T) {
		m := testModel(t)

		updated, _ := m.Update(resultsMsg{seq: m.seq, records: records, entity: models.EntitySong})
		m = updated.(*Model)

		if !m.hasResults {
			t.Fatal("expected current results to be applied")
		}
		if got := len(m.resultList.Items()); got != 1 {
			t.Errorf("expected 1 result item, got %d", got)
		}
	})

	t.Run("stale lyrics are ignored", func(t *testing.T) {
		m := testModel(t)
		m.detail.lyricsLoading = true

		updated, _ := m.Update(lyricsMsg{seq: m.seq + 1, text: "old words", ok: true})
		m = updated.(*Model)

		if !m.detail.lyricsLoading || m.detail.lyrics != "" {
			t.Error("expected stale lyrics to be discarded")
		}
	})
}

func TestUpdateSurfacesErrors(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(resultsMsg{seq: m.seq, err: context.DeadlineExceeded})
	m = updated.(*Model)

	if m.err == nil {
		t.Error("expected fetch error to be surfaced")
	}
	if m.hasResults {
		t.Error("expected no results after a failed search")
	}
}
