// package formatter derives display fields from catalog records and exports
// the saved collection to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/Sachou914/iTunesSekker/internal/models"
	"github.com/Sachou914/iTunesSekker/internal/shared"
)

// Screen identifies a navigation target in the UI.
type Screen string

const (
	ScreenDetails           Screen = "Details"
	ScreenAlbumArtistTracks Screen = "AlbumOrArtistDetails"
)

// NavTarget is the screen a record selection leads to, plus the parameters
// that screen receives.
type NavTarget struct {
	Screen Screen
	Item   models.CatalogRecord
	Entity models.EntityType
}

// DisplayTitle returns the primary display line for a record.
//
// Albums show their collection name, artists their artist name, songs their
// track name.
func DisplayTitle(record models.CatalogRecord, entity models.EntityType) string {
	switch entity {
	case models.EntityAlbum:
		return record.CollectionName
	case models.EntityArtist:
		return record.ArtistName
	default:
		return record.TrackName
	}
}

// DisplaySubtitle returns the secondary display line, always the artist name.
func DisplaySubtitle(record models.CatalogRecord) string {
	return record.ArtistName
}

// NavigationTarget maps a selected record to the next screen.
//
// Songs open the details screen directly; albums and artists open the track
// listing for their collection/artist id.
func NavigationTarget(record models.CatalogRecord, entity models.EntityType) NavTarget {
	switch entity {
	case models.EntityAlbum, models.EntityArtist:
		return NavTarget{Screen: ScreenAlbumArtistTracks, Item: record, Entity: entity}
	default:
		return NavTarget{Screen: ScreenDetails, Item: record, Entity: models.EntitySong}
	}
}

// ExportToCSV converts the saved collection to CSV with columns: TrackID, Title, Artist, Album, ReleaseDate, Rating
func ExportToCSV(tracks []models.Track, ratings map[int64]int) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"TrackID", "Title", "Artist", "Album", "ReleaseDate", "Rating"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, track := range tracks {
		record := []string{
			strconv.FormatInt(track.TrackID, 10),
			track.TrackName,
			track.ArtistName,
			track.CollectionName,
			shared.FormatReleaseDate(track.ReleaseDate),
			ratingCell(ratings, track.TrackID),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts the saved collection to Markdown
func ExportToMarkdown(tracks []models.Track, ratings map[int64]int) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# My Collection\n\n")
	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n\n", len(tracks)))

	for i, track := range tracks {
		albumPart := ""
		if track.CollectionName != "" {
			albumPart = fmt.Sprintf(" (%s)", track.CollectionName)
		}
		line := fmt.Sprintf("%d. %s - %s%s", i+1, track.ArtistName, track.TrackName, albumPart)
		if rating := ratings[track.TrackID]; rating > 0 {
			line += " " + Stars(rating)
		}
		buf.WriteString(line + "\n")
	}

	return buf.Bytes(), nil
}

// ExportToText converts the saved collection to plain text
func ExportToText(tracks []models.Track) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("My Collection (%d tracks)\n\n", len(tracks)))
	for i, track := range tracks {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, track.ArtistName, track.TrackName))
	}

	return buf.Bytes(), nil
}

// Stars renders a 1..5 rating as filled and empty stars.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > models.MaxRating {
		rating = models.MaxRating
	}

	var buf bytes.Buffer
	for i := 0; i < rating; i++ {
		buf.WriteString("★")
	}
	for i := rating; i < models.MaxRating; i++ {
		buf.WriteString("☆")
	}
	return buf.String()
}

func ratingCell(ratings map[int64]int, trackID int64) string {
	if rating, ok := ratings[trackID]; ok {
		return strconv.Itoa(rating)
	}
	return ""
}
