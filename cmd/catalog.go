package main

import (
	"context"
	"fmt"

	"github.com/Sachou914/iTunesSekker/internal/formatter"
	"github.com/Sachou914/iTunesSekker/internal/models"
	"github.com/Sachou914/iTunesSekker/internal/shared"
	"github.com/urfave/cli/v3"
)

// Search queries the catalog for songs, albums or artists.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	term := cmd.StringArg("term")
	if term == "" {
		return fmt.Errorf("%w: search term", shared.ErrMissingArgument)
	}

	entity, err := models.ParseEntityType(cmd.String("entity"))
	if err != nil {
		return err
	}

	limit := cmd.Int("limit")
	if limit <= 0 {
		limit = r.config.Catalog.SearchLimit
	}

	logger := r.logger.With("request_id", shared.GenerateID())
	logger.Info("searching catalog", "term", term, "entity", entity, "limit", limit)

	records, err := r.catalog.Search(ctx, term, entity, limit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(records, cmd.Bool("pretty"))
	}

	r.writePlainln("%d results for %q (%s)", len(records), term, entity)
	for i, record := range records {
		r.writePlainln("%3d. %s - %s", i+1, formatter.DisplayTitle(record, entity), formatter.DisplaySubtitle(record))
	}

	return nil
}

// LookupAlbum lists the tracks of an album by collection id.
func (r *Runner) LookupAlbum(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Int("id")
	if id == 0 {
		return fmt.Errorf("%w: collection id", shared.ErrMissingArgument)
	}

	tracks, err := r.catalog.LookupAlbumTracks(ctx, int64(id))
	if err != nil {
		return fmt.Errorf("album lookup failed: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(tracks, cmd.Bool("pretty"))
	}

	return r.writeTracks(tracks)
}

// LookupArtist lists an artist's popular tracks by artist id.
func (r *Runner) LookupArtist(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Int("id")
	if id == 0 {
		return fmt.Errorf("%w: artist id", shared.ErrMissingArgument)
	}

	limit := cmd.Int("limit")
	if limit <= 0 {
		limit = r.config.Catalog.TopTracksLimit
	}

	tracks, err := r.catalog.LookupArtistTopTracks(ctx, int64(id), limit)
	if err != nil {
		return fmt.Errorf("artist lookup failed: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(tracks, cmd.Bool("pretty"))
	}

	return r.writeTracks(tracks)
}

// LookupTrack prints a single track by id.
func (r *Runner) LookupTrack(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Int("id")
	if id == 0 {
		return fmt.Errorf("%w: track id", shared.ErrMissingArgument)
	}

	track, err := r.catalog.LookupTrack(ctx, int64(id))
	if err != nil {
		return fmt.Errorf("track lookup failed: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(track, cmd.Bool("pretty"))
	}

	r.writePlainln("%s - %s", track.TrackName, track.ArtistName)
	if track.CollectionName != "" {
		r.writePlainln("Album: %s", track.CollectionName)
	}
	if track.ReleaseDate != "" {
		r.writePlainln("Date: %s", shared.FormatReleaseDate(track.ReleaseDate))
	}

	return nil
}

// Lyrics fetches lyrics for an (artist, track) pair.
//
// Lyrics are best-effort; a miss prints a notice and exits zero.
func (r *Runner) Lyrics(ctx context.Context, cmd *cli.Command) error {
	artist := cmd.StringArg("artist")
	track := cmd.StringArg("track")
	if artist == "" || track == "" {
		return fmt.Errorf("%w: artist and track", shared.ErrMissingArgument)
	}

	text, ok := r.lyrics.Fetch(ctx, artist, track)
	if !ok {
		r.writePlainln("No lyrics available for %s - %s", artist, track)
		return nil
	}

	return r.writePlainln("%s", text)
}

// Preview opens a track's audio preview in the system browser.
func (r *Runner) Preview(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Int("id")
	if id == 0 {
		return fmt.Errorf("%w: track id", shared.ErrMissingArgument)
	}

	track, err := r.catalog.LookupTrack(ctx, int64(id))
	if err != nil {
		return fmt.Errorf("track lookup failed: %w", err)
	}

	if track.PreviewURL == "" {
		return fmt.Errorf("%w: no preview for track %d", shared.ErrNotFound, id)
	}

	r.logger.Info("opening preview", "track", track.TrackName, "url", track.PreviewURL)
	return shared.OpenBrowser(track.PreviewURL)
}

func (r *Runner) writeTracks(tracks []models.Track) error {
	r.writePlainln("%d tracks", len(tracks))
	for i, track := range tracks {
		if err := r.writePlainln("%3d. %s - %s", i+1, track.TrackName, track.ArtistName); err != nil {
			return err
		}
	}
	return nil
}
