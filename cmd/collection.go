package main

import (
	"context"
	"fmt"

	"github.com/Sachou914/iTunesSekker/internal/formatter"
	"github.com/Sachou914/iTunesSekker/internal/models"
	"github.com/Sachou914/iTunesSekker/internal/shared"
	"github.com/urfave/cli/v3"
)

// CollectionList prints the saved collection in insertion order.
func (r *Runner) CollectionList(ctx context.Context, cmd *cli.Command) error {
	collection, ratings, err := r.stores()
	if err != nil {
		return err
	}

	tracks, err := collection.List()
	if err != nil {
		return fmt.Errorf("failed to load collection: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(tracks, cmd.Bool("pretty"))
	}

	if len(tracks) == 0 {
		return r.writePlainln("Your collection is empty.")
	}

	all, err := ratings.All()
	if err != nil {
		return fmt.Errorf("failed to load ratings: %w", err)
	}

	r.writePlainln("My Collection (%d tracks)", len(tracks))
	for i, track := range tracks {
		line := fmt.Sprintf("%3d. %s - %s", i+1, track.TrackName, track.ArtistName)
		if rating := all[track.TrackID]; rating > 0 {
			line += " " + formatter.Stars(rating)
		}
		if err := r.writePlainln("%s", line); err != nil {
			return err
		}
	}

	return nil
}

// CollectionAdd looks up a track by id and saves a snapshot of it.
func (r *Runner) CollectionAdd(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Int("id")
	if id == 0 {
		return fmt.Errorf("%w: track id", shared.ErrMissingArgument)
	}

	track, err := r.catalog.LookupTrack(ctx, int64(id))
	if err != nil {
		return fmt.Errorf("track lookup failed: %w", err)
	}

	collection, _, err := r.stores()
	if err != nil {
		return err
	}

	result, err := collection.Add(*track)
	if err != nil {
		return fmt.Errorf("failed to save track: %w", err)
	}

	if result == models.AlreadyPresent {
		return r.writePlainln("Already in your collection: %s", track.TrackName)
	}

	r.logger.Info("track saved", "id", track.TrackID, "name", track.TrackName)
	return r.writePlainln("✓ Added to your collection: %s - %s", track.TrackName, track.ArtistName)
}

// CollectionRemove deletes a track from the collection by id.
//
// The track's rating, if any, is kept.
func (r *Runner) CollectionRemove(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Int("id")
	if id == 0 {
		return fmt.Errorf("%w: track id", shared.ErrMissingArgument)
	}

	collection, _, err := r.stores()
	if err != nil {
		return err
	}

	if err := collection.Remove(int64(id)); err != nil {
		return fmt.Errorf("failed to remove track: %w", err)
	}

	return r.writePlainln("✓ Removed track %d from your collection", id)
}

// CollectionExport writes the collection in the requested format.
func (r *Runner) CollectionExport(ctx context.Context, cmd *cli.Command) error {
	collection, ratings, err := r.stores()
	if err != nil {
		return err
	}

	tracks, err := collection.List()
	if err != nil {
		return fmt.Errorf("failed to load collection: %w", err)
	}

	all, err := ratings.All()
	if err != nil {
		return fmt.Errorf("failed to load ratings: %w", err)
	}

	var data []byte
	switch format := cmd.String("format"); format {
	case "csv":
		data, err = formatter.ExportToCSV(tracks, all)
	case "markdown", "md":
		data, err = formatter.ExportToMarkdown(tracks, all)
	case "txt", "text":
		data, err = formatter.ExportToText(tracks)
	case "json":
		return r.writeJSON(tracks, true)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	return r.writePlain("%s", data)
}

// RateSet stores a 1-5 rating for a track.
func (r *Runner) RateSet(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Int("id")
	if id == 0 {
		return fmt.Errorf("%w: track id", shared.ErrMissingArgument)
	}

	rating := cmd.Int("rating")

	_, ratings, err := r.stores()
	if err != nil {
		return err
	}

	if err := ratings.Set(int64(id), rating); err != nil {
		return fmt.Errorf("failed to save rating: %w", err)
	}

	return r.writePlainln("✓ Rated track %d: %s", id, formatter.Stars(rating))
}

// RateGet prints the rating of a track, or every rating with --all.
func (r *Runner) RateGet(ctx context.Context, cmd *cli.Command) error {
	_, ratings, err := r.stores()
	if err != nil {
		return err
	}

	if cmd.Bool("all") {
		all, err := ratings.All()
		if err != nil {
			return fmt.Errorf("failed to load ratings: %w", err)
		}
		if cmd.Bool("json") {
			return r.writeJSON(all, cmd.Bool("pretty"))
		}
		for id, rating := range all {
			r.writePlainln("%d: %s", id, formatter.Stars(rating))
		}
		return nil
	}

	id := cmd.Int("id")
	if id == 0 {
		return fmt.Errorf("%w: track id", shared.ErrMissingArgument)
	}

	rating, err := ratings.Get(int64(id))
	if err != nil {
		return fmt.Errorf("failed to load rating: %w", err)
	}

	if rating == 0 {
		return r.writePlainln("Track %d is unrated", id)
	}

	return r.writePlainln("%s", formatter.Stars(rating))
}
