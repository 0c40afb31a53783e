package main

import (
	"context"
	"fmt"

	"github.com/Sachou914/iTunesSekker/internal/shared"
	"github.com/Sachou914/iTunesSekker/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	collection, ratings, err := r.stores()
	if err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/seeker-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	// Outstanding fetches are cancelled when the TUI exits.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := ui.NewModel(ctx, ui.Deps{
		Catalog:    r.catalog,
		Lyrics:     r.lyrics,
		Collection: collection,
		Ratings:    ratings,
		Logger:     fileLogger,
	})
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
