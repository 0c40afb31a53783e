// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func jsonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
		},
	}
}

// searchCommand queries the catalog.
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search the catalog for songs, albums or artists",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "term",
			},
		},
		Flags: append([]cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "entity",
				Aliases: []string{"e"},
				Usage:   "Entity type: song, album or artist",
				Value:   "song",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of results",
				Value: 25,
			},
		}, jsonFlags()...),
		Action: r.Search,
	}
}

// lookupCommand handles lookup-by-id operations
func lookupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "lookup",
		Usage: "Look up catalog records by id",
		Commands: []*cli.Command{
			{
				Name:  "album",
				Usage: "List the tracks of an album",
				Flags: append([]cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Collection id",
						Required: true,
					},
				}, jsonFlags()...),
				Action: r.LookupAlbum,
			},
			{
				Name:  "artist",
				Usage: "List an artist's popular tracks",
				Flags: append([]cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Artist id",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of tracks",
						Value: 15,
					},
				}, jsonFlags()...),
				Action: r.LookupArtist,
			},
			{
				Name:  "track",
				Usage: "Look up a single track",
				Flags: append([]cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Track id",
						Required: true,
					},
				}, jsonFlags()...),
				Action: r.LookupTrack,
			},
		},
	}
}

// collectionCommand handles the locally saved playlist
func collectionCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "collection",
		Aliases: []string{"col"},
		Usage:   "Manage your saved collection",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List saved tracks in insertion order",
				Flags:  append([]cli.Flag{configFlag()}, jsonFlags()...),
				Action: r.CollectionList,
			},
			{
				Name:  "add",
				Usage: "Save a track snapshot by id",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Track id to save",
						Required: true,
					},
				},
				Action: r.CollectionAdd,
			},
			{
				Name:  "remove",
				Usage: "Remove a saved track by id",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Track id to remove",
						Required: true,
					},
				},
				Action: r.CollectionRemove,
			},
			{
				Name:  "export",
				Usage: "Export the collection",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format: txt, csv, markdown or json",
						Value:   "txt",
					},
				},
				Action: r.CollectionExport,
			},
		},
	}
}

// rateCommand handles per-track ratings
func rateCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "rate",
		Usage: "Rate tracks from 1 to 5",
		Commands: []*cli.Command{
			{
				Name:  "set",
				Usage: "Store a rating for a track",
				Flags: []cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Track id",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "rating",
						Aliases:  []string{"r"},
						Usage:    "Rating value (1-5)",
						Required: true,
					},
				},
				Action: r.RateSet,
			},
			{
				Name:  "get",
				Usage: "Print the rating of a track",
				Flags: append([]cli.Flag{
					configFlag(),
					&cli.IntFlag{
						Name:  "id",
						Usage: "Track id",
					},
					&cli.BoolFlag{
						Name:  "all",
						Usage: "Print every stored rating",
					},
				}, jsonFlags()...),
				Action: r.RateGet,
			},
		},
	}
}

// lyricsCommand fetches lyrics for a song
func lyricsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "lyrics",
		Usage: "Fetch lyrics for a song",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "artist",
			},
			&cli.StringArg{
				Name: "track",
			},
		},
		Flags:  []cli.Flag{configFlag()},
		Action: r.Lyrics,
	}
}

// previewCommand opens a track preview in the browser
func previewCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "preview",
		Usage: "Open a track's audio preview in the browser",
		Flags: []cli.Flag{
			configFlag(),
			&cli.IntFlag{
				Name:     "id",
				Usage:    "Track id",
				Required: true,
			},
		},
		Action: r.Preview,
	}
}

func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Launch the interactive terminal UI",
		Flags:  []cli.Flag{configFlag()},
		Action: r.TUI,
	}
}
