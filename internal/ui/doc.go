// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI has five screens:
//  1. [SearchView] : query the catalog for singles, albums or artists
//  2. [DetailsView] : track detail with rating, lyrics, preview and add-to-collection
//  3. [AlbumArtistView] : tracks of an album or an artist's popular songs
//  4. [CollectionView] : the locally saved playlist
//  5. [CollectionDetailsView] : detail of a saved track
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Network and storage work runs inside [tea.Cmd] closures that post typed messages back to Update.
// Each fetch carries a request sequence number; replies tagged with an older sequence are dropped,
// so a slow response can never clobber the state of a newer user action.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, tab, 1-5, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
