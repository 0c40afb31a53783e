package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Sachou914/iTunesSekker/internal/formatter"
	"github.com/Sachou914/iTunesSekker/internal/models"
	"github.com/Sachou914/iTunesSekker/internal/repositories"
	"github.com/Sachou914/iTunesSekker/internal/services"
	"github.com/Sachou914/iTunesSekker/internal/shared"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// ViewState represents the current screen in the TUI.
type ViewState int

const (
	SearchView ViewState = iota
	DetailsView
	AlbumArtistView
	CollectionView
	CollectionDetailsView
)

// Deps holds the services and stores the TUI operates on.
type Deps struct {
	Catalog    services.Catalog
	Lyrics     services.Lyrics
	Collection *repositories.CollectionStore
	Ratings    *repositories.RatingStore
	Logger     *log.Logger
}

// detail holds the state of the details screen for one selected track.
type detail struct {
	track         models.Track
	fromStore     bool
	inCollection  bool
	rating        int
	lyrics        string
	lyricsOK      bool
	lyricsLoading bool
}

// Model represents the TUI application state.
//
// Every asynchronous fetch carries the request sequence current at launch;
// responses from an older sequence are discarded so a slow reply can never
// overwrite the state of a newer action.
type Model struct {
	ctx  context.Context
	deps Deps

	view   ViewState
	width  int
	height int
	keys   keyMap
	help   help.Model

	searchInput textinput.Model
	entity      models.EntityType
	resultList  list.Model
	hasResults  bool
	searching   bool

	trackList      list.Model
	trackListTitle string

	collectionList list.Model
	hasCollection  bool

	detail detail
	seq    int
	status string
	err    error
}

type resultsMsg struct {
	seq     int
	records []models.CatalogRecord
	entity  models.EntityType
	err     error
}

type albumTracksMsg struct {
	seq    int
	title  string
	tracks []models.Track
	err    error
}

type lyricsMsg struct {
	seq  int
	text string
	ok   bool
}

type detailLoadedMsg struct {
	seq          int
	rating       int
	inCollection bool
	err          error
}

type collectionMsg struct {
	tracks  []models.Track
	ratings map[int64]int
	err     error
}

type addResultMsg struct {
	result models.AddResult
	err    error
}

type removedMsg struct {
	err error
}

type ratedMsg struct {
	rating int
	err    error
}

type previewMsg struct {
	err error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, deps Deps) *Model {
	input := textinput.New()
	input.Placeholder = "Search for a song, album or artist"
	input.Focus()

	return &Model{
		ctx:         ctx,
		deps:        deps,
		view:        SearchView,
		keys:        newKeyMap(),
		help:        help.New(),
		searchInput: input,
		entity:      models.EntitySong,
	}
}

// Init starts the cursor blink on the search input.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, l := range []*list.Model{&m.resultList, &m.trackList, &m.collectionList} {
			if l.Width() != 0 {
				l.SetSize(msg.Width-4, msg.Height-10)
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case SearchView:
			return m.handleSearchKeys(msg)
		case DetailsView, CollectionDetailsView:
			return m.handleDetailKeys(msg)
		case AlbumArtistView:
			return m.handleAlbumArtistKeys(msg)
		case CollectionView:
			return m.handleCollectionKeys(msg)
		}

	case resultsMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.searching = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		items := make([]list.Item, len(msg.records))
		for i, record := range msg.records {
			items[i] = recordItem{record: record, entity: msg.entity}
		}
		m.resultList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-10)
		m.resultList.Title = fmt.Sprintf("Results (%s)", msg.entity)
		m.resultList.SetShowHelp(false)
		m.hasResults = true
		m.searchInput.Blur()
		return m, nil

	case albumTracksMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			m.view = SearchView
			return m, nil
		}
		m.err = nil
		items := make([]list.Item, len(msg.tracks))
		for i, track := range msg.tracks {
			items[i] = trackItem{track: track}
		}
		m.trackList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-10)
		m.trackList.Title = msg.title
		m.trackList.SetShowHelp(false)
		m.trackListTitle = msg.title
		m.view = AlbumArtistView
		return m, nil

	case lyricsMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.detail.lyricsLoading = false
		m.detail.lyrics = msg.text
		m.detail.lyricsOK = msg.ok
		return m, nil

	case detailLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.detail.rating = msg.rating
		m.detail.inCollection = msg.inCollection
		return m, nil

	case collectionMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		items := make([]list.Item, len(msg.tracks))
		for i, track := range msg.tracks {
			items[i] = trackItem{track: track, rating: msg.ratings[track.TrackID]}
		}
		m.collectionList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-10)
		m.collectionList.Title = "My Collection"
		m.collectionList.SetShowHelp(false)
		m.hasCollection = true
		m.view = CollectionView
		return m, nil

	case addResultMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if msg.result == models.AlreadyPresent {
			m.status = "Already in your collection"
		} else {
			m.status = "Added to your collection"
			m.detail.inCollection = true
		}
		return m, nil

	case removedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, m.loadCollection()

	case ratedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.detail.rating = msg.rating
		m.status = fmt.Sprintf("Rated %s", formatter.Stars(msg.rating))
		return m, nil

	case previewMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Preview failed: %v", msg.err)
		} else {
			m.status = "Preview opened in browser"
		}
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case SearchView:
		return m.renderSearch()
	case DetailsView, CollectionDetailsView:
		return m.renderDetails()
	case AlbumArtistView:
		return m.renderAlbumArtist()
	case CollectionView:
		return m.renderCollection()
	default:
		return ""
	}
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit) && !m.searchInput.Focused():
		return m, tea.Quit
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.entity):
		m.entity = nextEntity(m.entity)
		if strings.TrimSpace(m.searchInput.Value()) != "" {
			return m, m.search()
		}
		return m, nil

	case msg.Type == tea.KeyEnter:
		if m.searchInput.Focused() {
			if strings.TrimSpace(m.searchInput.Value()) == "" {
				return m, nil
			}
			return m, m.search()
		}
		return m.openSelectedResult()

	case key.Matches(msg, m.keys.search) && !m.searchInput.Focused():
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.collection) && !m.searchInput.Focused():
		return m, m.loadCollection()

	case msg.Type == tea.KeyEsc:
		if m.searchInput.Focused() && m.hasResults {
			m.searchInput.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.searchInput.Focused() {
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}
	if m.hasResults {
		m.resultList, cmd = m.resultList.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.back):
		m.status = ""
		if m.view == CollectionDetailsView {
			return m, m.loadCollection()
		}
		if m.trackListTitle != "" {
			m.view = AlbumArtistView
		} else {
			m.view = SearchView
		}
		return m, nil

	case key.Matches(msg, m.keys.add):
		if m.view == DetailsView && !m.detail.inCollection {
			return m, m.addToCollection(m.detail.track)
		}
		return m, nil

	case key.Matches(msg, m.keys.preview):
		return m, m.openPreview(m.detail.track)

	case key.Matches(msg, m.keys.rate):
		rating, err := strconv.Atoi(msg.String())
		if err != nil {
			return m, nil
		}
		return m, m.rate(m.detail.track.TrackID, rating)
	}

	return m, nil
}

func (m *Model) handleAlbumArtistKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.trackListTitle = ""
		m.view = SearchView
		return m, nil
	case msg.Type == tea.KeyEnter:
		if item, ok := m.trackList.SelectedItem().(trackItem); ok {
			return m, m.openDetails(item.track, false)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.trackList, cmd = m.trackList.Update(msg)
	return m, cmd
}

func (m *Model) handleCollectionKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = SearchView
		return m, nil
	case key.Matches(msg, m.keys.remove):
		if item, ok := m.collectionList.SelectedItem().(trackItem); ok {
			return m, m.removeFromCollection(item.track.TrackID)
		}
		return m, nil
	case msg.Type == tea.KeyEnter:
		if item, ok := m.collectionList.SelectedItem().(trackItem); ok {
			return m, m.openDetails(item.track, true)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.collectionList, cmd = m.collectionList.Update(msg)
	return m, cmd
}

// openSelectedResult navigates from a search result to its target screen.
func (m *Model) openSelectedResult() (tea.Model, tea.Cmd) {
	item, ok := m.resultList.SelectedItem().(recordItem)
	if !ok {
		return m, nil
	}

	target := formatter.NavigationTarget(item.record, item.entity)
	switch target.Screen {
	case formatter.ScreenAlbumArtistTracks:
		return m, m.fetchAlbumArtistTracks(target.Item, target.Entity)
	default:
		return m, m.openDetails(target.Item.Track(), false)
	}
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case SearchView:
		if m.searchInput.Focused() {
			m.searchInput, cmd = m.searchInput.Update(msg)
		} else if m.hasResults {
			m.resultList, cmd = m.resultList.Update(msg)
		}
	case AlbumArtistView:
		m.trackList, cmd = m.trackList.Update(msg)
	case CollectionView:
		if m.hasCollection {
			m.collectionList, cmd = m.collectionList.Update(msg)
		}
	}
	return m, cmd
}

func (m *Model) search() tea.Cmd {
	m.seq++
	m.searching = true
	m.status = ""
	seq := m.seq
	term := strings.TrimSpace(m.searchInput.Value())
	entity := m.entity

	return func() tea.Msg {
		records, err := m.deps.Catalog.Search(m.ctx, term, entity, 25)
		return resultsMsg{seq: seq, records: records, entity: entity, err: err}
	}
}

func (m *Model) fetchAlbumArtistTracks(record models.CatalogRecord, entity models.EntityType) tea.Cmd {
	m.seq++
	seq := m.seq
	title := formatter.DisplayTitle(record, entity)

	return func() tea.Msg {
		var tracks []models.Track
		var err error
		if entity == models.EntityAlbum {
			tracks, err = m.deps.Catalog.LookupAlbumTracks(m.ctx, record.CollectionID)
		} else {
			tracks, err = m.deps.Catalog.LookupArtistTopTracks(m.ctx, record.ArtistID, 15)
		}
		return albumTracksMsg{seq: seq, title: title, tracks: tracks, err: err}
	}
}

// openDetails switches to the details screen and loads its rating, membership
// and lyrics.
func (m *Model) openDetails(track models.Track, fromStore bool) tea.Cmd {
	m.seq++
	seq := m.seq
	m.detail = detail{track: track, fromStore: fromStore, lyricsLoading: true}
	m.status = ""
	if fromStore {
		m.view = CollectionDetailsView
	} else {
		m.view = DetailsView
	}

	loadState := func() tea.Msg {
		rating, err := m.deps.Ratings.Get(track.TrackID)
		if err != nil {
			return detailLoadedMsg{seq: seq, err: err}
		}
		inCollection, err := m.deps.Collection.Contains(track.TrackID)
		return detailLoadedMsg{seq: seq, rating: rating, inCollection: inCollection, err: err}
	}

	fetchLyrics := func() tea.Msg {
		text, ok := m.deps.Lyrics.Fetch(m.ctx, track.ArtistName, track.TrackName)
		return lyricsMsg{seq: seq, text: text, ok: ok}
	}

	return tea.Batch(loadState, fetchLyrics)
}

func (m *Model) loadCollection() tea.Cmd {
	return func() tea.Msg {
		tracks, err := m.deps.Collection.List()
		if err != nil {
			return collectionMsg{err: err}
		}
		ratings, err := m.deps.Ratings.All()
		return collectionMsg{tracks: tracks, ratings: ratings, err: err}
	}
}

func (m *Model) addToCollection(track models.Track) tea.Cmd {
	return func() tea.Msg {
		result, err := m.deps.Collection.Add(track)
		return addResultMsg{result: result, err: err}
	}
}

func (m *Model) removeFromCollection(trackID int64) tea.Cmd {
	return func() tea.Msg {
		return removedMsg{err: m.deps.Collection.Remove(trackID)}
	}
}

func (m *Model) rate(trackID int64, rating int) tea.Cmd {
	return func() tea.Msg {
		return ratedMsg{rating: rating, err: m.deps.Ratings.Set(trackID, rating)}
	}
}

func (m *Model) openPreview(track models.Track) tea.Cmd {
	return func() tea.Msg {
		if track.PreviewURL == "" {
			return previewMsg{err: fmt.Errorf("no preview available")}
		}
		return previewMsg{err: shared.OpenBrowser(track.PreviewURL)}
	}
}

func (m *Model) renderSearch() string {
	var b strings.Builder

	b.WriteString(styles.title.Render("iTunes Seeker"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Entity: %s (tab to switch)\n", entityLabel(m.entity)))
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(styles.err.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	if m.searching {
		b.WriteString("Searching...\n")
	} else if m.hasResults {
		b.WriteString(m.resultList.View())
		b.WriteString("\n")
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.entity, m.keys.collection, m.keys.quit}
	b.WriteString(m.help.ShortHelpView(helpKeys))
	return b.String()
}

func (m *Model) renderDetails() string {
	track := m.detail.track
	var b strings.Builder

	b.WriteString(styles.title.Render(track.TrackName))
	b.WriteString("\n")
	b.WriteString(track.ArtistName + "\n")
	if track.CollectionName != "" {
		b.WriteString(fmt.Sprintf("Album: %s\n", track.CollectionName))
	}
	if track.ReleaseDate != "" {
		b.WriteString(fmt.Sprintf("Date: %s\n", shared.FormatReleaseDate(track.ReleaseDate)))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Rating: %s\n", styles.star.Render(formatter.Stars(m.detail.rating))))
	if m.view == DetailsView {
		if m.detail.inCollection {
			b.WriteString(styles.ok.Render("In your collection") + "\n")
		} else {
			b.WriteString("Press a to add to your collection\n")
		}
	}

	if m.status != "" {
		b.WriteString(styles.ok.Render(m.status) + "\n")
	}
	if m.err != nil {
		b.WriteString(styles.err.Render(fmt.Sprintf("Error: %v", m.err)) + "\n")
	}

	b.WriteString("\nLyrics\n")
	switch {
	case m.detail.lyricsLoading:
		b.WriteString("Loading lyrics...\n")
	case m.detail.lyricsOK:
		b.WriteString(m.detail.lyrics + "\n")
	default:
		b.WriteString(styles.help.Render("No lyrics available.") + "\n")
	}

	helpKeys := []key.Binding{m.keys.rate, m.keys.preview, m.keys.add, m.keys.back, m.keys.quit}
	b.WriteString("\n" + m.help.ShortHelpView(helpKeys))
	return b.String()
}

func (m *Model) renderAlbumArtist() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.trackList.View(), helpView)
}

func (m *Model) renderCollection() string {
	if m.hasCollection && len(m.collectionList.Items()) == 0 {
		empty := styles.help.Render("Your collection is empty.")
		helpView := m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit})
		return fmt.Sprintf("%s\n%s\n\n%s", styles.title.Render("My Collection"), empty, helpView)
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.remove, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.collectionList.View(), helpView)
}

func nextEntity(e models.EntityType) models.EntityType {
	switch e {
	case models.EntitySong:
		return models.EntityAlbum
	case models.EntityAlbum:
		return models.EntityArtist
	default:
		return models.EntitySong
	}
}

func entityLabel(e models.EntityType) string {
	switch e {
	case models.EntityAlbum:
		return "Albums"
	case models.EntityArtist:
		return "Artists"
	default:
		return "Singles"
	}
}
