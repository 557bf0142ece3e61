package app

import (
	"context"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vivid/internal/engine"
	"github.com/llehouerou/vivid/internal/keymap"
	"github.com/llehouerou/vivid/internal/mpris"
	"github.com/llehouerou/vivid/internal/track"
	"github.com/llehouerou/vivid/internal/ui/spectrum"
	"github.com/llehouerou/vivid/internal/ui/textinput"
)

// volumeStep is the gain change per volume key press.
const volumeStep = 0.05

// TrackLoader starts decoding file contents into a track.
// trackcache.Cache and track.Loader both satisfy it.
type TrackLoader interface {
	Load(ctx context.Context, name string, data []byte) *track.Track
}

// Publisher receives player state after every refresh.
// *mpris.Adapter satisfies it.
type Publisher interface {
	Publish(mpris.Snapshot)
}

// Announcer tells the desktop which track was loaded. Calls may block and
// are made off the update goroutine.
type Announcer interface {
	Announce(title, path string, length time.Duration)
}

// Deps are the collaborators the model drives.
type Deps struct {
	Engine *engine.Engine
	Tracks TrackLoader
	Files  []string

	// Remote and Announcer are optional.
	Remote    Publisher
	Announcer Announcer

	// ReadFile defaults to os.ReadFile.
	ReadFile func(string) ([]byte, error)
	Logger   *slog.Logger
}

// session holds state mutated from engine and track callbacks. Those run on
// the update goroutine but outside Update's return value, so the model
// shares it by pointer.
type session struct {
	generation int // bumped on every file switch; stale results are dropped
	pending    *track.Track
	cancel     context.CancelFunc
	ended      bool   // the loaded track ran out since the last check
	path       string // file the loaded track was read from

	status string
	errMsg string
}

// Model is the root application model.
type Model struct {
	Engine   *engine.Engine
	Tracks   TrackLoader
	Files    []string
	Index    int
	Mode     spectrum.Mode
	ShowHelp bool
	Width    int
	Height   int

	freq []byte
	wave []byte

	prompt textinput.Model

	keys      *keymap.Resolver
	remote    Publisher
	announcer Announcer
	readFile  func(string) ([]byte, error)
	logger    *slog.Logger
	s         *session
}

// New creates the model and subscribes to engine events.
func New(d Deps) Model {
	if d.ReadFile == nil {
		d.ReadFile = os.ReadFile
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	m := Model{
		Engine:    d.Engine,
		Tracks:    d.Tracks,
		Files:     d.Files,
		prompt:    textinput.New(),
		keys:      keymap.NewResolver(keymap.All),
		remote:    d.Remote,
		announcer: d.Announcer,
		readFile:  d.ReadFile,
		logger:    d.Logger,
		s:         &session{},
	}
	m.subscribe()
	return m
}

// Init implements tea.Model. It starts the refresh tick and opens the first
// file.
func (m Model) Init() tea.Cmd {
	if len(m.Files) == 0 {
		m.s.status = "No files given"
		return TickCmd()
	}
	return tea.Batch(TickCmd(), m.open(m.Index))
}

// Status returns the current status line text.
func (m Model) Status() string { return m.s.status }

// Err returns the last error shown to the user, if any.
func (m Model) Err() string { return m.s.errMsg }

// snapshot describes the player for remote readers.
func (m Model) snapshot() mpris.Snapshot {
	e := m.Engine
	s := mpris.Snapshot{
		Volume:      e.Volume(),
		CanPlay:     len(m.Files) > 0,
		HasNext:     m.Index+1 < len(m.Files),
		HasPrevious: m.Index > 0,
	}
	state := e.State()
	if !state.IsLoaded() {
		return s
	}

	s.Status = mpris.StatusPaused
	if state == engine.Playing {
		s.Status = mpris.StatusPlaying
	}
	s.Path = m.s.path
	s.Title = e.Track().Title()
	s.Duration = e.Duration()
	s.Position = e.Elapsed()
	return s
}
