package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tagstorm/internal/core"
	"github.com/vovakirdan/tagstorm/internal/registry"
	"github.com/vovakirdan/tagstorm/internal/storage"
)

// Options carries what a Model needs beyond the scene itself.
type Options struct {
	Store     *storage.Store // Optional; runs are not saved without it
	Intensity string         // Recorded with saved runs
	Logger    *log.Logger
	// Embedded models run inside a menu flow: esc leaves the scene instead
	// of being ignored.
	Embedded bool
}

// RunResult is what a finished scene program reports.
type RunResult struct {
	State      core.SceneState
	BackToMenu bool
}

// Model is the Bubble Tea model that runs one scene.
type Model struct {
	scene    registry.Scene
	screen   *core.Screen
	config   core.RuntimeConfig
	opts     Options
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	camera   *Camera
	input    core.InputFrame
	state    core.SceneState
	lastTick time.Time
	loop     int64

	quitting   bool
	backToMenu bool
	saved      bool // Current run already stored
	standalone bool // Owns its program, so leaving quits it
}

// NewModel creates a model for the given scene.
func NewModel(sc registry.Scene, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		scene:  sc,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		opts:   opts,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		camera: NewCamera(cfg.TickRate),
		input:  core.NewInputFrame(),
		loop:   nextLoop(),
	}
}

// Init resets the scene and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.scene.Reset(m.config)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.scene.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Back) && m.opts.Embedded:
		m.saveRun()
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		// The scene resets on the next tick; keep what this run achieved.
		m.saveRun()
		m.saved = false
		m.state = core.SceneState{}
		m.input.Set(action)
	case core.ActionNone:
	default:
		m.input.Set(action)
	}
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.FrameDelta())
	m.lastTick = now

	result := m.scene.Step(m.input, dt)
	m.state = result.State
	m.input.Clear()

	m.camera.Follow(m.scene.Focus())
	return m, tickCmd(m.config.TickRate, m.loop)
}

// saveRun stores the current run once, if it produced any score.
func (m *Model) saveRun() {
	if m.saved || m.opts.Store == nil || m.state.Score <= 0 {
		return
	}
	m.saved = true

	run := storage.Run{
		SceneID:     m.scene.ID(),
		Intensity:   m.opts.Intensity,
		Seed:        m.config.Seed,
		Ticks:       m.state.Tick,
		Impacts:     m.state.Impacts,
		CascadeHits: m.state.CascadeHits,
		PeakEnergy:  m.state.PeakEnergy,
		Score:       m.state.Score,
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "scene", run.SceneID, "err", err)
		return
	}
	m.logger.Debug("run saved", "scene", run.SceneID, "score", run.Score)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.scene.Render(m.screen, m.camera.Current())

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".tagstorm", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("%s_%s.txt", m.scene.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, the scene keeps running
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the scene above the key help.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	helpView := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys))
	height := max(1, m.config.ScreenH-lipgloss.Height(helpView))
	if m.screen.Width() != m.config.ScreenW || m.screen.Height() != height {
		m.screen.Resize(m.config.ScreenW, height)
	}

	m.scene.Render(m.screen, m.camera.Current())
	return RenderScreen(m.screen) + "\n" + helpView
}

// State returns the last scene state seen by the model.
func (m Model) State() core.SceneState {
	return m.state
}

// IsQuitting returns true if the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave the scene.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for one scene and blocks until the
// user quits or, for embedded models, goes back.
func Run(sc registry.Scene, cfg core.RuntimeConfig, opts Options) (RunResult, error) {
	m := NewModel(sc, cfg, opts)
	m.standalone = true

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return RunResult{}, err
	}
	final, ok := finalModel.(Model)
	if !ok {
		return RunResult{}, nil
	}
	return RunResult{State: final.State(), BackToMenu: final.BackToMenu()}, nil
}
