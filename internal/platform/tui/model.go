package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadrage/internal/core"
	"github.com/vovakirdan/roadrage/internal/registry"
)

// statusSeconds is how long a status message replaces the help bar.
const statusSeconds = 3.0

// haltCues stop the latched heading so a respawned or rebuilt vehicle
// waits for a fresh direction.
var haltCues = []string{"run_start", "level_up", "life_lost", "game_over"}

// CuePlayer plays named sound cues.
type CuePlayer interface {
	PlayAll(cues []string)
}

// Options configures optional platform services.
type Options struct {
	Sound  CuePlayer   // nil disables audio
	Logger *log.Logger // nil discards logs
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	clock      *core.StepClock
	inputFrame core.InputFrame
	gameState  core.GameState
	sound      CuePlayer
	logger     *log.Logger
	lastTick   time.Time
	status     string
	statusTTL  float64
	width      int
	height     int
	quitting   bool

	// writeClipboard is swapped out in tests.
	writeClipboard func(string) error
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:           game,
		screen:         core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:         cfg,
		keys:           NewKeyMapper(),
		help:           h,
		clock:          core.NewStepClock(core.FixedStep),
		inputFrame:     core.NewInputFrame(),
		sound:          opts.Sound,
		logger:         logger,
		width:          cfg.ScreenW,
		height:         cfg.ScreenH,
		writeClipboard: clipboard.WriteAll,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	res := m.keys.MapKey(msg)

	switch res.Command {
	case CommandQuit:
		m.quitting = true
		return m, tea.Quit
	case CommandDump:
		m.copyDump()
		return m, nil
	case CommandScreenshot:
		m.saveScreenshot()
		return m, nil
	case CommandHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	res.Apply(&m.inputFrame)
	return m, nil
}

// handleResize processes window resize events. The world keeps its size;
// only the viewport changes, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs as many fixed steps as the elapsed wall time allows.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frameDT := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		frameDT = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	steps := m.clock.Advance(frameDT)
	for range steps {
		frame := m.inputFrame.Clone()
		result := m.game.Step(frame)
		m.gameState = result.State

		// Edge actions are delivered to one step only.
		m.inputFrame.Clear()
		m.drainCues()
	}

	if m.statusTTL > 0 {
		m.statusTTL -= frameDT
		if m.statusTTL <= 0 {
			m.status = ""
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// drainCues forwards sound cues and drops the latched heading on events
// that reposition the vehicle.
func (m *Model) drainCues() {
	src, ok := m.game.(registry.CueSource)
	if !ok {
		return
	}
	cues := src.DrainCues()
	if len(cues) == 0 {
		return
	}
	if m.sound != nil {
		m.sound.PlayAll(cues)
	}
	for _, c := range cues {
		if slices.Contains(haltCues, c) {
			m.inputFrame.SetAxis(0, 0)
			return
		}
	}
}

// copyDump puts the game's debug snapshot on the clipboard. When no
// clipboard is available it is written under ~/.arcade/dumps instead.
func (m *Model) copyDump() {
	d, ok := m.game.(registry.Dumper)
	if !ok {
		m.setStatus("debug dump not supported")
		return
	}
	data, err := d.Dump()
	if err != nil {
		m.logger.Error("debug dump failed", "err", err)
		m.setStatus("debug dump failed")
		return
	}

	err = m.writeClipboard(string(data))
	if err == nil {
		m.setStatus("debug dump copied to clipboard")
		return
	}
	m.logger.Warn("clipboard unavailable", "err", err)

	path, err := writeArcadeFile("dumps", fmt.Sprintf("%s_%s.json", m.game.ID(), timestamp()), data)
	if err != nil {
		m.logger.Error("debug dump not saved", "err", err)
		m.setStatus("debug dump failed")
		return
	}
	m.logger.Info("debug dump saved", "path", path)
	m.setStatus("debug dump saved to " + path)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	path, err := writeArcadeFile("screenshots", fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp()), []byte(m.screen.String()))
	if err != nil {
		m.logger.Error("screenshot not saved", "err", err)
		m.setStatus("screenshot failed")
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.setStatus("screenshot saved")
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTTL = statusSeconds
}

// writeArcadeFile writes data to ~/.arcade/<dir>/<name>.
func writeArcadeFile(dir, name string, data []byte) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	full := filepath.Join(home, ".arcade", dir)
	if err := os.MkdirAll(full, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(full, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

func timestamp() string {
	return time.Now().Format("20060102_150405")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	footer := m.status
	if footer == "" {
		footer = m.help.View(m.keys.Keys)
	}

	// The game gets whatever rows the footer leaves.
	rows := max(m.height-lipgloss.Height(footer), 1)
	if m.screen.Height() != rows || m.screen.Width() != m.width {
		m.screen.Resize(m.width, rows)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
