package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/satbox/internal/core"
	"github.com/vovakirdan/satbox/internal/render"
	"github.com/vovakirdan/satbox/internal/scene"
	"github.com/vovakirdan/satbox/internal/sim"
	"github.com/vovakirdan/satbox/internal/storage"
)

// Model is the Bubble Tea model for running the collision sandbox.
type Model struct {
	world      *sim.World
	views      []*render.ShapeView
	scn        scene.Scene
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	state      sim.State
	startedAt  time.Time
	quitting   bool
	saved      bool // Whether the session stats have been persisted
}

// NewModel creates a new Bubble Tea model for the given scene.
func NewModel(scn scene.Scene, store *storage.Store, cfg core.RuntimeConfig, sacrificeMTV bool) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	world, err := sim.NewWorld(scn, cfg)
	if err != nil {
		return Model{}, err
	}
	world.SacrificeMTV = sacrificeMTV

	m := Model{
		world:      world,
		scn:        scn,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		startedAt:  time.Now(),
	}
	m.rebuildViews()
	return m, nil
}

// rebuildViews attaches a screen target to every body. Views stay valid
// until the next world reset swaps the shapes out.
func (m *Model) rebuildViews() {
	bodies := m.world.Bodies()
	m.views = make([]*render.ShapeView, 0, len(bodies))
	for _, b := range bodies {
		target := &render.ScreenTarget{
			Screen: m.screen,
			Color:  b.Color,
			Circle: b.Shape.IsCircle(),
			Offset: mgl64.Vec2{1, 1}, // bounds coords sit inside the arena outline
		}
		m.views = append(m.views, render.NewShapeView(b.Shape, target))
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
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
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveSession()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The scene bounds stay fixed;
// only the drawing surface grows or shrinks.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	restartRequested := m.inputFrame.Has(core.ActionRestart)

	m.state = m.world.Step(m.inputFrame)
	m.inputFrame.Clear()

	// A restart rebuilds the shapes, so the views must follow.
	if restartRequested {
		m.rebuildViews()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveSession persists the session stats (once).
func (m *Model) saveSession() {
	if m.saved || m.store == nil {
		return
	}
	st := m.world.State()
	if st.Tick == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, shutdown continues regardless
	m.store.SaveSession(m.scn.Name, st.Tick, st.Collisions, time.Since(m.startedAt))
	m.saved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()

	// Arena outline around the scene bounds
	m.screen.DrawBox(0, 0, int(m.scn.Bounds.W)+2, int(m.scn.Bounds.H)+2)

	for _, v := range m.views {
		v.Sync()
	}

	m.drawHUD()

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// drawHUD writes the status line above the arena floor.
func (m Model) drawHUD() {
	st := m.state
	status := fmt.Sprintf(" %s | tick %d | hits %d | sel %s", m.scn.Name, st.Tick, st.Collisions, st.Selected)
	if !st.Resolve {
		status += " | resolve off"
	}
	if st.Paused {
		status += " | PAUSED"
	}
	m.screen.DrawTextColored(1, m.screen.Height()-1, status, core.ColorGray)

	if st.HasLastMTV {
		mtv := fmt.Sprintf("mtv (%.2f, %.2f) ", st.LastMTV.X(), st.LastMTV.Y())
		m.screen.DrawTextColored(m.screen.Width()-len(mtv)-1, 0, mtv, core.ColorBrightYellow)
	}
}

// Run starts the Bubble Tea program for the given scene.
func Run(scn scene.Scene, store *storage.Store, cfg core.RuntimeConfig, sacrificeMTV bool) error {
	model, err := NewModel(scn, store, cfg, sacrificeMTV)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
