package tui

import (
	"fmt"
	"image"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/image/draw"

	"github.com/vovakirdan/polyscatter/internal/config"
	"github.com/vovakirdan/polyscatter/internal/core"
	"github.com/vovakirdan/polyscatter/internal/geometry"
	"github.com/vovakirdan/polyscatter/internal/sampler"
	"github.com/vovakirdan/polyscatter/internal/scene"
	"github.com/vovakirdan/polyscatter/internal/surface/raster"
)

// statusLines is the number of terminal rows reserved below the canvas.
const statusLines = 1

// ViewerConfig holds everything a viewer session needs.
type ViewerConfig struct {
	Render    config.RenderConfig
	Catalogue geometry.Catalogue

	// Seed for the shape sampler. 0 means time based.
	Seed int64

	// Backdrop shows through transparent pixels.
	Backdrop core.Color

	// SnapshotDir is where saved PNGs go. Empty means ~/.polyscatter/snapshots.
	SnapshotDir string

	// Width and Height are the initial terminal size in cells.
	Width  int
	Height int

	Logger *log.Logger
}

// surfaceOwner tracks the surface a viewer currently paints on. It is
// shared by every copy of a Model so the surface can be released from
// outside the event loop.
type surfaceOwner struct {
	mu      sync.Mutex
	current *raster.Surface
	closed  bool
}

// swap makes s the current surface and closes the previous one.
func (o *surfaceOwner) swap(s *raster.Surface) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.current != nil && o.current != s {
		o.current.Close()
	}
	o.current = s
	if o.closed {
		s.Close()
	}
}

// close releases the current surface. Later calls do nothing.
func (o *surfaceOwner) close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return nil
	}
	o.closed = true
	if o.current == nil {
		return nil
	}
	return o.current.Close()
}

// Model is the Bubble Tea model showing a scene in the terminal.
// A terminal resize is the scene's viewport resize event.
type Model struct {
	cfg     ViewerConfig
	scene   *scene.Scene
	surface *raster.Surface
	owner   *surfaceOwner
	screen  *core.Screen
	logger  *log.Logger

	keys       KeyMap
	help       help.Model
	table      table.Model
	showShapes bool

	width    int
	height   int
	status   string
	quitting bool
}

// NewModel creates a viewer and paints the first generation.
func NewModel(cfg ViewerConfig) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Catalogue.Len() == 0 {
		cfg.Catalogue = geometry.DefaultCatalogue()
	}

	screen := core.NewScreen(cfg.Width, max(cfg.Height-statusLines, 0))
	rc := cfg.Render
	if rc.Canvas.TrackViewport {
		rc.Canvas.Width, rc.Canvas.Height = screen.PixelSize()
	}

	sc, err := scene.New(rc, cfg.Catalogue, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.Width

	surface := raster.New(sc.Size())
	m := Model{
		cfg:     cfg,
		scene:   sc,
		surface: surface,
		owner:   &surfaceOwner{current: surface},
		screen:  screen,
		logger:  cfg.Logger,
		keys:    DefaultKeyMap(),
		help:    h,
		width:   cfg.Width,
		height:  cfg.Height,
	}
	m.table = m.createTable()

	if err := sc.Load(m.surface); err != nil {
		m.Close()
		return Model{}, err
	}
	m.present()
	m.updateTableRows()
	return m, nil
}

// Init initializes the model. The first frame is painted by NewModel.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Regenerate):
		if err := m.scene.Regenerate(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = ""
		m.repaint()
		m.updateTableRows()
		return m, nil

	case key.Matches(msg, m.keys.Save):
		path, err := m.saveSnapshot()
		if err != nil {
			m.logger.Error("snapshot failed", "error", err)
			m.status = "save failed: " + err.Error()
			return m, nil
		}
		m.logger.Info("snapshot saved", "path", path)
		m.status = "saved " + path
		return m, nil

	case key.Matches(msg, m.keys.Shapes):
		m.showShapes = !m.showShapes
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		if m.showShapes {
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, max(msg.Height-statusLines, 0))

	// Resampling happens even if the scene keeps its size
	if err := m.scene.Resize(m.screen.PixelSize()); err != nil {
		m.status = err.Error()
		return m, nil
	}

	w, h := m.scene.Size()
	if sw, sh := m.surface.Size(); sw != max(w, 1) || sh != max(h, 1) {
		m.surface = raster.New(w, h)
		m.owner.swap(m.surface)
	}

	m.repaint()
	m.table = m.createTable()
	m.updateTableRows()
	return m, nil
}

// repaint redraws the scene and copies it to the screen buffer.
func (m *Model) repaint() {
	if err := m.scene.Paint(m.surface); err != nil {
		m.logger.Error("paint failed", "error", err)
		m.status = err.Error()
		return
	}
	m.present()
}

// present scales the rendered scene to the screen's pixel grid.
func (m *Model) present() {
	pw, ph := m.screen.PixelSize()
	if pw == 0 || ph == 0 {
		return
	}

	img := m.surface.Image()
	if b := img.Bounds(); b.Dx() != pw || b.Dy() != ph {
		dst := image.NewNRGBA(image.Rect(0, 0, pw, ph))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
	}
	m.screen.Blit(img, m.cfg.Backdrop)
}

// saveSnapshot writes the full-resolution scene as a PNG file.
func (m *Model) saveSnapshot() (string, error) {
	dir := m.cfg.SnapshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".polyscatter", "snapshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create snapshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("polyscatter_%s.png", timestamp))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("cannot create snapshot: %w", err)
	}
	defer f.Close()

	if err := m.surface.EncodePNG(f); err != nil {
		return "", err
	}
	return path, nil
}

// createTable creates the shape table sized to the terminal.
func (m Model) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Mode", Width: 7},
		{Title: "Kind", Width: 11},
		{Title: "X", Width: 6},
		{Title: "Y", Width: 6},
		{Title: "Size", Width: 5},
		{Title: "Rot", Width: 5},
		{Title: "Color", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-4, 3)), // Header and help line
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows lists the current stroked then filled shapes.
func (m *Model) updateTableRows() {
	stroked, filled := m.scene.Stroked(), m.scene.Filled()
	rows := make([]table.Row, 0, len(stroked)+len(filled))

	add := func(mode string, i int, sh sampler.Shape) {
		rows = append(rows, table.Row{
			strconv.Itoa(i),
			mode,
			sh.Kind.String(),
			strconv.Itoa(sh.X),
			strconv.Itoa(sh.Y),
			strconv.Itoa(sh.Size),
			fmt.Sprintf("%.0f°", sh.Rotation*180/math.Pi),
			sh.Color,
		})
	}
	for i, sh := range stroked {
		add("stroke", i, sh)
	}
	for i, sh := range filled {
		add("fill", i, sh)
	}

	m.table.SetRows(rows)
	m.table.GotoTop()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.showShapes {
		w, h := m.scene.Size()
		title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
		b.WriteString(title.Render(fmt.Sprintf("SHAPES - %dx%d canvas", w, h)))
		b.WriteString("\n")
		b.WriteString(m.table.View())
	} else {
		b.WriteString(RenderScreen(m.screen))
	}
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

// statusLine shows the last status message or the key help.
func (m Model) statusLine() string {
	if m.status != "" && !m.help.ShowAll {
		dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		return dim.Render(m.status)
	}
	return m.help.View(m.keys)
}

// Close releases the viewer's drawing surface. It is safe to call more
// than once and from any copy of the model.
func (m Model) Close() error {
	return m.owner.close()
}

// Scene returns the scene shown by the viewer.
func (m Model) Scene() *scene.Scene {
	return m.scene
}

// Run starts the Bubble Tea program with a new viewer.
func Run(cfg ViewerConfig) error {
	model, err := NewModel(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
