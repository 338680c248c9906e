package tui

import (
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StarfieldConfig controls the background animation.
type StarfieldConfig struct {
	// Count is the number of stars on a 120×40 terminal; smaller or larger
	// areas scale it proportionally.
	Count int
	FPS   int
}

// DefaultStarfieldConfig returns 200 stars at 15 frames per second.
func DefaultStarfieldConfig() StarfieldConfig {
	return StarfieldConfig{Count: 200, FPS: 15}
}

// referenceArea is the terminal area Count is specified for.
const referenceArea = 120 * 40

// Brightness bounds for the twinkle random walk.
const (
	minBrightness = 0.3
	maxBrightness = 1.0
)

// Star is one point of the field. X and Y are in cells; Speed is rows per
// frame.
type Star struct {
	X, Y       float64
	Speed      float64
	Brightness float64
}

// Starfield is a field of stars drifting down and twinkling.
type Starfield struct {
	cfg    StarfieldConfig
	rng    *rand.Rand
	width  int
	height int
	stars  []Star
}

// Brightness ramp from dimmest to brightest.
var (
	starGlyphs = []string{"·", "·", "∙", "•", "*", "✦"}
	starStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("#3A3A4A")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#55556A")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#7A7A90")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#A0A0B8")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#C8D8FF")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true),
	}
)

// NewStarfield creates an empty field. Stars are placed on the first Resize.
func NewStarfield(cfg StarfieldConfig, rng *rand.Rand) *Starfield {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed))
	}
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultStarfieldConfig().FPS
	}
	return &Starfield{cfg: cfg, rng: rng}
}

// Stars returns the current star positions.
func (s *Starfield) Stars() []Star { return s.stars }

// Resize scatters a fresh set of stars over a width×height area.
func (s *Starfield) Resize(width, height int) {
	s.width, s.height = width, height
	n := 0
	if width > 0 && height > 0 && s.cfg.Count > 0 {
		n = max(s.cfg.Count*width*height/referenceArea, 1)
	}
	s.stars = make([]Star, n)
	for i := range s.stars {
		s.stars[i] = Star{
			X:          s.rng.Float64() * float64(width),
			Y:          s.rng.Float64() * float64(height),
			Speed:      s.rng.Float64()*0.1 + 0.02,
			Brightness: minBrightness + s.rng.Float64()*(maxBrightness-minBrightness),
		}
	}
}

// Step advances every star by one frame: each drifts down by its speed,
// wraps to the top at a random column and nudges its brightness.
func (s *Starfield) Step() {
	for i := range s.stars {
		st := &s.stars[i]
		st.Y += st.Speed
		if st.Y >= float64(s.height) {
			st.Y = 0
			st.X = s.rng.Float64() * float64(s.width)
		}
		st.Brightness += (s.rng.Float64() - 0.5) * 0.1
		st.Brightness = min(max(st.Brightness, minBrightness), maxBrightness)
	}
}

// Tick schedules the next frame.
func (s *Starfield) Tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(s.cfg.FPS), func(t time.Time) tea.Msg {
		return MsgStarTick(t)
	})
}

// View renders the field with title centered on the middle row.
func (s *Starfield) View(title string) string {
	if s.width <= 0 || s.height <= 0 {
		return ""
	}
	grid := make([][]string, s.height)
	for y := range grid {
		grid[y] = make([]string, s.width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	for _, st := range s.stars {
		x, y := int(st.X), int(st.Y)
		if x < 0 || x >= s.width || y < 0 || y >= s.height {
			continue
		}
		idx := int((st.Brightness - minBrightness) / (maxBrightness - minBrightness) * float64(len(starGlyphs)-1))
		idx = min(max(idx, 0), len(starGlyphs)-1)
		grid[y][x] = starStyles[idx].Render(starGlyphs[idx])
	}

	mid := s.height / 2
	titleW := lipgloss.Width(title)
	if title != "" && titleW+2 <= s.width {
		start := (s.width - titleW) / 2
		row := grid[mid][:start]
		row = append(row, styleSkyTitle.Render(title))
		grid[mid] = append(row, grid[mid][start+titleW:]...)
	}

	lines := make([]string, s.height)
	for y, row := range grid {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}
