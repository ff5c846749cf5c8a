// Package tui is the interactive terminal front end: seven force
// sliders, the color panel, the trajectory chart, preset cycling, and
// play/pause/reset controls. It is purely a caller of the simulation
// driver; all model state lives in internal/sim.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/allelesim/internal/config"
	"github.com/san-kum/allelesim/internal/genetics"
	"github.com/san-kum/allelesim/internal/sim"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

const (
	sliderWidth = 20
	chartWidth  = 64
	chartHeight = 10
	adjustStep  = 2.0
)

// paramLabels index the seven ForceParams fields in display order.
var paramLabels = []string{
	"mutation",
	"selection",
	"gene flow",
	"drift",
	"recombination",
	"population",
	"speed",
}

func paramField(p *genetics.ForceParams, i int) *float64 {
	switch i {
	case 0:
		return &p.MutationRate
	case 1:
		return &p.SelectionStrength
	case 2:
		return &p.GeneFlowRate
	case 3:
		return &p.DriftStrength
	case 4:
		return &p.RecombinationRate
	case 5:
		return &p.PopulationSize
	default:
		return &p.ReplicationSpeed
	}
}

type tickMsg time.Time

// frame re-renders at ~30fps; the driver ticks on its own timer.
func frame() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	driver   *sim.Driver
	params   genetics.ForceParams
	preset   string
	cursor   int
	showHelp bool
	width    int
	height   int
}

func newModel(driver *sim.Driver) model {
	return model{
		driver: driver,
		params: driver.Params(),
		width:  80,
		height: 24,
	}
}

// Run starts the interactive UI around a fresh driver and blocks until
// the user quits.
func Run() error {
	driver := sim.NewDriver(genetics.DefaultParams(), nil)
	p := tea.NewProgram(newModel(driver), tea.WithAltScreen())
	_, err := p.Run()
	driver.Pause()
	return err
}

func (m model) Init() tea.Cmd { return frame() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		return m, frame()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		if m.driver.State().Running {
			m.driver.Pause()
		} else {
			m.driver.Start()
		}
	case "r":
		m.driver.Reset()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(paramLabels)-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-adjustStep)
	case "right", "l":
		m.adjust(adjustStep)
	case "shift+left", "H":
		m.adjust(-10 * adjustStep)
	case "shift+right", "L":
		m.adjust(10 * adjustStep)
	case "p":
		m.cyclePreset()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// adjust moves the selected slider and pushes the new snapshot to the
// driver; it takes effect on the next tick.
func (m *model) adjust(delta float64) {
	field := paramField(&m.params, m.cursor)
	*field += delta
	m.params = m.params.Clamped()
	m.preset = ""
	m.driver.Configure(m.params)
}

// cyclePreset applies the next pathogen preset, replacing the whole
// parameter snapshot.
func (m *model) cyclePreset() {
	names := config.ListPresets()
	if len(names) == 0 {
		return
	}
	next := names[0]
	for i, name := range names {
		if name == m.preset {
			next = names[(i+1)%len(names)]
			break
		}
	}
	preset, ok := config.GetPreset(next)
	if !ok {
		return
	}
	m.preset = preset.Name
	m.params = preset.Forces
	m.driver.Configure(m.params)
}

func (m model) View() string {
	st := m.driver.State()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("         " + cyan.Render("a l l e l e s i m") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	statusIcon := yellow.Render("○")
	statusText := yellow.Render("paused")
	if st.Running {
		statusIcon = green.Render("●")
		statusText = green.Render("running")
	}
	presetName := m.preset
	if presetName == "" {
		presetName = "custom"
	}
	b.WriteString(fmt.Sprintf("   %s %s   %s %s   %s %s\n\n",
		statusIcon, statusText,
		dim.Render("preset"), white.Render(presetName),
		dim.Render("generation"), white.Render(fmt.Sprintf("%d", st.Generation))))

	b.WriteString(m.viewChart(st))
	b.WriteString(m.viewColorPanel())
	b.WriteString(m.viewSliders())

	if m.showHelp {
		b.WriteString(m.viewHelp())
	} else {
		b.WriteString(dim.Render("   space play/pause  r reset  p preset  ↑↓ select  ←→ adjust  ? help  q quit") + "\n")
	}
	return b.String()
}

func (m model) viewChart(st sim.State) string {
	var b strings.Builder
	if len(st.History) > 1 {
		chart := asciigraph.Plot(st.History,
			asciigraph.Height(chartHeight),
			asciigraph.Width(chartWidth),
			asciigraph.LowerBound(0),
			asciigraph.UpperBound(1),
			asciigraph.Caption(fmt.Sprintf("resistant allele frequency  p=%.3f", st.Frequency)),
		)
		for _, line := range strings.Split(chart, "\n") {
			b.WriteString("   " + line + "\n")
		}
	} else {
		b.WriteString(dim.Render(fmt.Sprintf("   p = %.3f  (press space to run)", st.Frequency)) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// viewColorPanel renders the force color encoding as a filled swatch.
// Alpha is composited against the panel background since terminal cells
// have no opacity; recombination gets its own texture ramp because it
// deliberately has no color channel.
func (m model) viewColorPanel() string {
	c := genetics.ColorEncoding(m.params)

	fg := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	bg := colorful.Color{R: 0.07, G: 0.07, B: 0.08}
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(bg.BlendRgb(fg, c.Alpha).Hex())).
		Render(strings.Repeat(" ", 12))

	var b strings.Builder
	b.WriteString("   " + swatch +
		dim.Render(fmt.Sprintf("  rgba(%d, %d, %d, %.2f)", c.R, c.G, c.B, c.Alpha)) +
		"   " + magenta.Render(textureRamp(m.params.RecombinationRate)) +
		dim.Render(" recombination") + "\n\n")
	return b.String()
}

// textureRamp encodes recombination intensity as glyph density.
func textureRamp(rec float64) string {
	glyphs := []rune{' ', '░', '▒', '▓', '█'}
	idx := int(rec / genetics.ParamMax * float64(len(glyphs)-1))
	if idx >= len(glyphs) {
		idx = len(glyphs) - 1
	}
	return strings.Repeat(string(glyphs[idx]), 4)
}

func (m model) viewSliders() string {
	var b strings.Builder
	for i, label := range paramLabels {
		val := *paramField(&m.params, i)
		filled := int(val / genetics.ParamMax * sliderWidth)
		if filled > sliderWidth {
			filled = sliderWidth
		}
		bar := strings.Repeat("━", filled) + strings.Repeat("─", sliderWidth-filled)
		line := fmt.Sprintf("%-14s %s %5.1f", label, bar, val)
		if i == m.cursor {
			b.WriteString("   " + cyan.Render("▸ ") + white.Render(line) + "\n")
		} else {
			b.WriteString("     " + dim.Render(line) + "\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (m model) viewHelp() string {
	var b strings.Builder
	b.WriteString(dim.Render("   space  play / pause the simulation") + "\n")
	b.WriteString(dim.Render("   r      reset to p=0.5, generation 0") + "\n")
	b.WriteString(dim.Render("   p      cycle pathogen presets (replaces every slider)") + "\n")
	b.WriteString(dim.Render("   ↑↓/kj  select a force slider") + "\n")
	b.WriteString(dim.Render("   ←→/hl  adjust (shift for coarse steps)") + "\n")
	b.WriteString(dim.Render("   q      quit") + "\n")
	return b.String()
}
