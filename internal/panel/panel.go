package panel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/oshokin/touch-alarm/internal/board/sim"
	"github.com/oshokin/touch-alarm/internal/display"
	"github.com/oshokin/touch-alarm/internal/keypad"
)

// refreshInterval is the redraw period.
const refreshInterval = 50 * time.Millisecond

// TickMsg triggers a redraw.
type TickMsg time.Time

// Sounder reports whether the alarm tone is playing.
type Sounder interface {
	Sounding() bool
}

// Options wires the panel to the board.
type Options struct {
	Board *sim.Board
	// Channels are the touch channels of pad A and pad B.
	Channels [2]uint8
	Tone     Sounder
	// State returns the alarm state name.
	State func() string
}

var errMissingBoard = errors.New("panel board is not set")

// frame is what one redraw shows.
type frame struct {
	lines  [display.Rows]string
	leds   [2]bool
	pads   [2]bool
	tilted bool
	tone   bool
	state  string
}

// Model is the Bubble Tea model of the front panel.
type Model struct {
	opts  Options
	frame frame
}

// New creates a model for opts.
func New(opts Options) (Model, error) {
	if opts.Board == nil {
		return Model{}, errMissingBoard
	}

	m := Model{opts: opts}
	m.frame = m.sample()

	return m, nil
}

// Init starts the redraw tick.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles keys and ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		m.frame = m.sample()

		return m, tickCmd()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	board := m.opts.Board

	switch key := msg.String(); key {
	case "q", "Q", "ctrl+c":
		return m, tea.Quit
	case "a", "A", "c", "C", "d", "D":
		board.Keys.Press(keypad.FromRune([]rune(key)[0]))
	case "1":
		board.Touch.Toggle(m.opts.Channels[0])
	case "2":
		board.Touch.Toggle(m.opts.Channels[1])
	case "t", "T":
		board.Accel.SetTilt(!board.Accel.Tilted())
	}

	m.frame = m.sample()

	return m, nil
}

// View renders the panel.
func (m Model) View() string {
	f := m.frame

	lcd := styleLCD.Render(f.lines[0] + "\n" + f.lines[1])

	var indicators strings.Builder

	for i, name := range []string{"LED8", "LED9"} {
		fmt.Fprintf(&indicators, "%s %s  pad %s %s\n",
			name, led(f.leds[i]), string(rune('A'+i)), pad(f.pads[i]))
	}

	tone := styleDim.Render("silent")
	if f.tone {
		tone = styleToneOn.Render("TONE")
	}

	tilt := styleDim.Render("at rest")
	if f.tilted {
		tilt = styleWarning.Render("TILTED")
	}

	status := fmt.Sprintf("state %s  tone %s  board %s", f.state, tone, tilt)

	body := lipgloss.JoinVertical(lipgloss.Left,
		styleTitle.Render("touch-alarm"),
		lcd,
		"",
		strings.TrimRight(indicators.String(), "\n"),
		status,
	)

	return styleFrame.Render(body) + "\n" + help() + "\n"
}

// Run shows the panel until the user quits or ctx is done.
func Run(ctx context.Context, opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err = p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run front panel: %w", err)
	}

	return nil
}

func (m Model) sample() frame {
	board := m.opts.Board

	f := frame{
		lines:  board.Display.Lines(),
		leds:   [2]bool{board.LEDs[0].On(), board.LEDs[1].On()},
		pads:   [2]bool{board.Touch.Pressed(m.opts.Channels[0]), board.Touch.Pressed(m.opts.Channels[1])},
		tilted: board.Accel.Tilted(),
	}

	if m.opts.Tone != nil {
		f.tone = m.opts.Tone.Sounding()
	}

	if m.opts.State != nil {
		f.state = m.opts.State()
	}

	return f
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func led(on bool) string {
	if on {
		return styleLEDOn.Render("●")
	}

	return styleLEDOff.Render("○")
}

func pad(pressed bool) string {
	if pressed {
		return styleWarning.Render("touched")
	}

	return styleDim.Render("-")
}

func help() string {
	keys := []struct{ key, label string }{
		{"a", "arm"},
		{"d", "disarm"},
		{"c", "checksum"},
		{"1/2", "touch pad"},
		{"t", "tilt"},
		{"q", "quit"},
	}

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, styleHelpKey.Render(k.key)+" "+styleDim.Render(k.label))
	}

	return strings.Join(parts, "  ")
}
