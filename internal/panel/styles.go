package panel

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	colorLCDText  = lipgloss.Color("#1B2A0E")
	colorLCDBack  = lipgloss.Color("#9BBC0F")
	colorLEDOn    = lipgloss.Color("#FF3300")
	colorLEDOff   = lipgloss.Color("#4A1A10")
	colorToneOn   = lipgloss.Color("#FFAA00")
	colorDim      = lipgloss.Color("#777777")
	colorBorder   = lipgloss.Color("#00AA22")
	colorTitle    = lipgloss.Color("#00FF41")
	colorWarning  = lipgloss.Color("#FF3300")
	colorHelpKeys = lipgloss.Color("#00CC33")
)

// Pre-built styles.
var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorTitle).
			Bold(true).
			Padding(0, 1)

	styleLCD = lipgloss.NewStyle().
			Foreground(colorLCDText).
			Background(colorLCDBack).
			Padding(0, 1)

	styleFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	styleLEDOn = lipgloss.NewStyle().
			Foreground(colorLEDOn).
			Bold(true)

	styleLEDOff = lipgloss.NewStyle().
			Foreground(colorLEDOff)

	styleToneOn = lipgloss.NewStyle().
			Foreground(colorToneOn).
			Bold(true)

	styleDim = lipgloss.NewStyle().
			Foreground(colorDim)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	styleHelpKey = lipgloss.NewStyle().
			Foreground(colorHelpKeys).
			Bold(true)
)
