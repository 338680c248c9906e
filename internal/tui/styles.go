package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary       = lipgloss.Color("#00D4FF") // Cyan: primary accent
	colorNebula        = lipgloss.Color("#B794F6") // Violet: secondary accent
	colorAccent        = lipgloss.Color("#FFD700") // Gold: today, attention
	colorSuccess       = lipgloss.Color("#00FF88") // Green: confirmed, sent
	colorDanger        = lipgloss.Color("#FF5252") // Red: errors
	colorMuted         = lipgloss.Color("#636363") // Gray: de-emphasized
	colorMutedLight    = lipgloss.Color("#8C8C8C") // Lighter gray: normal text
	colorWhite         = lipgloss.Color("#EEEEEE") // Off-white: primary text
	colorBrightWhite   = lipgloss.Color("#FFFFFF") // Pure white: emphatic text
	colorSurface       = lipgloss.Color("#1E1E2E") // Dark surface: status bar bg
	colorSurfaceBright = lipgloss.Color("#2A2A3C") // Lighter surface: range bg
	colorSurfaceDim    = lipgloss.Color("#181825") // Darkest surface: footer bg
)

// Selection indicator prepended to the active row.
const selectionIndicator = "▎"

// Status bar styles: visually dominant with solid background.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusLabel = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleStatusValue = lipgloss.NewStyle().
				Foreground(colorWhite)

	styleStatusTotal = lipgloss.NewStyle().
				Foreground(colorAccent)
)

// Section tab styles.
var (
	styleTabActive = lipgloss.NewStyle().
			Foreground(colorBrightWhite).
			Background(colorSurfaceBright).
			Bold(true).
			Padding(0, 2)

	styleTabInactive = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)
)

// Row and form field styles.
var (
	styleRowSelected = lipgloss.NewStyle().
				Foreground(colorBrightWhite).
				Bold(true)

	styleRowNormal = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleSelectionIndicator = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleFieldLabel = lipgloss.NewStyle().
			Foreground(colorMutedLight).
			Width(14)

	styleFieldValue = lipgloss.NewStyle().
			Foreground(colorWhite)

	styleFieldPlaceholder = lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true)

	styleButton = lipgloss.NewStyle().
			Foreground(colorBrightWhite).
			Background(colorSurfaceBright).
			Padding(0, 2)

	styleButtonFocused = lipgloss.NewStyle().
				Foreground(colorSurfaceDim).
				Background(colorPrimary).
				Bold(true).
				Padding(0, 2)

	styleButtonSent = lipgloss.NewStyle().
			Foreground(colorSurfaceDim).
			Background(colorSuccess).
			Bold(true).
			Padding(0, 2)

	stylePrice = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleDim = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// Calendar cell styles, one per calendar.CellState.
var (
	styleCellPast = lipgloss.NewStyle().
			Foreground(colorMuted).
			Strikethrough(true)

	styleCellToday = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleCellSelected = lipgloss.NewStyle().
				Foreground(colorSurfaceDim).
				Background(colorPrimary).
				Bold(true)

	styleCellInRange = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Background(colorSurfaceBright)

	styleCellNormal = lipgloss.NewStyle().
			Foreground(colorWhite)

	// styleCellCursor marks the keyboard cursor on top of the state style.
	styleCellCursor = lipgloss.NewStyle().
			Underline(true).
			Reverse(true)

	styleCalendarHeader = lipgloss.NewStyle().
				Foreground(colorMutedLight)
)

// Detail panel styles: rounded border, styled title.
var (
	styleDetailBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorNebula).
				Padding(0, 1)

	styleDetailTitle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleDetailDim = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleDetailSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleDetailHeaderLabel = lipgloss.NewStyle().
				Foreground(colorMutedLight)

	styleDetailHeaderValue = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true)

	styleScrollIndicator = lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true)
)

// Overlay styles.
var (
	styleOverlay = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)

	styleOverlaySuccess = lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(colorSuccess).
				Padding(1, 2)

	styleOverlayTitle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleOverlayHint = lipgloss.NewStyle().
				Foreground(colorMuted)
)

// Toast styles.
var (
	styleToast = lipgloss.NewStyle().
			Foreground(colorBrightWhite).
			Background(colorSurfaceBright).
			Padding(0, 1)

	styleToastError = lipgloss.NewStyle().
			Foreground(colorBrightWhite).
			Background(colorDanger).
			Bold(true).
			Padding(0, 1)
)

// Footer styles: top border, clear key/desc contrast.
var (
	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)

// Sky band title.
var styleSkyTitle = lipgloss.NewStyle().
	Foreground(colorPrimary).
	Bold(true)
