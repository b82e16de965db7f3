package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors of the desktop, the window and its chrome.
type Theme struct {
	Name string

	Desktop string // Behind the window
	Window  string // Window face
	Text    string // Text on the window face

	TitleBg   string
	TitleText string

	Panel     string // Sunken content panel
	PanelText string

	Highlight string // Bevel light edge
	Shadow    string // Bevel dark edge

	Muted   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Desktop: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Desktop)),

		Window: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Window)).
			Foreground(lipgloss.Color(t.Text)),

		TitleBar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.TitleBg)).
			Foreground(lipgloss.Color(t.TitleText)).
			Bold(true),

		Panel: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Panel)).
			Foreground(lipgloss.Color(t.PanelText)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Button: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Window)).
			Foreground(lipgloss.Color(t.Text)).
			Bold(true).
			Padding(0, 1),

		ButtonDisabled: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Window)).
			Foreground(lipgloss.Color(t.Shadow)).
			Padding(0, 1),

		Raised: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderTopForeground(lipgloss.Color(t.Highlight)).
			BorderLeftForeground(lipgloss.Color(t.Highlight)).
			BorderBottomForeground(lipgloss.Color(t.Shadow)).
			BorderRightForeground(lipgloss.Color(t.Shadow)).
			BorderBackground(lipgloss.Color(t.Window)),

		Sunken: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderTopForeground(lipgloss.Color(t.Shadow)).
			BorderLeftForeground(lipgloss.Color(t.Shadow)).
			BorderBottomForeground(lipgloss.Color(t.Highlight)).
			BorderRightForeground(lipgloss.Color(t.Highlight)).
			BorderBackground(lipgloss.Color(t.Window)),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Desktop  lipgloss.Style
	Window   lipgloss.Style
	TitleBar lipgloss.Style
	Panel    lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style

	// Bevels: light top/left for raised controls, inverted for sunken ones.
	Raised lipgloss.Style
	Sunken lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Win98":    win98Theme(),
	"Slate":    slateTheme(),
	"Nightfox": nightfoxTheme(),
}

var themeOrder = []string{"Win98", "Slate", "Nightfox"}

// GetTheme returns a theme by name, falling back to Win98.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return win98Theme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}

func win98Theme() Theme {
	return Theme{
		Name: "Win98",

		Desktop: "#008080", // teal
		Window:  "#c0c0c0", // silver
		Text:    "#000000",

		TitleBg:   "#000080", // navy
		TitleText: "#ffffff",

		Panel:     "#ffffff",
		PanelText: "#000000",

		Highlight: "#ffffff",
		Shadow:    "#808080",

		Muted:   "#404040",
		Accent:  "#000080",
		Success: "#008000",
		Warning: "#808000",
		Danger:  "#800000",
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Desktop: "#020617", // slate-950
		Window:  "#1e293b", // slate-800
		Text:    "#f1f5f9", // slate-100

		TitleBg:   "#0284c7", // sky-600
		TitleText: "#f8fafc", // slate-50

		Panel:     "#0f172a", // slate-900
		PanelText: "#f1f5f9", // slate-100

		Highlight: "#475569", // slate-600
		Shadow:    "#020617", // slate-950

		Muted:   "#94a3b8", // slate-400
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Desktop: "#131a24", // bg0
		Window:  "#212e3f", // bg2
		Text:    "#cdcecf", // fg1

		TitleBg:   "#719cd6", // blue
		TitleText: "#131a24", // bg0

		Panel:     "#192330", // bg1
		PanelText: "#cdcecf", // fg1

		Highlight: "#39506d", // bg4
		Shadow:    "#131a24", // bg0

		Muted:   "#738091", // comment
		Accent:  "#63cdcf", // cyan
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
	}
}
