// Package tui implements the interactive style preview.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/prism/internal/logging"
	"github.com/opencode-ai/prism/internal/overlay"
	"github.com/opencode-ai/prism/internal/tui/components"
	"github.com/opencode-ai/prism/internal/tui/styles"
	"github.com/opencode-ai/prism/pkg/mode"
	"github.com/opencode-ai/prism/pkg/palette"
	"github.com/opencode-ai/prism/pkg/style"
)

// Config configures the preview.
type Config struct {
	Mode         mode.Mode
	State        style.State
	Kind         style.Kind
	HighContrast bool
	// Overlay is optional.
	Overlay *overlay.Overlay
}

// Run launches the preview program.
func Run(cfg Config) error {
	program := tea.NewProgram(initialModel(cfg), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	width        int
	height       int
	styles       styles.Styles
	builder      *style.Builder
	mode         mode.Mode
	state        style.State
	kind         style.Kind
	highContrast bool
	overlay      *overlay.Overlay
	view         viewID
	cursor       int
	filter       string
	filtering    bool
}

const (
	minWidth  = 60
	minHeight = 15
	// Lines used by the header and footer.
	chromeLines = 8
)

func initialModel(cfg Config) model {
	m := model{
		mode:         cfg.Mode,
		state:        cfg.State,
		kind:         cfg.Kind,
		highContrast: cfg.HighContrast,
		overlay:      cfg.Overlay,
		view:         viewVariants,
	}
	return m.restyle()
}

func (m model) restyle() model {
	themeName := styles.DefaultTheme.Name
	m.builder = style.Default()
	if m.highContrast {
		themeName = styles.HighContrastTheme.Name
		m.builder = style.NewBuilder(style.WithHighContrast())
	}
	theme := styles.ThemeFor(themeName, m.mode)
	if m.overlay != nil {
		m.builder = style.NewBuilder(m.overlay.Options(m.highContrast)...)
		theme.Resolve = m.overlay.Resolver(theme.Resolve)
	}
	m.styles = styles.BuildStyles(theme)
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg), nil
		}
		switch msg.String() {
		case "t", "m":
			m.mode = m.mode.Toggle()
			m = m.restyle()
			log := logging.Component("tui")
			log.Debug().Str("mode", m.mode.String()).Msg("mode toggled")
		case "c":
			m.highContrast = !m.highContrast
			m = m.restyle()
		case "s", "right":
			m.state = nextState(m.state, 1)
		case "S", "left":
			m.state = nextState(m.state, -1)
		case "tab":
			m.kind = nextKind(m.kind, 1)
			m.cursor = 0
		case "shift+tab":
			m.kind = nextKind(m.kind, -1)
			m.cursor = 0
		case "1", "2", "3", "4":
			m.view = viewVariants
			m.kind = style.Kind(msg.String()[0] - '1')
			m.cursor = 0
		case "p":
			m.view = nextView(m.view)
			m.cursor = 0
		case "down", "j":
			m.cursor = clampCursor(m.cursor+1, m.itemCount())
		case "up", "k":
			m.cursor = clampCursor(m.cursor-1, m.itemCount())
		case "/":
			m.filtering = true
		case "esc":
			if m.filter != "" {
				m.filter = ""
				m.cursor = 0
				return m, nil
			}
			return m, tea.Quit
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) updateFilter(msg tea.KeyMsg) model {
	switch msg.Type {
	case tea.KeyEnter:
		m.filtering = false
	case tea.KeyEsc:
		m.filtering = false
		m.filter = ""
	case tea.KeyBackspace:
		if m.filter != "" {
			r := []rune(m.filter)
			m.filter = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.filter += string(msg.Runes)
	}
	m.cursor = 0
	return m
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", components.TerminalTooSmall(m.width, m.height, minWidth, minHeight).Render(m.styles))
		}
	}

	lines := []string{
		m.styles.Title.Render("prism preview"),
		m.statusLine(),
		"",
	}

	lines = append(lines, m.visible(m.viewLines())...)

	if m.filtering || m.filter != "" {
		lines = append(lines, "", m.styles.Accent.Render("/"+m.filter))
	}
	lines = append(lines, "", m.styles.Muted.Render("Keys: t mode | c contrast | s/S state | tab kind | 1-4 kinds | p palette | / filter | q quit"))

	return fmt.Sprintf("%s\n", joinLines(lines))
}

func (m model) statusLine() string {
	parts := []string{
		components.RenderModeBadge(m.styles, m.mode),
		components.RenderStateBadge(m.styles, m.state),
	}
	if m.view == viewVariants {
		parts = append(parts, m.styles.Accent.Render(m.kind.String()))
	} else {
		parts = append(parts, m.styles.Accent.Render("palette"))
	}
	if m.highContrast {
		parts = append(parts, m.styles.Focus.Render("high contrast"))
	}
	if m.overlay != nil {
		parts = append(parts, m.styles.Info.Render("overlay "+m.overlay.Name))
	}
	return strings.Join(parts, m.styles.Muted.Render("  |  "))
}

type viewID int

const (
	viewVariants viewID = iota
	viewPalette
)

func nextView(current viewID) viewID {
	if current == viewVariants {
		return viewPalette
	}
	return viewVariants
}

func nextState(current style.State, step int) style.State {
	states := style.AllStates()
	idx := (int(current) + step + len(states)) % len(states)
	return states[idx]
}

func nextKind(current style.Kind, step int) style.Kind {
	const kinds = int(style.KindInput) + 1
	return style.Kind((int(current) + step + kinds) % kinds)
}

func clampCursor(cursor, count int) int {
	if cursor >= count {
		cursor = count - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

func (m model) variants() []style.Variant {
	var out []style.Variant
	filter := strings.ToLower(m.filter)
	for _, v := range style.AllVariants() {
		if v.Kind() != m.kind {
			continue
		}
		if v, ok := v.(style.Button); ok && v.Size != style.SizeMedium && filter == "" {
			continue
		}
		if filter != "" && !strings.Contains(v.String(), filter) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func (m model) tokens() []palette.Token {
	var out []palette.Token
	filter := strings.ToLower(m.filter)
	for _, t := range palette.AllTokens() {
		if filter != "" && !strings.Contains(t.String(), filter) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (m model) itemCount() int {
	if m.view == viewPalette {
		return len(m.tokens())
	}
	return len(m.variants())
}

func (m model) viewLines() []string {
	if m.view == viewPalette {
		tokens := m.tokens()
		if len(tokens) == 0 {
			return []string{components.EmptyVariantsFiltered(m.filter).RenderCompact(m.styles)}
		}
		resolve := m.styles.Theme.Resolve
		lines := make([]string, 0, len(tokens))
		for _, t := range tokens {
			lines = append(lines, components.RenderTokenRow(m.styles, t, resolve, m.mode))
		}
		return lines
	}

	variants := m.variants()
	if len(variants) == 0 {
		return strings.Split(components.EmptyVariantsFiltered(m.filter).Render(m.styles), "\n")
	}
	var lines []string
	for i, v := range variants {
		swatch := components.RenderSwatch(m.styles, m.builder, v, m.mode, m.state, i == m.cursor)
		lines = append(lines, strings.Split(swatch, "\n")...)
	}
	return lines
}

// visible trims lines to the viewport, keeping the cursor in view.
func (m model) visible(lines []string) []string {
	if m.height <= 0 {
		return lines
	}
	budget := m.height - chromeLines
	if budget < 1 || len(lines) <= budget {
		return lines
	}
	start := m.cursor * len(lines) / max(m.itemCount(), 1)
	if start+budget > len(lines) {
		start = len(lines) - budget
	}
	return lines[start : start+budget]
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
