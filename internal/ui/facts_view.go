package ui

import (
	"strings"

	"factsviewer/internal/facts"
	"factsviewer/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// FactsView fetches the facts list once and renders the loading, error or
// loaded screen.
type FactsView struct {
	State ViewState

	endpoint   string
	newFetcher FetcherFactory
	logger     *zap.Logger

	keys     KeyMap
	help     help.Model
	spinner  spinner.Model
	viewport viewport.Model
	ready    bool // true once a window size is known
	width    int
	height   int
}

// Ensure FactsView implements View.
var _ View = (*FactsView)(nil)

// NewFactsView creates a view for endpoint (empty means facts.DefaultURL).
// A nil logger disables diagnostics.
func NewFactsView(endpoint string, newFetcher FetcherFactory, logger *zap.Logger) *FactsView {
	if endpoint == "" {
		endpoint = facts.DefaultURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status

	keys := DefaultKeyMap()
	vp := viewport.New(0, 0)
	vp.KeyMap.Up = keys.Up
	vp.KeyMap.Down = keys.Down
	vp.KeyMap.PageUp = keys.PageUp
	vp.KeyMap.PageDown = keys.PageDn

	return &FactsView{
		State:      Loading{},
		endpoint:   endpoint,
		newFetcher: newFetcher,
		logger:     logger,
		keys:       keys,
		help:       newHelpModel(),
		spinner:    s,
		viewport:   vp,
	}
}

// Endpoint returns the URL the view fetches from.
func (v *FactsView) Endpoint() string {
	return v.endpoint
}

// Init implements View. It starts the spinner and the single fetch.
func (v *FactsView) Init() tea.Cmd {
	return tea.Batch(v.spinner.Tick, v.fetch())
}

func (v *FactsView) fetch() tea.Cmd {
	return fetchFactsCmd(v.newFetcher(v.endpoint), v.logger)
}

// Update implements View.
func (v *FactsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		v.help.Width = msg.Width
		v.layout()
		return v, nil

	case spinner.TickMsg:
		if _, ok := v.State.(Loading); !ok {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case factsLoadedMsg:
		if !v.accepts(msg.Endpoint) {
			return v, nil
		}
		v.State = Loaded{Facts: msg.Facts}
		v.layout()
		v.viewport.GotoTop()
		return v, nil

	case factsFailedMsg:
		if !v.accepts(msg.Endpoint) {
			return v, nil
		}
		v.State = LoadFailed{Message: msg.Err.Error()}
		return v, nil

	case EndpointChangedMsg:
		endpoint := msg.URL
		if endpoint == "" {
			endpoint = facts.DefaultURL
		}
		if endpoint == v.endpoint {
			return v, nil
		}
		v.endpoint = endpoint
		v.State = Loading{}
		return v, tea.Batch(v.spinner.Tick, v.fetch())
	}

	if _, ok := v.State.(Loaded); ok && v.ready {
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return v, cmd
	}
	return v, nil
}

// accepts reports whether a result for endpoint may still change the state:
// it must belong to the current endpoint and the view must be Loading.
func (v *FactsView) accepts(endpoint string) bool {
	if endpoint != v.endpoint {
		return false
	}
	_, loading := v.State.(Loading)
	return loading
}

// contentWidth is the usable width, defaulting for tests and before the
// first WindowSizeMsg.
func (v *FactsView) contentWidth() int {
	if v.width > 0 {
		return v.width
	}
	return defaultCol
}

// layout sizes the viewport to the space between header and footer and
// refreshes its content.
func (v *FactsView) layout() {
	loaded, ok := v.State.(Loaded)
	if !ok || !v.ready {
		return
	}
	w := v.contentWidth()
	// Header, blank line, footer, help line.
	chrome := lipgloss.Height(renderHeader(v.endpoint, w)) + 1 +
		lipgloss.Height(renderFooter(len(loaded.Facts))) +
		lipgloss.Height(v.help.View(v.keys))
	v.viewport.Width = w
	v.viewport.Height = max(v.height-chrome, 1)
	v.viewport.SetContent(renderFactsBody(loaded.Facts, w))
}

// View implements View.
func (v *FactsView) View() string {
	w := v.contentWidth()
	switch s := v.State.(type) {
	case LoadFailed:
		return v.viewError(s.Message, w)
	case Loaded:
		return v.viewLoaded(s.Facts, w)
	default:
		return "\n  " + v.spinner.View() + " " + Styles.Status.Render("Loading facts...") + "\n"
	}
}

func (v *FactsView) viewError(message string, width int) string {
	var b strings.Builder
	b.WriteString(Styles.TitleWarning.Render("⚠️ Error") + "\n\n")
	b.WriteString(Styles.Normal.Render(textutil.Sanitize(message)) + "\n\n")
	b.WriteString(Styles.Hint.Render("Make sure the facts API is reachable at " + textutil.Sanitize(v.endpoint)))

	content := b.String()
	box := Styles.BoxDanger
	// Padding, border and margin add 8 columns; wrap instead of overflowing.
	if width > 12 && lipgloss.Width(content)+8 > width {
		box = box.Width(width - 4)
	}
	return box.Render(content) + "\n" + Styles.Hint.Render("  q quit")
}

func (v *FactsView) viewLoaded(list []facts.Fact, width int) string {
	var b strings.Builder
	b.WriteString(renderHeader(v.endpoint, width))
	b.WriteString("\n")
	if v.ready {
		b.WriteString(v.viewport.View())
	} else {
		b.WriteString(renderFactsBody(list, width))
	}
	b.WriteString("\n\n" + renderFooter(len(list)))
	b.WriteString("\n" + v.help.View(v.keys))
	return b.String()
}
