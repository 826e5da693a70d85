// Package preview implements the interactive highlight preview: a snippet
// sidebar, a scrolling code pane rendered through the active color scheme,
// and a span inspector for poking at the raw scanner output.
package preview

import (
	"context"
	"os/exec"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"go.opentelemetry.io/otel/trace"

	"github.com/glintlabs/glint/internal/config"
	"github.com/glintlabs/glint/internal/highlight"
	"github.com/glintlabs/glint/internal/history"
	"github.com/glintlabs/glint/internal/keys"
	"github.com/glintlabs/glint/internal/log"
	"github.com/glintlabs/glint/internal/mode"
	"github.com/glintlabs/glint/internal/scancache"
	"github.com/glintlabs/glint/internal/scheme"
	"github.com/glintlabs/glint/internal/snippets"
	"github.com/glintlabs/glint/internal/syntax"
	"github.com/glintlabs/glint/internal/tracing"
	"github.com/glintlabs/glint/internal/ui/help"
	"github.com/glintlabs/glint/internal/ui/styles"
)

// FileChangedMsg reports that the watched file was modified on disk.
type FileChangedMsg struct {
	Path string
}

// FileDeletedMsg reports that the watched file was removed.
type FileDeletedMsg struct {
	Path string
}

// ToggleWatchMsg asks the app to start or stop the file watcher. The
// watcher lives outside the mode so its goroutines survive mode updates.
type ToggleWatchMsg struct {
	Enable bool
}

// WatchStatusMsg reports the watcher's actual state back to the mode.
type WatchStatusMsg struct {
	Watching bool
}

type editorFinishedMsg struct {
	err error
}

// Config carries the inputs for a preview session.
type Config struct {
	Services mode.Services

	// File, when non-empty, previews that file instead of starting on the
	// built-in gallery. The file becomes the first sidebar entry.
	File string

	// Language forces a rule table for the initial snippet.
	Language string

	// Watching reports whether the file watcher started with the program.
	Watching bool
}

// Model holds the preview state.
type Model struct {
	svc   mode.Services
	keys  keys.KeyMap
	iKeys keys.InspectorKeyMap

	// Sidebar
	snippets []snippets.Snippet
	selected int
	filePath string // non-empty when entry 0 is a user file

	// Language cycling. Empty means the snippet's own language.
	languages    []string
	langOverride string

	// Theme cycling
	schemes     []*scheme.Scheme
	schemeIndex int
	theme       *highlight.Theme
	renderer    *highlight.Renderer

	// Scan output
	result   scancache.Result
	cacheHit bool
	lines    []highlight.Line
	scanErr  string

	// Code pane
	viewport viewport.Model
	xOffset  int

	// Inspector
	inspectorOpen  bool
	inspectorIndex int
	inspectorVP    viewport.Model

	// Help overlay
	help     help.Model
	showHelp bool

	// Toggles and transient state
	showLineNumbers bool
	showStatusBar   bool
	watching        bool
	reloaded        bool
	fileGone        bool

	width  int
	height int
}

// New creates a preview model. The initial scan runs immediately so the
// first frame already shows highlighted code.
func New(cfg Config) Model {
	m := Model{
		svc:             cfg.Services,
		keys:            keys.DefaultKeyMap(),
		iKeys:           keys.DefaultInspectorKeyMap(),
		snippets:        snippets.All(),
		languages:       syntax.Languages(),
		help:            help.New(),
		showLineNumbers: cfg.Services.Config.UI.ShowLineNumbers,
		showStatusBar:   cfg.Services.Config.UI.ShowStatusBar,
		watching:        cfg.Watching,
	}

	if cfg.File != "" {
		snip, err := snippets.FromFile(cfg.File)
		if err != nil {
			log.ErrorErr(log.CatUI, "Failed to load preview file", err, "path", cfg.File)
			m.scanErr = err.Error()
		} else {
			m.filePath = cfg.File
			m.snippets = append([]snippets.Snippet{snip}, m.snippets...)
		}
	}
	if cfg.Language != "" {
		if _, ok := syntax.Lookup(cfg.Language); ok {
			m.langOverride = cfg.Language
		} else {
			log.Warn(log.CatUI, "Unknown language override ignored", "language", cfg.Language)
		}
	}

	m.schemes = loadSchemes(cfg.Services.Config)
	m.schemeIndex = schemeIndexOf(m.schemes, cfg.Services.Config.SchemeName())
	m.applyScheme()
	m.rescan(context.Background())

	return m
}

// loadSchemes returns the built-ins plus any user schemes from SchemesDir,
// user schemes sorted by name after the built-ins.
func loadSchemes(cfg config.Config) []*scheme.Scheme {
	var out []*scheme.Scheme
	for _, name := range scheme.Names() {
		if s, ok := scheme.Builtin(name); ok {
			out = append(out, s)
		}
	}

	if dir := cfg.Theme.SchemesDir; dir != "" {
		loaded, errs := scheme.LoadDir(dir)
		for _, err := range errs {
			log.ErrorErr(log.CatScheme, "Skipping unreadable scheme", err)
		}
		sort.Slice(loaded, func(i, j int) bool { return loaded[i].Name < loaded[j].Name })
		out = append(out, loaded...)
	}
	return out
}

func schemeIndexOf(schemes []*scheme.Scheme, name string) int {
	for i, s := range schemes {
		if s.Name == name {
			return i
		}
	}
	return 0
}

// Init implements mode.Controller.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize implements mode.Controller.
func (m Model) SetSize(width, height int) mode.Controller {
	m.width = width
	m.height = height
	m.help = m.help.SetSize(width, height)
	m.syncPanes()
	return m
}

// syncPanes mirrors the pane geometry onto the stored viewports so scroll
// commands in Update clamp against the real content bounds.
func (m *Model) syncPanes() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	mainW := m.width - sidebarWidth(m.width)
	paneH := m.height - m.bottomHeight()
	vpW := max(mainW-2, 1)
	vpH := max(paneH-2, 1)

	m.viewport.Width = vpW
	m.viewport.Height = vpH
	m.viewport.SetContent(m.codeContent(vpW))

	m.inspectorVP.Width = vpW
	m.inspectorVP.Height = vpH
	m.inspectorVP.SetContent(m.inspectorContent(vpW))
}

// Update implements mode.Controller.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case FileChangedMsg:
		return m.reloadFile(msg.Path)

	case FileDeletedMsg:
		log.Warn(log.CatWatch, "Watched file deleted", "path", msg.Path)
		m.fileGone = true
		return m, nil

	case WatchStatusMsg:
		m.watching = msg.Watching
		return m, nil

	case editorFinishedMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatUI, "Editor exited with error", msg.err)
		}
		if m.filePath != "" {
			return m.reloadFile(m.filePath)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	// Any keypress clears the reload banner.
	m.reloaded = false

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape):
			m.showHelp = false
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	if m.inspectorOpen {
		return m.handleInspectorKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.fileGone = false
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m.selectSnippet(m.selected - 1)

	case key.Matches(msg, m.keys.Down):
		return m.selectSnippet(m.selected + 1)

	case key.Matches(msg, m.keys.Left):
		m.xOffset = max(m.xOffset-4, 0)
		m.syncPanes()
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.xOffset+4 < m.maxLineWidth() {
			m.xOffset += 4
		}
		m.syncPanes()
		return m, nil

	case key.Matches(msg, m.keys.NextLanguage):
		return m.cycleLanguage(1)

	case key.Matches(msg, m.keys.PrevLanguage):
		return m.cycleLanguage(-1)

	case key.Matches(msg, m.keys.NextTheme):
		return m.cycleTheme(1)

	case key.Matches(msg, m.keys.PrevTheme):
		return m.cycleTheme(-1)

	case key.Matches(msg, m.keys.Inspect):
		m.inspectorOpen = true
		m.inspectorIndex = 0
		m.syncPanes()
		m.inspectorVP.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.svc.Cache.Flush(context.Background())
		if m.filePath != "" && m.selected == 0 {
			return m.reloadFile(m.filePath)
		}
		m.rescan(context.Background())
		return m, nil

	case key.Matches(msg, m.keys.OpenEditor):
		return m, m.openEditorCmd()

	case key.Matches(msg, m.keys.ToggleWatch):
		if m.filePath == "" {
			return m, nil
		}
		enable := !m.watching
		return m, func() tea.Msg { return ToggleWatchMsg{Enable: enable} }

	case key.Matches(msg, m.keys.LineNumbers):
		m.showLineNumbers = !m.showLineNumbers
		m.syncPanes()
		return m, nil

	case key.Matches(msg, m.keys.ToggleStatus):
		m.showStatusBar = !m.showStatusBar
		m.syncPanes()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	}

	// Code pane scrolling.
	switch msg.String() {
	case "pgdown", "ctrl+f":
		m.viewport.ScrollDown(m.viewport.Height)
	case "pgup", "ctrl+b":
		m.viewport.ScrollUp(m.viewport.Height)
	case "ctrl+d":
		m.viewport.ScrollDown(max(m.viewport.Height/2, 1))
	case "ctrl+u":
		m.viewport.ScrollUp(max(m.viewport.Height/2, 1))
	case "home", "g":
		m.viewport.GotoTop()
	case "end", "G":
		m.viewport.GotoBottom()
	}
	return m, nil
}

func (m Model) handleInspectorKey(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	last := len(m.result.Spans) - 1
	switch {
	case key.Matches(msg, m.iKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.iKeys.Close):
		m.inspectorOpen = false
		return m, nil
	case key.Matches(msg, m.iKeys.Up):
		m.inspectorIndex = max(m.inspectorIndex-1, 0)
	case key.Matches(msg, m.iKeys.Down):
		m.inspectorIndex = min(m.inspectorIndex+1, max(last, 0))
	case key.Matches(msg, m.iKeys.PageUp):
		m.inspectorIndex = max(m.inspectorIndex-max(m.inspectorVP.Height, 1), 0)
	case key.Matches(msg, m.iKeys.PageDown):
		m.inspectorIndex = min(m.inspectorIndex+max(m.inspectorVP.Height, 1), max(last, 0))
	case key.Matches(msg, m.iKeys.Top):
		m.inspectorIndex = 0
	case key.Matches(msg, m.iKeys.Bottom):
		m.inspectorIndex = max(last, 0)
	}
	m.syncPanes()
	m.scrollInspectorToSelection()
	return m, nil
}

// scrollInspectorToSelection keeps the selected row inside the inspector
// viewport. The header row offsets everything by two lines.
func (m *Model) scrollInspectorToSelection() {
	if m.inspectorVP.Height <= 0 {
		return
	}
	row := m.inspectorIndex + inspectorHeaderLines
	if row < m.inspectorVP.YOffset {
		m.inspectorVP.SetYOffset(row)
	} else if row >= m.inspectorVP.YOffset+m.inspectorVP.Height {
		m.inspectorVP.SetYOffset(row - m.inspectorVP.Height + 1)
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) (mode.Controller, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.inspectorOpen {
			m.inspectorVP.ScrollUp(3)
		} else {
			m.viewport.ScrollUp(3)
		}
		return m, nil

	case tea.MouseButtonWheelDown:
		if m.inspectorOpen {
			m.inspectorVP.ScrollDown(3)
		} else {
			m.viewport.ScrollDown(3)
		}
		return m, nil

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress || m.showHelp || m.inspectorOpen {
			return m, nil
		}
		for i := range m.snippets {
			if z := zone.Get(snippetZoneID(i)); z != nil && z.InBounds(msg) {
				return m.selectSnippet(i)
			}
		}
	}
	return m, nil
}

// selectSnippet moves the sidebar selection, wrapping at both ends, and
// rescans the newly selected code.
func (m Model) selectSnippet(index int) (mode.Controller, tea.Cmd) {
	if len(m.snippets) == 0 {
		return m, nil
	}
	index = ((index % len(m.snippets)) + len(m.snippets)) % len(m.snippets)
	if index == m.selected {
		return m, nil
	}
	m.selected = index
	m.langOverride = ""
	m.xOffset = 0
	m.scanErr = ""
	m.viewport.GotoTop()
	m.rescan(context.Background())
	return m, nil
}

// cycleLanguage forces the next or previous rule table for the current
// snippet. Cycling back to the snippet's own language clears the override.
func (m Model) cycleLanguage(dir int) (mode.Controller, tea.Cmd) {
	if len(m.languages) == 0 {
		return m, nil
	}
	cur := m.langOverride
	if cur == "" {
		cur = m.current().Language
	}
	idx := 0
	for i, name := range m.languages {
		if name == cur {
			idx = i
			break
		}
	}
	idx = ((idx+dir)%len(m.languages) + len(m.languages)) % len(m.languages)

	m.langOverride = m.languages[idx]
	if m.langOverride == m.current().Language {
		m.langOverride = ""
	}
	m.rescan(context.Background())
	return m, nil
}

// cycleTheme switches the active color scheme and persists the choice.
func (m Model) cycleTheme(dir int) (mode.Controller, tea.Cmd) {
	if len(m.schemes) == 0 {
		return m, nil
	}
	m.schemeIndex = ((m.schemeIndex+dir)%len(m.schemes) + len(m.schemes)) % len(m.schemes)
	m.applyScheme()
	m.rerender(context.Background())

	if m.svc.ConfigPath != "" {
		name := m.schemes[m.schemeIndex].Name
		if err := config.SaveScheme(m.svc.ConfigPath, name); err != nil {
			log.ErrorErr(log.CatConfig, "Failed to persist scheme choice", err, "scheme", name)
		}
	}
	return m, nil
}

// applyScheme rebinds the code theme and the surrounding chrome to the
// scheme at schemeIndex.
func (m *Model) applyScheme() {
	s := scheme.Default()
	if len(m.schemes) > 0 {
		s = m.schemes[m.schemeIndex]
	}
	m.theme = highlight.NewTheme(s)
	m.renderer = highlight.NewRenderer(m.theme)
	if tw := m.svc.Config.UI.TabWidth; tw > 0 {
		m.renderer.SetTabWidth(tw)
	}
	styles.ApplyScheme(s)
	log.Debug(log.CatScheme, "Applied scheme", "name", s.Name)
}

// current returns the selected snippet.
func (m Model) current() snippets.Snippet {
	if len(m.snippets) == 0 {
		return snippets.Snippet{}
	}
	return m.snippets[m.selected]
}

// table resolves the rule table for the selected snippet, honoring the
// language override.
func (m Model) table() *syntax.Table {
	name := m.langOverride
	if name == "" {
		name = m.current().Language
	}
	if t, ok := syntax.Lookup(name); ok {
		return t
	}
	t, _ := syntax.Lookup(syntax.Languages()[0])
	return t
}

// reloadFile re-reads the watched file and rescans. The content hash keys
// the cache, so a changed file always misses.
func (m Model) reloadFile(path string) (mode.Controller, tea.Cmd) {
	if m.filePath == "" {
		return m, nil
	}
	snip, err := snippets.FromFile(path)
	if err != nil {
		log.ErrorErr(log.CatWatch, "Failed to reload file", err, "path", path)
		m.fileGone = true
		return m, nil
	}
	m.snippets[0] = snip
	m.fileGone = false
	m.scanErr = ""
	m.reloaded = true
	m.rescan(context.Background())
	return m, nil
}

// rescan runs the selected snippet through the scan cache and re-renders.
// Fresh scans are traced and recorded in history; cache hits are neither.
func (m *Model) rescan(ctx context.Context) {
	snip := m.current()
	table := m.table()

	var span trace.Span
	if m.svc.Tracer != nil {
		ctx, span = tracing.StartScan(ctx, m.svc.Tracer, snip.Name, table.Name, len(snip.Code))
	}

	res, hit := m.svc.Cache.Scan(ctx, table, snip.Code)
	m.result = res
	m.cacheHit = hit

	unterminated := countUnterminated(res.Spans)
	if span != nil {
		tracing.EndScan(span, len(res.Spans), unterminated, hit)
	}

	if !hit && m.svc.History != nil {
		sess := history.Session{
			Source:    snip.Name,
			Language:  res.Language,
			Theme:     m.theme.Scheme().Name,
			Bytes:     len(snip.Code),
			SpanCount: len(res.Spans),
			Duration:  res.Elapsed,
		}
		if _, err := m.svc.History.Record(sess); err != nil {
			log.ErrorErr(log.CatDB, "Failed to record preview scan", err)
		}
	}

	m.rerender(ctx)
}

// rerender rebuilds the styled lines from the current scan result.
func (m *Model) rerender(ctx context.Context) {
	if m.svc.Tracer != nil {
		_, span := tracing.StartRender(ctx, m.svc.Tracer, m.theme.Scheme().Name, strings.Count(m.current().Code, "\n")+1, m.width)
		defer span.End()
	}
	m.lines = m.renderer.Render(m.current().Code, m.result.Spans)
	m.syncPanes()
}

func (m Model) maxLineWidth() int {
	w := 0
	for _, l := range m.lines {
		if l.Width > w {
			w = l.Width
		}
	}
	return w
}

func countUnterminated(spans []syntax.Span) int {
	n := 0
	for _, sp := range spans {
		if sp.Unterminated {
			n++
		}
	}
	return n
}

// openEditorCmd launches the configured editor on the previewed file and
// suspends the TUI until it exits.
func (m Model) openEditorCmd() tea.Cmd {
	if m.filePath == "" || m.selected != 0 {
		return nil
	}
	editor := m.svc.Config.Editor
	if editor == "" {
		log.Warn(log.CatUI, "No editor configured")
		return nil
	}

	cmdline := strings.ReplaceAll(editor, "{file}", m.filePath)
	cmdline = strings.ReplaceAll(cmdline, "{line}", "1")
	if !strings.Contains(editor, "{file}") {
		cmdline += " " + m.filePath
	}

	c := exec.Command("sh", "-c", cmdline)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}
