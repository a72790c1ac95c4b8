package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-lines/internal/core"
	"github.com/vovakirdan/tui-lines/internal/registry"
	"github.com/vovakirdan/tui-lines/internal/storage"
)

const (
	maxScores      = 100 // rows loaded per variant
	chromeHeight   = 10  // title, page tabs, summary, help and borders
	maxTableHeight = 20
)

// scorePage is one tab of the scoreboard: a variant's top scores, or the
// games finished in the current session.
type scorePage struct {
	id    string // variant ID, empty for the session page
	title string
}

func (p scorePage) isSession() bool { return p.id == "" }

var (
	variantColumns = []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Moves", Width: 6},
		{Title: "Player", Width: 14},
		{Title: "Date", Width: 12},
	}
	sessionColumns = []table.Column{
		{Title: "Game", Width: 5},
		{Title: "Variant", Width: 12},
		{Title: "Score", Width: 7},
		{Title: "Moves", Width: 6},
		{Title: "Finished", Width: 10},
	}
)

type scoreboardKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Prev, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultScoreboardKeys = scoreboardKeys{
	Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
	Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev")),
	Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ScoreboardModel shows the top scores of each variant and, on its last
// page, the games the current session has finished.
type ScoreboardModel struct {
	store   *storage.Store
	session Session
	pages   []scorePage
	page    int
	entries []storage.ScoreEntry
	summary string
	table   table.Model
	help    help.Model
	width   int
	height  int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens the scoreboard on the first variant.
func NewScoreboardModel(store *storage.Store, sess Session, width, height int) ScoreboardModel {
	var pages []scorePage
	for _, g := range registry.List() {
		pages = append(pages, scorePage{id: g.ID, title: g.Title})
	}
	pages = append(pages, scorePage{title: "This session"})

	t := table.New(table.WithFocused(true))
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

	m := ScoreboardModel{
		store:   store,
		session: sess,
		pages:   pages,
		table:   t,
		help:    help.New(),
		width:   width,
		height:  height,
	}
	m.table.SetHeight(m.tableHeight())
	m.load()
	return m
}

func (m ScoreboardModel) tableHeight() int {
	return core.Clamp(m.height-chromeHeight, 3, maxTableHeight)
}

func (m ScoreboardModel) current() scorePage {
	return m.pages[m.page]
}

// load fetches the rows and summary for the current page.
func (m *ScoreboardModel) load() {
	p := m.current()
	m.entries, m.summary = nil, ""

	if m.store != nil {
		var err error
		if p.isSession() {
			m.entries, err = m.store.SessionScores(m.session.ID)
		} else {
			m.entries, err = m.store.TopScores(p.id, maxScores)
		}
		if err != nil && m.session.Logger != nil {
			m.session.Logger.Warn("cannot load scores", "page", p.title, "error", err)
		}
		m.summary = m.summarize(p)
	}

	// Columns differ between pages; drop the old rows first.
	m.table.SetRows(nil)
	if p.isSession() {
		m.table.SetColumns(sessionColumns)
	} else {
		m.table.SetColumns(variantColumns)
	}
	m.table.SetRows(m.rows(p))
	m.table.GotoTop()
}

func (m ScoreboardModel) rows(p scorePage) []table.Row {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		if p.isSession() {
			rows[i] = table.Row{
				strconv.Itoa(len(m.entries) - i),
				e.GameID,
				strconv.Itoa(e.Score),
				strconv.Itoa(e.Moves),
				e.CreatedAt.Format("15:04:05"),
			}
			continue
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(e.Score),
			strconv.Itoa(e.Moves),
			playerName(e.Player),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func (m ScoreboardModel) summarize(p scorePage) string {
	if p.isSession() {
		if len(m.entries) == 0 {
			return ""
		}
		best := 0
		for _, e := range m.entries {
			best = max(best, e.Score)
		}
		return fmt.Sprintf("%s: %d games saved, best %d", playerName(m.session.Player), len(m.entries), best)
	}

	stats, err := m.store.GetGameStats(p.id)
	if err != nil || stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Best %d · %d games · average %.1f · %d moves played",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalMoves)
}

func playerName(p string) string {
	if p == "" {
		return "-"
	}
	return p
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		keys := defaultScoreboardKeys
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			m.page = core.Wrap(m.page+1, len(m.pages))
			m.load()
			return m, nil
		case key.Matches(msg, keys.Prev):
			m.page = core.Wrap(m.page-1, len(m.pages))
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetHeight(m.tableHeight())
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	var b strings.Builder
	b.WriteString(centerText(title.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.pages))
	for i, p := range m.pages {
		if i == m.page {
			tabs[i] = active.Render(" " + p.title + " ")
		} else {
			tabs[i] = dim.Render(" " + p.title + " ")
		}
	}
	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width {
		tabLine = active.Render(fmt.Sprintf("< %s >", m.current().title))
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	var body string
	if len(m.entries) == 0 {
		msg := "No scores recorded yet.\nClear a line to set a high score!"
		if m.current().isSession() {
			msg = "No games finished this session."
		}
		body = dim.Italic(true).Padding(1, 4).Render(msg)
	} else {
		body = m.table.View()
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(box.Render(body), m.width))
	b.WriteString("\n")

	if m.summary != "" {
		b.WriteString(centerText(m.summary, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dim.Render(m.help.View(defaultScoreboardKeys)))
	return b.String()
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard in its own program and reports whether
// the user went back to the menu.
func RunScoreboard(store *storage.Store, sess Session, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, sess, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
