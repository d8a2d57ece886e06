// Package tui is the retro terminal overlay: a bubbletea program projecting
// the console screen tree and driving the interface session.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/termdeck/termdeck/internal/adapters/render/console"
	"github.com/termdeck/termdeck/internal/application"
	"github.com/termdeck/termdeck/internal/ports"
)

type view int

const (
	viewRecords view = iota
	viewMail
	viewJournal
	viewRoster
)

var viewNames = map[view]string{
	viewRecords: "RECORDS",
	viewMail:    "MAIL",
	viewJournal: "JOURNAL",
	viewRoster:  "PLAYERS",
}

type tickMsg time.Time

type Model struct {
	screen   *console.Screen
	session  *application.Session
	mail     *application.MailService
	journal  *application.JournalService
	roster   *application.RosterService
	userID   string
	interval time.Duration
	logger   *slog.Logger

	active   view
	selected int
	width    int

	header lipgloss.Style
	tab    lipgloss.Style
	curTab lipgloss.Style
	footer lipgloss.Style
}

func NewModel(screen *console.Screen, session *application.Session, mail *application.MailService, journal *application.JournalService, roster *application.RosterService, userID string, interval time.Duration, logger *slog.Logger) Model {
	if interval <= 0 {
		interval = application.DefaultRefreshInterval
	}
	if logger == nil {
		logger = slog.Default()
	}

	return Model{
		screen:   screen,
		session:  session,
		mail:     mail,
		journal:  journal,
		roster:   roster,
		userID:   userID,
		interval: interval,
		logger:   logger,
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),
		tab:      lipgloss.NewStyle().Faint(true),
		curTab:   lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("46")),
		footer:   lipgloss.NewStyle().Faint(true).MarginTop(1),
	}
}

func (m Model) Init() tea.Cmd {
	m.refreshViews()
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		// The session timer reconciles the records list; the side views
		// are re-projected here on the same cadence.
		m.refreshViews()
		return m, m.tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		if err := m.session.Deactivate(context.Background()); err != nil {
			m.logger.Warn("deactivate session", "error", err)
		}
		return m, tea.Quit

	case "tab":
		m.active = (m.active + 1) % 4
		m.selected = 0
	case "1":
		m.active, m.selected = viewRecords, 0
	case "2":
		m.active, m.selected = viewMail, 0
	case "3":
		m.active, m.selected = viewJournal, 0
	case "4":
		m.active, m.selected = viewRoster, 0

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < m.activeListLen()-1 {
			m.selected++
		}

	case "enter":
		m.activate()
	}

	return m, nil
}

// activate fires the selected item's click affordance. Only the records view
// carries activations; the other views are read-only projections.
func (m Model) activate() {
	list, ok := m.screen.List(m.activeListID())
	if !ok {
		return
	}

	items := list.Items()
	if m.selected < 0 || m.selected >= len(items) {
		return
	}
	if item := items[m.selected]; item.Activate != nil {
		item.Activate()
	}
}

func (m Model) activeListID() string {
	switch m.active {
	case viewMail:
		return console.ListInbox
	case viewJournal:
		return console.ListJournal
	case viewRoster:
		return console.ListPlayers
	default:
		return console.ListRecentRecords
	}
}

func (m Model) activeSection() string {
	switch m.active {
	case viewMail:
		return console.SectionMail
	case viewJournal:
		return console.SectionJournal
	case viewRoster:
		return console.SectionRoster
	default:
		return console.SectionRecords
	}
}

func (m Model) activeListLen() int {
	list, ok := m.screen.List(m.activeListID())
	if !ok {
		return 0
	}
	return len(list.Items())
}

// refreshViews projects mail, journal and roster state into their screen
// lists. View failures degrade to an empty list; they never disturb the
// records reconciliation.
func (m Model) refreshViews() {
	ctx := context.Background()

	if inbox, err := m.mail.Inbox(ctx, m.userID); err == nil {
		m.setItems(console.ListInbox, mailItems(inbox))
	} else {
		m.logger.Warn("refresh mail view", "error", err)
	}

	if entries, err := m.journal.Entries(ctx); err == nil {
		items := make([]ports.ScreenItem, 0, len(entries))
		for _, entry := range entries {
			items = append(items, ports.ScreenItem{Ref: entry.ID, Label: entry.Title})
		}
		m.setItems(console.ListJournal, items)
	} else {
		m.logger.Warn("refresh journal view", "error", err)
	}

	if players, err := m.roster.Players(ctx); err == nil {
		items := make([]ports.ScreenItem, 0, len(players))
		for _, player := range players {
			marker := "-"
			if player.Online {
				marker = "*"
			}
			items = append(items, ports.ScreenItem{Ref: player.ID, Label: fmt.Sprintf("%s %s", marker, player.Name)})
		}
		m.setItems(console.ListPlayers, items)
	} else {
		m.logger.Warn("refresh roster view", "error", err)
	}
}

func mailItems(inbox []application.MailItem) []ports.ScreenItem {
	items := make([]ports.ScreenItem, 0, len(inbox))
	for _, item := range inbox {
		marker := " "
		if !item.Read {
			marker = "*"
		}
		items = append(items, ports.ScreenItem{
			Ref:   item.ID,
			Label: fmt.Sprintf("%s %s // %s", marker, item.Sender, item.Subject),
		})
	}
	return items
}

func (m Model) setItems(listID string, items []ports.ScreenItem) {
	if list, ok := m.screen.List(listID); ok {
		list.SetItems(items)
	}
}

func (m Model) View() string {
	tabs := make([]string, 0, 4)
	for v := viewRecords; v <= viewRoster; v++ {
		style := m.tab
		if v == m.active {
			style = m.curTab
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("[%d] %s", int(v)+1, viewNames[v])))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.Render("::: TERMDECK :::"),
		lipgloss.JoinHorizontal(lipgloss.Top, joinTabs(tabs)...),
		m.screen.RenderSection(m.activeSection(), m.selected),
		m.footer.Render("tab/1-4 switch view · j/k move · enter open · q quit"),
	)
}

func joinTabs(tabs []string) []string {
	joined := make([]string, 0, len(tabs)*2)
	for i, tab := range tabs {
		if i > 0 {
			joined = append(joined, "  ")
		}
		joined = append(joined, tab)
	}
	return joined
}
