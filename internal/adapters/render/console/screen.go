// Package console holds the overlay's screen tree: named sections hosting
// ordered lists. The reconciler projects snapshots into lists; the TUI and
// CLI render the tree with lipgloss. Sections and lists can be torn down and
// rebuilt while views switch, which is why anchor lookups can fail.
package console

import (
	"sync"

	"github.com/termdeck/termdeck/internal/ports"
)

// Default anchors for the built-in views.
const (
	SectionRecords = "records"
	SectionMail    = "mail"
	SectionJournal = "journal"
	SectionRoster  = "roster"

	ListRecentRecords = "recent-records"
	ListInbox         = "inbox"
	ListJournal       = "journal-entries"
	ListPlayers       = "player-list"
)

type Screen struct {
	mu       sync.RWMutex
	styles   styles
	sections []*Section
}

type Section struct {
	screen *Screen
	name   string
	title  string
	lists  []*List
}

type List struct {
	screen *Screen
	id     string
	items  []ports.ScreenItem
}

// NewScreen builds the standard overlay layout with every view's anchor list
// already in place.
func NewScreen() *Screen {
	s := &Screen{styles: newStyles(ports.Theme{})}

	for _, def := range []struct {
		name, title, listID string
	}{
		{SectionRecords, "PC RECORDS", ListRecentRecords},
		{SectionMail, "MAIL", ListInbox},
		{SectionJournal, "JOURNAL", ListJournal},
		{SectionRoster, "PLAYERS", ListPlayers},
	} {
		section := &Section{screen: s, name: def.name, title: def.title}
		section.lists = append(section.lists, &List{screen: s, id: def.listID})
		s.sections = append(s.sections, section)
	}

	return s
}

var _ ports.Screen = (*Screen)(nil)

func (s *Screen) ApplyTheme(theme ports.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.styles = newStyles(theme)
}

func (s *Screen) List(id string) (ports.ScreenList, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, section := range s.sections {
		for _, list := range section.lists {
			if list.id == id {
				return list, true
			}
		}
	}
	return nil, false
}

func (s *Screen) Section(name string) (ports.ScreenSection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, section := range s.sections {
		if section.name == name {
			return section, true
		}
	}
	return nil, false
}

func (s *Screen) Lists() []ports.ScreenList {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var lists []ports.ScreenList
	for _, section := range s.sections {
		for _, list := range section.lists {
			lists = append(lists, list)
		}
	}
	return lists
}

// RemoveList drops a list anchor, as happens when a view is torn down.
func (s *Screen) RemoveList(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, section := range s.sections {
		for i, list := range section.lists {
			if list.id == id {
				section.lists = append(section.lists[:i], section.lists[i+1:]...)
				return
			}
		}
	}
}

// RemoveSection drops a whole section and its lists.
func (s *Screen) RemoveSection(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, section := range s.sections {
		if section.name == name {
			s.sections = append(s.sections[:i], s.sections[i+1:]...)
			return
		}
	}
}

func (sec *Section) Name() string {
	return sec.name
}

// CreateList appends a fresh anchor to the section, replacing any list that
// already carries the same id.
func (sec *Section) CreateList(id string) ports.ScreenList {
	sec.screen.mu.Lock()
	defer sec.screen.mu.Unlock()

	for _, list := range sec.lists {
		if list.id == id {
			list.items = nil
			return list
		}
	}

	list := &List{screen: sec.screen, id: id}
	sec.lists = append(sec.lists, list)
	return list
}

func (l *List) ID() string {
	return l.id
}

func (l *List) Items() []ports.ScreenItem {
	l.screen.mu.RLock()
	defer l.screen.mu.RUnlock()

	items := make([]ports.ScreenItem, len(l.items))
	copy(items, l.items)
	return items
}

func (l *List) SetItems(items []ports.ScreenItem) {
	l.screen.mu.Lock()
	defer l.screen.mu.Unlock()

	l.items = make([]ports.ScreenItem, len(items))
	copy(l.items, items)
}
