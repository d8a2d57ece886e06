package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termdeck/termdeck/internal/ports"
)

func TestNewScreenHasStandardAnchors(t *testing.T) {
	screen := NewScreen()

	for _, id := range []string{ListRecentRecords, ListInbox, ListJournal, ListPlayers} {
		_, ok := screen.List(id)
		assert.True(t, ok, "missing list %q", id)
	}
	for _, name := range []string{SectionRecords, SectionMail, SectionJournal, SectionRoster} {
		_, ok := screen.Section(name)
		assert.True(t, ok, "missing section %q", name)
	}
}

func TestRemoveListDropsAnchor(t *testing.T) {
	screen := NewScreen()

	screen.RemoveList(ListRecentRecords)

	_, ok := screen.List(ListRecentRecords)
	assert.False(t, ok)
	_, ok = screen.Section(SectionRecords)
	assert.True(t, ok)
}

func TestCreateListReusesExistingID(t *testing.T) {
	screen := NewScreen()
	section, ok := screen.Section(SectionRecords)
	require.True(t, ok)

	list, ok := screen.List(ListRecentRecords)
	require.True(t, ok)
	list.SetItems([]ports.ScreenItem{{Ref: "Actor-1", Label: "stale"}})

	recreated := section.CreateList(ListRecentRecords)
	assert.Empty(t, recreated.Items())
	assert.Len(t, screen.Lists(), 4)
}

func TestSetItemsCopiesInput(t *testing.T) {
	screen := NewScreen()
	list, ok := screen.List(ListRecentRecords)
	require.True(t, ok)

	input := []ports.ScreenItem{{Ref: "Actor-1", Label: "one"}}
	list.SetItems(input)
	input[0].Label = "mutated"

	items := list.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "one", items[0].Label)
}

func TestRenderSectionShowsItemsAndCursor(t *testing.T) {
	screen := NewScreen()
	screen.ApplyTheme(ports.Theme{Cursor: "> "})

	list, ok := screen.List(ListRecentRecords)
	require.True(t, ok)
	list.SetItems([]ports.ScreenItem{
		{Ref: "Actor-250", Label: "Vell - Marcus A."},
		{Ref: "Actor-100", Label: "Smith - Jane "},
	})

	out := screen.RenderSection(SectionRecords, 0)
	assert.Contains(t, out, "PC RECORDS")
	assert.Contains(t, out, "> Vell - Marcus A.")
	assert.Contains(t, out, "  Smith - Jane ")
}

func TestRenderWholeScreenIncludesAllSections(t *testing.T) {
	screen := NewScreen()

	out := screen.Render()
	for _, title := range []string{"PC RECORDS", "MAIL", "JOURNAL", "PLAYERS"} {
		assert.Contains(t, out, title)
	}
}

func TestRenderPlaceholderAndDiagnosticStyles(t *testing.T) {
	screen := NewScreen()
	list, ok := screen.List(ListRecentRecords)
	require.True(t, ok)

	list.SetItems([]ports.ScreenItem{{Label: "NO RECORDS ON FILE", Placeholder: true}})
	assert.Contains(t, screen.RenderSection(SectionRecords, -1), "NO RECORDS ON FILE")

	list.SetItems([]ports.ScreenItem{{Label: "[records] recent records list has no anchor", Placeholder: true}})
	assert.Contains(t, screen.RenderSection(SectionRecords, -1), "[records]")
}
