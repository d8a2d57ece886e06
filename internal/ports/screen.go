package ports

// ScreenItem is one rendered row of a screen list. Ref carries the entity
// identifier for later lookup; Activate, when set, requests the host detail
// view for that entity.
type ScreenItem struct {
	Ref         string
	Label       string
	Placeholder bool
	Activate    func()
}

// ScreenList is an ordered list anchored somewhere in the screen tree.
type ScreenList interface {
	ID() string
	Items() []ScreenItem
	SetItems(items []ScreenItem)
}

// ScreenSection is a named semantic region that can host lists.
type ScreenSection interface {
	Name() string
	CreateList(id string) ScreenList
}

// Screen is the display surface the reconciler projects onto. Lists and
// sections can disappear while views are torn down and rebuilt, so lookups
// report presence explicitly.
type Screen interface {
	List(id string) (ScreenList, bool)
	Section(name string) (ScreenSection, bool)
	Lists() []ScreenList
	ApplyTheme(theme Theme)
}
