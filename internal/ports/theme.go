package ports

// Theme is the visual skin applied to the overlay: palette, marker glyphs
// and the canned texts the reconciler renders into lists.
type Theme struct {
	Name             string
	EmptyText        string
	DiagnosticPrefix string
	Cursor           string
	Palette          Palette
}

// Palette colors are terminal color values understood by the renderer
// (ANSI-256 codes or hex strings).
type Palette struct {
	Foreground string
	Background string
	Accent     string
	Dim        string
	Alert      string
}

type ThemeLoader interface {
	Load(name string) (Theme, error)
}
