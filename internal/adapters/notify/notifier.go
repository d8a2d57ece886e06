// Package notify is the user-visible notification channel: styled one-line
// messages to a writer. Delivery is best effort.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/termdeck/termdeck/internal/ports"
)

type Notifier struct {
	mu  sync.Mutex
	out io.Writer

	info  lipgloss.Style
	warn  lipgloss.Style
	error lipgloss.Style
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{
		out:   out,
		info:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		warn:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		error: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}

func (n *Notifier) Info(msg string) {
	n.write(n.info.Render(msg))
}

func (n *Notifier) Warn(msg string) {
	n.write(n.warn.Render("! " + msg))
}

func (n *Notifier) Error(msg string) {
	n.write(n.error.Render("!! " + msg))
}

func (n *Notifier) write(line string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintln(n.out, line)
}
