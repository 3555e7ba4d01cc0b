package status

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/Belphemur/SubtitleFetcher/internal/models"
)

// ConsolePresenter prints notifications to a terminal or any writer.
// Showing the notification that is already displayed prints nothing.
type ConsolePresenter struct {
	mu      sync.Mutex
	out     io.Writer
	colored bool
	last    models.Notification
	shown   bool
}

// NewConsolePresenter creates a presenter writing to out. Colors are used only when
// out is a terminal.
func NewConsolePresenter(out io.Writer) *ConsolePresenter {
	colored := false
	if f, ok := out.(*os.File); ok {
		colored = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &ConsolePresenter{out: out, colored: colored}
}

// Show implements Presenter
func (p *ConsolePresenter) Show(severity models.Severity, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := models.Notification{Severity: severity, Message: message}
	if p.shown && p.last == n {
		return
	}
	p.last = n
	p.shown = true

	_, _ = fmt.Fprintf(p.out, "%s %s\n", p.label(severity), message)
}

func (p *ConsolePresenter) label(severity models.Severity) string {
	text := fmt.Sprintf("[%s]", severity)
	if !p.colored {
		return text
	}

	var c *color.Color
	switch severity {
	case models.SeverityLoading:
		c = color.New(color.FgYellow)
	case models.SeveritySuccess:
		c = color.New(color.FgGreen, color.Bold)
	case models.SeverityError:
		c = color.New(color.FgRed, color.Bold)
	default:
		return text
	}
	c.EnableColor()
	return c.Sprint(text)
}
