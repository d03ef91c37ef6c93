package guard

//go:generate mockgen -source=notifier.go -destination=mock_notifier.go -package=guard

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/michael-freling/command-restrictions/internal/config"
)

// Notifier delivers feedback to the actor whose command was checked.
type Notifier interface {
	Notify(actor string, message string) error
}

// Loader builds the configuration snapshot a Guard evaluates against.
type Loader interface {
	Load() (*config.Snapshot, error)
}

var (
	actorStyle   = lipgloss.NewStyle().Bold(true)
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// writerNotifier prints notices to a terminal or log stream.
type writerNotifier struct {
	out io.Writer
}

// NewWriterNotifier creates a Notifier writing one line per notice to out.
func NewWriterNotifier(out io.Writer) Notifier {
	return &writerNotifier{out: out}
}

func (n *writerNotifier) Notify(actor string, message string) error {
	line := messageStyle.Render(message)
	if actor != "" {
		line = actorStyle.Render(actor+":") + " " + line
	}

	if _, err := fmt.Fprintln(n.out, line); err != nil {
		return fmt.Errorf("failed to write notice: %w", err)
	}
	return nil
}
