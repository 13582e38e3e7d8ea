package clipboard

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/callscripts/guion/internal/domain"
	"github.com/callscripts/guion/internal/ports"
)

// System writes to the local OS clipboard
type System struct{}

var _ ports.Clipboard = System{}

// NewSystem creates the local clipboard adapter
func NewSystem() System {
	return System{}
}

// WriteText implements Clipboard.WriteText
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no clipboard utility found", domain.ErrClipboardDenied)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrClipboardDenied, err)
	}
	return nil
}

// OSC52 asks the operator's terminal to set its clipboard through an escape sequence.
// It is used for SSH sessions where the server clipboard is meaningless.
type OSC52 struct {
	out  io.Writer
	tmux bool
}

var _ ports.Clipboard = (*OSC52)(nil)

// NewOSC52 writes sequences to out. tmux wraps them in a tmux passthrough.
func NewOSC52(out io.Writer, tmux bool) *OSC52 {
	return &OSC52{out: out, tmux: tmux}
}

// WriteText implements Clipboard.WriteText
func (c *OSC52) WriteText(text string) error {
	seq := osc52.New(text)
	if c.tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(c.out); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrClipboardDenied, err)
	}
	return nil
}
