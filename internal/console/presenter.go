package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/odyssey-erp/floorconsole/internal/modal"
)

var kindColors = map[modal.Kind]lipgloss.Color{
	modal.KindSuccess: lipgloss.Color("42"),
	modal.KindError:   lipgloss.Color("196"),
	modal.KindWarning: lipgloss.Color("214"),
	modal.KindConfirm: lipgloss.Color("39"),
	modal.KindInfo:    lipgloss.Color("252"),
}

// TerminalPresenter shows broker prompts on a terminal and answers them from
// line input: y confirms, n cancels, an empty line closes.
type TerminalPresenter struct {
	broker *modal.Broker
	in     *bufio.Reader
	out    io.Writer
}

// NewTerminalPresenter reads answers from in and renders to out.
func NewTerminalPresenter(broker *modal.Broker, in io.Reader, out io.Writer) *TerminalPresenter {
	return &TerminalPresenter{broker: broker, in: bufio.NewReader(in), out: out}
}

// Present answers prompts until the broker has nothing open. End of input
// closes the open prompt and stops. A read in progress is not interrupted
// by ctx; ctx is checked between prompts.
func (p *TerminalPresenter) Present(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		state := p.broker.State()
		if !state.IsOpen {
			return nil
		}
		if state.Settled {
			p.broker.ResolveClose()
			continue
		}

		p.render(state.Prompt)
		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("console: read answer: %w", err)
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		if errors.Is(err, io.EOF) && answer == "" {
			p.broker.ResolveClose()
			return nil
		}
		p.answer(state.Prompt, answer)
	}
}

// Confirm asks message through the broker and reports whether it was
// confirmed. Prompts queued ahead of it are presented first.
func (p *TerminalPresenter) Confirm(ctx context.Context, message string) (bool, error) {
	pending := p.broker.ShowConfirm(message)
	if err := p.Present(ctx); err != nil {
		p.broker.Dismiss(pending)
		return false, err
	}
	// Present returned with the broker closed, or at end of input.
	p.broker.Dismiss(pending)
	outcome, _ := pending.Outcome()
	return outcome == modal.OutcomeConfirm, nil
}

func (p *TerminalPresenter) answer(prompt modal.Prompt, answer string) {
	if prompt.Kind != modal.KindConfirm {
		if answer == "n" && prompt.ShowCancel {
			p.broker.ResolveCancel()
			return
		}
		p.broker.ResolveConfirm()
		return
	}
	switch answer {
	case "y", "ya", "yes":
		p.broker.ResolveConfirm()
	case "n", "tidak", "no":
		p.broker.ResolveCancel()
	case "":
		if prompt.ShowCloseButton {
			p.broker.ResolveClose()
		}
	}
}

func (p *TerminalPresenter) render(prompt modal.Prompt) {
	color, ok := kindColors[prompt.Kind]
	if !ok {
		color = kindColors[modal.KindInfo]
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(color).Render(prompt.Title)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Render(title + "\n\n" + prompt.Message)
	fmt.Fprintln(p.out, box)
	fmt.Fprintln(p.out, buttons(prompt))
}

func buttons(prompt modal.Prompt) string {
	parts := []string{"[y] " + prompt.ConfirmLabel}
	if prompt.ShowCancel {
		parts = append(parts, "[n] "+prompt.CancelLabel)
	}
	if prompt.ShowCloseButton {
		parts = append(parts, "[enter] tutup")
	}
	return strings.Join(parts, "  ") + ": "
}
