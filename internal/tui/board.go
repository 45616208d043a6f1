package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"pawmate/internal/game"
)

func RunHome(ctx context.Context, svc *game.Service, out io.Writer) error {
	m := newHomeModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
