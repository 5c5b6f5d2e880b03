package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/specialistvlad/gridsheet/internal/ctxlog"
)

// Run starts the full-screen program and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) error {
	logger := ctxlog.FromContext(ctx)
	opts = append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, opts...)

	logger.Debug("Starting interactive program.")
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("interactive program failed: %w", err)
	}
	logger.Debug("Interactive program exited.")
	return nil
}
