package app

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/specialistvlad/gridsheet/internal/cellid"
	"github.com/specialistvlad/gridsheet/internal/ctxlog"
	"github.com/specialistvlad/gridsheet/internal/eval"
	"github.com/specialistvlad/gridsheet/internal/inmemorystore"
	"github.com/specialistvlad/gridsheet/internal/render"
	"github.com/specialistvlad/gridsheet/internal/session"
	"github.com/specialistvlad/gridsheet/internal/tui"
	"github.com/specialistvlad/gridsheet/internal/viewport"
	"golang.org/x/term"
)

// Run executes the main application logic: it builds the session, applies
// the seed cells, then either prints one frame or starts the interactive
// program.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	defer a.Close()

	sess, err := a.newSession(ctx)
	if err != nil {
		return err
	}

	vp := viewport.New(a.config.Rows, a.config.Cols, a.config.CellWidth, a.config.CellHeight)
	vp.Overscan = a.config.Overscan

	if a.config.Render {
		return a.renderOnce(ctx, sess, vp)
	}

	model := tui.New(ctx, sess, vp, tui.Options{
		Styles:         render.DefaultStyles(lipgloss.DefaultRenderer()),
		ResizeDebounce: *a.config.ResizeDebounce,
	})
	if err := tui.Run(ctx, model); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.", "cells", sess.Store().Len())
	return nil
}

func (a *App) newSession(ctx context.Context) (*session.Session, error) {
	policy, err := eval.ParseCyclePolicy(a.config.CyclePolicy)
	if err != nil {
		return nil, err
	}

	store := inmemorystore.New()
	for _, seed := range a.config.Seeds {
		c, err := cellid.Parse(seed.Address)
		if err != nil {
			return nil, fmt.Errorf("invalid seed: %w", err)
		}
		if err := store.Write(ctx, c, seed.Text); err != nil {
			return nil, fmt.Errorf("failed to seed %s: %w", seed.Address, err)
		}
	}
	a.logger.Debug("Session created.", "policy", policy.String(), "seeded", len(a.config.Seeds))

	return session.New(store, eval.New(store, policy), a.config.Rows, a.config.Cols), nil
}

// renderOnce prints a single frame sized from the flags, the terminal, or
// the fallback size, in that order.
func (a *App) renderOnce(ctx context.Context, sess *session.Session, vp *viewport.Viewport) error {
	width, height := a.config.Width, a.config.Height
	if width == 0 || height == 0 {
		tw, th := DefaultWidth, DefaultHeight
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
			tw, th = w, h
		} else {
			a.logger.Debug("Terminal size unavailable, using fallback.", "width", tw, "height", th)
		}
		if width == 0 {
			width = tw
		}
		if height == 0 {
			height = th
		}
	}

	vp.Resize(width-render.RowHeaderWidth(vp.Rows), height-render.ChromeLines)
	if len(a.config.Seeds) > 0 {
		// Show the last seeded cell as selected.
		last := a.config.Seeds[len(a.config.Seeds)-1]
		if err := sess.Select(ctx, cellid.MustParse(last.Address)); err != nil {
			return err
		}
		c, _ := sess.Selection()
		vp.Reveal(c)
	}

	frame := render.Frame(ctx, sess, vp, render.Options{
		Styles: render.DefaultStyles(lipgloss.NewRenderer(a.outW)),
		Frame:  sess.Evaluator().NewFrame(),
	})
	if _, err := fmt.Fprintln(a.outW, frame); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	a.logger.Info("Frame rendered.", "width", width, "height", height, "window", vp.Window())
	return nil
}
