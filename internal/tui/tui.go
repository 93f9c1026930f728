// Package tui is the --interactive repeat browser: a two-pane gocui view,
// a list of reported repeats on the left and the selected repeat's
// canonical lines and occurrence locations on the right. Adapted from the
// donor's cui.go search interface: the view layout, keybinding wiring and
// raw ANSI highlighting survive, repurposed from a query box + results
// pane into a list + detail pane over a fixed result set computed before
// the UI starts.
package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jroimartin/gocui"

	"curgo/internal/color"
	"curgo/internal/domain/models"
	"curgo/internal/lib/logger/sl"
)

// Browser drives the interactive repeat browser over a fixed, pre-computed
// list of reports.
type Browser struct {
	gui      *gocui.Gui
	log      *slog.Logger
	reports  []models.Report
	selected int
}

// New creates a Browser over reports, ordered as the caller wants them
// displayed (typically by descending severity).
func New(log *slog.Logger, reports []models.Report) (*Browser, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Error("failed to create gui", "error", sl.Err(err))
		return nil, err
	}
	return &Browser{gui: g, log: log, reports: reports}, nil
}

// Close releases the underlying gocui handle.
func (b *Browser) Close() {
	b.gui.Close()
}

// Run starts the main loop and blocks until the user quits (Ctrl-C).
func (b *Browser) Run() error {
	b.gui.Cursor = true
	b.gui.SetManagerFunc(b.layout)
	defer b.gui.Close()

	if err := b.gui.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		b.log.Error("failed to set keybinding", "error", sl.Err(err))
	}
	if err := b.gui.SetKeybinding("list", gocui.KeyArrowDown, gocui.ModNone, b.selectNext); err != nil {
		b.log.Error("failed to set keybinding", "error", sl.Err(err))
	}
	if err := b.gui.SetKeybinding("list", gocui.KeyArrowUp, gocui.ModNone, b.selectPrev); err != nil {
		b.log.Error("failed to set keybinding", "error", sl.Err(err))
	}
	if err := b.gui.SetKeybinding("", gocui.KeyTab, gocui.ModNone, b.toggleFocus); err != nil {
		b.log.Error("failed to set keybinding", "error", sl.Err(err))
	}

	if err := b.gui.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		b.log.Error("gui main loop failed", "error", sl.Err(err))
		return err
	}
	return nil
}

func (b *Browser) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if maxX < 20 || maxY < 6 {
		return fmt.Errorf("terminal window is too small")
	}

	listWidth := maxX / 3

	if v, err := g.SetView("list", 0, 0, listWidth, maxY-1); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Repeats"
		v.Wrap = false
		b.renderList(v)
		if _, err := g.SetCurrentView("list"); err != nil {
			return err
		}
	}

	if v, err := g.SetView("detail", listWidth+1, 0, maxX-1, maxY-1); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Detail"
		v.Wrap = true
		b.renderDetail(v)
	}

	return nil
}

func (b *Browser) renderList(v *gocui.View) {
	v.Clear()
	for i, r := range b.reports {
		marker := "  "
		if i == b.selected {
			marker = color.Green("> ", true)
		}
		fmt.Fprintf(v, "%sseverity %d: %d repeats of length %d\n", marker, r.Severity, r.Count, r.Length)
	}
}

func (b *Browser) renderDetail(v *gocui.View) {
	v.Clear()
	if b.selected >= len(b.reports) {
		return
	}
	r := b.reports[b.selected]

	fmt.Fprintln(v, color.Yellow(fmt.Sprintf("severity %d: %d repeats of length %d", r.Severity, r.Count, r.Length), true))
	fmt.Fprintln(v)
	for _, loc := range r.Locations {
		fmt.Fprintf(v, "@ %s:%d\n", loc.File, loc.LineNo)
	}
	fmt.Fprintln(v)
	fmt.Fprintln(v, strings.Join(r.Lines, "\n"))
}

func (b *Browser) selectNext(g *gocui.Gui, v *gocui.View) error {
	if b.selected < len(b.reports)-1 {
		b.selected++
	}
	return b.refresh(g)
}

func (b *Browser) selectPrev(g *gocui.Gui, v *gocui.View) error {
	if b.selected > 0 {
		b.selected--
	}
	return b.refresh(g)
}

func (b *Browser) refresh(g *gocui.Gui) error {
	if v, err := g.View("list"); err == nil {
		b.renderList(v)
	}
	if v, err := g.View("detail"); err == nil {
		b.renderDetail(v)
	}
	return nil
}

func (b *Browser) toggleFocus(g *gocui.Gui, v *gocui.View) error {
	if g.CurrentView() != nil && g.CurrentView().Name() == "list" {
		_, err := g.SetCurrentView("detail")
		return err
	}
	_, err := g.SetCurrentView("list")
	return err
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
