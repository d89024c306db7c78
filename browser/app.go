// Package browser runs the interactive library view: a scrollable list of
// categories and episodes over the cell renderer, with a modal action menu
// and an inline rename prompt.
package browser

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kerrislane/tvshelf/catalog"
	"github.com/kerrislane/tvshelf/render"
	"github.com/kerrislane/tvshelf/terminal"
	"github.com/kerrislane/tvshelf/tui"
)

type mode uint8

const (
	modeBrowse mode = iota
	modeMenu
	modeRename
)

// App is the whole browser state
type App struct {
	drv terminal.Driver
	bm  *render.BufferManager
	th  tui.Theme
	log *slog.Logger

	lib     *catalog.Library
	libPath string
	idx     *catalog.Index

	list *tui.List
	menu *tui.Menu

	mode   mode
	rename []rune // Rename prompt buffer
	dirty  bool
	quit   bool
}

// New builds the browser around an initialized driver
func New(drv terminal.Driver, lib *catalog.Library, libPath string, th tui.Theme, log *slog.Logger) *App {
	w, h := drv.Size()
	a := &App{
		drv:     drv,
		bm:      render.NewBufferManager(w, h),
		th:      th,
		log:     log,
		lib:     lib,
		libPath: libPath,
		list:    &tui.List{View: &tui.Viewport{}},
		menu: &tui.Menu{
			Title: "Actions",
			Items: []tui.MenuRow{
				{Label: "Toggle watched", Hint: "enter"},
				{Label: "Rename episode", Hint: "r"},
				{Label: "Delete episode", Hint: "d"},
				{Label: "Save library", Hint: "s"},
				{Label: "Close menu", Hint: "esc"},
			},
			View: &tui.Viewport{},
		},
	}
	a.rebuild()
	return a
}

// Run renders and processes events until quit. The library is saved on
// the way out if it still has unsaved changes, even when the loop ends
// on a driver error.
func (a *App) Run() error {
	runErr := a.loop()

	if a.dirty {
		if err := a.lib.Save(a.libPath); err != nil {
			if runErr != nil {
				a.log.Error("save on exit failed", "path", a.libPath, "error", err)
				return runErr
			}
			return fmt.Errorf("save on exit: %w", err)
		}
		a.log.Info("library saved", "path", a.libPath)
	}
	return runErr
}

func (a *App) loop() error {
	if err := a.draw(); err != nil {
		return err
	}

	for ev := range a.drv.Events() {
		switch ev.Type {
		case terminal.EventResize:
			a.bm.Resize(ev.Width, ev.Height)
			a.log.Debug("resize", "width", ev.Width, "height", ev.Height)
		case terminal.EventKey:
			a.handleKey(ev)
		case terminal.EventError:
			return fmt.Errorf("input: %w", ev.Err)
		case terminal.EventClosed:
			a.quit = true
		}

		if a.quit {
			return nil
		}
		if err := a.draw(); err != nil {
			return err
		}
	}
	return nil
}

// rebuild re-flattens the library into list rows, keeping the current
// selection clamped
func (a *App) rebuild() {
	a.idx = catalog.BuildIndex(a.lib)

	items := make([]tui.Component, 0, a.idx.Len())
	for _, e := range a.idx.Entries {
		switch e.Kind {
		case catalog.EntryCategory:
			cat := a.idx.Category(e)
			items = append(items, tui.CategoryRow{Name: cat.Name, SeriesCount: len(cat.Series)})
		case catalog.EntryEpisode:
			ep := a.idx.Episode(e)
			items = append(items, tui.EpisodeRow{
				Code:     ep.Code,
				Title:    ep.Title,
				Duration: ep.Duration,
				Watched:  ep.Watched,
			})
		}
	}
	a.list.Items = items
	a.list.View.SetTotal(len(items))
}

func (a *App) handleKey(ev terminal.Event) {
	switch a.mode {
	case modeMenu:
		a.handleMenuKey(ev)
	case modeRename:
		a.handleRenameKey(ev)
	default:
		a.handleBrowseKey(ev)
	}
}

func (a *App) handleBrowseKey(ev terminal.Event) {
	vp := a.list.View

	switch ev.Key {
	case terminal.KeyUp:
		vp.MoveBy(-1)
	case terminal.KeyDown:
		vp.MoveBy(1)
	case terminal.KeyPageUp:
		vp.PageUp()
	case terminal.KeyPageDown:
		vp.PageDown()
	case terminal.KeyHome:
		vp.Home()
	case terminal.KeyEnd:
		vp.End()
	case terminal.KeyEnter:
		a.toggleWatched()
	case terminal.KeyEscape:
		a.quit = true
	case terminal.KeyCtrlC:
		a.quit = true
	case terminal.KeyCtrlL:
		a.redrawAll()
	case terminal.KeyRune:
		switch ev.Rune {
		case 'k':
			vp.MoveBy(-1)
		case 'j':
			vp.MoveBy(1)
		case 'g':
			vp.Home()
		case 'G':
			vp.End()
		case ' ':
			a.toggleWatched()
		case 'r':
			a.startRename()
		case 'd':
			a.deleteEpisode()
		case 's':
			a.save()
		case 'm':
			a.mode = modeMenu
			a.menu.View.Select(0)
		case 'q':
			a.quit = true
		}
	}
}

func (a *App) handleMenuKey(ev terminal.Event) {
	vp := a.menu.View

	switch ev.Key {
	case terminal.KeyUp:
		vp.MoveBy(-1)
	case terminal.KeyDown:
		vp.MoveBy(1)
	case terminal.KeyEscape:
		a.mode = modeBrowse
	case terminal.KeyEnter:
		a.mode = modeBrowse
		switch vp.Selected {
		case 0:
			a.toggleWatched()
		case 1:
			a.startRename()
		case 2:
			a.deleteEpisode()
		case 3:
			a.save()
		}
	case terminal.KeyRune:
		switch ev.Rune {
		case 'k':
			vp.MoveBy(-1)
		case 'j':
			vp.MoveBy(1)
		case 'q':
			a.mode = modeBrowse
		}
	}
}

func (a *App) handleRenameKey(ev terminal.Event) {
	switch ev.Key {
	case terminal.KeyEscape:
		a.mode = modeBrowse
		a.rename = nil
	case terminal.KeyEnter:
		title := string(a.rename)
		a.mode = modeBrowse
		a.rename = nil
		if title != "" && a.idx.Rename(a.list.View.Selected, title) {
			a.dirty = true
			a.rebuild()
			a.log.Debug("episode renamed", "title", title)
		}
	case terminal.KeyBackspace:
		if len(a.rename) > 0 {
			a.rename = a.rename[:len(a.rename)-1]
		}
	case terminal.KeyRune:
		a.rename = append(a.rename, ev.Rune)
	}
}

func (a *App) toggleWatched() {
	if a.idx.ToggleWatched(a.list.View.Selected) {
		a.dirty = true
		a.rebuild()
	}
}

func (a *App) startRename() {
	e, ok := a.idx.At(a.list.View.Selected)
	if !ok || e.Kind != catalog.EntryEpisode {
		return
	}
	a.mode = modeRename
	a.rename = []rune(a.idx.Episode(e).Title)
}

func (a *App) deleteEpisode() {
	if a.idx.Delete(a.list.View.Selected) {
		a.dirty = true
		a.rebuild()
	}
}

func (a *App) save() {
	if !a.dirty {
		return
	}
	if err := a.lib.Save(a.libPath); err != nil {
		a.log.Error("save failed", "path", a.libPath, "error", err)
		return
	}
	a.dirty = false
	a.log.Info("library saved", "path", a.libPath)
}

// redrawAll forces a full repaint, recovering from external tty damage
func (a *App) redrawAll() {
	a.drv.Invalidate()
	a.bm.Resize(a.bm.Width(), a.bm.Height())
}

// draw runs one full render pass and pushes the diff to the driver.
// A driver write failure is fatal: there is no UI without terminal
// output, so the error propagates up and ends the loop.
func (a *App) draw() error {
	w, h := a.bm.Width(), a.bm.Height()

	a.bm.BeginFrame()

	hdr := tui.Header{Title: "tvshelf", Dirty: a.dirty}
	a.bm.Compose(hdr.Render(w, a.th, false), 0, 0)

	// Two header rows on top, one status row below
	a.bm.Compose(a.list.Render(w, h-3, a.th), 2, 0)

	a.bm.Compose(a.statusBar().Render(w, a.th, false), h-1, 0)

	if a.mode == modeMenu {
		mw, mh := a.menu.Size(w-4, h-4)
		a.bm.Compose(a.menu.Render(mw, mh, a.th), (h-mh)/2, (w-mw)/2)
	}

	start := time.Now()
	batches := a.bm.Commit()
	cells := 0
	for _, b := range batches {
		cells += len(b.Cells)
	}

	if err := a.drv.Apply(batches); err != nil {
		a.log.Error("apply failed", "error", err)
		return fmt.Errorf("apply frame: %w", err)
	}
	a.log.Debug("frame", "batches", len(batches), "cells", cells, "elapsed", time.Since(start))
	return nil
}

func (a *App) statusBar() tui.StatusBar {
	if a.mode == modeRename {
		return tui.StatusBar{
			Left:  "Rename: " + string(a.rename) + "_",
			Hints: []string{"enter:ok", "esc:cancel"},
		}
	}

	left := ""
	if e, ok := a.idx.At(a.list.View.Selected); ok {
		cat := a.idx.Category(e)
		switch e.Kind {
		case catalog.EntryCategory:
			left = cat.Name
		case catalog.EntryEpisode:
			ser := a.idx.Series(e)
			ep := a.idx.Episode(e)
			left = fmt.Sprintf("%s ▸ %s ▸ %s", cat.Name, ser.Title, ep.Code)
		}
	}
	return tui.StatusBar{
		Left:  left,
		Hints: []string{"j/k:move", "enter:watched", "m:menu", "q:quit"},
	}
}
