// Package tui shows concert results in an interactive terminal table.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/jfmyers9/showfinder/internal/concerts"
	"github.com/jfmyers9/showfinder/internal/render"
)

// SearchFunc runs one concert search.
type SearchFunc func(ctx context.Context) (*concerts.Report, error)

// App is the TUI application for browsing concert results
type App struct {
	app    *tview.Application
	header *tview.TextView
	table  *tview.Table
	detail *tview.TextView
	status *tview.TextView

	where  string
	search SearchFunc

	// mu guards the fields below, shared by the search goroutine and the
	// UI goroutine.
	mu        sync.Mutex
	report    *concerts.Report
	searching bool
	ctx       context.Context
	cancel    context.CancelFunc
}

// New creates a TUI that runs search for concerts near where.
func New(where string, search SearchFunc) *App {
	a := &App{
		app:    tview.NewApplication(),
		where:  where,
		search: search,
	}
	a.setupUI()
	return a
}

// setupUI creates the UI layout
func (a *App) setupUI() {
	a.header = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	a.header.SetBorder(true).
		SetTitle(" showfinder ").
		SetTitleAlign(tview.AlignLeft)

	a.table = tview.NewTable().
		SetBorders(false).
		SetFixed(1, 1).
		SetSelectable(true, false)
	a.table.SetBorder(true).
		SetTitle(" Concerts ").
		SetTitleAlign(tview.AlignLeft)
	a.table.SetSelectionChangedFunc(func(row, column int) {
		a.showDetail(row)
	})

	a.detail = tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true)
	a.detail.SetBorder(true).
		SetTitle(" Details ").
		SetTitleAlign(tview.AlignLeft)

	a.status = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText("[gray]q:quit  r:search again  up/down:select[-]")

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.header, 3, 1, false).
		AddItem(a.table, 0, 3, true).
		AddItem(a.detail, 7, 1, false).
		AddItem(a.status, 1, 1, false)

	a.app.SetInputCapture(a.handleKeyEvent)
	a.app.SetRoot(flex, true).SetFocus(a.table)
}

// handleKeyEvent processes keyboard input
func (a *App) handleKeyEvent(event *tcell.EventKey) *tcell.EventKey {
	switch event.Rune() {
	case 'q', 'Q':
		a.Stop()
		return nil
	case 'r', 'R':
		a.startSearch()
		return nil
	}
	return event
}

// Run starts a search and the TUI, blocking until the user quits.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.mu.Lock()
	a.ctx = ctx
	a.cancel = cancel
	a.mu.Unlock()

	go func() {
		<-ctx.Done()
		a.app.Stop()
	}()

	a.startSearchWith(ctx)

	if err := a.app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// startSearch runs another search within the lifetime of Run.
func (a *App) startSearch() {
	a.mu.Lock()
	ctx := a.ctx
	a.mu.Unlock()
	if ctx == nil {
		return
	}
	a.startSearchWith(ctx)
}

func (a *App) startSearchWith(ctx context.Context) {
	a.mu.Lock()
	if a.searching {
		a.mu.Unlock()
		return
	}
	a.searching = true
	a.mu.Unlock()

	a.header.SetText(fmt.Sprintf("[yellow]Searching for concerts near %s...[-]", tview.Escape(a.where)))

	go func() {
		report, err := a.search(ctx)

		a.mu.Lock()
		a.searching = false
		if report != nil {
			a.report = report
		}
		a.mu.Unlock()

		a.app.QueueUpdateDraw(func() {
			a.header.SetText(headerText(report, err, a.where, time.Now()))
			if report != nil {
				fillTable(a.table, report.Events)
				a.table.Select(1, 0)
				a.showDetail(1)
			}
		})
	}()
}

// showDetail shows the event on table row in the detail panel.
func (a *App) showDetail(row int) {
	a.mu.Lock()
	report := a.report
	a.mu.Unlock()

	if report == nil || row < 1 || row > len(report.Events) {
		a.detail.SetText("")
		return
	}
	a.detail.SetText(detailText(report.Events[row-1]))
}

// Stop stops the TUI application
func (a *App) Stop() {
	a.mu.Lock()
	cancel := a.cancel
	a.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	a.app.Stop()
}

// fillTable replaces the table contents with a header row and one row
// per event.
func fillTable(table *tview.Table, rs concerts.ResultSet) {
	table.Clear()

	for col, name := range render.Columns {
		table.SetCell(0, col, tview.NewTableCell(name).
			SetTextColor(tcell.ColorYellow).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false))
	}

	for i, e := range rs {
		for col, text := range render.Row(e, false) {
			cell := tview.NewTableCell(tview.Escape(text)).SetMaxWidth(40)
			if col == 0 {
				cell.SetTextColor(tcell.ColorWhite).SetAttributes(tcell.AttrBold)
			}
			table.SetCell(i+1, col, cell)
		}
	}
}

// headerText summarizes the state of the last search.
func headerText(report *concerts.Report, err error, where string, now time.Time) string {
	var sb strings.Builder

	switch {
	case report == nil && err != nil:
		sb.WriteString(fmt.Sprintf("[red]Search failed: %s[-]", tview.Escape(err.Error())))
		return sb.String()
	case report.Empty():
		sb.WriteString(fmt.Sprintf("[gray]%s[-]", tview.Escape(render.EmptyMessage(where))))
	default:
		sb.WriteString(fmt.Sprintf("[green]%s[-]", tview.Escape(render.Summary(report, where, now))))
	}

	if failed := render.FailureSummary(report); failed != "" {
		sb.WriteString(fmt.Sprintf("  [red]%s[-]", failed))
	}
	if report != nil && report.Canceled {
		sb.WriteString("  [yellow](search interrupted)[-]")
	}
	return sb.String()
}

// detailText describes one event for the detail panel.
func detailText(e concerts.Event) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[white::b]%s[-:-:-]  %s\n", tview.Escape(e.Artist), tview.Escape(e.Title)))
	sb.WriteString(fmt.Sprintf("[yellow]%s %s[-]  %s", e.DateDisplay(), e.Time, tview.Escape(placeText(e))))
	if acts := e.OpeningActsDisplay(); acts != "" {
		sb.WriteString(fmt.Sprintf("\nWith %s", tview.Escape(acts)))
	}
	if e.TicketURL != "" {
		sb.WriteString(fmt.Sprintf("\n[blue]%s[-]", tview.Escape(e.TicketURL)))
	}
	return sb.String()
}

func placeText(e concerts.Event) string {
	switch {
	case e.Venue == "":
		return e.City
	case e.City == "":
		return e.Venue
	default:
		return e.Venue + ", " + e.City
	}
}
