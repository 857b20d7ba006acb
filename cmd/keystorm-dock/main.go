// Package main is the entry point for keystorm-dock, a terminal host for
// the editor core and Dock Manager.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/dshills/keystorm-dock/internal/applog"
	"github.com/dshills/keystorm-dock/internal/config"
	"github.com/dshills/keystorm-dock/internal/coreapi"
	"github.com/dshills/keystorm-dock/internal/dock"
	"github.com/dshills/keystorm-dock/internal/layout"
	"github.com/dshills/keystorm-dock/internal/termrender"
)

// errQuit signals a normal, user-requested exit from the event loop.
var errQuit = errors.New("quit")

// options holds the parsed command-line configuration, matching the
// teacher's cmd/keystorm flag set pared down to what this module's core
// actually consults.
type options struct {
	configPath string
	logLevel   string
	files      []string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()
	logger := applog.New(applog.Config{Level: applog.ParseLevel(opts.logLevel), Prefix: "keystorm-dock"})

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: keystorm-dock requires an interactive terminal")
		return 1
	}

	store, err := loadConfigStore(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}

	app, err := newApplication(opts, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer app.shutdown()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		app.shutdown()
	}()

	if err := app.runLoop(); err != nil {
		if errors.Is(err, errQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "keystorm-dock - editor core and dock manager demo host\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keystorm-dock [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	switch opts.logLevel {
	case "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		os.Exit(1)
	}

	opts.files = flag.Args()
	return opts
}

func loadConfigStore(path string) (*config.Store, error) {
	if path == "" {
		return config.New(nil)
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config.New(nil)
	}
	if err != nil {
		return nil, err
	}
	return config.New(raw)
}

// application owns the one terminal, editor core documents, and Dock
// Manager this host wires together.
type application struct {
	log   *applog.Logger
	store *config.Store
	term  *termrender.Terminal
	dock  *dock.Manager

	docs    map[dock.TabHandle]*coreapi.EditorContext
	window  dock.WindowHandle
	probe   *hostProbe
	editCfg coreapi.EditConfig
}

func newApplication(opts options, store *config.Store, log *applog.Logger) (*application, error) {
	t, err := termrender.NewTerminal()
	if err != nil {
		return nil, err
	}
	if err := t.Init(); err != nil {
		return nil, err
	}

	insertMode, _ := store.GetBool("editor.insertMode")
	editCfg := coreapi.EditConfig{InsertMode: insertMode, Metrics: layout.NewCellMetrics(1)}

	mgr := dock.NewManager()
	w, h := t.Size()
	win := mgr.NewWindow(layout.Rect{W: layout.Pixel(w), H: layout.Pixel(h)})
	winState, _ := mgr.Window(win)

	app := &application{
		log:     log,
		store:   store,
		term:    t,
		dock:    mgr,
		docs:    make(map[dock.TabHandle]*coreapi.EditorContext),
		window:  win,
		editCfg: editCfg,
	}
	app.probe = newHostProbe(app)

	if len(opts.files) == 0 {
		tab, err := mgr.NewTab(winState.Root.Host, "untitled")
		if err != nil {
			return nil, err
		}
		app.docs[tab] = coreapi.NewEditorContext(editCfg)
		return app, nil
	}

	for _, path := range opts.files {
		ctx, err := app.openFile(path)
		if err != nil {
			log.Warn("failed to open %s: %v", path, err)
			continue
		}
		tab, err := mgr.NewTab(winState.Root.Host, path)
		if err != nil {
			return nil, err
		}
		app.docs[tab] = ctx
	}
	return app, nil
}

func (a *application) openFile(path string) (*coreapi.EditorContext, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ctx, warnings, err := coreapi.LoadEditorContext(f, a.editCfg)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		a.log.Warn("malformed UTF-8 at byte %d in %s, substituted U+FFFD", w.ByteOffset, path)
	}
	return ctx, nil
}

func (a *application) shutdown() {
	a.term.Shutdown()
}

// runLoop polls terminal events, draining the Dock Manager's deferred
// disposal queue before each redraw, following the rule in the doc comment
// of Manager.DrainChanged (internal/dock/tree.go) that the update tick
// calls DrainChanged first.
func (a *application) runLoop() error {
	for {
		a.dock.DrainChanged()
		a.render()

		ev := a.term.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventKey:
			if e.Key() == tcell.KeyCtrlC || e.Key() == tcell.KeyEscape {
				return errQuit
			}
		case *tcell.EventMouse:
			a.handleMouse(e)
		}
	}
}

func (a *application) handleMouse(e *tcell.EventMouse) {
	x, y := e.Position()
	cursor := layout.Point{X: layout.Pixel(x), Y: layout.Pixel(y)}

	switch e.Buttons() {
	case tcell.Button1:
		if a.dock.Dragging() {
			_ = a.dock.UpdateDrag(cursor, a.probe)
			return
		}
		a.tryStartDrag(cursor)
	default:
		if a.dock.Dragging() {
			_ = a.dock.CompleteDrag()
		}
	}
}

// tryStartDrag begins a drag if cursor is in a host's tab strip within 3
// cells of a tab button's center. The tab is grabbed with a zero grab
// offset.
func (a *application) tryStartDrag(cursor layout.Point) {
	host, ok := a.probe.HostAt(cursor)
	if !ok || !a.probe.TabStripRect(host).Contains(cursor) {
		return
	}
	hostState, ok := a.dock.Host(host)
	if !ok {
		return
	}
	centers := a.probe.TabButtonCenters(host)
	for i, c := range centers {
		if cursor.X >= c-3 && cursor.X <= c+3 {
			_ = a.dock.StartDrag(hostState.Tabs[i], layout.Point{}, layout.Point{X: 60, Y: 20})
			return
		}
	}
}

// render draws every host's tab strip and active document, and the
// drag-preview overlay when a drag is in progress.
func (a *application) render() {
	order := a.dock.FocusOrder()
	for _, h := range order {
		host, ok := a.dock.Host(h)
		if !ok {
			continue
		}
		a.renderHost(h, host)
	}
	if rect, ok := a.dock.PreviewRect(a.probe); ok {
		a.renderPreview(rect)
	}
	a.term.Show()
}

func (a *application) renderHost(h dock.HostHandle, host dock.Host) {
	strip := a.probe.TabStripRect(h)
	x := int(strip.X)
	for i, tabHandle := range host.Tabs {
		tab, ok := a.dock.Tab(tabHandle)
		if !ok {
			continue
		}
		color := coreapi.Color{R: 0.6, G: 0.6, B: 0.6, A: 1}
		if i == host.Active {
			color = coreapi.Color{R: 1, G: 1, B: 1, A: 1}
		}
		x += a.drawString(layout.Point{X: layout.Pixel(x), Y: strip.Y}, tab.Title, color) + 1
	}

	if host.Active < 0 || host.Active >= len(host.Tabs) {
		return
	}
	ctx, ok := a.docs[host.Tabs[host.Active]]
	if !ok {
		return
	}
	body := a.probe.BodyRect(h)
	a.renderDocument(body, ctx)
}

func (a *application) renderDocument(body layout.Rect, ctx *coreapi.EditorContext) {
	maxLines := int(body.H)
	for i := 0; i < maxLines && i < ctx.NumLines(); i++ {
		line, err := ctx.LineAt(i)
		if err != nil {
			break
		}
		a.drawString(layout.Point{X: body.X, Y: body.Y + layout.Pixel(i)}, string(line.Content), coreapi.Color{R: 1, G: 1, B: 1, A: 1})
	}
}

// drawString draws s starting at p, one rune per cell, returning the
// number of cells advanced.
func (a *application) drawString(p layout.Point, s string, color coreapi.Color) int {
	n := 0
	for _, r := range s {
		texture, err := a.term.NewCharacterTexture(1, 1, termrender.EncodeGlyphBitmap(r))
		if err != nil {
			continue
		}
		a.term.DrawCharacter(texture, layout.Point{X: p.X + layout.Pixel(n), Y: p.Y}, color)
		a.term.DeleteCharacterTexture(texture)
		n++
	}
	return n
}

func (a *application) renderPreview(rect layout.Rect) {
	highlight := coreapi.Color{R: 0.2, G: 0.4, B: 0.9, A: 1}
	a.term.DrawTriangles(
		[]layout.Point{
			{X: rect.X, Y: rect.Y}, {X: rect.X + rect.W, Y: rect.Y}, {X: rect.X, Y: rect.Y + rect.H},
		},
		nil,
		[]coreapi.Color{highlight, highlight, highlight},
		1,
		0,
	)
}

const tabStripHeight = 1

// hostProbe implements dock.ZoneProbe over the single window this host
// application manages, computing host rectangles from the window's rect
// and the dock tree shape rather than a real layout pass.
type hostProbe struct {
	app *application
}

func newHostProbe(app *application) *hostProbe { return &hostProbe{app: app} }

func (p *hostProbe) HostAt(pt layout.Point) (dock.HostHandle, bool) {
	for _, h := range p.app.dock.FocusOrder() {
		if p.rectFor(h).Contains(pt) {
			return h, true
		}
	}
	return dock.HostHandle{}, false
}

func (p *hostProbe) TabStripRect(h dock.HostHandle) layout.Rect {
	r := p.rectFor(h)
	return layout.Rect{X: r.X, Y: r.Y, W: r.W, H: tabStripHeight}
}

func (p *hostProbe) BodyRect(h dock.HostHandle) layout.Rect {
	r := p.rectFor(h)
	return layout.Rect{X: r.X, Y: r.Y + tabStripHeight, W: r.W, H: r.H - tabStripHeight}
}

func (p *hostProbe) TabButtonCenters(h dock.HostHandle) []layout.Pixel {
	host, ok := p.app.dock.Host(h)
	if !ok {
		return nil
	}
	strip := p.TabStripRect(h)
	centers := make([]layout.Pixel, 0, len(host.Tabs))
	x := strip.X
	for _, tabHandle := range host.Tabs {
		tab, ok := p.app.dock.Tab(tabHandle)
		if !ok {
			continue
		}
		w := layout.Pixel(len(tab.Title))
		centers = append(centers, x+w/2)
		x += w + 1
	}
	return centers
}

// rectFor resolves h's on-screen rectangle by walking the window's dock
// tree from the root, splitting the window rect at each split panel's
// separator until h is reached. Single-window only: a multi-window host
// application would instead ask each platform window for its own rect.
func (p *hostProbe) rectFor(target dock.HostHandle) layout.Rect {
	win, ok := p.app.dock.Window(p.app.window)
	if !ok {
		return layout.Rect{}
	}
	rect, found := p.walk(win.Root, win.Rect, target)
	if !found {
		return layout.Rect{}
	}
	return rect
}

func (p *hostProbe) walk(ref dock.ChildRef, rect layout.Rect, target dock.HostHandle) (layout.Rect, bool) {
	if ref.IsZero() {
		return layout.Rect{}, false
	}
	if !ref.IsSplit {
		if ref.Host == target {
			return rect, true
		}
		return layout.Rect{}, false
	}
	split, ok := p.app.dock.Split(ref.Split)
	if !ok {
		return layout.Rect{}, false
	}
	first, second := splitRect(rect, split)
	if r, found := p.walk(split.Children[0], first, target); found {
		return r, true
	}
	return p.walk(split.Children[1], second, target)
}

func splitRect(rect layout.Rect, split dock.SplitPanel) (layout.Rect, layout.Rect) {
	if split.Orientation == dock.Horizontal {
		w := rect.W * layout.Pixel(split.Separator)
		return layout.Rect{X: rect.X, Y: rect.Y, W: w, H: rect.H},
			layout.Rect{X: rect.X + w, Y: rect.Y, W: rect.W - w, H: rect.H}
	}
	h := rect.H * layout.Pixel(split.Separator)
	return layout.Rect{X: rect.X, Y: rect.Y, W: rect.W, H: h},
		layout.Rect{X: rect.X, Y: rect.Y + h, W: rect.W, H: rect.H - h}
}
