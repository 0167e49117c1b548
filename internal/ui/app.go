package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"StylusBoard/internal/board"
)

// AppID identifies the application to fyne; it scopes the preferences the
// drawing is saved in.
const AppID = "io.stylusboard.app"

// Options configures RunApp.
type Options struct {
	Title string
	Board []board.Option
	// OnContentChange also receives every content change. It may be
	// called from a background goroutine.
	OnContentChange func(board.ContentChange)
	Logger          *slog.Logger
}

// Host is a mounted board in a window.
type Host struct {
	Window fyne.Window
	Widget *BoardWidget
}

// NewHost mounts a board in a new window of a.
func NewHost(a fyne.App, o Options) *Host {
	log := o.Logger
	if log == nil {
		log = slog.Default()
	}
	title := o.Title
	if title == "" {
		title = "StylusBoard"
	}
	win := a.NewWindow(title)
	win.Resize(fyne.NewSize(1024, 768))

	var bw *BoardWidget
	onChange := func(c board.ContentChange) {
		if o.OnContentChange != nil {
			o.OnContentChange(c)
		}
		fyne.Do(func() {
			if bw != nil {
				bw.syncPlaceholder()
			}
		})
	}
	opts := append([]board.Option{board.WithLogger(log)}, o.Board...)
	opts = append(opts, board.WithContentChange(onChange))
	b := board.New(opts...)
	bw = NewBoardWidget(b)

	b.OnFullscreenChange(win.SetFullScreen)
	win.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		b.HandleKey(board.Key(ev.Name))
	})
	win.SetOnClosed(b.Close)

	var content fyne.CanvasObject = bw
	if b.ShowToolbar() {
		content = container.NewBorder(NewToolbar(bw, win, log), nil, nil, nil, bw)
	}
	win.SetContent(content)
	return &Host{Window: win, Widget: bw}
}

// RunApp mounts a board and runs a until the window closes.
func RunApp(a fyne.App, o Options) {
	NewHost(a, o).Window.ShowAndRun()
}
