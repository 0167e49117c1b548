package ui

import (
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"StylusBoard/internal/export"
	"StylusBoard/internal/state"
)

// Palette is the set of pen colors offered in the toolbar.
var Palette = []color.NRGBA{
	{A: 255},
	{R: 255, A: 255},
	{G: 160, A: 255},
	{B: 255, A: 255},
	{R: 255, G: 200, A: 255},
}

const (
	minPenWidth = 1.0
	maxPenWidth = 50.0
)

type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// NewToolbar builds the tool, color, width, history, file, export and
// fullscreen controls for w.
func NewToolbar(w *BoardWidget, win fyne.Window, log *slog.Logger) fyne.CanvasObject {
	b := w.Board()
	toolLabel := widget.NewLabel(b.Tool().String())
	selectTool := func(t state.Tool) func() {
		return func() {
			b.SetTool(t)
			toolLabel.SetText(t.String())
		}
	}

	tools := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), selectTool(state.ToolPen)),
		widget.NewToolbarAction(theme.ContentRemoveIcon(), selectTool(state.ToolEraser)),
		widget.NewToolbarAction(theme.ZoomFitIcon(), selectTool(state.ToolPan)),
	)

	onColorTapped := func(c color.Color) {
		b.SetColor(c)
		selectTool(state.ToolPen)()
	}
	colorBox := container.NewHBox()
	for _, c := range Palette {
		colorBox.Add(newColorSwatch(c, onColorTapped))
	}

	widthSlider := widget.NewSlider(minPenWidth, maxPenWidth)
	widthSlider.Step = 1
	widthSlider.SetValue(b.Width())
	widthSlider.OnChanged = b.SetWidth
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), widthSlider)

	commands := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), w.Undo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), w.Redo),
		widget.NewToolbarAction(theme.ContentClearIcon(), w.Clear),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), w.Reset),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() {
			showOpen(win, w, log)
		}),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			showSave(win, w, log)
		}),
		widget.NewToolbarAction(theme.FileImageIcon(), func() {
			showExport(win, b, export.FormatPNG, log)
		}),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() {
			showExport(win, b, export.FormatPDF, log)
		}),
		widget.NewToolbarAction(theme.ViewFullScreenIcon(), func() {
			b.SetFullscreen(!b.Fullscreen())
		}),
	)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tools,
		toolLabel,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		layout.NewSpacer(),
		commands,
	)
}
