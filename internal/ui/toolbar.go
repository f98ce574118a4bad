package ui

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"Inkwell/internal/easing"
	"Inkwell/internal/state"
	"Inkwell/internal/svg"
)

var palette = []string{"#1d1d1d", "#e03131", "#2f9e44", "#4263eb", "#f08c00", "#ffd43b"}

// colorSwatch is a small tappable rectangle holding one palette color.
type colorSwatch struct {
	widget.BaseWidget
	Hex      string
	OnTapped func(hex string)
}

func newColorSwatch(hex string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Hex: hex, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(svg.ParseHexColor(s.Hex))
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Hex)
	}
}

func newToolbar(a *App) fyne.CanvasObject {
	kinds := []state.ToolKind{state.ToolPenA, state.ToolPenB, state.ToolHighlighter, state.ToolEraser}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}

	size := widget.NewSlider(1, 64)
	opacity := widget.NewSlider(0, 1)
	opacity.Step = 0.05

	// The sliders both reflect and edit the active tool, so writes back
	// into the toolbox are suppressed while they are being synced.
	syncing := false
	syncFromTool := func() {
		syncing = true
		defer func() { syncing = false }()
		tools := a.store.Tools()
		if cfg, ok := tools.ActiveBrush(); ok {
			size.SetValue(float64(cfg.Size))
			opacity.SetValue(float64(cfg.Opacity))
			opacity.Enable()
			return
		}
		size.SetValue(float64(tools.Eraser().Size))
		opacity.Disable()
	}

	size.OnChanged = func(v float64) {
		if syncing {
			return
		}
		tools := a.store.Tools()
		if cfg, ok := tools.ActiveBrush(); ok {
			cfg.Size = float32(v)
			if err := tools.SetBrush(tools.Active(), cfg); err != nil {
				log.Printf("[UI] size change rejected: %v", err)
			}
			return
		}
		if err := tools.SetEraser(state.EraserConfig{Size: float32(v)}); err != nil {
			log.Printf("[UI] eraser size rejected: %v", err)
		}
	}

	opacity.OnChanged = func(v float64) {
		if syncing {
			return
		}
		tools := a.store.Tools()
		cfg, ok := tools.ActiveBrush()
		if !ok {
			return
		}
		cfg.Opacity = float32(v)
		if err := tools.SetBrush(tools.Active(), cfg); err != nil {
			log.Printf("[UI] opacity change rejected: %v", err)
		}
	}

	toolPicker := widget.NewRadioGroup(names, func(selected string) {
		for i, n := range names {
			if n == selected {
				a.store.Tools().SetActive(kinds[i])
				break
			}
		}
		syncFromTool()
	})
	toolPicker.Horizontal = true
	toolPicker.SetSelected(names[0])

	swatches := container.NewHBox()
	for _, hex := range palette {
		swatches.Add(newColorSwatch(hex, func(hex string) {
			tools := a.store.Tools()
			cfg, ok := tools.ActiveBrush()
			if !ok {
				a.setStatus("The eraser has no color")
				return
			}
			cfg.Color = hex
			if err := tools.SetBrush(tools.Active(), cfg); err != nil {
				a.reportError("set color", err)
			}
		}))
	}

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() {
			a.store.Undo()
			a.board.Refresh()
			a.refreshStatus()
		}),
		widget.NewToolbarAction(theme.ContentRedoIcon(), func() {
			a.store.Redo()
			a.board.Refresh()
			a.refreshStatus()
		}),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			dialog.ShowConfirm("Clear board", "Remove every stroke?", func(ok bool) {
				if !ok {
					return
				}
				a.store.Clear()
				a.board.Refresh()
				a.refreshStatus()
			}, a.win)
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ColorPaletteIcon(), a.shapeDialog),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), func() {
			tools := a.store.Tools()
			tools.Reset(tools.Active())
			syncFromTool()
			a.setStatus(fmt.Sprintf("Reset %s to defaults", tools.Active()))
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.FolderOpenIcon(), a.openFileDialog),
		widget.NewToolbarAction(theme.DownloadIcon(), a.openURLDialog),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), a.saveDialog),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), a.savePDFDialog),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.UploadIcon(), a.publish),
		widget.NewToolbarAction(theme.ContentCopyIcon(), a.copyShareLink),
	)

	sizeBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), size)
	opacityBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), opacity)

	top := container.NewHBox(
		actions,
		widget.NewSeparator(),
		toolPicker,
		layout.NewSpacer(),
	)
	bottom := container.NewHBox(
		widget.NewLabel("Color:"),
		swatches,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sizeBox,
		widget.NewLabel("Opacity:"),
		opacityBox,
		layout.NewSpacer(),
	)
	return container.NewVBox(top, bottom)
}

// shapeDialog edits the geometry parameters of the active brush. The
// toolbox validates on apply, so a bad combination never lands.
func (a *App) shapeDialog() {
	tools := a.store.Tools()
	kind := tools.Active()
	cfg, ok := tools.ActiveBrush()
	if !ok {
		a.setStatus("The eraser has no stroke shape")
		return
	}

	thinning := widget.NewSlider(-1, 1)
	thinning.Step = 0.05
	thinning.SetValue(float64(cfg.Thinning))
	streamline := widget.NewSlider(0, 1)
	streamline.Step = 0.05
	streamline.SetValue(float64(cfg.Streamline))
	smoothing := widget.NewSlider(0, 1)
	smoothing.Step = 0.05
	smoothing.SetValue(float64(cfg.Smoothing))

	names := easing.Names()
	mainEase := widget.NewSelect(names, nil)
	mainEase.SetSelected(cfg.Easing)
	startEase := widget.NewSelect(names, nil)
	startEase.SetSelected(cfg.Start.Easing)
	endEase := widget.NewSelect(names, nil)
	endEase.SetSelected(cfg.End.Easing)

	startTaper := widget.NewSlider(0, 200)
	startTaper.SetValue(float64(cfg.Start.Taper))
	endTaper := widget.NewSlider(0, 200)
	endTaper.SetValue(float64(cfg.End.Taper))

	outlineColor := widget.NewEntry()
	outlineColor.SetText(cfg.Outline.Color)
	outlineWidth := widget.NewSlider(0, 8)
	outlineWidth.Step = 0.5
	outlineWidth.SetValue(float64(cfg.Outline.Width))

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Thinning"), thinning,
		widget.NewLabel("Streamline"), streamline,
		widget.NewLabel("Smoothing"), smoothing,
		widget.NewLabel("Easing"), mainEase,
		widget.NewLabel("Start taper"), startTaper,
		widget.NewLabel("Start easing"), startEase,
		widget.NewLabel("End taper"), endTaper,
		widget.NewLabel("End easing"), endEase,
		widget.NewLabel("Outline color"), outlineColor,
		widget.NewLabel("Outline width"), outlineWidth,
	)

	title := fmt.Sprintf("Stroke shape (%s)", kind)
	dlg := dialog.NewCustomConfirm(title, "Apply", "Cancel", form, func(ok bool) {
		if !ok {
			return
		}
		cfg.Thinning = float32(thinning.Value)
		cfg.Streamline = float32(streamline.Value)
		cfg.Smoothing = float32(smoothing.Value)
		cfg.Easing = mainEase.Selected
		cfg.Start = state.TaperConfig{Taper: float32(startTaper.Value), Easing: startEase.Selected}
		cfg.End = state.TaperConfig{Taper: float32(endTaper.Value), Easing: endEase.Selected}
		cfg.Outline = state.OutlineConfig{Color: outlineColor.Text, Width: float32(outlineWidth.Value)}
		if err := tools.SetBrush(kind, cfg); err != nil {
			a.reportError("apply stroke shape", err)
		}
	}, a.win)
	dlg.Resize(fyne.NewSize(480, 0))
	dlg.Show()
}
