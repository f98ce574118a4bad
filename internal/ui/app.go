package ui

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"Inkwell/internal/export"
	"Inkwell/internal/net"
	"Inkwell/internal/state"
	"Inkwell/internal/svg"
)

// App wires the window together: the board in the middle, the toolbar
// on top, a status line at the bottom.
type App struct {
	app        fyne.App
	win        fyne.Window
	store      *state.Store
	board      *Board
	status     *widget.Label
	endpoint   string
	publishing bool
}

func NewApp(endpoint string) *App {
	a := &App{
		app:      app.New(),
		store:    state.NewStore(),
		status:   widget.NewLabel("Ready"),
		endpoint: endpoint,
	}
	a.win = a.app.NewWindow("Inkwell")
	a.win.Resize(fyne.NewSize(1024, 768))

	a.board = NewBoard(a.store)
	a.board.OnChange = a.refreshStatus

	a.win.SetContent(container.NewBorder(newToolbar(a), a.status, nil, nil, a.board))
	a.win.SetOnDropped(a.handleDrop)
	return a
}

func (a *App) Run() { a.win.ShowAndRun() }

func (a *App) refreshStatus() {
	a.status.SetText(fmt.Sprintf("%d stroke(s) on the board", a.store.Len()))
}

func (a *App) setStatus(text string) { a.status.SetText(text) }

func (a *App) reportError(what string, err error) {
	log.Printf("[UI] %s: %v", what, err)
	a.setStatus(what + " failed")
	dialog.ShowError(err, a.win)
}

func (a *App) importData(data []byte, source string) {
	doc, err := svg.Parse(data)
	if err != nil {
		a.reportError("import "+source, err)
		return
	}
	n := a.store.ImportDocument(doc)
	a.board.Refresh()
	a.setStatus(fmt.Sprintf("Imported %d path(s) from %s", n, source))
	log.Printf("[IMPORT] %d path(s) from %s", n, source)
}

func (a *App) openFileDialog() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			a.reportError("open file", err)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()
		data, err := io.ReadAll(reader)
		if err != nil {
			a.reportError("read "+reader.URI().Name(), err)
			return
		}
		a.importData(data, reader.URI().Name())
	}, a.win)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".svg"}))
	fd.Show()
}

func (a *App) openURLDialog() {
	entry := widget.NewEntry()
	entry.SetPlaceHolder("https://example.com/drawing.svg")
	dialog.ShowCustomConfirm("Import from URL", "Fetch", "Cancel", entry, func(ok bool) {
		if !ok || entry.Text == "" {
			return
		}
		url := entry.Text
		a.setStatus("Fetching " + url)
		go func() {
			data, err := net.FetchSVG(url)
			fyne.Do(func() {
				if err != nil {
					a.reportError("fetch", err)
					return
				}
				a.importData(data, url)
			})
		}()
	}, a.win)
}

func (a *App) handleDrop(_ fyne.Position, uris []fyne.URI) {
	for _, uri := range uris {
		if !strings.EqualFold(uri.Extension(), ".svg") {
			log.Printf("[IMPORT] ignoring dropped %s", uri.Name())
			continue
		}
		reader, err := storage.Reader(uri)
		if err != nil {
			a.reportError("open dropped file", err)
			continue
		}
		data, err := io.ReadAll(reader)
		reader.Close()
		if err != nil {
			a.reportError("read dropped file", err)
			continue
		}
		a.importData(data, uri.Name())
	}
}

func (a *App) saveDialog() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			a.reportError("save", err)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()
		if err := export.WriteSVG(writer, a.exportDocument()); err != nil {
			a.reportError("save "+writer.URI().Name(), err)
			return
		}
		a.setStatus("Saved " + writer.URI().Name())
	}, a.win)
	fd.SetFileName(export.Filename(time.Now()))
	fd.Show()
}

func (a *App) savePDFDialog() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			a.reportError("export PDF", err)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()
		if err := export.RenderPDF(writer, a.store.Strokes()); err != nil {
			a.reportError("export "+writer.URI().Name(), err)
			return
		}
		a.setStatus("Exported " + writer.URI().Name())
	}, a.win)
	fd.SetFileName(fmt.Sprintf("drawing-%d.pdf", time.Now().UnixMilli()))
	fd.Show()
}

// exportDocument snapshots the board at viewport size. Before the
// window has been laid out the size is zero, so fall back to the
// initial window size.
func (a *App) exportDocument() *svg.Document {
	size := a.board.Size()
	if size.Width <= 0 || size.Height <= 0 {
		size = fyne.NewSize(1024, 768)
	}
	return a.store.Document(size.Width, size.Height)
}

func (a *App) publish() {
	if a.publishing {
		return
	}
	if a.endpoint == "" {
		a.setStatus("No publish endpoint configured (set -api)")
		return
	}
	data, err := a.exportDocument().Render()
	if err != nil {
		a.reportError("publish", err)
		return
	}
	a.publishing = true
	a.setStatus("Publishing...")
	endpoint := a.endpoint
	go func() {
		reply, err := net.Publish(endpoint, string(data))
		fyne.Do(func() {
			a.publishing = false
			if err != nil {
				a.reportError("publish", err)
				return
			}
			if reply != nil {
				log.Printf("[NET] publish reply: %v", reply)
			}
			a.setStatus("Published to " + endpoint)
		})
	}()
}

func (a *App) copyShareLink() {
	data, err := a.exportDocument().Render()
	if err != nil {
		a.reportError("share link", err)
		return
	}
	a.win.Clipboard().SetContent(net.EncodeShareLink(data))
	a.setStatus("Share link copied to clipboard")
}

// OpenArgument imports a drawing named on the command line, either an
// inkwell:// share link or a path to an .svg file. Bad arguments are
// logged and skipped so the app still comes up.
func (a *App) OpenArgument(arg string) {
	switch {
	case strings.HasPrefix(arg, net.ShareScheme):
		data, err := net.DecodeShareLink(arg)
		if err != nil {
			log.Printf("[IMPORT] bad share link: %v", err)
			return
		}
		a.importData(data, "share link")
	case strings.EqualFold(filepath.Ext(arg), ".svg"):
		data, err := os.ReadFile(arg)
		if err != nil {
			log.Printf("[IMPORT] %s: %v", arg, err)
			return
		}
		a.importData(data, filepath.Base(arg))
	default:
		log.Printf("[IMPORT] ignoring argument %q", arg)
	}
}
