package ebiten

import (
	"errors"
	"path/filepath"

	"github.com/sqweek/dialog"
)

type dialogResult struct {
	filename string
	err      error
}

// open the file dialog in a new goroutine. the result is collected by
// checkDialog()
func (eg *guiEbiten) openTilesetDialog() {
	start := eg.lastTileset
	go func() {
		filename, err := tilesetRequest(start)
		eg.dialogResult <- dialogResult{filename: filename, err: err}
	}()
}

func (eg *guiEbiten) checkDialog() {
	select {
	case r := <-eg.dialogResult:
		if r.err != nil {
			showError(r.err.Error())
			return
		}
		if r.filename == "" {
			return
		}
		eg.lastTileset = r.filename
		eg.command("TILES", r.filename)
	default:
	}
}

func tilesetRequest(lastTileset string) (string, error) {
	dlg := dialog.File()
	dlg = dlg.Title("Select tileset image")
	dlg = dlg.Filter("Image Files", "png", "bmp")
	dlg = dlg.Filter("All Files")
	if lastTileset != "" {
		dlg = dlg.SetStartDir(filepath.Dir(lastTileset))
	}
	filename, err := dlg.Load()
	if err != nil {
		if errors.Is(err, dialog.ErrCancelled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}

func showError(msg string) {
	dialog.Message("%s", msg).Title("TestDMG").Error()
}
