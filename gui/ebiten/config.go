package ebiten

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jetsetilly/testdmg/resources"
)

const geometryResource = "window"

func onWindowOpen() (windowGeometry, error) {
	s, err := resources.Read(geometryResource)
	if err != nil {
		return windowGeometry{}, err
	}
	if strings.TrimSpace(s) == "" {
		return windowGeometry{}, nil
	}

	var g windowGeometry
	_, err = fmt.Sscanf(s, "%d %d %d %d", &g.x, &g.y, &g.w, &g.h)
	if err != nil {
		return windowGeometry{}, fmt.Errorf("window geometry: %w", err)
	}

	if g.valid() {
		ebiten.SetWindowPosition(g.x, g.y)
		ebiten.SetWindowSize(g.w, g.h)
	}

	return g, nil
}

func onWindowClose(g windowGeometry) error {
	if !g.valid() {
		return nil
	}
	s := fmt.Sprintf("%d %d %d %d", g.x, g.y, g.w, g.h)
	return resources.Write(geometryResource, s)
}
