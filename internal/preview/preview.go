// Package preview shows a labeled grid in the terminal.
package preview

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/voronoi"
	"github.com/gogpu/voronoi/internal/palette"
)

const block = '█'

// Draw paints one terminal cell per grid cell, clipped to the screen, and a
// status line on the last row. Ids without a palette entry are drawn as '?'.
func Draw(screen tcell.Screen, labels voronoi.Labels, colors []color.RGBA, status string) {
	screen.Clear()
	width, height := screen.Size()
	size := labels.Size()

	rows := min(size.Y, height-1)
	cols := min(size.X, width)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			id := labels.IDAt(x, y)
			c, ok := palette.Lookup(colors, id)
			style := tcell.StyleDefault.Background(tcell.ColorBlack)
			switch {
			case !ok:
				screen.SetContent(x, y, '?', nil, style.Foreground(tcell.ColorWhite))
			case id == 0:
				screen.SetContent(x, y, ' ', nil, style)
			default:
				fg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
				screen.SetContent(x, y, block, nil, style.Foreground(fg))
			}
		}
	}

	if height > 0 {
		line := status
		if size.X > cols || size.Y > rows {
			line = fmt.Sprintf("%s [clipped %dx%d of %dx%d]", status, cols, rows, size.X, size.Y)
		}
		drawText(screen, 0, height-1, width, line, tcell.StyleDefault.Reverse(true))
	}
	screen.Show()
}

func drawText(screen tcell.Screen, x, y, width int, text string, style tcell.Style) {
	for _, r := range text {
		if x >= width {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Run draws labels on an initialized screen and blocks until the user
// presses q, Esc or Ctrl-C, or the screen is finalized. Resizes redraw.
func Run(screen tcell.Screen, labels voronoi.Labels, colors []color.RGBA, status string) {
	Draw(screen, labels, colors, status)
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
			Draw(screen, labels, colors, status)
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return
			}
		}
	}
}

// Show opens the terminal, runs the preview and restores the terminal.
func Show(labels voronoi.Labels, colors []color.RGBA, status string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("preview: open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("preview: init screen: %w", err)
	}
	defer screen.Fini()

	Run(screen, labels, colors, status)
	return nil
}
