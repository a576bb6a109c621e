package preview

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/voronoi"
)

type labels [][]int

func (l labels) Size() voronoi.Point { return voronoi.Pt(len(l[0]), len(l)) }
func (l labels) IDAt(x, y int) int   { return l[y][x] }

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func row(s tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := range width {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestDraw(t *testing.T) {
	s := newScreen(t, 10, 4)
	colors := []color.RGBA{{R: 0xff, A: 0xff}, {B: 0xff, A: 0xff}}
	Draw(s, labels{{1, 2, 0}, {2, 5, 1}}, colors, "ok")

	if got := row(s, 0, 3); got != "██ " {
		t.Errorf("row 0 = %q", got)
	}
	if got := row(s, 1, 3); got != "█?█" {
		t.Errorf("row 1 = %q", got)
	}

	_, _, style, _ := s.GetContent(0, 0)
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(0xff, 0, 0) {
		t.Errorf("cell (0,0) foreground = %v, want red", fg)
	}
	if bg != tcell.ColorBlack {
		t.Errorf("cell (0,0) background = %v, want black", bg)
	}

	if got := row(s, 3, 2); got != "ok" {
		t.Errorf("status row = %q, want %q", got, "ok")
	}
}

func TestDraw_Clipped(t *testing.T) {
	s := newScreen(t, 40, 3)
	ids := make(labels, 5)
	for y := range ids {
		ids[y] = make([]int, 50)
	}
	Draw(s, ids, nil, "big")

	status := strings.TrimRight(row(s, 2, 40), " ")
	if want := "big [clipped 40x2 of 50x5]"; status != want {
		t.Errorf("status = %q, want %q", status, want)
	}
}

func TestRun_Quit(t *testing.T) {
	keys := []struct {
		name string
		key  tcell.Key
		r    rune
	}{
		{"q", tcell.KeyRune, 'q'},
		{"esc", tcell.KeyEscape, 0},
		{"ctrl-c", tcell.KeyCtrlC, 0},
	}
	for _, k := range keys {
		t.Run(k.name, func(t *testing.T) {
			s := newScreen(t, 20, 5)
			s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
			s.InjectKey(k.key, k.r, tcell.ModNone)

			done := make(chan struct{})
			go func() {
				Run(s, labels{{1}}, []color.RGBA{{G: 0xff, A: 0xff}}, "run")
				close(done)
			}()

			select {
			case <-done:
			case <-time.After(5 * time.Second):
				t.Fatal("Run did not return after quit key")
			}
		})
	}
}
