package dump

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/voronoi"
)

type labels [][]int

func (l labels) Size() voronoi.Point { return voronoi.Pt(len(l[0]), len(l)) }
func (l labels) IDAt(x, y int) int   { return l[y][x] }

func TestWrite(t *testing.T) {
	tests := []struct {
		name string
		in   labels
		want string
	}{
		{"single", labels{{1}}, "1\n"},
		{"row", labels{{1, 1, 2, 2}}, "1 1 2 2\n"},
		{"rows", labels{{1, 2}, {0, 12}, {3, 3}}, "1 2\n0 12\n3 3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, tt.in); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Write() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrite_Grid(t *testing.T) {
	g, err := voronoi.NewGrid(voronoi.Pt(3, 2), []voronoi.Point{voronoi.Pt(0, 0), voronoi.Pt(2, 1)})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "1 0 0\n0 0 2\n"; got != want {
		t.Errorf("Write() = %q, want %q", got, want)
	}
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWrite_Error(t *testing.T) {
	if err := Write(failWriter{}, labels{{1, 2}}); !errors.Is(err, errWrite) {
		t.Errorf("Write() error = %v, want %v", err, errWrite)
	}
}
