package voronoi

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestTessellate(t *testing.T) {
	seeds := []Point{Pt(0, 0), Pt(3, 0)}
	want := [][]int{{1, 1, 2, 2}}

	for _, parallel := range []bool{false, true} {
		g, stats, err := Tessellate(context.Background(), Pt(4, 1), seeds, Options{Parallel: parallel, Workers: 2})
		if err != nil {
			t.Fatalf("parallel=%v: %v", parallel, err)
		}
		if got := g.IDs(); !reflect.DeepEqual(got, want) {
			t.Errorf("parallel=%v: IDs() = %v, want %v", parallel, got, want)
		}
		if parallel && stats.Rounds == 0 {
			t.Error("parallel fill reported no rounds")
		}
		if !parallel && stats.Rounds != 0 {
			t.Errorf("sequential fill reported %d rounds", stats.Rounds)
		}
	}
}

func TestTessellate_EnginesAgreeWithoutTies(t *testing.T) {
	// The bisector 14x+4y = 53 has no integer points, so no cell is tied,
	// and both regions are connected.
	size := Pt(9, 7)
	seeds := []Point{Pt(0, 0), Pt(7, 2)}

	seq, _, err := Tessellate(context.Background(), size, seeds, Options{})
	if err != nil {
		t.Fatal(err)
	}
	par, _, err := Tessellate(context.Background(), size, seeds, Options{Parallel: true})
	if err != nil {
		t.Fatal(err)
	}
	checkFilled(t, seq)
	checkFilled(t, par)

	for y := range size.Y {
		for x := range size.X {
			ids := nearest(Pt(x, y), seeds)
			if len(ids) != 1 {
				t.Fatalf("cell (%d,%d) is tied", x, y)
			}
			if !ids[seq.IDAt(x, y)] || !ids[par.IDAt(x, y)] {
				t.Errorf("cell (%d,%d): sequential %d, parallel %d, nearest %v", x, y, seq.IDAt(x, y), par.IDAt(x, y), ids)
			}
		}
	}
}

func TestTessellate_InvalidInput(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		_, _, err := Tessellate(context.Background(), Pt(3, 3), []Point{Pt(5, 5)}, Options{Parallel: parallel})
		if !errors.Is(err, ErrSeedOutOfBounds) {
			t.Errorf("parallel=%v: error = %v, want ErrSeedOutOfBounds", parallel, err)
		}
	}
}
