package voronoi

import (
	"reflect"
	"testing"
)

func TestSchedule(t *testing.T) {
	tests := []struct {
		size Point
		want []int
	}{
		{Pt(1, 1), []int{1}},
		{Pt(2, 2), []int{1, 1}},
		{Pt(4, 1), []int{1, 2, 1}},
		{Pt(16, 9), []int{1, 8, 4, 2, 1}},
		{Pt(9, 16), []int{1, 8, 4, 2, 1}},
		{Pt(1, 40), []int{1, 20, 10, 5, 2, 1}},
		{Pt(100, 100), []int{1, 50, 25, 12, 6, 3, 1}},
	}
	for _, tt := range tests {
		if got := Schedule(tt.size); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Schedule(%v) = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestSchedule_EndsWithUnitStep(t *testing.T) {
	for x := 1; x < 70; x += 3 {
		for y := 1; y < 70; y += 5 {
			s := Schedule(Pt(x, y))
			if s[0] != 1 || s[len(s)-1] != 1 {
				t.Fatalf("Schedule(%d,%d) = %v, want to start and end with 1", x, y, s)
			}
			for i := 2; i < len(s); i++ {
				if s[i] > s[i-1] {
					t.Fatalf("Schedule(%d,%d) = %v is not decreasing after the first step", x, y, s)
				}
			}
		}
	}
}
