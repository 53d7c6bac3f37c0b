package core

import "testing"

func TestRotateCWDimensionsSwap(t *testing.T) {
	m := Matrix{
		{1, 0, 0},
		{1, 1, 1},
	}

	r := RotateCW(m)

	if r.Rows() != 3 || r.Cols() != 2 {
		t.Errorf("RotateCW(2x3) should be 3x2, got %dx%d", r.Rows(), r.Cols())
	}
}

func TestRotateCWContent(t *testing.T) {
	// J piece: rotating clockwise moves the top-left stub to the top-right.
	m := Matrix{
		{1, 0, 0},
		{1, 1, 1},
	}
	expected := Matrix{
		{1, 1},
		{1, 0},
		{1, 0},
	}

	r := RotateCW(m)

	if !r.Equal(expected) {
		t.Errorf("RotateCW() = %v, expected %v", r, expected)
	}
}

func TestRotateCWFourTimesIsIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"square", Matrix{{1, 1}, {1, 1}}},
		{"bar", Matrix{{1, 1, 1, 1}}},
		{"tee", Matrix{{1, 1, 1}, {0, 1, 0}}},
		{"ess", Matrix{{0, 1, 1}, {1, 1, 0}}},
		{"single", Matrix{{1}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := tc.m
			for i := 0; i < 4; i++ {
				r = RotateCW(r)
			}
			if !r.Equal(tc.m) {
				t.Errorf("four rotations of %v = %v, expected original", tc.m, r)
			}
		})
	}
}

func TestRotateCWDoesNotMutate(t *testing.T) {
	m := Matrix{
		{1, 0},
		{1, 1},
	}
	orig := m.Clone()

	RotateCW(m)

	if !m.Equal(orig) {
		t.Error("RotateCW() should not mutate its input")
	}
}

func TestSpawnPosition(t *testing.T) {
	tests := []struct {
		name       string
		m          Matrix
		boardWidth int
		expected   Point
	}{
		{"2-wide on 10", Matrix{{1, 1}, {1, 1}}, 10, Point{X: 4, Y: 0}},
		{"4-wide on 10", Matrix{{1, 1, 1, 1}}, 10, Point{X: 3, Y: 0}},
		{"3-wide on 10", Matrix{{1, 1, 1}, {0, 1, 0}}, 10, Point{X: 4, Y: 0}},
		{"1-wide on 10", Matrix{{1}}, 10, Point{X: 5, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SpawnPosition(tc.m, tc.boardWidth)
			if got != tc.expected {
				t.Errorf("SpawnPosition() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 3, Y: 5}
	got := p.Add(Point{X: -1, Y: 2})
	if got != (Point{X: 2, Y: 7}) {
		t.Errorf("Add() = %v, expected {2 7}", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp should not change in-range values")
	}
	if Clamp(-3, 0, 10) != 0 {
		t.Error("Clamp should raise values below min")
	}
	if Clamp(15, 0, 10) != 10 {
		t.Error("Clamp should lower values above max")
	}
}
