package engine

import (
	"errors"
	"testing"
)

func TestFindRuns(t *testing.T) {
	tests := []struct {
		name   string
		pieces []Placement
		at     Cell
		want   map[Axis]int // axis -> cells excluding the reference
	}{
		{
			name:   "five in a row",
			pieces: line(At(4, 2), 0, 1, 5, 3),
			at:     At(4, 4),
			want:   map[Axis]int{AxisHorizontal: 4},
		},
		{
			name:   "four in a row does not clear",
			pieces: line(At(4, 2), 0, 1, 4, 3),
			at:     At(4, 4),
			want:   map[Axis]int{},
		},
		{
			name:   "six in a column",
			pieces: line(At(1, 6), 1, 0, 6, 2),
			at:     At(1, 6),
			want:   map[Axis]int{AxisVertical: 5},
		},
		{
			name:   "rising diagonal",
			pieces: line(At(6, 1), -1, 1, 5, 4),
			at:     At(4, 3),
			want:   map[Axis]int{AxisRising: 4},
		},
		{
			name:   "falling diagonal at the corner",
			pieces: line(At(0, 0), 1, 1, 5, 6),
			at:     At(0, 0),
			want:   map[Axis]int{AxisFalling: 4},
		},
		{
			name: "cross clears two axes",
			pieces: append(
				line(At(2, 2), 0, 1, 5, 1),
				line(At(3, 2), 1, 0, 4, 1)...,
			),
			at:   At(2, 2),
			want: map[Axis]int{AxisHorizontal: 4, AxisVertical: 4},
		},
		{
			name: "different color breaks the line",
			pieces: append(
				line(At(0, 0), 0, 1, 3, 2),
				append([]Placement{{Cell: At(0, 3), Piece: 5}}, line(At(0, 4), 0, 1, 2, 2)...)...,
			),
			at:   At(0, 1),
			want: map[Axis]int{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBoard(9, &fixedSource{})
			for _, p := range tc.pieces {
				mustPlace(t, b, p.Cell, p.Piece)
			}

			runs, err := FindRuns(b, tc.at, 5)
			if err != nil {
				t.Fatalf("FindRuns() failed: %v", err)
			}
			if len(runs) != len(tc.want) {
				t.Fatalf("FindRuns() returned %d runs, want %d: %+v", len(runs), len(tc.want), runs)
			}
			for _, r := range runs {
				n, ok := tc.want[r.Axis]
				if !ok {
					t.Errorf("unexpected run on %v axis", r.Axis)
					continue
				}
				if len(r.Cells) != n {
					t.Errorf("%v run has %d cells, want %d", r.Axis, len(r.Cells), n)
				}
				for _, c := range r.Cells {
					if c == tc.at {
						t.Errorf("%v run includes the reference cell", r.Axis)
					}
				}
			}
		})
	}
}

func TestFindRunsShorterLength(t *testing.T) {
	b := NewBoard(5, &fixedSource{})
	for _, p := range line(At(0, 0), 0, 1, 3, 1) {
		mustPlace(t, b, p.Cell, p.Piece)
	}

	runs, err := FindRuns(b, At(0, 2), 3)
	if err != nil {
		t.Fatalf("FindRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Axis != AxisHorizontal {
		t.Errorf("FindRuns(len 3) = %+v, want one horizontal run", runs)
	}
}

func TestFindRunsErrors(t *testing.T) {
	b := NewBoard(5, &fixedSource{})
	if _, err := FindRuns(b, At(2, 2), 5); !errors.Is(err, ErrEmptyCell) {
		t.Errorf("FindRuns(empty) = %v, want ErrEmptyCell", err)
	}
	if _, err := FindRuns(b, At(5, 5), 5); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("FindRuns(outside) = %v, want ErrOutOfBounds", err)
	}
}

// line returns n same-colored placements starting at from and stepping by (dr, dc).
func line(from Cell, dr, dc, n int, p Piece) []Placement {
	out := make([]Placement, 0, n)
	c := from
	for range n {
		out = append(out, Placement{Cell: c, Piece: p})
		c = c.Add(dr, dc)
	}
	return out
}
