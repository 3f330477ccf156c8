package f3

import "testing"

func TestRank(t *testing.T) {
	tests := []struct {
		name string
		n    int
		raw  []int
		want int
	}{
		{"zero 3x3", 3, []int{0, 0, 0, 0, 0, 0, 0, 0, 0}, 0},
		{"identity 2x2", 2, []int{1, 0, 0, 1}, 2},
		{
			"rank-2 singular 4x4",
			4,
			[]int{
				-1, 1, 0, 0,
				1, -1, 0, 0,
				0, 0, 1, -1,
				0, 0, -1, 1,
			},
			2,
		},
		{
			"full rank 3x3",
			3,
			[]int{
				1, 1, 0,
				0, 1, 1,
				1, 0, 1,
			},
			3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rank(NewDense(tt.n, tt.n, tt.raw))
			if got != tt.want {
				t.Errorf("Rank() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRankRectangular(t *testing.T) {
	// (M | l) augmented matrix from spec §4.7: 2x3.
	d := NewDense(2, 3, []int{
		1, 0, 1,
		0, 1, 1,
	})
	if got := Rank(d); got != 2 {
		t.Errorf("Rank() = %d, want 2", got)
	}
}

func TestAugment(t *testing.T) {
	m := NewDense(2, 2, []int{1, 0, 0, 1})
	aug := m.Augment([]int{2, -1})
	if aug.Rows() != 2 || aug.Cols() != 3 {
		t.Fatalf("Augment shape = %dx%d, want 2x3", aug.Rows(), aug.Cols())
	}
	if aug.At(0, 2) != -1 || aug.At(1, 2) != -1 {
		t.Errorf("Augment column = [%d %d], want [-1 -1] (2 reduces to -1 mod 3)", aug.At(0, 2), aug.At(1, 2))
	}
}
