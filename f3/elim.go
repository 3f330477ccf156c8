package f3

// eliminate runs forward Gaussian elimination over F₃ on a private copy
// of d, returning the rank, the determinant (valid only when d is square
// and rank == d.rows — otherwise 0, matching the "singular => 0" F₃
// convention), and the column index chosen as pivot at each eliminated
// row, in elimination order.
//
// This is the one routine every other function in the package builds on:
// Rank reads off the rank, LargestPrincipalMinor reads off the pivot
// columns as a fast-path candidate witness (design note §9's "a single
// greedy pivoting pass... no combinatorial search needed in the common
// case") before falling back to an exhaustive search.
func (d Dense) eliminate() (rank int, det int8, pivotCols []int) {
	m := make([]int8, len(d.data))
	copy(m, d.data)
	rows, cols := d.rows, d.cols

	at := func(i, j int) int8 { return m[i*cols+j] }
	set := func(i, j int, v int8) { m[i*cols+j] = v }

	det = 1
	row := 0
	for col := 0; col < cols && row < rows; col++ {
		piv := -1
		for r := row; r < rows; r++ {
			if at(r, col) != 0 {
				piv = r
				break
			}
		}
		if piv == -1 {
			continue
		}
		if piv != row {
			for c := 0; c < cols; c++ {
				m[row*cols+c], m[piv*cols+c] = m[piv*cols+c], m[row*cols+c]
			}
			det = neg3(det)
		}
		pv := at(row, col)
		det = mul3(det, pv)
		ipv := inv3(pv)
		for r := row + 1; r < rows; r++ {
			factor := mul3(at(r, col), ipv)
			if factor == 0 {
				continue
			}
			for c := col; c < cols; c++ {
				set(r, c, sub3(at(r, c), mul3(factor, at(row, c))))
			}
		}
		pivotCols = append(pivotCols, col)
		row++
		rank++
	}
	if !d.Square() || rank < rows {
		det = 0
	}
	return rank, det, pivotCols
}

// Rank returns the F₃-rank of d. It accepts rectangular matrices, which
// §4.7 needs for the augmented matrix (M | ℓ).
func Rank(d Dense) int {
	r, _, _ := d.eliminate()
	return r
}
