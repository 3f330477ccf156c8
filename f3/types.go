package f3

import "fmt"

// Dense is a dense rows x cols matrix over F₃. The zero value is not
// usable; construct with NewDense.
type Dense struct {
	rows, cols int
	data       []int8 // row-major, canonical values in {0, 1, 2}
}

// NewDense returns a rows x cols matrix whose entries are raw, reduced
// mod 3. raw must have exactly rows*cols elements in row-major order.
// It panics on a dimension mismatch, matching mat.NewDense's contract.
func NewDense(rows, cols int, raw []int) Dense {
	if rows <= 0 || cols <= 0 {
		panic("f3: non-positive dimension")
	}
	if len(raw) != rows*cols {
		panic(fmt.Sprintf("f3: dimension mismatch: got %d values for a %dx%d matrix", len(raw), rows, cols))
	}
	data := make([]int8, rows*cols)
	for i, v := range raw {
		data[i] = reduce3(v)
	}
	return Dense{rows: rows, cols: cols, data: data}
}

// Zero returns the rows x cols zero matrix.
func Zero(rows, cols int) Dense {
	return Dense{rows: rows, cols: cols, data: make([]int8, rows*cols)}
}

func reduce3(v int) int8 {
	m := v % 3
	if m < 0 {
		m += 3
	}
	return int8(m)
}

// Rows returns the number of rows.
func (d Dense) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d Dense) Cols() int { return d.cols }

// Square reports whether d is square.
func (d Dense) Square() bool { return d.rows == d.cols }

// raw returns the canonical {0,1,2} value at (i, j).
func (d Dense) raw(i, j int) int8 { return d.data[i*d.cols+j] }

func (d Dense) set(i, j int, v int8) { d.data[i*d.cols+j] = v }

// At returns the signed representative {-1, 0, 1} of entry (i, j).
func (d Dense) At(i, j int) int { return signed(d.raw(i, j)) }

func signed(v int8) int {
	if v == 2 {
		return -1
	}
	return int(v)
}

// Sub returns the principal-ish submatrix formed by keeping exactly the
// given rows and the same index set as columns (d must be square). Use
// SubRowsCols for a non-principal selection, e.g. on a rectangular
// augmented matrix.
func (d Dense) Sub(idx []int) Dense {
	if !d.Square() {
		panic("f3: Sub requires a square matrix")
	}
	return d.SubRowsCols(idx, idx)
}

// SubRowsCols returns the submatrix with the given row and column
// indices, in the order given.
func (d Dense) SubRowsCols(rows, cols []int) Dense {
	out := Zero(len(rows), len(cols))
	for a, i := range rows {
		for b, j := range cols {
			out.set(a, b, d.raw(i, j))
		}
	}
	return out
}

// Augment returns d with col appended as a new final column. d.rows must
// equal len(col). Used to build the augmented matrix (M | ℓ) of §4.7.
func (d Dense) Augment(col []int) Dense {
	if len(col) != d.rows {
		panic("f3: Augment: column length mismatch")
	}
	out := Zero(d.rows, d.cols+1)
	for i := 0; i < d.rows; i++ {
		for j := 0; j < d.cols; j++ {
			out.set(i, j, d.raw(i, j))
		}
		out.set(i, d.cols, reduce3(col[i]))
	}
	return out
}

// Equal reports whether d and o have the same shape and entries.
func (d Dense) Equal(o Dense) bool {
	if d.rows != o.rows || d.cols != o.cols {
		return false
	}
	for i, v := range d.data {
		if v != o.data[i] {
			return false
		}
	}
	return true
}

// Ints returns the entries of d as a slice of rows of signed
// {-1, 0, 1} values — convenient for printing and for building
// diagnostics such as tait.InconsistencyDiagnostic.
func (d Dense) Ints() [][]int {
	out := make([][]int, d.rows)
	for i := 0; i < d.rows; i++ {
		row := make([]int, d.cols)
		for j := 0; j < d.cols; j++ {
			row[j] = d.At(i, j)
		}
		out[i] = row
	}
	return out
}

// String renders d as a bracketed row list, e.g. "[[1 0] [0 -1]]".
func (d Dense) String() string {
	return fmt.Sprint(d.Ints())
}
