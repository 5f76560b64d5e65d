package epsilon

// grid stores epsilon cells addressed by column (−1 … steps) and relative
// diagonal position j (0 … m−col). Column −1 reads as zero.
type grid[T any] interface {
	at(col, j int) T
	put(col, j int, v T)
}

// ring keeps four rows; column col lives in slot (col+1)&3, so column k+1
// reuses the row of column k−3. The engine reads ε_{k−3}^{(j+2)} before it
// writes ε_{k+1}^{(j)}, and j only grows, so no live cell is lost.
type ring[T any] struct {
	rows [4][]T
}

// newRing allocates four rows of m+1 cells; slot 0 (column −1) starts zeroed.
func newRing[T any](m int) *ring[T] {
	r := &ring[T]{}
	for i := range r.rows {
		r.rows[i] = make([]T, m+1)
	}

	return r
}

func (r *ring[T]) at(col, j int) T     { return r.rows[(col+1)&3][j] }
func (r *ring[T]) put(col, j int, v T) { r.rows[(col+1)&3][j] = v }

// triangle keeps every column: cols[col+1] has m+1−max(col,0) cells.
type triangle[T any] struct {
	cols [][]T
}

func newTriangle[T any](m, steps int) *triangle[T] {
	t := &triangle[T]{cols: make([][]T, steps+2)}
	t.cols[0] = make([]T, m+1)
	for col := 0; col <= steps; col++ {
		t.cols[col+1] = make([]T, m+1-col)
	}

	return t
}

func (t *triangle[T]) at(col, j int) T     { return t.cols[col+1][j] }
func (t *triangle[T]) put(col, j int, v T) { t.cols[col+1][j] = v }
