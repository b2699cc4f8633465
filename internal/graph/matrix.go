package graph

import (
	"gonum.org/v1/gonum/mat"
)

// Matrix is a symmetric weighted adjacency matrix over vocabulary ids.
//
// Storage is dense (gonum SymDense keeps the upper triangle), so memory grows
// with N². That is fine for single documents; a sparse representation would
// have to preserve the exact same weights to keep rankings unchanged.
type Matrix struct {
	n   int
	sym *mat.SymDense // nil when n == 0
}

// NewMatrix creates an n×n zero matrix. n == 0 yields an empty matrix.
func NewMatrix(n int) *Matrix {
	if n <= 0 {
		return &Matrix{}
	}
	return &Matrix{n: n, sym: mat.NewSymDense(n, nil)}
}

// Len returns the number of nodes.
func (m *Matrix) Len() int {
	return m.n
}

// Weight returns the edge weight between i and j.
func (m *Matrix) Weight(i, j int) float64 {
	return m.sym.At(i, j)
}

// SetWeight sets the undirected edge weight between i and j.
func (m *Matrix) SetWeight(i, j int, w float64) {
	m.sym.SetSym(i, j, w)
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	if m.n == 0 {
		return nil
	}
	return mat.Row(nil, i, m.sym)
}

// OutWeights returns the total edge weight of every node. The diagonal is
// counted once.
func (m *Matrix) OutWeights() []float64 {
	out := make([]float64, m.n)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			out[i] += m.sym.At(i, j)
		}
	}
	return out
}

// EdgeCount returns the number of non-zero entries in the upper triangle,
// diagonal included.
func (m *Matrix) EdgeCount() int {
	count := 0
	for i := 0; i < m.n; i++ {
		for j := i; j < m.n; j++ {
			if m.sym.At(i, j) != 0 {
				count++
			}
		}
	}
	return count
}

// IsSymmetric reports whether Weight(i, j) == Weight(j, i) for all pairs.
func (m *Matrix) IsSymmetric() bool {
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.sym.At(i, j) != m.sym.At(j, i) {
				return false
			}
		}
	}
	return true
}
