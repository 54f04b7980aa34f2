package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/numkit/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// mustDense allocates an r×c Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// fillDenseRand fills m with small deterministic values in [-50, 50] so that
// float64 oracles stay exact.
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.NoError(tb, m.Set(i, j, int32(rng.Intn(101)-50)))
		}
	}
}

// toGonum copies m into a gonum dense matrix.
func toGonum(tb testing.TB, m matrix.Matrix) *mat.Dense {
	tb.Helper()
	data := make([]float64, 0, m.Rows()*m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(tb, err)
			data = append(data, float64(v))
		}
	}

	return mat.NewDense(m.Rows(), m.Cols(), data)
}

// requireMatchesGonum asserts got == a×b using gonum as an independent oracle.
func requireMatchesGonum(tb testing.TB, a, b, got matrix.Matrix) {
	tb.Helper()
	var want mat.Dense
	want.Mul(toGonum(tb, a), toGonum(tb, b))

	r, c := want.Dims()
	require.Equal(tb, r, got.Rows())
	require.Equal(tb, c, got.Cols())
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := got.At(i, j)
			require.NoError(tb, err)
			require.Equal(tb, int32(want.At(i, j)), v, "cell (%d,%d)", i, j)
		}
	}
}

// rowMajor is a minimal non-Dense Matrix used to exercise the generic Mul path.
type rowMajor struct {
	r, c int
	v    [][]int32
}

func newRowMajor(rows [][]int32) *rowMajor {
	return &rowMajor{r: len(rows), c: len(rows[0]), v: rows}
}

func (m *rowMajor) Rows() int { return m.r }
func (m *rowMajor) Cols() int { return m.c }
func (m *rowMajor) At(i, j int) (int32, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, matrix.ErrOutOfRange
	}
	return m.v[i][j], nil
}
func (m *rowMajor) Set(i, j int, v int32) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return matrix.ErrOutOfRange
	}
	m.v[i][j] = v
	return nil
}
func (m *rowMajor) Clone() matrix.Matrix {
	cp := make([][]int32, m.r)
	for i := range m.v {
		cp[i] = append([]int32(nil), m.v[i]...)
	}
	return &rowMajor{r: m.r, c: m.c, v: cp}
}
