package column

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

func makeSlice[T constraints.Integer | constraints.Float](n int) []T {
	s := make([]T, n)
	for i := 0; i < n; i++ {
		s[i] = T(i + 1)
	}

	return s
}

func TestAddConstant(t *testing.T) {
	from := makeSlice[int64](25)
	got := make([]int64, 25)
	AddConstant(got, from, 1)
	for i := range from {
		require.Equal(t, from[i]+1, got[i])
	}
}

func TestSubConstant(t *testing.T) {
	from := makeSlice[int64](25)
	got := make([]int64, 25)
	SubConstant(got, from, 1)
	for i := range from {
		require.Equal(t, from[i]-1, got[i])
	}
}

func TestMulConstant(t *testing.T) {
	from := makeSlice[float64](25)
	got := make([]float64, 25)
	MulConstant(got, from, 2)
	for i := range from {
		require.Equal(t, from[i]*2, got[i])
	}
}

func TestDivConstant(t *testing.T) {
	from := makeSlice[float64](25)
	got := make([]float64, 25)
	DivConstant(got, from, 2)
	for i := range from {
		require.Equal(t, from[i]/2, got[i])
	}
}

func TestModConstant(t *testing.T) {
	from := makeSlice[int64](25)
	got := make([]int64, 25)
	ModConstant(got, from, 3)
	for i := range from {
		require.Equal(t, from[i]%3, got[i])
	}
}

func BenchmarkAddConstant(b *testing.B) {
	a := makeSlice[int64](8192)
	to := make([]int64, 8192)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AddConstant(to, a, 1)
	}
}

func BenchmarkMulConstant(b *testing.B) {
	a := makeSlice[int64](8192)
	to := make([]int64, 8192)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MulConstant(to, a, 2)
	}
}
