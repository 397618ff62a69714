package column

import "golang.org/x/exp/constraints"

type number interface {
	constraints.Integer | constraints.Float
}

func AddConstant[T number](dest []T, a []T, x T) {
	for i := range a {
		dest[i] = a[i] + x
	}
}

func SubConstant[T number](dest []T, a []T, x T) {
	for i := range a {
		dest[i] = a[i] - x
	}
}

func MulConstant[T number](dest []T, a []T, x T) {
	for i := range a {
		dest[i] = a[i] * x
	}
}

func DivConstant[T number](dest []T, a []T, x T) {
	for i := range a {
		dest[i] = a[i] / x
	}
}

func ModConstant[T constraints.Integer](dest []T, a []T, x T) {
	for i := range a {
		dest[i] = a[i] % x
	}
}
