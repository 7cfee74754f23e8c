package fu

import "math"

func Mse(a, b []float64) float64 {
	var c float64
	for i, x := range a {
		q := x - b[i]
		c += q * q
	}
	return c / float64(len(a))
}

/*
Clip limits x to the closed range [lo,hi]
*/
func Clip(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

/*
Flatnr concatenates rows into one row-major slice
*/
func Flatnr(a [][]float64) []float64 {
	n := 0
	for _, x := range a {
		n += len(x)
	}
	r := make([]float64, n)
	i := 0
	for _, x := range a {
		copy(r[i:i+len(x)], x)
		i += len(x)
	}
	return r
}
