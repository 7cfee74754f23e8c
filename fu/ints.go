package fu

// Fnzi returns the first non-zero value or zero
func Fnzi(a ...int) int {
	for _, x := range a {
		if x != 0 {
			return x
		}
	}
	return 0
}

// Fnzf returns the first non-zero value or zero
func Fnzf(a ...float64) float64 {
	for _, x := range a {
		if x != 0 {
			return x
		}
	}
	return 0
}

func Maxi(a int, b ...int) int {
	for _, x := range b {
		if x > a {
			a = x
		}
	}
	return a
}

func Mini(a int, b ...int) int {
	for _, x := range b {
		if x < a {
			a = x
		}
	}
	return a
}

/*
Indmaxd returns index of the first maximal value or -1 for an empty slice
*/
func Indmaxd(a []float64) int {
	j := -1
	for i, x := range a {
		if j < 0 || x > a[j] {
			j = i
		}
	}
	return j
}
