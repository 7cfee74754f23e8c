package regression

import "strconv"

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
