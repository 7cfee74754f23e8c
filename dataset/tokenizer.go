package dataset

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

/*
Delimiters separate fields of a record
*/
const Delimiters = ",;"

const maxLineLength = 64 * 1024 * 1024

/*
Tokenize reads delimited records. Runs of delimiters act as one field
boundary, lines without any field are skipped.
*/
func Tokenize(rd io.Reader) ([][]string, error) {
	var result [][]string
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 64*1024), maxLineLength)
	for sc.Scan() {
		if record := SplitRecord(sc.Text()); len(record) > 0 {
			result = append(result, record)
		}
	}
	return result, sc.Err()
}

/*
SplitRecord splits a line into fields by any of Delimiters
*/
func SplitRecord(line string) []string {
	var record []string
	prev := 0
	for {
		pos := strings.IndexAny(line[prev:], Delimiters)
		if pos < 0 {
			break
		}
		if pos > 0 {
			record = append(record, line[prev:prev+pos])
		}
		prev += pos + 1
	}
	if prev < len(line) {
		record = append(record, line[prev:])
	}
	return record
}

// unparseable cells become 0
func parseCell(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
