package model

import (
	"fmt"
	"gonum.org/v1/gonum/mat"
)

/*
Logger is a diagnostic output capability. It is purely observational.
*/
type Logger interface {
	Verbose(string)
	Matrix(string, mat.Matrix)
}

type nolog struct{}

func (nolog) Verbose(string)            {}
func (nolog) Matrix(string, mat.Matrix) {}

/*
Nolog is the Logger doing nothing
*/
var Nolog Logger = nolog{}

/*
Printer adapts a print function to the Logger interface
*/
type Printer func(string)

func (p Printer) Verbose(s string) {
	p("[DEBUG] " + s)
}

func (p Printer) Matrix(title string, m mat.Matrix) {
	p(fmt.Sprintf("[DEBUG] %s:\n%v", title, mat.Formatted(m, mat.Excerpt(3))))
}

// LoggerOr returns l or Nolog if l is nil
func LoggerOr(l Logger) Logger {
	if l == nil {
		return Nolog
	}
	return l
}
