// Package utils converts loosely typed table cells.
//
// The community wiki tables type the same column as a number in one row and
// a string in the next. ToInt and ToString accept either and fall back to
// the zero value.
package utils
