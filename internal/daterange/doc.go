// Package daterange parses and compares the loosely written date ranges found
// in convention series tables ("June 1-3, 2020", "Dec 31, 2019-Jan 2, 2020",
// "May 2021").
//
// A Range is a value type: it is comparable with == and can be used as part
// of a map key. The zero Range is empty.
package daterange
