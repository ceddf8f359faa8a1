// Package str provides nil-safe string helpers and .NET style composite
// formatting.
//
// Composite format items have the form {index[,alignment][:format]}; literal
// braces are written {{ and }}. Supported format strings:
//
//	N, Nk   number with group separators and k decimals (default 2)
//	F, Fk   fixed point with k decimals (default 2)
//	D, Dk   integer zero-padded to k digits
//	X, x    hexadecimal, upper or lower case
//	E, e    scientific notation
//
// Anything else renders the argument with %v. Items without a format string
// never group digits; FormatLocale only applies the decimal separator of the
// language to them. N and F go through a golang.org/x/text/message printer so
// they follow the conventions of the given language. X prints negative values
// as two's complement in the width of their type.
package str
