// Package value coerces raw configuration strings into the semantic types a
// caller asks for.
//
// Coercion never errors. Numbers that cannot be parsed become NaN, and
// booleans accept only bool values or the string "true" (any case) as true.
package value
