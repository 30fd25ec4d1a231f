// Package conv provides bounds-checked integer conversions for values that
// arrive from callers or configuration.
package conv
