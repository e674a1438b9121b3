// Package cmpx holds the go-cmp configuration used for structural equality of payloads.
package cmpx

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var opts = cmp.Options{
	// Errors are equal if either matches the other with errors.Is, so distinct values from
	// errors.New compare unequal instead of being walked.
	cmpopts.EquateErrors(),
	// Otherwise cmp panics on the first unexported field it meets.
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// Equal reports whether a and b are structurally equal. It doesn't panic on unexported fields.
func Equal[T any](a, b T) bool {
	return cmp.Equal(a, b, opts)
}
