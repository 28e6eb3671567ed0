package rop

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

var allowAll = cmp.Exporter(func(reflect.Type) bool { return true })

// PayloadEqual reports whether two payloads are structurally equal,
// including unexported fields.
func PayloadEqual(a, b any) bool {
	return cmp.Equal(a, b, allowAll)
}
