package scene

import (
	stderrors "errors"
	"reflect"
)

// Errors returned by Group mutations, wrapped in an errors.LayoutError.
var (
	ErrNilNode         = stderrors.New("nil node")
	ErrAlreadyAttached = stderrors.New("node already attached")
	ErrNotFound        = stderrors.New("node not in group")
	ErrGroupFull       = stderrors.New("group is full")
	ErrUncomparable    = stderrors.New("node type is not comparable")
)

// Comparable reports whether node can be matched by identity. Membership
// checks compare interface values, which panics for value types holding
// slices, maps or funcs.
func Comparable(node Node) bool {
	return node != nil && reflect.TypeOf(node).Comparable()
}
