package fluff

import (
	"reflect"
)

// IsNil reports whether i is a nil interface or holds a nil pointer, map,
// slice, channel, function or interface.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// IsZero reports whether v is the zero value of T. It works for any T,
// including non-comparable structs.
func IsZero[T any](v T) bool {
	return reflect.ValueOf(&v).Elem().IsZero()
}

// StructuralEqual is the equality used when no Comparer is given
func StructuralEqual[T any](left, right T) bool {
	return reflect.DeepEqual(left, right)
}
