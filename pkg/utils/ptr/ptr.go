// Package ptr helps with the pointer fields used for nullable JSON values.
package ptr

func Ref[T any](v T) *T {
	return &v
}

// Deref returns the zero value of T for nil.
func Deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
