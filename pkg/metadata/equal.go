package metadata

import "slices"

type equaler[T any] interface {
	*T
	Equal(other *T) bool
}

// equalEach compares two slices element-wise using the element's Equal method.
func equalEach[T any, P equaler[T]](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !P(&a[i]).Equal(&b[i]) {
			return false
		}
	}

	return true
}

func equalStrings(a, b []string) bool {
	return slices.Equal(a, b)
}
