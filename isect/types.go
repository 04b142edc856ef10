package isect

// A List is a general array type which can have an arbitrary getter.
// This can be useful for searching triangles that are not stored in one
// contiguous slice.
type List[T any] struct {
	Len int
	Get func(int) T
}

func NewListSlice[T any](s []T) List[T] {
	return List[T]{
		Len: len(s),
		Get: func(i int) T {
			return s[i]
		},
	}
}

// Slice copies the elements of the list into a new slice.
func (l List[T]) Slice() []T {
	res := make([]T, l.Len)
	for i := range res {
		res[i] = l.Get(i)
	}
	return res
}
