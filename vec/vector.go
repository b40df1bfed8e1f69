package vec

// Vector is the read side shared by every fixed-width vector, generic or
// specialized.
type Vector[T Number, A Array[T]] interface {
	Len() int
	At(i int) T
	Array() A
	Store(dst []T) error
}

var (
	_ Vector[float32, [4]float32] = Fixed[float32, [4]float32]{}
	_ Vector[float32, [4]float32] = Float32x4{}
)
