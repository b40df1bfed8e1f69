package vec

// Floats is a constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Number is the set of element types a vector may hold.
type Number interface {
	Floats | Integers
}

// Array is the set of supported vector shapes. The array length is the
// vector width.
type Array[T Number] interface {
	~[1]T | ~[2]T | ~[4]T | ~[8]T | ~[16]T | ~[32]T | ~[64]T
}
