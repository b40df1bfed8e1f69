package vec

import (
	"errors"
	"fmt"
	"unsafe"
)

var (
	// ErrLengthMismatch is returned when a source or destination slice is
	// shorter than the vector width.
	ErrLengthMismatch = errors.New("vec: length mismatch")

	// ErrAlignment is returned by the aligned load/store forms when the
	// buffer does not start on a 16-byte boundary.
	ErrAlignment = errors.New("vec: buffer not 16-byte aligned")
)

func checkLen(op string, have, need int) error {
	if have < need {
		return fmt.Errorf("%s: need %d elements, have %d: %w", op, need, have, ErrLengthMismatch)
	}
	return nil
}

func checkAligned(op string, p *float32) error {
	if addr := uintptr(unsafe.Pointer(p)); addr%simdAlign != 0 {
		return fmt.Errorf("%s: address %#x: %w", op, addr, ErrAlignment)
	}
	return nil
}
