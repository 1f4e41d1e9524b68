package emulator

import (
	"github.com/ezrec/hp16c/translate"
)

var f = translate.From

// ErrCommand indicates an unknown command or invalid number entry.
type ErrCommand string

func (err ErrCommand) Error() string {
	return f("'%v' is not a command or a number in the active base", string(err))
}

// ErrRegisterIndex indicates a storage register index outside 0-15.
type ErrRegisterIndex string

func (err ErrRegisterIndex) Error() string {
	return f("'%v' is not a register (0-15)", string(err))
}

// ErrWordSize indicates a word size outside 1-128.
type ErrWordSize string

func (err ErrWordSize) Error() string {
	return f("'%v' is not a word size (1-128)", string(err))
}

// ErrShiftCount indicates a shift count at or beyond the word size.
type ErrShiftCount string

func (err ErrShiftCount) Error() string {
	return f("'%v' is not a shift count below the word size", string(err))
}

// ErrAddress indicates text that is not a 16-bit hex address.
type ErrAddress string

func (err ErrAddress) Error() string {
	return f("'%v' is not an address", string(err))
}

// ErrExpression indicates a $(...) expression that failed to evaluate
// to a value in range.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
