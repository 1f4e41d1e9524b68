package cpu

import (
	"github.com/ezrec/hp16c/translate"
)

var f = translate.From

// ErrParseNumber indicates text that is not a number in the requested
// base, or a value beyond 128 bits.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}
