package cpu

// Base is the display radix. It governs textual rendering only and never
// alters stored values.
type Base uint8

//go:generate go tool stringer -linecomment -type=Base
const (
	BASE_BIN Base = 2  // bin
	BASE_OCT Base = 8  // oct
	BASE_DEC Base = 10 // dec
	BASE_HEX Base = 16 // hex
)
