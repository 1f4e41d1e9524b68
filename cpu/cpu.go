package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"lukechampine.com/uint128"
)

const (
	WORD_SIZE_MIN = 1   // Minimum word size, in bits.
	WORD_SIZE_MAX = 128 // Maximum word size, in bits.

	MEMORY_SIZE = 16 // Number of storage registers.
)

// Power-on configuration.
const (
	DEFAULT_WORD_SIZE = 16
	DEFAULT_BASE      = BASE_HEX
)

// Cpu is the register and arithmetic engine.
//
// X, Y, Z and T are always held masked to the active word size; storage
// registers keep whatever was stored and are not re-masked when the word
// size changes.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Reg      Stack             // Four-level rolling stack.
	WordSize uint              // Active word size, in bits (1-128).
	Base     Base              // Display base. Rendering only.
	Carry    bool              // Set by arithmetic and shift operations.
	Overflow bool              // Set by division by zero.
	Memory   [MEMORY_SIZE]Word // Storage registers.
}

// NewCpu creates an engine in the power-on state: 16-bit words, hex
// display, all registers and flags zero.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		WordSize: DEFAULT_WORD_SIZE,
		Base:     DEFAULT_BASE,
	}

	return
}

// Reset returns the engine to the power-on state.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Reg.Reset()
	clear(cpu.Memory[:])
	cpu.Carry = false
	cpu.Overflow = false
	cpu.WordSize = DEFAULT_WORD_SIZE
	cpu.Base = DEFAULT_BASE
}

// Clear zeroes the four stack registers. Flags, memory and
// configuration are untouched.
func (cpu *Cpu) Clear() {
	cpu.Reg.Reset()
}

// mask truncates a value to the active word size.
func (cpu *Cpu) mask(value Word) Word {
	switch {
	case cpu.WordSize >= WORD_SIZE_MAX:
		return value
	case cpu.WordSize == 64:
		return uint128.From64(value.Lo)
	default:
		return value.And(maskOf(cpu.WordSize))
	}
}

// Push raises the stack and loads a value, masked to the active word
// size, into X.
func (cpu *Cpu) Push(value Word) {
	cpu.Reg.Lift(cpu.mask(value))
}

// Pop returns X and lowers the stack.
func (cpu *Cpu) Pop() (value Word) {
	value = cpu.Reg.X
	cpu.Reg.Drop()
	return
}

// Drop discards X and lowers the stack.
func (cpu *Cpu) Drop() {
	cpu.Reg.Drop()
}

// Swap exchanges X and Y.
func (cpu *Cpu) Swap() {
	cpu.Reg.Swap()
}

// RollDown rotates the stack so the old X becomes T.
func (cpu *Cpu) RollDown() {
	cpu.Reg.RollDown()
}

// RollUp rotates the stack so the old T becomes X.
func (cpu *Cpu) RollUp() {
	cpu.Reg.RollUp()
}

// Add replaces Y and X with Y+X, wrapping at 128 bits. Carry is set on
// a carry out of the native width, detected before the result is masked
// to the active word size.
func (cpu *Cpu) Add() {
	result := cpu.Reg.X.AddWrap(cpu.Reg.Y)
	cpu.Carry = result.Cmp(cpu.Reg.X) < 0 || result.Cmp(cpu.Reg.Y) < 0
	cpu.Reg.Drop()
	cpu.Reg.X = cpu.mask(result)
}

// Subtract replaces Y and X with Y-X, wrapping at 128 bits. Carry is
// set when a borrow occurred (Y < X).
func (cpu *Cpu) Subtract() {
	cpu.Carry = cpu.Reg.Y.Cmp(cpu.Reg.X) < 0
	result := cpu.Reg.Y.SubWrap(cpu.Reg.X)
	cpu.Reg.Drop()
	cpu.Reg.X = cpu.mask(result)
}

// Multiply replaces Y and X with Y*X, wrapping at 128 bits. Carry is
// set when the full-precision product does not fit the native width.
func (cpu *Cpu) Multiply() {
	x := cpu.Reg.X
	y := cpu.Reg.Y
	result := x.MulWrap(y)
	cpu.Carry = !x.IsZero() && !result.Div(x).Equals(y)
	cpu.Reg.Drop()
	cpu.Reg.X = cpu.mask(result)
}

// Divide replaces Y and X with Y/X, truncating. Division by zero sets
// Overflow and leaves the stack unmodified.
func (cpu *Cpu) Divide() {
	if cpu.Reg.X.IsZero() {
		if cpu.Verbose {
			log.Printf("cpu: divide by zero")
		}
		cpu.Overflow = true
		return
	}

	result := cpu.Reg.Y.Div(cpu.Reg.X)
	cpu.Reg.Drop()
	cpu.Reg.X = cpu.mask(result)
	cpu.Carry = false
}

// And replaces Y and X with Y&X. The result is not re-masked; the
// operands are held masked as an invariant. Flags are untouched.
func (cpu *Cpu) And() {
	result := cpu.Reg.X.And(cpu.Reg.Y)
	cpu.Reg.Drop()
	cpu.Reg.X = result
}

// Or replaces Y and X with Y|X. Flags are untouched.
func (cpu *Cpu) Or() {
	result := cpu.Reg.X.Or(cpu.Reg.Y)
	cpu.Reg.Drop()
	cpu.Reg.X = result
}

// Xor replaces Y and X with Y^X. Flags are untouched.
func (cpu *Cpu) Xor() {
	result := cpu.Reg.X.Xor(cpu.Reg.Y)
	cpu.Reg.Drop()
	cpu.Reg.X = result
}

// Not complements X over the full native width, then masks. The
// complement of a masked value always sets bits above the word size,
// so the re-mask here is required.
func (cpu *Cpu) Not() {
	cpu.Reg.X = cpu.mask(cpu.Reg.X.Xor(uint128.Max))
}

// ShiftLeft shifts X left by n bits. Carry is set, before shifting, if
// any bit would leave the word-size window. The caller must keep n
// below the word size; larger counts give an unspecified numeric
// result.
func (cpu *Cpu) ShiftLeft(n uint) {
	cpu.Carry = !cpu.Reg.X.Rsh(cpu.WordSize - n).IsZero()
	cpu.Reg.X = cpu.mask(cpu.Reg.X.Lsh(n))
}

// ShiftRight shifts X right by n bits. Carry is set if any of the
// shifted-out low bits was nonzero. The result is within range without
// a re-mask.
func (cpu *Cpu) ShiftRight(n uint) {
	cpu.Carry = !cpu.Reg.X.And(maskOf(n)).IsZero()
	cpu.Reg.X = cpu.Reg.X.Rsh(n)
}

// Store copies X into a storage register. Out-of-range indexes are
// ignored.
func (cpu *Cpu) Store(reg int) {
	if reg >= 0 && reg < MEMORY_SIZE {
		cpu.Memory[reg] = cpu.Reg.X
	}
}

// Recall pushes a storage register onto the stack. The value is masked
// to the current word size, even if it was stored under another one.
// Out-of-range indexes are ignored.
func (cpu *Cpu) Recall(reg int) {
	if reg >= 0 && reg < MEMORY_SIZE {
		cpu.Push(cpu.Memory[reg])
	}
}

// SetBase sets the display base. Anything but 2, 8, 10 or 16 is
// ignored.
func (cpu *Cpu) SetBase(base Base) {
	switch base {
	case BASE_BIN, BASE_OCT, BASE_DEC, BASE_HEX:
		cpu.Base = base
	}
}

// SetWordSize sets the active word size and re-masks the four stack
// registers in place. Storage registers are left as stored. Sizes
// outside 1..128 are ignored.
func (cpu *Cpu) SetWordSize(size uint) {
	if size < WORD_SIZE_MIN || size > WORD_SIZE_MAX {
		return
	}

	cpu.WordSize = size
	cpu.Reg.X = cpu.mask(cpu.Reg.X)
	cpu.Reg.Y = cpu.mask(cpu.Reg.Y)
	cpu.Reg.Z = cpu.mask(cpu.Reg.Z)
	cpu.Reg.T = cpu.mask(cpu.Reg.T)

	if cpu.Verbose {
		log.Printf("cpu: word size %v", size)
	}
}

// Format renders a value in the active display base.
func (cpu *Cpu) Format(value Word) string {
	return FormatWord(value, cpu.Base)
}

// Defines returns the engine state as named values, for use as
// expression predefines.
func (cpu *Cpu) Defines() iter.Seq2[string, Word] {
	defines := map[string]Word{
		"X":        cpu.Reg.X,
		"Y":        cpu.Reg.Y,
		"Z":        cpu.Reg.Z,
		"T":        cpu.Reg.T,
		"WORDSIZE": uint128.From64(uint64(cpu.WordSize)),
		"BASE":     uint128.From64(uint64(cpu.Base)),
		"CARRY":    flagWord(cpu.Carry),
		"OVERFLOW": flagWord(cpu.Overflow),
	}
	for n, value := range cpu.Memory {
		defines[fmt.Sprintf("R%d", n)] = value
	}

	return maps.All(defines)
}

func flagWord(flag bool) (word Word) {
	if flag {
		word = uint128.From64(1)
	}

	return
}

// String returns the current engine state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []struct {
		name  string
		value Word
	}{
		{"t", cpu.Reg.T},
		{"z", cpu.Reg.Z},
		{"y", cpu.Reg.Y},
		{"x", cpu.Reg.X},
	}
	for _, reg := range regs {
		text += fmt.Sprintf("% 5s: %v\n", reg.name, cpu.Format(reg.value))
	}
	text += fmt.Sprintf("% 5s: %v\n", "base", cpu.Base)
	text += fmt.Sprintf("% 5s: %v\n", "ws", cpu.WordSize)
	text += fmt.Sprintf("% 5s: %v\n", "carry", flagWord(cpu.Carry))
	text += fmt.Sprintf("% 5s: %v\n", "over", flagWord(cpu.Overflow))

	return
}
