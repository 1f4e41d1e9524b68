package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lukechampine.com/uint128"
)

// FuzzCpu drives the engine with arbitrary operation sequences and
// checks the masking invariant: after every public operation, all four
// stack registers fit the active word size.
func FuzzCpu(f *testing.F) {
	f.Add(uint(16), []byte{0x00, 0x11, 0x22, 0x33})
	f.Add(uint(1), []byte{0x80, 0x80, 0x55, 0x66})
	f.Add(uint(64), []byte{0xff, 0x00, 0x77, 0x88})
	f.Add(uint(128), []byte{0x0c, 0x0d, 0x0e, 0x0f})

	f.Fuzz(func(t *testing.T, size uint, ops []byte) {
		assert := assert.New(t)

		cpu := NewCpu()
		cpu.SetWordSize(size%WORD_SIZE_MAX + 1)

		for n, op := range ops {
			// Derive a well-spread operand from the op byte.
			operand := uint128.New(
				uint64(op)*0x9E3779B97F4A7C15,
				uint64(n)*0xC2B2AE3D27D4EB4F,
			)
			arg := uint(op >> 4)

			switch op & 0xf {
			case 0x0:
				cpu.Push(operand)
			case 0x1:
				cpu.Pop()
			case 0x2:
				cpu.Drop()
			case 0x3:
				cpu.Swap()
			case 0x4:
				cpu.RollDown()
			case 0x5:
				cpu.RollUp()
			case 0x6:
				cpu.Add()
			case 0x7:
				cpu.Subtract()
			case 0x8:
				cpu.Multiply()
			case 0x9:
				cpu.Divide()
			case 0xa:
				cpu.And()
			case 0xb:
				cpu.Or()
			case 0xc:
				cpu.Xor()
			case 0xd:
				cpu.Not()
			case 0xe:
				cpu.ShiftLeft(arg % cpu.WordSize)
			case 0xf:
				cpu.ShiftRight(arg % cpu.WordSize)
			}

			limit := uint128.Max.Rsh(128 - cpu.WordSize)
			for _, reg := range []Word{cpu.Reg.X, cpu.Reg.Y, cpu.Reg.Z, cpu.Reg.T} {
				assert.True(reg.Cmp(limit) <= 0, "op 0x%02x ws %d", op, cpu.WordSize)
			}
		}
	})
}
