// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/hp16c/cpu"
	hpio "github.com/ezrec/hp16c/io"
)

// Emulator is a single calculator session: the register engine, the
// auxiliary address table, and the command dispatcher.
type Emulator struct {
	Verbose  bool      // If set, enables verbose logging.
	*cpu.Cpu           // Reference to the register engine.
	Rom      hpio.Rom  // Address table storage.
	Output   io.Writer // Destination for help and diagnostic text.
}

// NewEmulator creates a new calculator session.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:    cpu.NewCpu(),
		Output: os.Stdout,
	}

	return
}

// LoadRom loads the auxiliary address table from a listing file.
func (emu *Emulator) LoadRom(filename string) (err error) {
	err = emu.Rom.LoadFile(filename)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: rom %v: %v entries", filename, emu.Rom.Size())
	}

	return
}

// Reset returns the engine to the power-on state. The address table is
// preserved.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
}

const _display_title = "HP-16C Calculator"

// Minimum interior width of the calculator face.
const _display_width = 29

// Display renders the calculator face: configuration, flags, and the
// four stack levels labeled T, Z, Y and X.
func (emu *Emulator) Display() (text string) {
	cp := emu.Cpu

	status := []string{
		fmt.Sprintf("Base: %2d  Word Size: %3d", cp.Base, cp.WordSize),
		fmt.Sprintf("Carry: %d  Overflow: %d", flagDigit(cp.Carry), flagDigit(cp.Overflow)),
	}
	stack := []string{
		fmt.Sprintf("T: %v", cp.Format(cp.Reg.T)),
		fmt.Sprintf("Z: %v", cp.Format(cp.Reg.Z)),
		fmt.Sprintf("Y: %v", cp.Format(cp.Reg.Y)),
		fmt.Sprintf("X: %v", cp.Format(cp.Reg.X)),
	}

	width := _display_width
	for _, line := range append(append([]string{_display_title}, status...), stack...) {
		if len(line) > width {
			width = len(line)
		}
	}

	bar := strings.Repeat("─", width+2)
	row := func(line string) string {
		return fmt.Sprintf("│ %-*s │\n", width, line)
	}

	text = "┌" + bar + "┐\n"
	text += row(_display_title)
	text += "├" + bar + "┤\n"
	for _, line := range status {
		text += row(line)
	}
	text += "├" + bar + "┤\n"
	for _, line := range stack {
		text += row(line)
	}
	text += "└" + bar + "┘\n"

	return
}

func flagDigit(flag bool) (digit int) {
	if flag {
		digit = 1
	}

	return
}
