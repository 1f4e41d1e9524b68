// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/hp16c/cpu"
	"github.com/ezrec/hp16c/internal"
)

// Command tables, one per help category. Keys are the exact tokens the
// dispatcher accepts; values are the help text.
var _stack_commands = map[string]string{
	"ENTER": "Push X to the stack (duplicate)",
	"DROP":  "Remove X, lower the stack",
	"SWAP":  "Exchange X and Y",
	"RV":    "Roll the stack down",
	"R^":    "Roll the stack up",
	"CLR":   "Clear all stack registers",
}

var _alu_commands = map[string]string{
	"+": "Add Y + X",
	"-": "Subtract Y - X",
	"*": "Multiply Y * X",
	"/": "Divide Y / X",
	"&": "Bitwise AND of Y and X",
	"|": "Bitwise OR of Y and X",
	"^": "Bitwise XOR of Y and X",
	"~": "Bitwise NOT of X",
}

var _mode_commands = map[string]string{
	"BIN": "Display in binary",
	"OCT": "Display in octal",
	"DEC": "Display in decimal",
	"HEX": "Display in hexadecimal",
}

var _param_commands = map[string]string{
	"STO n": "Store X in register n (0-15)",
	"RCL n": "Recall register n to the stack",
	"WS n":  "Set the word size (1-128 bits)",
	"SL n":  "Shift X left n bits",
	"SR n":  "Shift X right n bits",
	"ROM a": "Push the address table entry at hex address a",
}

var _misc_commands = map[string]string{
	"HELP": "Show the command reference (also H, ?)",
	"QUIT": "Exit the calculator (also Q)",
}

// Eval dispatches a single input line. Any token that is not a command
// is number entry in the active base; $(...) expressions are expanded
// first.
func (emu *Emulator) Eval(line string) (quit bool, err error) {
	line, err = emu.expand(line)
	if err != nil {
		return
	}

	input := strings.ToUpper(strings.TrimSpace(line))
	if len(input) == 0 {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: eval %v", input)
	}

	cp := emu.Cpu

	switch input {
	case "QUIT", "Q":
		quit = true
	case "HELP", "H", "?":
		fmt.Fprint(emu.Output, emu.Help())
	case "CLR", "CLEAR":
		cp.Clear()
	case "ENTER":
		cp.Push(cp.Reg.X)
	case "DROP":
		cp.Drop()
	case "SWAP":
		cp.Swap()
	case "RV":
		cp.RollDown()
	case "R^":
		cp.RollUp()
	case "+":
		cp.Add()
	case "-":
		cp.Subtract()
	case "*":
		cp.Multiply()
	case "/":
		cp.Divide()
	case "&":
		cp.And()
	case "|":
		cp.Or()
	case "^":
		cp.Xor()
	case "~":
		cp.Not()
	case "BIN":
		cp.SetBase(cpu.BASE_BIN)
	case "OCT":
		cp.SetBase(cpu.BASE_OCT)
	case "DEC":
		cp.SetBase(cpu.BASE_DEC)
	case "HEX":
		cp.SetBase(cpu.BASE_HEX)
	default:
		err = emu.evalParam(input)
	}

	return
}

// evalParam handles the parameterized commands, and falls back to
// number entry in the active base.
func (emu *Emulator) evalParam(input string) (err error) {
	word, arg, has_arg := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)

	if has_arg {
		switch word {
		case "STO", "RCL":
			reg, reg_err := strconv.Atoi(arg)
			if reg_err != nil || reg < 0 || reg >= cpu.MEMORY_SIZE {
				err = ErrRegisterIndex(arg)
				return
			}
			if word == "STO" {
				emu.Cpu.Store(reg)
			} else {
				emu.Cpu.Recall(reg)
			}
			return
		case "WS":
			size, size_err := strconv.ParseUint(arg, 10, 8)
			if size_err != nil || size < cpu.WORD_SIZE_MIN || size > cpu.WORD_SIZE_MAX {
				err = ErrWordSize(arg)
				return
			}
			emu.Cpu.SetWordSize(uint(size))
			return
		case "SL", "SR":
			count, count_err := strconv.ParseUint(arg, 10, 8)
			if count_err != nil || uint(count) >= emu.Cpu.WordSize {
				err = ErrShiftCount(arg)
				return
			}
			if word == "SL" {
				emu.Cpu.ShiftLeft(uint(count))
			} else {
				emu.Cpu.ShiftRight(uint(count))
			}
			return
		case "ROM":
			address, addr_err := strconv.ParseUint(arg, 16, 16)
			if addr_err != nil {
				err = ErrAddress(arg)
				return
			}
			emu.Cpu.Push(cpu.WordFrom64(uint64(emu.Rom.Read(uint16(address)))))
			return
		}
	}

	value, parse_err := cpu.ParseValue(input, emu.Cpu.Base)
	if parse_err != nil {
		err = ErrCommand(input)
		return
	}
	emu.Cpu.Push(value)

	return
}

var _paren_re = regexp.MustCompile(`\$\([^\$]*\)`)

// expand does $(...) expression evaluations, substituting the result
// rendered in the active base.
func (emu *Emulator) expand(line string) (out string, err error) {
	out = _paren_re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := emu.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
			return str
		}
		return cpu.FormatWord(value, emu.Cpu.Base)
	})

	return
}

// parenEval evaluates a $(...) expression with the engine state as
// predefined values. Starlark integers are unbounded, so full 128-bit
// values pass through intact.
func (emu *Emulator) parenEval(expr string) (value cpu.Word, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, word := range emu.Defines() {
		pred[key] = starlark.MakeBigInt(word.Big())
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}

	value, werr := cpu.WordFromBig(st_int.BigInt())
	if werr != nil {
		err = ErrExpression(expr)
		return
	}

	return
}

// Defines returns the named values available to $(...) expressions:
// the engine state, plus session-level values.
func (emu *Emulator) Defines() iter.Seq2[string, cpu.Word] {
	session := map[string]cpu.Word{
		"ROMSIZE": cpu.WordFrom64(uint64(emu.Rom.Size())),
	}

	return internal.IterSeq2Concat(emu.Cpu.Defines(), maps.All(session))
}

// Commands returns the completion candidates: every fixed command,
// plus the common parameterized forms.
func (emu *Emulator) Commands() iter.Seq[string] {
	return internal.IterSeqConcat(
		maps.Keys(_stack_commands),
		maps.Keys(_alu_commands),
		maps.Keys(_mode_commands),
		maps.Keys(_misc_commands),
		paramCandidates(),
	)
}

// paramCandidates generates the usual parameterized command forms.
func paramCandidates() iter.Seq[string] {
	return func(yield func(string) bool) {
		for n := range cpu.MEMORY_SIZE {
			if !yield(fmt.Sprintf("STO %d", n)) {
				return
			}
			if !yield(fmt.Sprintf("RCL %d", n)) {
				return
			}
		}
		for _, size := range []int{1, 2, 4, 8, 16, 32, 64, 128} {
			if !yield(fmt.Sprintf("WS %d", size)) {
				return
			}
		}
		for count := 1; count <= 8; count++ {
			if !yield(fmt.Sprintf("SL %d", count)) {
				return
			}
			if !yield(fmt.Sprintf("SR %d", count)) {
				return
			}
		}
	}
}

// Help returns the command reference.
func (emu *Emulator) Help() (text string) {
	sections := []struct {
		title    string
		commands map[string]string
	}{
		{"Stack", _stack_commands},
		{"Arithmetic and logic", _alu_commands},
		{"Display base", _mode_commands},
		{"Parameterized", _param_commands},
		{"Session", _misc_commands},
	}

	text = "Number entry: any value in the active base, or a $(...) expression.\n"
	for _, section := range sections {
		text += section.title + ":\n"
		for _, command := range slices.Sorted(maps.Keys(section.commands)) {
			text += fmt.Sprintf("  %-6s %s\n", command, section.commands[command])
		}
	}

	return
}
