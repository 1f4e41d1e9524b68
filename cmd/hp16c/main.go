// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"golang.org/x/term"

	"github.com/ezrec/hp16c/emulator"
)

func main() {
	var rom string
	var verbose bool

	flag.StringVar(&rom, "r", "", "address table (.obj) file to load")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Reset()

	if len(rom) != 0 {
		err := emu.LoadRom(rom)
		if err != nil {
			log.Printf("%v: %v", rom, err)
		}
	}

	// One-shot mode: evaluate the arguments and print X.
	if flag.NArg() != 0 {
		for _, arg := range flag.Args() {
			_, err := emu.Eval(arg)
			if err != nil {
				log.Fatalf("%v: %v", arg, err)
			}
		}
		fmt.Println(emu.Format(emu.Reg.X))
		return
	}

	err := interact(emu)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}

// interact runs the terminal session until QUIT or end of input.
func interact(emu *emulator.Emulator) (err error) {
	stdin := int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(stdin)
	if err != nil {
		return
	}
	defer term.Restore(stdin, oldState)

	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	terminal := term.NewTerminal(screen, "> ")
	terminal.AutoCompleteCallback = completer(emu)

	emu.Output = terminal

	for {
		fmt.Fprint(terminal, emu.Display())

		var line string
		line, err = terminal.ReadLine()
		if err != nil {
			if err == io.EOF {
				err = nil
			}
			return
		}

		quit, eval_err := emu.Eval(line)
		if eval_err != nil {
			fmt.Fprintf(terminal, "%v\n", eval_err)
			continue
		}
		if quit {
			return
		}
	}
}

// completer returns a tab completion callback over the session's
// command set. Completion applies when a single command matches the
// line so far.
func completer(emu *emulator.Emulator) func(line string, pos int, key rune) (string, int, bool) {
	return func(line string, pos int, key rune) (newLine string, newPos int, ok bool) {
		if key != '\t' || pos != len(line) {
			return
		}

		prefix := strings.ToUpper(line)
		var matches []string
		for command := range emu.Commands() {
			if strings.HasPrefix(command, prefix) && command != prefix {
				matches = append(matches, command)
			}
		}

		slices.Sort(matches)
		if len(matches) == 1 {
			newLine = matches[0]
			newPos = len(newLine)
			ok = true
			return
		}

		if len(matches) > 1 {
			fmt.Fprintf(emu.Output, "%v\n", strings.Join(matches, "  "))
		}

		return
	}
}
