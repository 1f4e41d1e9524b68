// Package io provides the auxiliary storage for the hp16c calculator.
//
// The Rom is the address table: a sparse mapping of 16-bit addresses to
// 16-bit values loaded from a text listing. It is consulted by address
// only and is independent of the arithmetic engine.
package io

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// Rom is the address table storage.
type Rom struct {
	Data map[uint16]uint16
}

// Load reads an address table listing. Each line is 'addr:value', both
// fields hex. Blank lines and '#' comments are skipped, as are lines
// that do not parse.
func (rom *Rom) Load(r io.Reader) (err error) {
	if rom.Data == nil {
		rom.Data = map[uint16]uint16{}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}

		addr_str, val_str, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		addr, addr_err := strconv.ParseUint(strings.TrimSpace(addr_str), 16, 16)
		value, val_err := strconv.ParseUint(strings.TrimSpace(val_str), 16, 16)
		if addr_err != nil || val_err != nil {
			continue
		}

		rom.Data[uint16(addr)] = uint16(value)
	}

	err = scanner.Err()
	return
}

// LoadFile loads an address table listing from a file.
func (rom *Rom) LoadFile(name string) (err error) {
	file, err := os.Open(name)
	if err != nil {
		return
	}
	defer file.Close()

	return rom.Load(file)
}

// Read returns the value at an address, or zero if absent.
func (rom *Rom) Read(address uint16) (value uint16) {
	value = rom.Data[address]
	return
}

// Size returns the number of loaded entries.
func (rom *Rom) Size() int {
	return len(rom.Data)
}
