// Package cpu implements the register and arithmetic engine for the hp16c
// calculator.
//
// The engine consists of the four-level rolling RPN stack (X, Y, Z, T),
// sixteen storage registers, carry and overflow flags, a user-selectable
// word size (1-128 bits), and a display base. Values are held as unsigned
// 128-bit words and masked down to the active word size.
//
// The engine is a single mutable value with no internal sharing; a
// multi-session host must give each session its own Cpu.
package cpu
