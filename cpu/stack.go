package cpu

// Stack is the four-level rolling register file. X is the top of the
// stack and the display register; T is the bottom.
//
// The stack deliberately reproduces the lossy hardware behavior: Lift
// discards the old T, and Drop duplicates T into Z.
type Stack struct {
	X Word
	Y Word
	Z Word
	T Word
}

// Lift raises the stack and places a value in X. The previous T is
// discarded, not retained.
func (s *Stack) Lift(value Word) {
	s.T = s.Z
	s.Z = s.Y
	s.Y = s.X
	s.X = value
}

// Drop lowers the stack, discarding X. T remains, so its value appears
// in both Z and T afterward.
func (s *Stack) Drop() {
	s.X = s.Y
	s.Y = s.Z
	s.Z = s.T
}

// Swap exchanges X and Y. Z and T are untouched.
func (s *Stack) Swap() {
	s.X, s.Y = s.Y, s.X
}

// RollDown rotates (x,y,z,t) to (y,z,t,x).
func (s *Stack) RollDown() {
	tmp := s.X
	s.X = s.Y
	s.Y = s.Z
	s.Z = s.T
	s.T = tmp
}

// RollUp rotates (x,y,z,t) to (t,x,y,z).
func (s *Stack) RollUp() {
	tmp := s.T
	s.T = s.Z
	s.Z = s.Y
	s.Y = s.X
	s.X = tmp
}

// Reset zeroes all four registers.
func (s *Stack) Reset() {
	*s = Stack{}
}
