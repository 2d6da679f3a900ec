// Package symtab holds the assembler's process-local state: the location
// counter and the symbol table, threaded through both passes of a single
// assemble call.
package symtab

// State is the mutable (location counter, symbol table) pair carried
// across both passes. Small and cheap to hold by pointer for the lifetime
// of one assemble call — never shared across calls.
type State struct {
	address uint32
	symbols map[string]uint32
}

// New returns a fresh State at address 0 with an empty symbol table.
func New() *State {
	return &State{symbols: make(map[string]uint32)}
}

// GetAddress returns the current location counter.
func (s *State) GetAddress() uint32 {
	return s.address
}

// SetAddress sets the location counter directly.
func (s *State) SetAddress(a uint32) {
	s.address = a
}

// ResetAddress marks the transition between passes. Equivalent to
// SetAddress(0) today; kept distinct because a later origin directive
// (outside this spec's scope) would only need to change this one method.
func (s *State) ResetAddress() {
	s.SetAddress(0)
}

// Advance moves the location counter forward by by bytes.
func (s *State) Advance(by uint32) {
	s.address += by
}

// LookupSymbol returns a label's bound address, or false if undefined.
func (s *State) LookupSymbol(name string) (uint32, bool) {
	a, ok := s.symbols[name]
	return a, ok
}

// DefineSymbol binds name to address a. Last write wins: a duplicate
// label silently overwrites the earlier binding (spec.md section 9 — the
// core does not diagnose this).
func (s *State) DefineSymbol(name string, a uint32) {
	s.symbols[name] = a
}
