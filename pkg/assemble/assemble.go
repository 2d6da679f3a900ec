// Package assemble implements the two-pass SIC/XE assembler core:
// symbol-table construction, format selection, and bit-exact encoding of
// instruction formats 1-4 and the storage directives.
package assemble

import (
	"github.com/natesymer/sicxe-assembler/pkg/op"
	"github.com/natesymer/sicxe-assembler/pkg/symtab"
)

// Assemble runs both passes over lines and returns one byte vector per
// line, in input order. The second return value is false iff any line
// failed to encode — the core's single failure signal (spec.md section 7).
func Assemble(lines []op.Line) ([][]byte, bool) {
	st := firstPass(lines)
	return secondPass(lines, st)
}

// SymbolTable runs the first pass alone and returns the resulting symbol
// table, for front ends that want to inspect label addresses without
// encoding instruction bytes (e.g. a "symbols" CLI subcommand).
func SymbolTable(lines []op.Line) *symtab.State {
	return firstPass(lines)
}

// firstPass binds labels to addresses and advances the location counter
// by each line's predicted size. It stops silently — binding no further
// labels — on the first line whose size can't be determined (spec.md
// section 4.3; a documented defect preserved bug-for-bug per section 9).
func firstPass(lines []op.Line) *symtab.State {
	st := symtab.New()

	for _, line := range lines {
		if line.HasLabel {
			st.DefineSymbol(line.Label, st.GetAddress())
		}

		size, ok := sizeofLine(line, st)
		if !ok {
			break
		}
		st.Advance(size)
	}

	return st
}

// secondPass encodes every line against the symbol table firstPass built,
// collecting one byte vector per line.
func secondPass(lines []op.Line, st *symtab.State) ([][]byte, bool) {
	st.ResetAddress()

	out := make([][]byte, 0, len(lines))
	for _, line := range lines {
		bs, ok := encodeLine(line, st)
		if !ok {
			return nil, false
		}
		out = append(out, bs)
	}
	return out, true
}
