package assemble

import (
	"strings"

	"github.com/natesymer/sicxe-assembler/pkg/op"
	"github.com/natesymer/sicxe-assembler/pkg/symtab"
)

// sizeofLine predicts the byte count of a line without encoding it
// (spec.md section 4.4). It tries instruction format selection first,
// then the directive size table.
func sizeofLine(line op.Line, st *symtab.State) (uint32, bool) {
	if format, ok := lineFormat(line, st); ok {
		return uint32(format), true
	}
	return directiveSize(line)
}

// lineFormat selects the format (1-4) for an instruction line by walking
// its mnemonic's permitted formats in order and returning the first one
// whose operand shape validates (spec.md section 4.5).
func lineFormat(line op.Line, st *symtab.State) (int, bool) {
	desc, ok := op.Lookup(line.Mnemonic)
	if !ok {
		return 0, false
	}

	for _, format := range desc.Formats {
		switch format {
		case 1:
			if len(line.Operands) == 0 {
				return 1, true
			}
		case 2:
			if len(line.Operands) == 1 || len(line.Operands) == 2 {
				if allFormat2Convertible(line.Operands) {
					return 2, true
				}
			}
		case 3:
			if line.Extended {
				continue
			}
			if len(line.Operands) == 0 {
				return 3, true
			}
			o := line.Operands[0]
			if isAbsoluteRequired(o) {
				return 3, true
			}
			addr := operandAddress(o, st)
			disp := int64(st.GetAddress()) - int64(addr)
			if disp >= -2048 || disp < 4096 {
				return 3, true
			}
		case 4:
			return 4, true
		}
	}
	return 0, false
}

// allFormat2Convertible reports whether every operand converts to a 4-bit
// register code: a register name via the register table, or a literal
// integer cast to a byte.
func allFormat2Convertible(operands []op.Operand) bool {
	for _, o := range operands {
		if _, ok := format2Code(o); !ok {
			return false
		}
	}
	return true
}

func format2Code(o op.Operand) (byte, bool) {
	if o.IsSymbol {
		return op.RegisterCode(o.Symbol)
	}
	return byte(o.Lit), true
}

// isAbsoluteRequired reports whether an operand is a literal integer in
// Immediate mode — the only case whose format-3 field holds the literal
// value directly rather than a computed displacement.
func isAbsoluteRequired(o op.Operand) bool {
	return !o.IsSymbol && o.Mode == op.Immediate
}

// operandAddress resolves an operand's "address" for displacement
// purposes: a literal value is its own address in any mode; a symbolic
// value resolves via the symbol table, falling back to the current
// address when undefined so pass-one size prediction stays stable
// (spec.md section 4.4).
func operandAddress(o op.Operand, st *symtab.State) uint32 {
	if !o.IsSymbol {
		return uint32(o.Lit)
	}
	if addr, ok := st.LookupSymbol(o.Symbol); ok {
		return addr
	}
	return st.GetAddress()
}

// flagsFor computes the n, i, x addressing flags shared by format 3 and 4
// (spec.md section 4.6).
func flagsFor(line op.Line) (n, i, x bool) {
	if len(line.Operands) == 0 {
		return true, true, false
	}

	first := line.Operands[0]
	n = first.Mode == op.Indirect || first.Mode == op.Simple
	i = first.Mode == op.Immediate || first.Mode == op.Simple

	if len(line.Operands) == 2 {
		second := line.Operands[1]
		if second.IsSymbol && strings.EqualFold(second.Symbol, op.IndexingRegister) &&
			second.Mode == op.Simple && first.Mode == op.Simple {
			x = true
		}
	}
	return n, i, x
}
