package assemble

import (
	"strings"

	"github.com/natesymer/sicxe-assembler/pkg/op"
	"github.com/natesymer/sicxe-assembler/pkg/symtab"
)

// directiveSize returns a directive line's emitted byte count, per the
// table in spec.md section 4.2. START is treated as RESB (see spec.md
// section 9 — an open behavioral question resolved literally here).
func directiveSize(line op.Line) (uint32, bool) {
	if !op.IsDirective(line.Mnemonic) {
		return 0, false
	}

	switch strings.ToUpper(line.Mnemonic) {
	case "BYTE":
		v, ok := singleLiteral(line, op.Immediate)
		if !ok {
			return 0, false
		}
		return uint32(len(minimalBigEndian(uint32(v)))), true
	case "WORD":
		if _, ok := singleLiteral(line, op.Simple); !ok {
			return 0, false
		}
		return 3, true
	case "RESB":
		n, ok := singleLiteral(line, op.Simple)
		if !ok {
			return 0, false
		}
		return uint32(n), true
	case "RESW":
		n, ok := singleLiteral(line, op.Simple)
		if !ok {
			return 0, false
		}
		return uint32(3 * n), true
	case "START":
		n, ok := singleLiteral(line, op.Simple)
		if !ok {
			return 0, false
		}
		return uint32(n), true
	case "END":
		return 0, true
	}
	return 0, false
}

// encodeDirective emits a directive's bytes and advances st's location
// counter by the same amount sizeofLine would have predicted.
func encodeDirective(line op.Line, st *symtab.State) ([]byte, bool) {
	if !op.IsDirective(line.Mnemonic) {
		return nil, false
	}

	var out []byte
	switch strings.ToUpper(line.Mnemonic) {
	case "BYTE":
		v, ok := singleLiteral(line, op.Immediate)
		if !ok {
			return nil, false
		}
		out = minimalBigEndian(uint32(v))
	case "WORD":
		v, ok := singleLiteral(line, op.Simple)
		if !ok {
			return nil, false
		}
		uv := uint32(v)
		out = []byte{byte(uv >> 16), byte(uv >> 8), byte(uv)}
	case "RESB":
		n, ok := singleLiteral(line, op.Simple)
		if !ok {
			return nil, false
		}
		out = make([]byte, n)
	case "RESW":
		n, ok := singleLiteral(line, op.Simple)
		if !ok {
			return nil, false
		}
		out = make([]byte, 3*n)
	case "START":
		n, ok := singleLiteral(line, op.Simple)
		if !ok {
			return nil, false
		}
		out = make([]byte, n)
	case "END":
		out = []byte{}
	default:
		return nil, false
	}

	st.Advance(uint32(len(out)))
	return out, true
}

// singleLiteral extracts a directive's one literal-integer operand in the
// given mode, failing on wrong count, wrong mode, or a symbolic value.
func singleLiteral(line op.Line, mode op.Mode) (int, bool) {
	if len(line.Operands) != 1 {
		return 0, false
	}
	o := line.Operands[0]
	if o.IsSymbol || o.Mode != mode {
		return 0, false
	}
	return o.Lit, true
}

// minimalBigEndian returns the shortest big-endian byte sequence whose
// unsigned interpretation equals v (0 -> one zero byte).
func minimalBigEndian(v uint32) []byte {
	if v == 0 {
		return []byte{0x00}
	}
	var out []byte
	for v > 0 {
		out = append([]byte{byte(v & 0xFF)}, out...)
		v >>= 8
	}
	return out
}
