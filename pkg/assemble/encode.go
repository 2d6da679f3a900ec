package assemble

import (
	"github.com/natesymer/sicxe-assembler/pkg/bits"
	"github.com/natesymer/sicxe-assembler/pkg/op"
	"github.com/natesymer/sicxe-assembler/pkg/symtab"
)

// encodeLine dispatches a line to the instruction or directive encoder,
// advancing st's location counter as the encoder's last act (spec.md
// section 4.6).
func encodeLine(line op.Line, st *symtab.State) ([]byte, bool) {
	if desc, ok := op.Lookup(line.Mnemonic); ok {
		return encodeInstruction(line, desc, st)
	}
	return encodeDirective(line, st)
}

func encodeInstruction(line op.Line, desc op.OpDesc, st *symtab.State) ([]byte, bool) {
	format, ok := lineFormat(line, st)
	if !ok {
		return nil, false
	}
	switch format {
	case 1:
		return encodeFormat1(desc, st), true
	case 2:
		return encodeFormat2(line.Operands, desc, st)
	case 3:
		return encodeFormat3(line, desc, st)
	case 4:
		return encodeFormat4(line, desc, st), true
	}
	return nil, false
}

func encodeFormat1(desc op.OpDesc, st *symtab.State) []byte {
	out := []byte{desc.Opcode}
	st.Advance(1)
	return out
}

func encodeFormat2(operands []op.Operand, desc op.OpDesc, st *symtab.State) ([]byte, bool) {
	var r1, r2 byte
	if len(operands) >= 1 {
		code, ok := format2Code(operands[0])
		if !ok {
			return nil, false
		}
		r1 = code
	}
	if len(operands) == 2 {
		code, ok := format2Code(operands[1])
		if !ok {
			return nil, false
		}
		r2 = code
	}
	out := []byte{desc.Opcode, (r1 << 4) | (r2 & 0x0F)}
	st.Advance(2)
	return out, true
}

// encodeFormat3 packs the 3-byte nixbpe layout (spec.md section 4.6). If
// neither a PC-relative nor a base-relative displacement fits and the
// operand isn't absolute, it upgrades to format 4 and re-encodes —
// a documented pass-one/pass-two size divergence (spec.md section 9).
func encodeFormat3(line op.Line, desc op.OpDesc, st *symtab.State) ([]byte, bool) {
	n, i, x := flagsFor(line)

	var b, p bool
	var dispField uint32

	switch len(line.Operands) {
	case 0:
		// n=i=1, x=b=p=e=0, disp=0 per spec.md section 4.6.
	default:
		o := line.Operands[0]
		if isAbsoluteRequired(o) {
			dispField = uint32(o.Lit) & 0xFFF
		} else {
			addr := operandAddress(o, st)
			disp := int64(addr) - int64(st.GetAddress()+3)
			p = disp >= -2048 && disp < 2048
			b = !p && disp >= 0 && disp < 4096
			if !p && !b {
				return encodeFormat4(line, desc, st), true
			}
			dispField = uint32(disp) & 0xFFF
		}
	}

	opBits := bits.ToBits(uint32(desc.Opcode>>2), 6)
	byte0 := bits.PackBits(append(opBits, n, i))[0]

	dispBits := bits.ToBits(dispField, 12)
	byte1 := bits.PackBits(append([]bool{x, b, p, false}, dispBits[0:4]...))[0]
	byte2 := bits.PackBits(dispBits[4:12])[0]

	out := []byte{byte0, byte1, byte2}
	st.Advance(3)
	return out, true
}

// encodeFormat4 packs the 4-byte extended layout (spec.md section 4.6).
func encodeFormat4(line op.Line, desc op.OpDesc, st *symtab.State) []byte {
	n, i, x := flagsFor(line)

	var addr uint32
	if len(line.Operands) > 0 {
		addr = operandAddress(line.Operands[0], st) & 0xFFFFF
	}

	opBits := bits.ToBits(uint32(desc.Opcode>>2), 6)
	byte0 := bits.PackBits(append(opBits, n, i))[0]

	addrBits := bits.ToBits(addr, 20)
	byte1 := bits.PackBits(append([]bool{x, false, false, true}, addrBits[0:4]...))[0]
	byte2 := bits.PackBits(addrBits[4:12])[0]
	byte3 := bits.PackBits(addrBits[12:20])[0]

	out := []byte{byte0, byte1, byte2, byte3}
	st.Advance(4)
	return out
}
