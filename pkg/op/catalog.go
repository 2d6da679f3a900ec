package op

import "strings"

// OpDesc holds static metadata for one SIC/XE mnemonic: its opcode byte
// (low 2 bits always zero at rest) and the formats it may be assembled
// into, tried in the given order during format selection.
type OpDesc struct {
	Mnemonic string
	Opcode   byte
	Formats  []int
}

// catalog maps mnemonic -> OpDesc, populated once in init() the same way
// the teacher's Catalog array is populated: a handful of literal table
// fragments applied in a loop, grouped by operand shape.
var catalog = make(map[string]OpDesc, 64)

// Lookup returns the OpDesc for an instruction mnemonic (case-insensitive),
// or false if the mnemonic is not a known instruction. Directives are not in
// the catalog, so Lookup returns false for them too; see IsDirective.
func Lookup(mnemonic string) (OpDesc, bool) {
	desc, ok := catalog[strings.ToUpper(mnemonic)]
	return desc, ok
}

// directiveNames is the disjoint name space of storage/control directives;
// any mnemonic in neither this set nor the instruction catalog is an error.
var directiveNames = map[string]bool{
	"BYTE":  true,
	"WORD":  true,
	"RESB":  true,
	"RESW":  true,
	"START": true,
	"END":   true,
}

// IsDirective reports whether mnemonic (case-insensitive) names a directive.
func IsDirective(mnemonic string) bool {
	return directiveNames[strings.ToUpper(mnemonic)]
}

func addOp(mnemonic string, opcode byte, formats ...int) {
	catalog[mnemonic] = OpDesc{Mnemonic: mnemonic, Opcode: opcode, Formats: formats}
}

func init() {
	// Format 3/4: instructions addressable via PC-relative, base-relative,
	// or extended (20-bit) addressing. Tried format 3 first, then 4 — the
	// format selector picks 4 only for '+'-prefixed lines; the format-3
	// encoder upgrades to 4 when no PC- or base-relative displacement fits.
	format34 := []struct {
		mnemonic string
		opcode   byte
	}{
		{"LDA", 0x00}, {"LDX", 0x04}, {"LDL", 0x08}, {"STA", 0x0C},
		{"STX", 0x10}, {"STL", 0x14}, {"ADD", 0x18}, {"SUB", 0x1C},
		{"MUL", 0x20}, {"DIV", 0x24}, {"COMP", 0x28}, {"TIX", 0x2C},
		{"JEQ", 0x30}, {"JGT", 0x34}, {"JLT", 0x38}, {"J", 0x3C},
		{"AND", 0x40}, {"OR", 0x44}, {"JSUB", 0x48}, {"RSUB", 0x4C},
		{"LDCH", 0x50}, {"STCH", 0x54}, {"ADDF", 0x58}, {"SUBF", 0x5C},
		{"MULF", 0x60}, {"DIVF", 0x64}, {"LDB", 0x68}, {"LDS", 0x6C},
		{"LDF", 0x70}, {"STS", 0x7C}, {"STF", 0x80}, {"STT", 0x84},
		{"LDT", 0x74}, {"STI", 0xD4}, {"LPS", 0xD0}, {"RD", 0xD8},
		{"WD", 0xDC}, {"TD", 0xE0}, {"STSW", 0xE8}, {"SSK", 0xEC},
		{"COMPF", 0x88},
	}
	for _, e := range format34 {
		addOp(e.mnemonic, e.opcode, 3, 4)
	}

	// Format 2: register/register or register/n instructions.
	format2 := []struct {
		mnemonic string
		opcode   byte
	}{
		{"ADDR", 0x90}, {"SUBR", 0x94}, {"MULR", 0x98}, {"DIVR", 0x9C},
		{"COMPR", 0xA0}, {"SHIFTL", 0xA4}, {"SHIFTR", 0xA8}, {"RMO", 0xAC},
		{"CLEAR", 0xB4}, {"SVC", 0xB0}, {"TIXR", 0xB8},
	}
	for _, e := range format2 {
		addOp(e.mnemonic, e.opcode, 2)
	}

	// Format 1: no-operand machine instructions.
	format1 := []struct {
		mnemonic string
		opcode   byte
	}{
		{"FIX", 0xC4}, {"FLOAT", 0xC0}, {"HIO", 0xF4}, {"NORM", 0xC8},
		{"SIO", 0xF0}, {"TIO", 0xF8},
	}
	for _, e := range format1 {
		addOp(e.mnemonic, e.opcode, 1)
	}
}
