package op

import "strings"

// Registers maps SIC/XE register names to their 4-bit codes.
var Registers = map[string]byte{
	"A":  0,
	"X":  1,
	"L":  2,
	"B":  3,
	"S":  4,
	"T":  5,
	"F":  6,
	"PC": 8,
	"SW": 9,
}

// IndexingRegister is the register name whose presence as a second operand
// sets the x (indexed) addressing flag.
const IndexingRegister = "X"

// RegisterCode looks up a register name's 4-bit code, case-insensitively.
func RegisterCode(name string) (byte, bool) {
	code, ok := Registers[strings.ToUpper(name)]
	return code, ok
}
