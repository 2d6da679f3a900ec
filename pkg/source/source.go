// Package source turns raw SIC/XE assembly text into the []op.Line sequence
// pkg/assemble consumes. It is a thin, hand-rolled field-splitter in the same
// spirit as the teacher's own parseAssembly/parseSingleInstruction: no
// grammar, no lexer, just whitespace and punctuation conventions.
package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/natesymer/sicxe-assembler/pkg/op"
)

// Parse splits text into lines and parses each non-blank, non-comment line
// into an op.Line. Blank lines and comment-only lines (starting with '.')
// produce no output line at all, so the returned slice lines up one-to-one
// with what pkg/assemble should see — not with the raw input line count.
func Parse(text string) ([]op.Line, error) {
	var out []op.Line
	for lineNo, raw := range strings.Split(text, "\n") {
		stripped := stripComment(raw)
		if strings.TrimSpace(stripped) == "" {
			continue
		}
		line, err := parseLine(stripped)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
		}
		out = append(out, line)
	}
	return out, nil
}

// stripComment removes a trailing "." end-of-line comment, and treats a line
// whose first non-space character is '.' as comment-only.
func stripComment(raw string) string {
	trimmed := strings.TrimLeft(raw, " \t")
	if strings.HasPrefix(trimmed, ".") {
		return ""
	}
	if idx := strings.Index(raw, "."); idx >= 0 {
		return raw[:idx]
	}
	return raw
}

// parseLine parses one already comment-stripped source line of the form
//
//	LABEL  MNEMONIC  OPERAND[,OPERAND]
//
// A label is recognized either by a trailing colon or by the line starting
// in column one (no leading whitespace) with a first field that is not a
// known mnemonic or directive, matching the two label conventions seen
// across the example assemblers.
func parseLine(raw string) (op.Line, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return op.Line{}, fmt.Errorf("empty line")
	}

	var line op.Line
	hasLeadingSpace := raw[0] == ' ' || raw[0] == '\t'

	first := fields[0]
	if strings.HasSuffix(first, ":") {
		line.Label = strings.TrimSuffix(first, ":")
		line.HasLabel = true
		fields = fields[1:]
	} else if !hasLeadingSpace && !looksLikeMnemonic(first) {
		line.Label = first
		line.HasLabel = true
		fields = fields[1:]
	}

	if len(fields) == 0 {
		return op.Line{}, fmt.Errorf("missing mnemonic")
	}

	mnemonic := fields[0]
	if strings.HasPrefix(mnemonic, "+") {
		line.Extended = true
		mnemonic = strings.TrimPrefix(mnemonic, "+")
	}
	line.Mnemonic = mnemonic

	if len(fields) > 1 {
		operandText := strings.Join(fields[1:], "")
		operands, err := parseOperands(operandText)
		if err != nil {
			return op.Line{}, err
		}
		if mode, ok := directiveOperandMode(mnemonic); ok {
			for i := range operands {
				operands[i].Mode = mode
			}
		}
		line.Operands = operands
	}

	return line, nil
}

// directiveOperandMode returns the addressing mode pkg/assemble's directive
// handling expects for mnemonic's literal operand, overriding whatever
// sigil-driven mode parseOperand assigned — SIC/XE storage directives carry
// no '#'/'@' sigil, so their mode is fixed by the directive itself: BYTE
// takes Immediate, WORD/RESB/RESW/START take Simple (spec.md section 4.2).
func directiveOperandMode(mnemonic string) (op.Mode, bool) {
	switch strings.ToUpper(mnemonic) {
	case "BYTE":
		return op.Immediate, true
	case "WORD", "RESB", "RESW", "START":
		return op.Simple, true
	default:
		return 0, false
	}
}

// looksLikeMnemonic reports whether a bare first field is plausibly an
// instruction mnemonic or directive rather than a label, by checking the
// catalogue and the directive table. Unknown first fields are assumed to be
// labels, matching the convention that undefined mnemonics are always
// rejected downstream with a clear error rather than silently misparsed.
func looksLikeMnemonic(field string) bool {
	name := strings.TrimPrefix(field, "+")
	if _, ok := op.Lookup(name); ok {
		return true
	}
	return op.IsDirective(name)
}

// parseOperands splits a comma-joined operand field into one op.Operand per
// comma-separated part; the count is not limited. An index-register suffix ",X" becomes a second operand rather
// than being folded into the first, matching how pkg/assemble's flagsFor
// expects to see it (spec.md section 4.6).
func parseOperands(text string) ([]op.Operand, error) {
	parts := strings.Split(text, ",")
	operands := make([]op.Operand, 0, len(parts))
	for _, part := range parts {
		operand, err := parseOperand(part)
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}
	return operands, nil
}

// parseOperand parses one addressing-mode-sigil-prefixed operand: '#' for
// immediate, '@' for indirect, bare for simple. The remainder is either a
// decimal or 0x-prefixed hex literal, or a symbolic name.
func parseOperand(text string) (op.Operand, error) {
	mode := op.Simple
	switch {
	case strings.HasPrefix(text, "#"):
		mode = op.Immediate
		text = text[1:]
	case strings.HasPrefix(text, "@"):
		mode = op.Indirect
		text = text[1:]
	}

	if text == "" {
		return op.Operand{}, fmt.Errorf("empty operand")
	}

	if v, ok := parseLiteral(text); ok {
		return op.LitOperand(v, mode), nil
	}
	return op.SymOperand(text, mode), nil
}

// parseLiteral parses a decimal or 0x-prefixed hexadecimal integer literal.
// A symbolic name (register or label) fails both and is not an error here;
// the caller falls back to treating text as a symbol.
func parseLiteral(text string) (int, bool) {
	lower := strings.ToLower(text)
	if strings.HasPrefix(lower, "0x") {
		v, err := strconv.ParseInt(lower[2:], 16, 64)
		if err != nil {
			return 0, false
		}
		return int(v), true
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, false
	}
	return int(v), true
}
