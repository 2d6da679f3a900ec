package source

import (
	"testing"

	"github.com/natesymer/sicxe-assembler/pkg/op"
)

func TestParseSkipsBlankAndCommentLines(t *testing.T) {
	text := "\n. just a comment\n   \nCLEAR A\n"
	lines, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("want 1 line, got %d: %+v", len(lines), lines)
	}
	if lines[0].Mnemonic != "CLEAR" {
		t.Fatalf("want CLEAR, got %q", lines[0].Mnemonic)
	}
}

func TestParseLabelWithColon(t *testing.T) {
	lines, err := Parse("FIVE: WORD 5")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !lines[0].HasLabel || lines[0].Label != "FIVE" {
		t.Fatalf("want label FIVE, got %+v", lines[0])
	}
	if lines[0].Mnemonic != "WORD" {
		t.Fatalf("want WORD, got %q", lines[0].Mnemonic)
	}
}

func TestParseLabelWithoutColon(t *testing.T) {
	lines, err := Parse("FIVE WORD 5")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !lines[0].HasLabel || lines[0].Label != "FIVE" {
		t.Fatalf("want label FIVE, got %+v", lines[0])
	}
}

func TestParseIndentedLineHasNoLabel(t *testing.T) {
	lines, err := Parse("    LDA FIVE")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if lines[0].HasLabel {
		t.Fatalf("did not expect a label, got %+v", lines[0])
	}
	if lines[0].Mnemonic != "LDA" {
		t.Fatalf("want LDA, got %q", lines[0].Mnemonic)
	}
}

func TestParseExtendedPrefix(t *testing.T) {
	lines, err := Parse("+LDA FIVE")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !lines[0].Extended {
		t.Fatalf("want Extended=true, got %+v", lines[0])
	}
	if lines[0].Mnemonic != "LDA" {
		t.Fatalf("want LDA, got %q", lines[0].Mnemonic)
	}
}

func TestParseImmediateOperand(t *testing.T) {
	lines, err := Parse("LDA #5")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := op.LitOperand(5, op.Immediate)
	if lines[0].Operands[0] != want {
		t.Fatalf("want %+v, got %+v", want, lines[0].Operands[0])
	}
}

func TestParseIndirectOperand(t *testing.T) {
	lines, err := Parse("JSUB @RETADR")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := op.SymOperand("RETADR", op.Indirect)
	if lines[0].Operands[0] != want {
		t.Fatalf("want %+v, got %+v", want, lines[0].Operands[0])
	}
}

func TestParseIndexedOperandSplitsIntoTwo(t *testing.T) {
	lines, err := Parse("LDA BUFFER,X")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(lines[0].Operands) != 2 {
		t.Fatalf("want 2 operands, got %d: %+v", len(lines[0].Operands), lines[0].Operands)
	}
	if lines[0].Operands[1].Symbol != "X" {
		t.Fatalf("want second operand X, got %+v", lines[0].Operands[1])
	}
}

func TestParseHexLiteral(t *testing.T) {
	lines, err := Parse("BYTE 0xFF")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := op.LitOperand(0xFF, op.Immediate)
	if lines[0].Operands[0] != want {
		t.Fatalf("want %+v, got %+v", want, lines[0].Operands[0])
	}
}

func TestParseDecimalLiteral(t *testing.T) {
	lines, err := Parse("RESW 10")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := op.LitOperand(10, op.Simple)
	if lines[0].Operands[0] != want {
		t.Fatalf("want %+v, got %+v", want, lines[0].Operands[0])
	}
}

func TestParseNoOperandInstruction(t *testing.T) {
	lines, err := Parse("RSUB")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(lines[0].Operands) != 0 {
		t.Fatalf("want 0 operands, got %+v", lines[0].Operands)
	}
}

func TestParseTrailingComment(t *testing.T) {
	lines, err := Parse("LDA FIVE . load the value")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(lines) != 1 || lines[0].Mnemonic != "LDA" {
		t.Fatalf("got %+v", lines)
	}
}

func TestParseLineCountAlignsWithFilteredLines(t *testing.T) {
	text := "\n.comment\nRSUB\n\nRSUB\n"
	lines, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d", len(lines))
	}
}
