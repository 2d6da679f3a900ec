package assemble_test

import (
	"reflect"
	"testing"

	"github.com/natesymer/sicxe-assembler/pkg/assemble"
	"github.com/natesymer/sicxe-assembler/pkg/source"
)

// TestAssembleFromParsedSourceBYTE exercises pkg/source.Parse feeding
// pkg/assemble.Assemble end to end for the spec.md section 8 BYTE example,
// typed exactly as the spec shows it (no '#' sigil). This is the integration
// path a real CLI run takes and must not fail just because BYTE's operand
// carries no addressing-mode sigil in source text.
func TestAssembleFromParsedSourceBYTE(t *testing.T) {
	lines, err := source.Parse("BYTE 0x414243")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	out, ok := assemble.Assemble(lines)
	if !ok {
		t.Fatal("assembly failed")
	}
	want := []byte{0x41, 0x42, 0x43}
	if !reflect.DeepEqual(out[0], want) {
		t.Errorf("BYTE 0x414243 = % X, want % X", out[0], want)
	}
}

// TestAssembleFromParsedSourceFullProgram exercises a small multi-directive
// program through the same source-to-assemble path, matching the worked
// WORD/RESW examples in spec.md section 8.
func TestAssembleFromParsedSourceFullProgram(t *testing.T) {
	text := "LDA FIVE\n" +
		"RESW 1\n" +
		"FIVE WORD 5\n" +
		"BYTE 0x414243\n"
	lines, err := source.Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	out, ok := assemble.Assemble(lines)
	if !ok {
		t.Fatal("assembly failed")
	}
	if len(out) != 4 {
		t.Fatalf("want 4 line results, got %d", len(out))
	}
	if !reflect.DeepEqual(out[2], []byte{0x00, 0x00, 0x05}) {
		t.Errorf("WORD 5 = % X, want 00 00 05", out[2])
	}
	if !reflect.DeepEqual(out[3], []byte{0x41, 0x42, 0x43}) {
		t.Errorf("BYTE 0x414243 = % X, want 41 42 43", out[3])
	}
}
