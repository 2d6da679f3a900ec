package op

import "testing"

// TestLookupKnownMnemonics verifies a representative sample of the catalog.
func TestLookupKnownMnemonics(t *testing.T) {
	tests := []struct {
		mnemonic string
		opcode   byte
		formats  []int
	}{
		{"LDA", 0x00, []int{3, 4}},
		{"RSUB", 0x4C, []int{3, 4}},
		{"CLEAR", 0xB4, []int{2}},
		{"COMPR", 0xA0, []int{2}},
		{"FIX", 0xC4, []int{1}},
	}

	for _, tc := range tests {
		desc, ok := Lookup(tc.mnemonic)
		if !ok {
			t.Fatalf("%s: not found in catalog", tc.mnemonic)
		}
		if desc.Opcode != tc.opcode {
			t.Errorf("%s: opcode = 0x%02X, want 0x%02X", tc.mnemonic, desc.Opcode, tc.opcode)
		}
		if len(desc.Formats) != len(tc.formats) {
			t.Fatalf("%s: formats = %v, want %v", tc.mnemonic, desc.Formats, tc.formats)
		}
		for i := range tc.formats {
			if desc.Formats[i] != tc.formats[i] {
				t.Errorf("%s: formats[%d] = %d, want %d", tc.mnemonic, i, desc.Formats[i], tc.formats[i])
			}
		}
	}
}

// TestLookupCaseInsensitive verifies mnemonic lookup ignores case.
func TestLookupCaseInsensitive(t *testing.T) {
	if _, ok := Lookup("lda"); !ok {
		t.Error("lowercase mnemonic lookup failed")
	}
	if _, ok := Lookup("Lda"); !ok {
		t.Error("mixed-case mnemonic lookup failed")
	}
}

// TestLookupUnknown verifies an unrecognized mnemonic is absent.
func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("FROB"); ok {
		t.Error("FROB should not be found in the catalog")
	}
}

// TestOpcodeLowBitsClear verifies every catalog opcode has its low 2 bits
// clear at rest, per the invariant in spec.md section 3.
func TestOpcodeLowBitsClear(t *testing.T) {
	for mnemonic, desc := range catalog {
		if desc.Opcode&0x03 != 0 {
			t.Errorf("%s: opcode 0x%02X has nonzero low 2 bits", mnemonic, desc.Opcode)
		}
	}
}

func TestIsDirective(t *testing.T) {
	for _, d := range []string{"BYTE", "word", "RESB", "Resw", "START", "end"} {
		if !IsDirective(d) {
			t.Errorf("%s should be a directive", d)
		}
	}
	if IsDirective("LDA") {
		t.Error("LDA should not be a directive")
	}
}

func TestRegisterCode(t *testing.T) {
	tests := []struct {
		name string
		code byte
	}{
		{"A", 0}, {"X", 1}, {"L", 2}, {"B", 3}, {"S", 4}, {"T", 5}, {"F", 6}, {"PC", 8}, {"SW", 9},
	}
	for _, tc := range tests {
		code, ok := RegisterCode(tc.name)
		if !ok || code != tc.code {
			t.Errorf("RegisterCode(%s) = %d, %v; want %d, true", tc.name, code, ok, tc.code)
		}
	}
	if _, ok := RegisterCode("Z"); ok {
		t.Error("Z should not be a valid register")
	}
}
