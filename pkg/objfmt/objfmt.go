// Package objfmt renders the byte vectors pkg/assemble produces into the
// textual and persistable forms a command-line assembler needs: a hex
// listing, SIC/XE object-program records, a JSON report, and a gob-encoded
// listing cache. None of this belongs in the core: pkg/assemble's job ends
// at []byte per line.
package objfmt

import (
	"encoding/gob"
	"fmt"
	"os"
	"strings"
)

// Listing pairs each input line's byte vector with a starting address, the
// shape every renderer in this package consumes.
type Listing struct {
	ProgramName string
	StartAddr   uint32
	Lines       []LineRecord
}

// LineRecord is one assembled line: its address and emitted bytes.
type LineRecord struct {
	Address uint32
	Bytes   []byte
}

func init() {
	gob.Register(Listing{})
	gob.Register(LineRecord{})
}

// BuildListing pairs byte vectors with addresses by walking them in order
// starting at startAddr, the same walk pkg/assemble's second pass performs
// internally.
func BuildListing(programName string, startAddr uint32, chunks [][]byte) Listing {
	listing := Listing{ProgramName: programName, StartAddr: startAddr}
	addr := startAddr
	for _, bs := range chunks {
		listing.Lines = append(listing.Lines, LineRecord{Address: addr, Bytes: bs})
		addr += uint32(len(bs))
	}
	return listing
}

// Hex renders a listing as one "ADDRESS: HEXBYTES" line per record, the
// simplest of the two output formats a reader can diff against expected
// bytes by eye.
func Hex(l Listing) string {
	var b strings.Builder
	for _, rec := range l.Lines {
		fmt.Fprintf(&b, "%06X: %s\n", rec.Address, hexBytes(rec.Bytes))
	}
	return b.String()
}

func hexBytes(bs []byte) string {
	var b strings.Builder
	for i, v := range bs {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02X", v)
	}
	return b.String()
}

// SaveListing writes a listing to path as gob, mirroring the teacher's
// checkpoint save/load pair so a listing can be cached between runs without
// re-running both assembler passes.
func SaveListing(path string, l Listing) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(l)
}

// LoadListing reads a listing previously written by SaveListing.
func LoadListing(path string) (Listing, error) {
	f, err := os.Open(path)
	if err != nil {
		return Listing{}, err
	}
	defer f.Close()
	var l Listing
	if err := gob.NewDecoder(f).Decode(&l); err != nil {
		return Listing{}, err
	}
	return l, nil
}
