package objfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// jsonLine is Listing's wire shape: hex strings read cleanly in a JSON
// report where a raw byte slice would serialize as base64.
type jsonLine struct {
	Address uint32 `json:"address"`
	Hex     string `json:"hex"`
}

type jsonListing struct {
	ProgramName string     `json:"program_name"`
	StartAddr   uint32     `json:"start_addr"`
	Lines       []jsonLine `json:"lines"`
}

// WriteJSON renders a listing as a machine-readable report.
func WriteJSON(w io.Writer, l Listing) error {
	jl := jsonListing{ProgramName: l.ProgramName, StartAddr: l.StartAddr}
	for _, rec := range l.Lines {
		jl.Lines = append(jl.Lines, jsonLine{Address: rec.Address, Hex: hexBytes(rec.Bytes)})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jl)
}

// ReadJSON parses a report written by WriteJSON back into a Listing.
func ReadJSON(r io.Reader) (Listing, error) {
	var jl jsonListing
	if err := json.NewDecoder(r).Decode(&jl); err != nil {
		return Listing{}, err
	}

	l := Listing{ProgramName: jl.ProgramName, StartAddr: jl.StartAddr}
	for _, jline := range jl.Lines {
		bs, err := decodeHex(jline.Hex)
		if err != nil {
			return Listing{}, err
		}
		l.Lines = append(l.Lines, LineRecord{Address: jline.Address, Bytes: bs})
	}
	return l, nil
}

// decodeHex parses hexBytes's space-separated "AA BB CC" rendering back
// into a byte slice. An empty string yields a nil (zero-length) slice.
func decodeHex(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	fields := strings.Fields(s)
	out := make([]byte, len(fields))
	for i, f := range fields {
		var v uint32
		if _, err := fmt.Sscanf(f, "%02X", &v); err != nil {
			return nil, err
		}
		out[i] = byte(v)
	}
	return out, nil
}
