package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/natesymer/sicxe-assembler/pkg/assemble"
	"github.com/natesymer/sicxe-assembler/pkg/objfmt"
	"github.com/natesymer/sicxe-assembler/pkg/op"
	"github.com/natesymer/sicxe-assembler/pkg/source"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sicxeasm",
		Short: "SIC/XE assembler — two-pass symbol resolution and instruction encoding",
	}

	var format string
	var output string

	assembleCmd := &cobra.Command{
		Use:   "assemble [file]",
		Short: "Assemble a SIC/XE source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, chunks, err := assembleFile(args[0])
			if err != nil {
				return err
			}

			name := programName(lines)
			listing := objfmt.BuildListing(name, 0, chunks)

			var rendered string
			switch format {
			case "hex", "":
				rendered = objfmt.Hex(listing)
			case "obj":
				rendered = objfmt.ObjectProgram(listing)
			default:
				return fmt.Errorf("unknown --format %q: use hex or obj", format)
			}

			if output != "" {
				if err := os.WriteFile(output, []byte(rendered), 0o644); err != nil {
					return err
				}
				fmt.Printf("Written to %s\n", output)
				return nil
			}
			fmt.Print(rendered)
			return nil
		},
	}
	assembleCmd.Flags().StringVarP(&format, "format", "f", "hex", "Output format (hex, obj)")
	assembleCmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: stdout)")

	symbolsCmd := &cobra.Command{
		Use:   "symbols [file]",
		Short: "Print the symbol table produced by the first assembly pass",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			lines, err := source.Parse(string(text))
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}

			st := assemble.SymbolTable(lines)
			for _, name := range sortedLabels(lines) {
				addr, ok := st.LookupSymbol(name)
				if !ok {
					continue
				}
				fmt.Printf("%-10s %06X\n", name, addr)
			}
			return nil
		},
	}

	rootCmd.AddCommand(assembleCmd, symbolsCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// assembleFile reads, parses, and assembles a source file, wrapping errors
// with the offending file's name the way the teacher's enumerate/target
// commands wrap parse failures.
func assembleFile(path string) ([]op.Line, [][]byte, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	lines, err := source.Parse(string(text))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	chunks, ok := assemble.Assemble(lines)
	if !ok {
		return nil, nil, fmt.Errorf("assembly of %s failed", path)
	}
	return lines, chunks, nil
}

// programName derives a listing's program name from a leading START
// directive's label, falling back to a generic name when one isn't present
// (spec.md places no requirement on START being first; this CLI just reads
// it if it's there). The core already treats START as RESB internally
// (spec.md section 9), so every line's address — including START's own
// chunk, at 0 — is absolute by the time assemble.Assemble returns; this CLI
// must not re-apply START's operand as a second base offset on top of that.
func programName(lines []op.Line) string {
	for _, line := range lines {
		if strings.EqualFold(line.Mnemonic, "START") {
			if line.Label != "" {
				return line.Label
			}
			return "PROG"
		}
	}
	return "PROG"
}

// sortedLabels returns each labeled line's label in first-definition order,
// matching the order a reader would scan the source file in.
func sortedLabels(lines []op.Line) []string {
	seen := make(map[string]bool)
	var out []string
	for _, line := range lines {
		if line.HasLabel && !seen[line.Label] {
			seen[line.Label] = true
			out = append(out, line.Label)
		}
	}
	return out
}
