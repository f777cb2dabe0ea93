// Package fasta prepares query sequence files for jackhmmer.
package fasta

import (
	"fmt"
	"os"
	"strings"
	"unicode"
)

const lineWidth = 80

var validAminoAcids = map[rune]bool{
	'A': true, 'C': true, 'D': true, 'E': true, 'F': true,
	'G': true, 'H': true, 'I': true, 'K': true, 'L': true,
	'M': true, 'N': true, 'P': true, 'Q': true, 'R': true,
	'S': true, 'T': true, 'V': true, 'W': true, 'Y': true,
}

// Clean strips non-letter characters and uppercases the sequence.
func Clean(sequence string) string {
	var b strings.Builder
	b.Grow(len(sequence))
	for _, r := range sequence {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// Validate checks a cleaned sequence against the amino-acid alphabet.
func Validate(sequence string) error {
	if sequence == "" {
		return fmt.Errorf("empty sequence")
	}
	invalid := make(map[rune]bool)
	for _, r := range sequence {
		if !validAminoAcids[r] {
			invalid[r] = true
		}
	}
	if len(invalid) > 0 {
		chars := make([]string, 0, len(invalid))
		for r := range invalid {
			chars = append(chars, string(r))
		}
		return fmt.Errorf("invalid amino acids: %s", strings.Join(chars, " "))
	}
	return nil
}

// Write stores the sequence as a single-record query FASTA file, wrapped
// at 80 columns.
func Write(path, sequence string) error {
	var b strings.Builder
	b.WriteString(">query\n")
	for i := 0; i < len(sequence); i += lineWidth {
		end := i + lineWidth
		if end > len(sequence) {
			end = len(sequence)
		}
		b.WriteString(sequence[i:end])
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
