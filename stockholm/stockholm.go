// Package stockholm handles the line-oriented Stockholm alignment
// container emitted by jackhmmer: parsing, bounded truncation and
// cross-chunk merging of search results.
package stockholm

import (
	"strings"

	"msaforge/model"
)

const header = "# STOCKHOLM"

// MSA is a parsed multiple sequence alignment. Names preserves record
// order; sequences spanning multiple blocks are concatenated.
type MSA struct {
	Names        []string
	Sequences    map[string]string
	Descriptions map[string]string
}

// Parse reads a Stockholm container. Markup lines other than #=GS DE
// descriptions are ignored; interleaved blocks are joined per record.
func Parse(sto string) (*MSA, error) {
	msa := &MSA{
		Sequences:    make(map[string]string),
		Descriptions: make(map[string]string),
	}
	seenHeader := false
	for _, line := range strings.Split(sto, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if !seenHeader {
			if !strings.HasPrefix(trimmed, header) {
				return nil, &model.FormatError{Reason: "missing # STOCKHOLM header"}
			}
			seenHeader = true
			continue
		}
		if trimmed == "//" {
			break
		}
		if strings.HasPrefix(trimmed, "#=GS") {
			// #=GS <seqname> DE <free text description>
			fields := strings.Fields(trimmed)
			if len(fields) >= 4 && fields[2] == "DE" {
				msa.Descriptions[fields[1]] = strings.Join(fields[3:], " ")
			}
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			continue
		}
		fields := strings.Fields(trimmed)
		if len(fields) != 2 {
			return nil, &model.FormatError{Reason: "unparseable alignment line: " + trimmed}
		}
		name, seq := fields[0], fields[1]
		if _, ok := msa.Sequences[name]; !ok {
			msa.Names = append(msa.Names, name)
		}
		msa.Sequences[name] += seq
	}
	if !seenHeader {
		return nil, &model.FormatError{Reason: "empty alignment"}
	}
	return msa, nil
}

// String re-serializes the alignment as a single-block container.
func (m *MSA) String() string {
	var b strings.Builder
	b.WriteString("# STOCKHOLM 1.0\n\n")
	for _, name := range m.Names {
		if desc, ok := m.Descriptions[name]; ok {
			b.WriteString("#=GS " + name + " DE " + desc + "\n")
		}
	}
	for _, name := range m.Names {
		b.WriteString(name + " " + m.Sequences[name] + "\n")
	}
	b.WriteString("//\n")
	return b.String()
}
