package stockholm

import (
	"strings"

	"msaforge/model"
)

// Truncate retains the first maxSequences records of a Stockholm
// container, preserving format validity. maxSequences <= 0 returns the
// input unchanged. The input may itself be incomplete (e.g. interrupted
// output); truncation never makes it less parseable than it was.
func Truncate(sto string, maxSequences int) (string, error) {
	if maxSequences <= 0 {
		return sto, nil
	}
	if !strings.Contains(sto, header) {
		return "", &model.FormatError{Reason: "missing # STOCKHOLM header"}
	}

	lines := strings.Split(sto, "\n")

	// first pass: names of the records to keep, in original order
	keep := make(map[string]bool, maxSequences)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//") {
			continue
		}
		name := strings.Fields(trimmed)[0]
		if !keep[name] {
			if len(keep) >= maxSequences {
				break
			}
			keep[name] = true
		}
	}

	// second pass: filter, keeping structure lines intact
	filtered := make([]string, 0, len(lines))
	for _, line := range lines {
		if keepLine(line, keep) {
			filtered = append(filtered, line)
		}
	}
	return strings.Join(filtered, "\n"), nil
}

func keepLine(line string, keep map[string]bool) bool {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "" || trimmed == "//":
		return true
	case strings.HasPrefix(line, header):
		return true
	case strings.HasPrefix(line, "#=GC RF"):
		// reference coordinate annotation applies to all records
		return true
	case strings.HasPrefix(line, "#=GS"):
		fields := strings.Fields(trimmed)
		return len(fields) >= 2 && keep[fields[1]]
	case strings.HasPrefix(line, "#"):
		return false
	default:
		return keep[strings.Fields(trimmed)[0]]
	}
}
