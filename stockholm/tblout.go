package stockholm

import (
	"strconv"
	"strings"

	"msaforge/model"
)

// ParseEValues extracts full-sequence E-values per target name from a
// jackhmmer --tblout table. The query is seeded with 0 so it always sorts
// ahead of every hit.
func ParseEValues(tbl string) (map[string]float64, error) {
	eValues := map[string]float64{"query": 0}
	for _, line := range strings.Split(tbl, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		fields := strings.Fields(trimmed)
		if len(fields) < 5 {
			return nil, &model.FormatError{Reason: "short tblout line: " + trimmed}
		}
		eValue, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return nil, &model.FormatError{Reason: "bad e-value in tblout line: " + trimmed}
		}
		eValues[fields[0]] = eValue
	}
	return eValues, nil
}
