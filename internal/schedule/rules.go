package schedule

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// LoadRules builds the normalizer rule set from optional deployment files:
// an alias CSV of "raw,canonical" rows and an exclude list of one name per
// line. File entries are layered over the built-in defaults.
func LoadRules(suffix, aliasPath, excludePath string) (Rules, error) {
	aliases := map[string]string{"rory": "Rory-lynn Bradshaw"}
	var excludes []string

	if aliasPath != "" {
		f, err := os.Open(aliasPath)
		if err != nil {
			return Rules{}, fmt.Errorf("open alias file: %w", err)
		}
		defer f.Close()

		r := csv.NewReader(f)
		r.FieldsPerRecord = -1
		r.TrimLeadingSpace = true
		rows, err := r.ReadAll()
		if err != nil {
			return Rules{}, fmt.Errorf("read alias file: %w", err)
		}
		for _, row := range rows {
			if len(row) < 2 {
				continue
			}
			from := strings.TrimSpace(row[0])
			to := strings.TrimSpace(row[1])
			if from != "" && to != "" {
				aliases[from] = to
			}
		}
	}

	if excludePath != "" {
		f, err := os.Open(excludePath)
		if err != nil {
			return Rules{}, fmt.Errorf("open exclude file: %w", err)
		}
		defer f.Close()

		sc := bufio.NewScanner(f)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line != "" && !strings.HasPrefix(line, "#") {
				excludes = append(excludes, line)
			}
		}
		if err := sc.Err(); err != nil {
			return Rules{}, fmt.Errorf("read exclude file: %w", err)
		}
	}

	return NewRules(suffix, aliases, excludes), nil
}
