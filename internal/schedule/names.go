package schedule

import (
	"regexp"
	"strings"

	"schedconv/internal/util"
)

// Rules holds the lookup tables the student normalizer applies. Tables are
// per-deployment configuration rather than package globals so tests and
// callers can substitute them.
type Rules struct {
	// Suffix is the program marker every student cell must carry, written
	// in the source as "Name - Suffix". Names without it are rejected.
	Suffix         string
	Aliases        map[string]string
	Excludes       map[string]struct{}
	PartnerMarkers map[string]struct{}
	Placeholders   map[string]struct{}
}

// NewRules builds a rule set from deployment inputs, lowercasing table keys
// and filling the fixed marker/placeholder detectors.
func NewRules(suffix string, aliases map[string]string, excludes []string) Rules {
	if suffix == "" {
		suffix = "Columbia"
	}
	r := Rules{
		Suffix:   suffix,
		Aliases:  make(map[string]string, len(aliases)),
		Excludes: make(map[string]struct{}, len(excludes)),
		PartnerMarkers: map[string]struct{}{
			"partner": {}, "parnter": {}, "partnre": {}, "parter": {}, "prtnr": {},
		},
		Placeholders: map[string]struct{}{
			"student": {}, "n/a": {}, "na": {},
		},
	}
	for from, to := range aliases {
		r.Aliases[strings.ToLower(strings.TrimSpace(from))] = to
	}
	for _, name := range excludes {
		name = strings.ToLower(util.CollapseSpaces(name))
		if name != "" {
			r.Excludes[name] = struct{}{}
		}
	}
	return r
}

func DefaultRules() Rules {
	return NewRules("", map[string]string{"rory": "Rory-lynn Bradshaw"}, nil)
}

// NormalizeStudent turns a raw student cell into a clean student name, or ""
// when the cell must be rejected: blank, placeholder, partner marker, missing
// program suffix, or excluded.
func (r Rules) NormalizeStudent(raw string) string {
	s := util.CollapseSpaces(raw)
	if s == "" {
		return ""
	}

	low := strings.ToLower(s)
	if _, ok := r.Placeholders[low]; ok {
		return ""
	}
	if r.isPartnerMarker(low) {
		return ""
	}

	pat := regexp.MustCompile(`(?i)\s*-\s*` + regexp.QuoteMeta(r.Suffix) + `\s*$`)
	loc := pat.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	s = strings.TrimSpace(s[:loc[0]])
	if s == "" {
		return ""
	}

	if alias, ok := r.Aliases[strings.ToLower(s)]; ok {
		s = alias
	}
	if _, ok := r.Excludes[strings.ToLower(s)]; ok {
		return ""
	}
	return s
}

func (r Rules) isPartnerMarker(low string) bool {
	if _, ok := r.PartnerMarkers[low]; ok {
		return true
	}
	// catches embedded variants like "partner (day 2)"
	return strings.Contains(low, "partner") || strings.Contains(low, "parnter")
}

// FormatPreceptor re-emits a "Last, First" cell as "First Last". Input
// without a comma passes through with whitespace collapsed.
func FormatPreceptor(name string) string {
	s := util.CollapseSpaces(name)
	if s == "" {
		return ""
	}
	i := strings.Index(s, ",")
	if i < 0 {
		return s
	}
	last := strings.TrimSpace(s[:i])
	rest := strings.TrimSpace(s[i+1:])
	return util.CollapseSpaces(rest + " " + last)
}

// FormatPreceptors handles the multi-supervisor cells the ACP layout allows,
// reformatting each "/"-separated name and rejoining with " / ".
func FormatPreceptors(name string) string {
	parts := strings.Split(name, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if f := FormatPreceptor(p); f != "" {
			out = append(out, f)
		}
	}
	return strings.Join(out, " / ")
}
