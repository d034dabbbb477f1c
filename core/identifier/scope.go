package identifier

// Scope is a caller-declared expectation about where an identifier
// points: an expected region and/or an expected account ID. An empty
// dimension is unconstrained.
type Scope struct {
	Region  string `yaml:"region,omitempty"`
	Account string `yaml:"account,omitempty"`
}

// IsZero reports whether the scope constrains nothing.
func (s Scope) IsZero() bool {
	return s.Region == "" && s.Account == ""
}

// Mismatch is one failed scope dimension: what was expected and what the
// grammar actually extracted from the value.
type Mismatch struct {
	// Dimension is "Region" or "Account".
	Dimension string
	Expected  string
	Actual    string
}

// CheckScope compares the region and account extracted from value under
// grammar g against the expectation. Region mismatches are reported
// before account mismatches.
//
// A dimension is only compared when the expectation constrains it AND
// the grammar registers an extractor for it that yields a value; a
// grammar that cannot extract a dimension never produces a mismatch for
// it. An expectation on such a dimension is silently ignored.
func CheckScope(g Grammar, value string, expect Scope) []Mismatch {
	var out []Mismatch

	if expect.Region != "" && extractsRegion(g) {
		if actual, ok := ExtractRegion(g, value); ok && actual != expect.Region {
			out = append(out, Mismatch{Dimension: "Region", Expected: expect.Region, Actual: actual})
		}
	}
	if expect.Account != "" && extractsAccount(g) {
		if actual, ok := ExtractAccount(g, value); ok && actual != expect.Account {
			out = append(out, Mismatch{Dimension: "Account", Expected: expect.Account, Actual: actual})
		}
	}

	return out
}
