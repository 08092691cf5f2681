package interpret

import "gosaju/domain/saju"

// Facts is the minimal slice of derived-chart state the matcher reads.
type Facts struct {
	GyeokgukID     string
	IsStrong       bool
	YongsinElement saju.Element
	DayElement     saju.Element
}

// Selection is the chosen template for one category plus its score,
// kept for explainability.
type Selection struct {
	Template Template `json:"template"`
	Score    int      `json:"score"`
}

const (
	gyeokgukMatch    = 50
	gyeokgukMismatch = -100
	strengthMatch    = 30
	strengthMismatch = -50
	yongsinMatch     = 20
	dayMatch         = 20
	dayMismatch      = -30
)

func containsElement(set []saju.Element, e saju.Element) bool {
	for _, x := range set {
		if x == e {
			return true
		}
	}
	return false
}

func containsString(set []string, s string) bool {
	for _, x := range set {
		if x == s {
			return true
		}
	}
	return false
}

// score folds each declared condition into the template's base
// priority. A failed gyeokguk condition subtracts more than the base
// priority adds, so gyeokguk-specific templates drop below the
// unconditional fallback when the pattern does not match.
func score(t Template, f Facts) int {
	s := t.Priority
	c := t.Conditions
	if len(c.Gyeokguk) > 0 {
		if containsString(c.Gyeokguk, f.GyeokgukID) {
			s += gyeokgukMatch
		} else {
			s += gyeokgukMismatch
		}
	}
	if c.IsStrong != nil {
		if *c.IsStrong == f.IsStrong {
			s += strengthMatch
		} else {
			s += strengthMismatch
		}
	}
	if len(c.YongsinElement) > 0 && containsElement(c.YongsinElement, f.YongsinElement) {
		s += yongsinMatch
	}
	if len(c.DayElement) > 0 {
		if containsElement(c.DayElement, f.DayElement) {
			s += dayMatch
		} else {
			s += dayMismatch
		}
	}
	return s
}

// Select picks the highest-scoring template in one category. Ties keep
// the earliest bank entry, so output is deterministic for equal facts.
func Select(cat Category, f Facts) Selection {
	bank := Bank(cat)
	best := Selection{Template: bank[0], Score: score(bank[0], f)}
	for _, t := range bank[1:] {
		if s := score(t, f); s > best.Score {
			best = Selection{Template: t, Score: s}
		}
	}
	return best
}

// SelectAll runs Select over every category in canonical order.
func SelectAll(f Facts) map[Category]Selection {
	out := make(map[Category]Selection, len(Categories))
	for _, cat := range Categories {
		out[cat] = Select(cat, f)
	}
	return out
}
