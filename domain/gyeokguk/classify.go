package gyeokguk

import (
	"fmt"

	"gosaju/domain/saju"
)

// Result is the assigned archetype for one chart. Exactly one result is
// produced per chart; "no clear pattern" is itself a valid outcome.
type Result struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	NameHanja   string      `json:"nameHanja,omitempty"`
	Type        PatternType `json:"type"`
	Description string      `json:"description"`
	Traits      []string    `json:"traits"`
	Careers     []string    `json:"careers"`
	Confidence  float64     `json:"confidence"`
	Reason      string      `json:"reason"`
}

func resultFrom(d Definition, confidence float64, reason string) Result {
	return Result{
		ID:          d.ID,
		Name:        d.Name,
		NameHanja:   d.NameHanja,
		Type:        d.Type,
		Description: d.Description,
		Traits:      d.Traits,
		Careers:     d.Careers,
		Confidence:  confidence,
		Reason:      reason,
	}
}

// Classify runs the ordered rule cascade over the month position.
// First match wins:
//
//  1. month branch is the day stem's establishment branch
//  2. month branch is the day stem's blade branch
//  3. a month hidden stem surfaces among the other visible stems and is
//     not a sibling relation
//  4. the month branch's primary hidden stem's relation, if not sibling
//  5. no determinable pattern
func Classify(c saju.Chart) Result {
	day := c.DayMaster()
	month := c.Month.Branch

	if establishmentBranch[day] == month {
		return resultFrom(definitionByID("geonrok"), 0.95,
			fmt.Sprintf("월지 %s이(가) 일간 %s의 건록지입니다.", month, day))
	}

	if bladeBranch[day] == month {
		return resultFrom(definitionByID("yangin"), 0.95,
			fmt.Sprintf("월지 %s이(가) 일간 %s의 양인지입니다.", month, day))
	}

	if g, ok := surfacedTenGod(c); ok {
		if def, found := definitionByTenGod(g); found {
			return resultFrom(def, 0.9,
				fmt.Sprintf("월지 %s의 지장간 중 %s이 천간에 투출했습니다.", month, g))
		}
	}

	primary := saju.PrimaryHiddenStem(month)
	if g := saju.TenGodOf(day, primary); !g.IsSibling() {
		if def, found := definitionByTenGod(g); found {
			return resultFrom(def, 0.75,
				fmt.Sprintf("월지 %s의 정기(본기) %s이(가) %s에 해당합니다. (투출 없음)", month, primary, g))
		}
	}

	return resultFrom(unknownDefinition, 0.5, "월지에서 뚜렷한 격국을 판정하기 어렵습니다.")
}

// surfacedTenGod scans the month branch's hidden stems in primary-first
// order for one that also appears among the year/month/hour visible
// stems. Sibling relations are skipped: they mark the self, not a
// structural focus.
func surfacedTenGod(c saju.Chart) (saju.TenGod, bool) {
	day := c.DayMaster()
	visible := c.OtherStems()

	for _, hidden := range saju.HiddenStems(c.Month.Branch) {
		surfaced := false
		for _, s := range visible {
			if s == hidden {
				surfaced = true
				break
			}
		}
		if !surfaced {
			continue
		}
		if g := saju.TenGodOf(day, hidden); !g.IsSibling() {
			return g, true
		}
	}
	return "", false
}

// Status reports whether a classified pattern is intact (성격) or damaged
// (패격) by an opposing relation elsewhere in the chart.
type Status struct {
	Intact   bool   `json:"intact"`
	Analysis string `json:"analysis"`
}

// AnalyzeStatus runs the pattern-specific integrity checks. The direct
// officer pattern breaks on a hurting-officer stem (상관견관); the eating
// god pattern breaks on an owl-god stem (효신탈식). Other patterns
// default to intact.
func AnalyzeStatus(c saju.Chart, r Result) Status {
	day := c.DayMaster()

	hasStem := func(g saju.TenGod) bool {
		for _, p := range c.Pillars() {
			if saju.TenGodOf(day, p.Stem) == g {
				return true
			}
		}
		return false
	}

	switch r.ID {
	case "jeonggwan":
		if hasStem(saju.HurtingOfficer) {
			return Status{false, "상관이 정관을 손상시키는 상관견관(傷官見官) 구조입니다. 직장에서의 갈등이나 권위와의 충돌에 주의가 필요합니다."}
		}
		return Status{true, "정관이 손상 없이 온전하여 성격(成格)입니다. 관직과 명예운이 좋습니다."}
	case "siksin":
		if hasStem(saju.OwlGod) {
			return Status{false, "편인이 식신을 빼앗는 효신탈식(梟神奪食) 구조입니다. 재능 발휘에 장애가 있을 수 있습니다."}
		}
		return Status{true, "식신이 온전하여 성격(成格)입니다. 재능을 통한 발복이 기대됩니다."}
	}

	return Status{true, fmt.Sprintf("%s이 크게 손상되지 않아 격국의 본래 성질을 발휘할 수 있습니다.", r.Name)}
}
