// Package ai turns a finished deterministic analysis into the prompts
// sent to the language model. The model is only allowed to narrate:
// every claim it may cite is pinned down here first as a confirmed fact.
package ai

import (
	"fmt"
	"strings"

	"gosaju/domain/relation"
	"gosaju/domain/saju"
	"gosaju/models"
)

// ConfirmedFacts is the fact sheet injected into every LLM prompt.
// Field names follow the JSON the web client already consumes.
type ConfirmedFacts struct {
	DayMaster        string `json:"dayMaster"`
	DayMasterElement string `json:"dayMasterElement"`
	DayMasterYinyang string `json:"dayMasterYinyang"`

	Gyeokguk     string `json:"gyeokguk"`
	GyeokgukType string `json:"gyeokgukType"`

	IsStrong      bool `json:"isStrong"`
	StrengthScore int  `json:"strengthScore"`

	YongsinElement string `json:"yongsinElement"`
	YongsinMethod  string `json:"yongsinMethod"`
	HeeSinElement  string `json:"heeSinElement"`
	GiSinElement   string `json:"giSinElement"`

	ElementDistribution map[string]int `json:"elementDistribution"`
	StrongElement       string         `json:"strongElement"`
	WeakElement         string         `json:"weakElement"`

	SpecialFeatures []string `json:"specialFeatures"`
}

// visibleDistribution counts only surfaced stem and branch elements,
// one point each. Hidden stems are deliberately excluded: the fact
// sheet reports what the chart shows, the weighted distribution lives
// in strength.Distribution.
func visibleDistribution(chart saju.Chart) map[string]int {
	counts := make(map[string]int, len(saju.Elements))
	for _, e := range saju.Elements {
		counts[string(e)] = 0
	}
	for _, p := range chart.Pillars() {
		counts[string(saju.StemElement(p.Stem))]++
		counts[string(saju.BranchElement(p.Branch))]++
	}
	return counts
}

// extremes picks the most and least represented element. Ties resolve
// by canonical element order: the first tied element wins "strong",
// the last tied element wins "weak".
func extremes(counts map[string]int) (strong, weak string) {
	strong, weak = string(saju.Elements[0]), string(saju.Elements[0])
	for _, e := range saju.Elements {
		k := string(e)
		if counts[k] > counts[strong] {
			strong = k
		}
		if counts[k] <= counts[weak] {
			weak = k
		}
	}
	return strong, weak
}

func collectSpecialFeatures(a *models.Analysis) []string {
	features := []string{fmt.Sprintf("%s (%s)", a.Gyeokguk.Name, a.Gyeokguk.Type)}

	if !a.GyeokgukStatus.Intact {
		features = append(features, "격국 손상(敗格) 주의")
	}

	for _, m := range a.Markers {
		switch m.Type {
		case relation.Good:
			features = append(features, "길신: "+m.Name)
		case relation.Bad:
			features = append(features, "흉신: "+m.Name)
		}
	}

	for _, it := range a.Interactions {
		if it.Kind == relation.Clash || (it.Kind == relation.Combination && strings.Contains(it.Description, "삼합")) {
			head := strings.TrimSpace(strings.SplitN(it.Description, "-", 2)[0])
			features = append(features, fmt.Sprintf("%s: %s", it.Kind, head))
		}
	}

	if a.Strength.Score >= 70 {
		features = append(features, "매우 신강")
	} else if a.Strength.Score <= 35 {
		features = append(features, "매우 신약")
	}

	return features
}

// BuildFacts assembles the confirmed fact sheet from a finished
// analysis. It never recomputes anything: every field is a projection
// of state the engine already settled.
func BuildFacts(a *models.Analysis) ConfirmedFacts {
	day := a.Chart.DayMaster()
	counts := visibleDistribution(a.Chart)
	strong, weak := extremes(counts)

	return ConfirmedFacts{
		DayMaster:        string(day),
		DayMasterElement: string(saju.StemElement(day)),
		DayMasterYinyang: string(saju.StemPolarity(day)),

		Gyeokguk:     a.Gyeokguk.Name,
		GyeokgukType: string(a.Gyeokguk.Type),

		IsStrong:      a.Strength.IsStrong,
		StrengthScore: a.Strength.Score,

		YongsinElement: string(a.Yongsin.Primary.Governing),
		YongsinMethod:  string(a.Yongsin.Primary.Method),
		HeeSinElement:  string(a.Yongsin.Primary.Favorable),
		GiSinElement:   string(a.Yongsin.Primary.Unfavorable),

		ElementDistribution: counts,
		StrongElement:       strong,
		WeakElement:         weak,

		SpecialFeatures: collectSpecialFeatures(a),
	}
}

// RulesApplied lists the rule identifiers that fired, for the
// metadata audit trail.
func RulesApplied(a *models.Analysis) []string {
	rules := []string{
		"격국: " + a.Gyeokguk.ID,
		"용신법: " + string(a.Yongsin.Primary.Method),
	}
	if a.Yongsin.Secondary != nil {
		rules = append(rules, "보조용신법: "+string(a.Yongsin.Secondary.Method))
	}
	return rules
}
