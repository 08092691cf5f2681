// Package strength computes the chart's elemental distribution and the
// body-strength score that classifies it as 신강 (strong) or 신약 (weak).
package strength

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"gosaju/domain/saju"
)

// Hidden-stem weights by rank: buried qi counts for less than the
// primary, which counts for less than a visible token.
const (
	visibleWeight       = 1.0
	primaryHiddenWeight = 0.5
	minorHiddenWeight   = 0.25
)

// Distribution is the fractional weight of each element across the
// chart's visible stems, branches and hidden stems.
type Distribution struct {
	Counts    map[saju.Element]float64 `json:"counts"`
	Percents  map[saju.Element]int     `json:"percents"`
	Strongest saju.Element             `json:"strongest"`
	Weakest   saju.Element             `json:"weakest"`
}

// CountElements accumulates the weighted element distribution. Each
// pillar contributes 1.0 for its visible stem and branch, 0.5 for the
// branch's primary hidden stem and 0.25 for the rest.
func CountElements(c saju.Chart) Distribution {
	// Weight vector in canonical element order; accumulated with gonum so
	// the normalization below shares the same buffer.
	weights := make([]float64, len(saju.Elements))
	idx := make(map[saju.Element]int, len(saju.Elements))
	for i, e := range saju.Elements {
		idx[e] = i
	}

	for _, p := range c.Pillars() {
		weights[idx[p.StemElement]] += visibleWeight
		weights[idx[p.BranchElement]] += visibleWeight
		for rank, hs := range p.HiddenStems {
			w := minorHiddenWeight
			if rank == 0 {
				w = primaryHiddenWeight
			}
			weights[idx[saju.StemElement(hs)]] += w
		}
	}

	total := floats.Sum(weights)

	percents := make(map[saju.Element]float64, len(saju.Elements))
	counts := make(map[saju.Element]float64, len(saju.Elements))
	for i, e := range saju.Elements {
		counts[e] = weights[i]
		if total > 0 {
			percents[e] = weights[i] / total * 100
		} else {
			percents[e] = 20
		}
	}

	return Distribution{
		Counts:    counts,
		Percents:  roundPercents(percents),
		Strongest: extremeElement(counts, true),
		Weakest:   extremeElement(counts, false),
	}
}

func roundPercents(p map[saju.Element]float64) map[saju.Element]int {
	out := make(map[saju.Element]int, len(p))
	for e, v := range p {
		r, err := stats.Round(v, 0)
		if err != nil {
			panic(fmt.Sprintf("strength: rounding %v: %v", v, err))
		}
		out[e] = int(r)
	}
	return out
}

// extremeElement picks the max (or min) element, breaking ties by
// canonical element order so results stay deterministic.
func extremeElement(counts map[saju.Element]float64, max bool) saju.Element {
	best := saju.Elements[0]
	for _, e := range saju.Elements[1:] {
		if (max && counts[e] > counts[best]) || (!max && counts[e] < counts[best]) {
			best = e
		}
	}
	return best
}

// Result is the strength verdict for a chart.
type Result struct {
	IsStrong bool   `json:"isStrong"`
	Score    int    `json:"score"`
	Analysis string `json:"analysis"`
}

// strongThreshold splits 신강 from 신약.
const strongThreshold = 55

// Analyze scores the day master's support. Baseline 50; the month branch
// weighs most, then the day branch, then every remaining pillar element.
// Reinforcing means the day element itself or its generative parent;
// only the controlling element opposes.
func Analyze(c saju.Chart) Result {
	day := c.DayElement()
	controller := saju.ControlledBy(day)
	score := 50

	monthEl := c.Month.BranchElement
	if saju.Reinforcing(day, monthEl) {
		score += 25
	} else if monthEl == controller {
		score -= 20
	}

	if saju.Reinforcing(day, c.Day.BranchElement) {
		score += 15
	}

	rest := []saju.Element{
		c.Year.StemElement, c.Year.BranchElement,
		c.Month.StemElement,
		c.Hour.StemElement, c.Hour.BranchElement,
	}
	for _, el := range rest {
		if saju.Reinforcing(day, el) {
			score += 5
		} else if el == controller {
			score -= 5
		}
	}

	return Result{
		IsStrong: score >= strongThreshold,
		Score:    score,
		Analysis: narrative(score),
	}
}

// narrative attaches the fixed descriptive sentence for the score band.
func narrative(score int) string {
	switch {
	case score >= 70:
		return "매우 강한 신강 사주입니다. 기운이 넘쳐 설기나 극이 필요합니다."
	case score >= 55:
		return "신강 사주입니다. 적절한 발산이 필요합니다."
	case score >= 45:
		return "중화된 사주입니다. 균형이 잘 잡혀있습니다."
	case score >= 30:
		return "신약 사주입니다. 도움과 보호가 필요합니다."
	default:
		return "매우 약한 신약 사주입니다. 인성과 비겁의 도움이 절실합니다."
	}
}
