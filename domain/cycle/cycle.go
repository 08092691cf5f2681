// Package cycle projects the decade (대운) and annual (세운) pillars
// forward from birth. The raw stepping sequence comes from the calendar
// oracle; this package only annotates each step with its relation to
// the fixed day master.
package cycle

import (
	"gosaju/domain/saju"
	"gosaju/ports"
)

// DecadePillar is one ten-year period.
type DecadePillar struct {
	StartAge      int              `json:"startAge"`
	EndAge        int              `json:"endAge"`
	Stem          saju.Stem        `json:"stem"`
	Branch        saju.Branch      `json:"branch"`
	StemElement   saju.Element     `json:"stemElement"`
	BranchElement saju.Element     `json:"branchElement"`
	TenGod        saju.TenGod      `json:"tenGod"`
	TwelveStage   saju.TwelveStage `json:"twelveStage"`
}

// AnnualPillar is one calendar year.
type AnnualPillar struct {
	Year          int              `json:"year"`
	Stem          saju.Stem        `json:"stem"`
	Branch        saju.Branch      `json:"branch"`
	StemElement   saju.Element     `json:"stemElement"`
	BranchElement saju.Element     `json:"branchElement"`
	TenGod        saju.TenGod      `json:"tenGod"`
	TwelveStage   saju.TwelveStage `json:"twelveStage"`
	Animal        string           `json:"animal"`
}

// Decades annotates the oracle's stepping sequence against the day
// master. Decade pillars are fixed for life: they depend only on birth
// data and gender.
func Decades(day saju.Stem, steps []ports.DecadeStep) []DecadePillar {
	out := make([]DecadePillar, 0, len(steps))
	for _, s := range steps {
		out = append(out, DecadePillar{
			StartAge:      s.StartAge,
			EndAge:        s.StartAge + 9,
			Stem:          s.Pair.Stem,
			Branch:        s.Pair.Branch,
			StemElement:   saju.StemElement(s.Pair.Stem),
			BranchElement: saju.BranchElement(s.Pair.Branch),
			TenGod:        saju.TenGodOf(day, s.Pair.Stem),
			TwelveStage:   saju.TwelveStageOf(day, s.Pair.Branch),
		})
	}
	return out
}

// Annuals builds the rolling window of n year pillars starting at
// fromYear. The caller injects fromYear explicitly; this package never
// reads the ambient clock.
func Annuals(day saju.Stem, oracle ports.CalendarOracle, fromYear, n int) ([]AnnualPillar, error) {
	out := make([]AnnualPillar, 0, n)
	for i := 0; i < n; i++ {
		year := fromYear + i
		pair, err := oracle.YearPillar(year)
		if err != nil {
			return nil, err
		}
		out = append(out, AnnualPillar{
			Year:          year,
			Stem:          pair.Stem,
			Branch:        pair.Branch,
			StemElement:   saju.StemElement(pair.Stem),
			BranchElement: saju.BranchElement(pair.Branch),
			TenGod:        saju.TenGodOf(day, pair.Stem),
			TwelveStage:   saju.TwelveStageOf(day, pair.Branch),
			Animal:        saju.BranchAnimal(pair.Branch),
		})
	}
	return out, nil
}
