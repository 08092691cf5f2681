// Package ports defines the interfaces the engine consumes and exposes.
// Adapters provide production implementations; tests provide
// deterministic doubles.
package ports

import (
	"time"

	"gosaju/domain/saju"
)

// DecadeStep is one entry of the oracle's decade-cycle stepping
// sequence. The starting age of the first step is an oracle output, not
// derived by the engine.
type DecadeStep struct {
	StartAge  int
	StartYear int
	Pair      saju.RawPair
}

// CalendarOracle is the deterministic solar/lunar/sexagenary converter
// the chart builder depends on. The engine treats it as an
// already-correct collaborator and never reimplements its math.
type CalendarOracle interface {
	// FourPillars converts a corrected civil timestamp into the four raw
	// pillar pairs and the lunar representation. The only fatal error of
	// the whole pipeline surfaces here, on a genuinely invalid date.
	FourPillars(t time.Time) (saju.RawChart, error)

	// DecadeSteps returns the decade stepping sequence seeded by birth
	// data, direction resolved from the year stem's polarity and gender.
	DecadeSteps(birth time.Time, gender saju.Gender, n int) ([]DecadeStep, error)

	// YearPillar returns the sexagenary pillar governing a calendar year.
	YearPillar(year int) (saju.RawPair, error)
}
