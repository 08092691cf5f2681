// Package calendar corrects a civil birth timestamp into true solar time
// and resolves it to a two-hour branch. The hour pillar depends on the
// sun, not the clock: longitude offset, the equation of time, and the
// historical standard-time era all shift the effective hour.
package calendar

import (
	"math"
	"time"

	"gosaju/domain/saju"
)

// Era is one period of the Korean standard-time history, with the
// meridian the clocks of that period were set to.
type Era struct {
	Start            time.Time
	End              time.Time
	StandardMeridian float64
	UTCOffset        float64
	Description      string
}

func dateOf(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// koreaTimezoneHistory lists the standard-time eras in order. Lookup
// falls through to the last entry (current KST) when no era matches.
var koreaTimezoneHistory = []Era{
	{dateOf(1800, 1, 1), dateOf(1908, 3, 31), 127.5, 8.5, "대한제국 표준시 (한양 기준)"},
	{dateOf(1908, 4, 1), dateOf(1911, 12, 31), 127.5, 8.5, "대한제국 표준시"},
	{dateOf(1912, 1, 1), dateOf(1954, 3, 20), 135, 9, "일제강점기 및 초기 대한민국 (도쿄 기준)"},
	{dateOf(1954, 3, 21), dateOf(1961, 8, 9), 127.5, 8.5, "이승만 정부 표준시 환원"},
	{dateOf(1961, 8, 10), dateOf(2100, 12, 31), 135, 9, "현재 KST (동경 135도 기준)"},
}

// currentUTCOffset is the KST baseline historical corrections are
// measured against.
const currentUTCOffset = 9

// EraFor returns the standard-time era containing t, defaulting to the
// most recent era. Total over all inputs.
func EraFor(t time.Time) Era {
	probe := dateOf(t.Year(), t.Month(), t.Day())
	for _, era := range koreaTimezoneHistory {
		if !probe.Before(era.Start) && !probe.After(era.End) {
			return era
		}
	}
	return koreaTimezoneHistory[len(koreaTimezoneHistory)-1]
}

// EquationOfTime approximates the equation of time in minutes for a day
// of year, using Spencer's three-term harmonic form. Positive means true
// solar time runs ahead of mean solar time.
func EquationOfTime(dayOfYear int) float64 {
	b := 2 * math.Pi * float64(dayOfYear-81) / 365
	return 9.87*math.Sin(2*b) - 7.53*math.Cos(b) - 1.5*math.Sin(b)
}

// Correction is the breakdown of a true-solar-time conversion. All
// components are minutes.
type Correction struct {
	Original    time.Time `json:"original"`
	Corrected   time.Time `json:"corrected"`
	Longitude   float64   `json:"longitudeCorrection"`
	Equation    float64   `json:"equationOfTime"`
	Historical  float64   `json:"historicalCorrection"`
	Total       float64   `json:"totalCorrection"`
	Era         Era       `json:"-"`
	EraNote     string    `json:"eraNote"`
	HourBranch  saju.Branch `json:"hourBranch"`
}

// DefaultLongitude is Seoul.
const DefaultLongitude = 126.978

// TrueSolarTime converts a clock timestamp to true solar time:
//
//	T_true = T_clock + 4*(longitude - meridian) + EoT + historical offset
//
// The function is total: any numeric input yields a value, with
// out-of-range dates falling back to the current era.
func TrueSolarTime(clock time.Time, longitude float64, applyHistorical bool) Correction {
	era := EraFor(clock)

	longitudeCorr := 4 * (longitude - era.StandardMeridian)
	eot := EquationOfTime(clock.YearDay())

	historical := 0.0
	if applyHistorical {
		historical = (era.UTCOffset - currentUTCOffset) * 60
	}

	total := longitudeCorr + eot + historical
	corrected := clock.Add(time.Duration(total * float64(time.Minute)))

	return Correction{
		Original:   clock,
		Corrected:  corrected,
		Longitude:  round1(longitudeCorr),
		Equation:   round1(eot),
		Historical: historical,
		Total:      round1(total),
		Era:        era,
		EraNote:    era.Description,
		HourBranch: HourBranchOf(corrected.Hour()),
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

// HourBranchOf resolves a 0-23 hour to its two-hour branch. Hours 23 and
// 0 both belong to 자시; day rollover is a policy decision left to the
// caller (see ZasiMode).
func HourBranchOf(hour int) saju.Branch {
	if hour >= 23 || hour < 1 {
		return saju.Ja
	}
	// 01:00 opens 축시; each branch spans two hours from there.
	return saju.Branches[((hour-1)/2+1)%12]
}

// ZasiMode selects how the 23:00-01:00 double hour interacts with the
// day pillar.
type ZasiMode string

const (
	// ZasiUnified keeps the civil date: the day changes at midnight.
	ZasiUnified ZasiMode = "unified"
	// ZasiYaja splits the rat hour: 23:00-24:00 keeps the current day.
	ZasiYaja ZasiMode = "yajasi"
	// ZasiJoja rolls the day forward from 23:00.
	ZasiJoja ZasiMode = "jojasi"
)

// AdjustForZasi applies the day-rollover policy for births in the rat
// hour. Returns the possibly shifted date and whether the day changed.
func AdjustForZasi(t time.Time, mode ZasiMode) (time.Time, bool) {
	if t.Hour() < 23 {
		return t, false
	}
	if mode == ZasiJoja {
		return t.AddDate(0, 0, 1), true
	}
	return t, false
}

// CorrectedTime bundles the full correction pipeline output for a birth
// input.
type CorrectedTime struct {
	Correction Correction  `json:"correction"`
	Final      time.Time   `json:"final"`
	DayChanged bool        `json:"dayChanged"`
	HourBranch saju.Branch `json:"hourBranch"`
}

// Correct runs the whole pipeline: true-solar-time conversion (optional),
// zasi adjustment, hour-branch resolution.
func Correct(clock time.Time, longitude float64, mode ZasiMode, applyTrueSolar bool) CorrectedTime {
	corr := TrueSolarTime(clock, longitude, true)

	final := clock
	if applyTrueSolar {
		final = corr.Corrected
	}

	adjusted, changed := AdjustForZasi(final, mode)

	return CorrectedTime{
		Correction: corr,
		Final:      adjusted,
		DayChanged: changed,
		HourBranch: HourBranchOf(final.Hour()),
	}
}
