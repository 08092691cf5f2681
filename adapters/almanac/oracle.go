// Package almanac is the arithmetic calendar oracle. It converts civil
// timestamps into sexagenary pillars without external tables: day
// pillars come from Julian day arithmetic, month pillars from an
// approximate solar-term calendar, hour stems from the five-rats rule.
//
// Solar-term boundaries are taken at their most common civil date; the
// true instant can shift a day either way in edge years. Charts cast
// within a day of a term boundary should be treated as boundary cases.
package almanac

import (
	"math"
	"time"

	"gosaju/domain/calendar"
	"gosaju/domain/saju"
	"gosaju/ports"
)

// Oracle implements ports.CalendarOracle.
type Oracle struct{}

func New() *Oracle { return &Oracle{} }

var _ ports.CalendarOracle = (*Oracle)(nil)

// julianDayNumber converts a Gregorian calendar date to its Julian day
// number at noon.
func julianDayNumber(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// dayPair returns the day pillar. JDN 2451545 (2000-01-01) is 무오,
// which anchors both offsets.
func dayPair(jdn int) saju.RawPair {
	return saju.RawPair{
		Stem:   saju.StemAt(((jdn+9)%10 + 10) % 10),
		Branch: saju.BranchAt(((jdn+1)%12 + 12) % 12),
	}
}

// jieDays is the usual civil day-of-month on which each month's 절
// (principal term) falls, indexed by Gregorian month.
var jieDays = [13]int{0, 6, 4, 6, 5, 6, 6, 7, 8, 8, 8, 7, 7}

func monthBranchIndex(month, day int) int {
	m := month
	if day < jieDays[month] {
		m--
		if m == 0 {
			m = 12
		}
	}
	// Feb -> 인 (index 2), wrapping so Dec -> 자 (0) and Jan -> 축 (1).
	return (m + 12) % 12
}

// sajuYear shifts new-year charts back one year: the saju year begins
// at 입춘, not January 1st.
func sajuYear(t time.Time) int {
	y, m, d := t.Year(), int(t.Month()), t.Day()
	if m == 1 || (m == 2 && d < jieDays[2]) {
		return y - 1
	}
	return y
}

func yearPair(year int) saju.RawPair {
	return saju.RawPair{
		Stem:   saju.StemAt(((year-4)%10 + 10) % 10),
		Branch: saju.BranchAt(((year-4)%12 + 12) % 12),
	}
}

// monthPair derives the month stem from the year stem by the five
// tigers rule: the 인 month of a 갑/기 year opens with 병.
func monthPair(yearStem saju.Stem, branchIdx int) saju.RawPair {
	firstStem := (saju.StemIndex(yearStem)*2 + 2) % 10
	monthsSinceIn := ((branchIdx - 2) + 12) % 12
	return saju.RawPair{
		Stem:   saju.StemAt((firstStem + monthsSinceIn) % 10),
		Branch: saju.BranchAt(branchIdx),
	}
}

// hourPair derives the hour stem from the day stem by the five rats
// rule: the 자 hour of a 갑/기 day opens with 갑.
func hourPair(dayStem saju.Stem, hour int) saju.RawPair {
	branch := calendar.HourBranchOf(hour)
	bi := saju.BranchIndex(branch)
	return saju.RawPair{
		Stem:   saju.StemAt((saju.StemIndex(dayStem)*2 + bi) % 10),
		Branch: branch,
	}
}

// Mean synodic month, anchored at the 2000-01-06 new moon. The lunar
// echo is informational only; it never feeds the pillar math.
const (
	synodicMonth = 29.530588853
	newMoonEpoch = 2451550.26 // JD of 2000-01-06 18:14 UTC
)

func lunarEcho(t time.Time) saju.LunarDate {
	jd := float64(julianDayNumber(t.Year(), int(t.Month()), t.Day()))
	k := math.Floor((jd - newMoonEpoch) / synodicMonth)
	lastNew := newMoonEpoch + k*synodicMonth
	lunarDay := int(jd-lastNew) + 1

	// Lunar new year is the new moon falling between Jan 21 and Feb 20.
	year := t.Year()
	nyJD := lunarNewYearJD(year)
	if jd < nyJD {
		year--
		nyJD = lunarNewYearJD(year)
	}
	month := int(math.Floor((jd-nyJD)/synodicMonth)) + 1
	if month < 1 {
		month = 1
	}
	if month > 12 {
		month = 12
	}
	return saju.LunarDate{Year: year, Month: month, Day: lunarDay}
}

func lunarNewYearJD(year int) float64 {
	feb1 := float64(julianDayNumber(year, 2, 1))
	k := math.Floor((feb1 - newMoonEpoch) / synodicMonth)
	ny := newMoonEpoch + k*synodicMonth
	// Step to the new moon inside the Jan 21 - Feb 20 window.
	jan21 := float64(julianDayNumber(year, 1, 21))
	for ny < jan21 {
		ny += synodicMonth
	}
	return ny
}

// FourPillars casts all four pillars for a (solar-corrected) local
// timestamp.
func (o *Oracle) FourPillars(t time.Time) (saju.RawChart, error) {
	y := sajuYear(t)
	yp := yearPair(y)

	bi := monthBranchIndex(int(t.Month()), t.Day())
	mp := monthPair(yp.Stem, bi)

	// Day rollover at 23:00 is a zasi policy decision; callers shift the
	// date before asking, so the civil date is taken as-is here.
	jdn := julianDayNumber(t.Year(), int(t.Month()), t.Day())
	dp := dayPair(jdn)

	hp := hourPair(dp.Stem, t.Hour())

	return saju.RawChart{
		Year:  yp,
		Month: mp,
		Day:   dp,
		Hour:  hp,
		Lunar: lunarEcho(t),
	}, nil
}

// YearPillar returns the pillar of a calendar year, taken mid-year so
// the 입춘 boundary cannot bite.
func (o *Oracle) YearPillar(year int) (saju.RawPair, error) {
	return yearPair(year), nil
}

// DecadeSteps walks the decade cycle from the month pillar. Direction
// follows the classical rule: yang-year men and yin-year women run
// forward, the others backward. The start age is the distance to the
// adjacent term boundary in days over three, floored at one.
func (o *Oracle) DecadeSteps(birth time.Time, gender saju.Gender, n int) ([]ports.DecadeStep, error) {
	chart, err := o.FourPillars(birth)
	if err != nil {
		return nil, err
	}

	yangYear := saju.StemPolarity(chart.Year.Stem) == saju.Yang
	forward := yangYear == (gender == saju.Male)

	startAge := decadeStartAge(birth, forward)
	startYear := birth.Year() + startAge

	si := saju.StemIndex(chart.Month.Stem)
	bi := saju.BranchIndex(chart.Month.Branch)
	step := 1
	if !forward {
		step = -1
	}

	out := make([]ports.DecadeStep, 0, n)
	for i := 1; i <= n; i++ {
		si = ((si+step)%10 + 10) % 10
		bi = ((bi+step)%12 + 12) % 12
		out = append(out, ports.DecadeStep{
			StartAge:  startAge + (i-1)*10,
			StartYear: startYear + (i-1)*10,
			Pair:      saju.RawPair{Stem: saju.StemAt(si), Branch: saju.BranchAt(bi)},
		})
	}
	return out, nil
}

func decadeStartAge(birth time.Time, forward bool) int {
	boundary := nextJie(birth)
	if !forward {
		boundary = prevJie(birth)
	}
	days := boundary.Sub(birth).Hours() / 24
	if days < 0 {
		days = -days
	}
	age := int(math.Round(days / 3))
	if age < 1 {
		age = 1
	}
	return age
}

func nextJie(t time.Time) time.Time {
	y, m := t.Year(), int(t.Month())
	if t.Day() < jieDays[m] {
		return time.Date(y, time.Month(m), jieDays[m], 0, 0, 0, 0, t.Location())
	}
	m++
	if m > 12 {
		m = 1
		y++
	}
	return time.Date(y, time.Month(m), jieDays[m], 0, 0, 0, 0, t.Location())
}

func prevJie(t time.Time) time.Time {
	y, m := t.Year(), int(t.Month())
	if t.Day() >= jieDays[m] {
		return time.Date(y, time.Month(m), jieDays[m], 0, 0, 0, 0, t.Location())
	}
	m--
	if m < 1 {
		m = 12
		y--
	}
	return time.Date(y, time.Month(m), jieDays[m], 0, 0, 0, 0, t.Location())
}
