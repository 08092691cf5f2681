package almanac

import (
	"testing"
	"time"

	"gosaju/domain/saju"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestJulianDayNumberAnchor(t *testing.T) {
	if got := julianDayNumber(2000, 1, 1); got != 2451545 {
		t.Errorf("JDN(2000-01-01) = %d, expected 2451545", got)
	}
	if got := julianDayNumber(1990, 5, 15); got != 2448027 {
		t.Errorf("JDN(1990-05-15) = %d, expected 2448027", got)
	}
}

func TestFourPillarsMillennium(t *testing.T) {
	// 2000-01-01 noon: before 입춘 the saju year is still 1999 (기묘),
	// the 자 month of that year is 병자, the day is the 무오 anchor,
	// and the 오 hour of a 무 day is 무오.
	chart, err := New().FourPillars(date(2000, time.January, 1, 12, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  saju.RawPair
		want string
	}{
		{"year", chart.Year, "기묘"},
		{"month", chart.Month, "병자"},
		{"day", chart.Day, "무오"},
		{"hour", chart.Hour, "무오"},
	}
	for _, test := range tests {
		if test.got.Label() != test.want {
			t.Errorf("%s pillar = %s, expected %s", test.name, test.got.Label(), test.want)
		}
	}
}

func TestFourPillarsMidYear(t *testing.T) {
	// 1990-05-15 10:00: 경오년 신사월 경진일 신사시.
	chart, err := New().FourPillars(date(1990, time.May, 15, 10, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if chart.Year.Label() != "경오" {
		t.Errorf("year = %s, expected 경오", chart.Year.Label())
	}
	if chart.Month.Label() != "신사" {
		t.Errorf("month = %s, expected 신사", chart.Month.Label())
	}
	if chart.Day.Label() != "경진" {
		t.Errorf("day = %s, expected 경진", chart.Day.Label())
	}
	if chart.Hour.Label() != "신사" {
		t.Errorf("hour = %s, expected 신사", chart.Hour.Label())
	}
}

func TestSajuYearBoundary(t *testing.T) {
	tests := []struct {
		t        time.Time
		expected int
	}{
		{date(2024, time.January, 15, 12, 0), 2023}, // before 입춘
		{date(2024, time.February, 3, 12, 0), 2023}, // still before Feb 4
		{date(2024, time.February, 4, 12, 0), 2024}, // on the boundary day
		{date(2024, time.June, 1, 12, 0), 2024},
	}
	for _, test := range tests {
		if got := sajuYear(test.t); got != test.expected {
			t.Errorf("sajuYear(%s) = %d, expected %d", test.t.Format("2006-01-02"), got, test.expected)
		}
	}
}

func TestMonthBranchIndex(t *testing.T) {
	tests := []struct {
		month, day int
		branch     saju.Branch
	}{
		{2, 10, saju.In},   // after 입춘: 인월
		{2, 3, saju.Chuk},  // before 입춘: still 축월
		{12, 10, saju.Ja},  // after 대설: 자월
		{1, 10, saju.Chuk}, // after 소한: 축월
		{5, 15, saju.Sa},
	}
	for _, test := range tests {
		if got := saju.BranchAt(monthBranchIndex(test.month, test.day)); got != test.branch {
			t.Errorf("monthBranchIndex(%d, %d) = %s, expected %s", test.month, test.day, got, test.branch)
		}
	}
}

func TestYearPillar(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{2024, "갑진"},
		{2025, "을사"},
		{1990, "경오"},
		{1960, "경자"},
	}
	for _, test := range tests {
		pair, err := New().YearPillar(test.year)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if pair.Label() != test.want {
			t.Errorf("YearPillar(%d) = %s, expected %s", test.year, pair.Label(), test.want)
		}
	}
}

func TestDecadeStepsForward(t *testing.T) {
	// 경오 is a yang year, so a man runs forward from the 신사 month
	// pillar. The next 절 after May 15 is June 6: 21 days and change
	// over three rounds to age 7.
	steps, err := New().DecadeSteps(date(1990, time.May, 15, 10, 0), saju.Male, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(steps) != 3 {
		t.Fatalf("len = %d, expected 3", len(steps))
	}

	if steps[0].StartAge != 7 {
		t.Errorf("first start age = %d, expected 7", steps[0].StartAge)
	}
	if steps[0].StartYear != 1997 {
		t.Errorf("first start year = %d, expected 1997", steps[0].StartYear)
	}
	if steps[0].Pair.Label() != "임오" {
		t.Errorf("first decade = %s, expected 임오", steps[0].Pair.Label())
	}
	if steps[1].Pair.Label() != "계미" || steps[1].StartAge != 17 {
		t.Errorf("second decade = %s at %d, expected 계미 at 17", steps[1].Pair.Label(), steps[1].StartAge)
	}
	if steps[2].Pair.Label() != "갑신" {
		t.Errorf("third decade = %s, expected 갑신", steps[2].Pair.Label())
	}
}

func TestDecadeStepsBackward(t *testing.T) {
	// Same birth, female: yang year women run backward, anchored on the
	// previous 절 (May 6), 9 days and change back rounds to age 3.
	steps, err := New().DecadeSteps(date(1990, time.May, 15, 10, 0), saju.Female, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if steps[0].StartAge != 3 {
		t.Errorf("first start age = %d, expected 3", steps[0].StartAge)
	}
	if steps[0].Pair.Label() != "경진" {
		t.Errorf("first decade = %s, expected 경진", steps[0].Pair.Label())
	}
	if steps[1].Pair.Label() != "기묘" || steps[1].StartAge != 13 {
		t.Errorf("second decade = %s at %d, expected 기묘 at 13", steps[1].Pair.Label(), steps[1].StartAge)
	}
}

func TestDecadeStartAgeFloor(t *testing.T) {
	// A birth half a day short of the 절 rounds to zero, floored to one.
	steps, err := New().DecadeSteps(date(1990, time.June, 5, 12, 0), saju.Male, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if steps[0].StartAge != 1 {
		t.Errorf("start age on a term boundary = %d, expected 1", steps[0].StartAge)
	}
}

func TestLunarEchoRanges(t *testing.T) {
	for _, d := range []time.Time{
		date(1990, time.May, 15, 10, 0),
		date(2000, time.January, 1, 12, 0),
		date(2024, time.February, 10, 12, 0),
	} {
		chart, err := New().FourPillars(d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		l := chart.Lunar
		if l.Year < d.Year()-1 || l.Year > d.Year() {
			t.Errorf("%s lunar year = %d, out of range", d.Format("2006-01-02"), l.Year)
		}
		if l.Month < 1 || l.Month > 12 {
			t.Errorf("%s lunar month = %d, out of range", d.Format("2006-01-02"), l.Month)
		}
		if l.Day < 1 || l.Day > 31 {
			t.Errorf("%s lunar day = %d, out of range", d.Format("2006-01-02"), l.Day)
		}
	}
}
