package saju

import "time"

// RawPair is an underived (stem, branch) pair as produced by the
// sexagenary calendar oracle.
type RawPair struct {
	Stem   Stem   `json:"stem"`
	Branch Branch `json:"branch"`
}

// Label renders the pair as its two glyphs.
func (p RawPair) Label() string { return string(p.Stem) + string(p.Branch) }

// LunarDate is the oracle's lunar-calendar echo of the birth timestamp.
type LunarDate struct {
	Year      int  `json:"year"`
	Month     int  `json:"month"`
	Day       int  `json:"day"`
	LeapMonth bool `json:"leapMonth"`
}

// RawChart is the oracle output for one birth instant: the four raw
// pillar pairs plus the lunar representation.
type RawChart struct {
	Year, Month, Day, Hour RawPair
	Lunar                  LunarDate
}

// Chart is the complete Four Pillars birth chart. It is built once per
// analysis request and immutable thereafter; every downstream component
// is a pure function of a Chart.
type Chart struct {
	Year  Pillar `json:"year"`
	Month Pillar `json:"month"`
	Day   Pillar `json:"day"`
	Hour  Pillar `json:"hour"`

	Gender Gender    `json:"gender"`
	Birth  time.Time `json:"birth"`
	Lunar  LunarDate `json:"lunar"`
}

// NewChart derives the full chart from oracle output. The day pillar is
// interpreted first: its stem is the day master, the reference point for
// every relational attribute on the other pillars.
func NewChart(raw RawChart, gender Gender, birth time.Time) Chart {
	day := raw.Day.Stem
	return Chart{
		Year:   NewPillar(day, raw.Year.Stem, raw.Year.Branch, false),
		Month:  NewPillar(day, raw.Month.Stem, raw.Month.Branch, false),
		Day:    NewPillar(day, raw.Day.Stem, raw.Day.Branch, true),
		Hour:   NewPillar(day, raw.Hour.Stem, raw.Hour.Branch, false),
		Gender: gender,
		Birth:  birth,
		Lunar:  raw.Lunar,
	}
}

// DayMaster returns the day pillar's stem.
func (c Chart) DayMaster() Stem { return c.Day.Stem }

// DayElement returns the day master's element.
func (c Chart) DayElement() Element { return StemElement(c.Day.Stem) }

// DayPolarity returns the day master's polarity.
func (c Chart) DayPolarity() Polarity { return StemPolarity(c.Day.Stem) }

// Pillars returns the four pillars in year/month/day/hour order.
func (c Chart) Pillars() []Pillar {
	return []Pillar{c.Year, c.Month, c.Day, c.Hour}
}

// Stems returns the four visible stems in year/month/day/hour order.
func (c Chart) Stems() []Stem {
	return []Stem{c.Year.Stem, c.Month.Stem, c.Day.Stem, c.Hour.Stem}
}

// Branches returns the four branches in year/month/day/hour order.
func (c Chart) Branches() []Branch {
	return []Branch{c.Year.Branch, c.Month.Branch, c.Day.Branch, c.Hour.Branch}
}

// OtherStems returns the visible stems excluding the day pillar's.
func (c Chart) OtherStems() []Stem {
	return []Stem{c.Year.Stem, c.Month.Stem, c.Hour.Stem}
}
