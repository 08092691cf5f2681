package saju

import (
	"testing"
	"time"
)

func testChart() Chart {
	raw := RawChart{
		Year:  RawPair{Stem: Gap, Branch: In},
		Month: RawPair{Stem: Byeong, Branch: In},
		Day:   RawPair{Stem: Gap, Branch: Ja},
		Hour:  RawPair{Stem: Jeong, Branch: Myo},
		Lunar: LunarDate{Year: 1974, Month: 1, Day: 3},
	}
	return NewChart(raw, Male, time.Date(1974, 2, 15, 6, 0, 0, 0, time.UTC))
}

func TestNewChartDayMaster(t *testing.T) {
	c := testChart()

	if c.DayMaster() != Gap {
		t.Errorf("DayMaster() = %s, expected 갑", c.DayMaster())
	}
	if c.DayElement() != Wood {
		t.Errorf("DayElement() = %s, expected 목", c.DayElement())
	}
	if c.DayPolarity() != Yang {
		t.Errorf("DayPolarity() = %s, expected 양", c.DayPolarity())
	}
}

func TestNewChartPillarDerivation(t *testing.T) {
	c := testChart()

	// The day pillar carries the positional sentinel, never a relation.
	if c.Day.TenGodStem != DayMasterLabel {
		t.Errorf("day pillar TenGodStem = %s, expected 일주", c.Day.TenGodStem)
	}

	if c.Month.TenGodStem != EatingGod {
		t.Errorf("month stem 병 from 갑 day = %s, expected 식신", c.Month.TenGodStem)
	}
	if c.Hour.TenGodStem != HurtingOfficer {
		t.Errorf("hour stem 정 from 갑 day = %s, expected 상관", c.Hour.TenGodStem)
	}

	if c.Month.TwelveStage != "건록" {
		t.Errorf("month branch 인 stage = %s, expected 건록", c.Month.TwelveStage)
	}
	if c.Day.TenGodBranch != DirectResource {
		t.Errorf("day branch 자 ten god = %s, expected 정인", c.Day.TenGodBranch)
	}

	hidden := c.Month.HiddenStems
	if len(hidden) != 3 || hidden[0] != Gap || hidden[1] != Byeong || hidden[2] != Mu {
		t.Errorf("hidden stems of 인 = %v, expected [갑 병 무]", hidden)
	}
}

func TestChartAccessors(t *testing.T) {
	c := testChart()

	stems := c.Stems()
	expectedStems := []Stem{Gap, Byeong, Gap, Jeong}
	for i, s := range expectedStems {
		if stems[i] != s {
			t.Errorf("Stems()[%d] = %s, expected %s", i, stems[i], s)
		}
	}

	branches := c.Branches()
	expectedBranches := []Branch{In, In, Ja, Myo}
	for i, b := range expectedBranches {
		if branches[i] != b {
			t.Errorf("Branches()[%d] = %s, expected %s", i, branches[i], b)
		}
	}

	others := c.OtherStems()
	if len(others) != 3 || others[0] != Gap || others[1] != Byeong || others[2] != Jeong {
		t.Errorf("OtherStems() = %v, expected year/month/hour stems", others)
	}

	if c.Day.Label() != "갑자" {
		t.Errorf("day pillar label = %s, expected 갑자", c.Day.Label())
	}
}
