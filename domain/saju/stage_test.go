package saju

import "testing"

// TestTwelveStageOfYangStems spot-checks the classical anchor points:
// each yang stem's 장생 branch, plus the establishment (건록) and peak
// (제왕) positions derived from it.
func TestTwelveStageOfYangStems(t *testing.T) {
	tests := []struct {
		day      Stem
		branch   Branch
		expected TwelveStage
	}{
		{Gap, Hae, "장생"},
		{Gap, Ja, "목욕"},
		{Gap, In, "건록"},
		{Gap, Myo, "제왕"},
		{Gap, O, "사"},
		{Byeong, In, "장생"},
		{Byeong, Sa, "건록"},
		{Gyeong, Sa, "장생"},
		{Gyeong, SinB, "건록"},
		{Im, SinB, "장생"},
		{Im, Hae, "건록"},
	}

	for _, test := range tests {
		if got := TwelveStageOf(test.day, test.branch); got != test.expected {
			t.Errorf("TwelveStageOf(%s, %s) = %s, expected %s", test.day, test.branch, got, test.expected)
		}
	}
}

// TestTwelveStageOfYinStems checks that yin stems traverse the wheel
// backward from the same elemental anchor.
func TestTwelveStageOfYinStems(t *testing.T) {
	tests := []struct {
		day      Stem
		branch   Branch
		expected TwelveStage
	}{
		{Eul, Hae, "장생"}, // same anchor as 갑, reversed direction
		{Eul, Sul, "목욕"},
		{Eul, SinB, "건록"},
		{Gye, SinB, "장생"},
		{Jeong, In, "장생"},
	}

	for _, test := range tests {
		if got := TwelveStageOf(test.day, test.branch); got != test.expected {
			t.Errorf("TwelveStageOf(%s, %s) = %s, expected %s", test.day, test.branch, got, test.expected)
		}
	}
}

// TestTwelveStageCoversAllBranches verifies every (stem, branch) pair
// maps onto one of the twelve stage labels and that a full branch sweep
// visits all twelve exactly once.
func TestTwelveStageCoversAllBranches(t *testing.T) {
	for _, day := range Stems {
		seen := make(map[TwelveStage]int, 12)
		for _, b := range Branches {
			seen[TwelveStageOf(day, b)]++
		}
		if len(seen) != 12 {
			t.Errorf("day %s: branch sweep hit %d distinct stages, expected 12", day, len(seen))
		}
		for stage, n := range seen {
			if n != 1 {
				t.Errorf("day %s: stage %s hit %d times, expected once", day, stage, n)
			}
		}
	}
}
