package strength

import (
	"strings"
	"testing"
	"time"

	"gosaju/domain/saju"
)

func chartOf(year, month, day, hour saju.RawPair) saju.Chart {
	raw := saju.RawChart{Year: year, Month: month, Day: day, Hour: hour}
	return saju.NewChart(raw, saju.Male, time.Date(1990, 5, 15, 10, 0, 0, 0, time.UTC))
}

func pair(s saju.Stem, b saju.Branch) saju.RawPair {
	return saju.RawPair{Stem: s, Branch: b}
}

// strongWoodChart: 갑인년 병인월 갑자일 정묘시. The 갑 day master is
// rooted in a wood month, fed by the water day branch and surrounded by
// wood everywhere else.
func strongWoodChart() saju.Chart {
	return chartOf(pair(saju.Gap, saju.In), pair(saju.Byeong, saju.In),
		pair(saju.Gap, saju.Ja), pair(saju.Jeong, saju.Myo))
}

// weakWoodChart: 경신년 갑신월 갑오일 경오시. The 갑 day master faces a
// metal month and metal on three more positions.
func weakWoodChart() saju.Chart {
	return chartOf(pair(saju.Gyeong, saju.SinB), pair(saju.Gap, saju.SinB),
		pair(saju.Gap, saju.O), pair(saju.Gyeong, saju.O))
}

func TestAnalyzeStrongChart(t *testing.T) {
	r := Analyze(strongWoodChart())

	// 50 + 25 (month branch 인) + 15 (day branch 자 generates wood)
	// + 5 + 5 + 5 (year 갑, year 인, hour 묘).
	if r.Score != 105 {
		t.Errorf("score = %d, expected 105", r.Score)
	}
	if !r.IsStrong {
		t.Error("score 105 must classify as 신강")
	}
	if r.Analysis != "매우 강한 신강 사주입니다. 기운이 넘쳐 설기나 극이 필요합니다." {
		t.Errorf("unexpected narrative: %s", r.Analysis)
	}
}

func TestAnalyzeWeakChart(t *testing.T) {
	r := Analyze(weakWoodChart())

	// 50 - 20 (month branch 신 controls wood) - 5 - 5 + 5 - 5
	// (year 경, year 신, month 갑, hour 경).
	if r.Score != 20 {
		t.Errorf("score = %d, expected 20", r.Score)
	}
	if r.IsStrong {
		t.Error("score 20 must classify as 신약")
	}
	if r.Analysis != "매우 약한 신약 사주입니다. 인성과 비겁의 도움이 절실합니다." {
		t.Errorf("unexpected narrative: %s", r.Analysis)
	}
}

func TestAnalyzeNarrativeBands(t *testing.T) {
	tests := []struct {
		score    int
		fragment string
	}{
		{80, "매우 강한"},
		{60, "적절한 발산"},
		{50, "중화된"},
		{35, "도움과 보호"},
		{10, "매우 약한"},
	}

	for _, test := range tests {
		got := narrative(test.score)
		if !strings.Contains(got, test.fragment) {
			t.Errorf("narrative(%d) = %q, expected to contain %q", test.score, got, test.fragment)
		}
	}
}

func TestCountElementsWeights(t *testing.T) {
	dist := CountElements(strongWoodChart())

	// Visible: 목 from 갑,인,인,갑,묘 stems/branches; hidden stems add
	// fractions (인 twice: 갑 0.5 + 병 0.25 + 무 0.25 each; 자: 계 0.5;
	// 묘: 을 0.5).
	expected := map[saju.Element]float64{
		saju.Wood:  6.5,
		saju.Fire:  2.5,
		saju.Earth: 0.5,
		saju.Metal: 0,
		saju.Water: 1.5,
	}
	for e, want := range expected {
		if got := dist.Counts[e]; got != want {
			t.Errorf("count[%s] = %v, expected %v", e, got, want)
		}
	}

	if dist.Strongest != saju.Wood {
		t.Errorf("strongest = %s, expected 목", dist.Strongest)
	}
	if dist.Weakest != saju.Metal {
		t.Errorf("weakest = %s, expected 금", dist.Weakest)
	}
}

func TestCountElementsPercents(t *testing.T) {
	dist := CountElements(strongWoodChart())

	// Total weight 11: 목 6.5/11 -> 59%, 화 2.5/11 -> 23%, 토 0.5/11 -> 5%,
	// 금 0%, 수 1.5/11 -> 14%.
	expected := map[saju.Element]int{
		saju.Wood:  59,
		saju.Fire:  23,
		saju.Earth: 5,
		saju.Metal: 0,
		saju.Water: 14,
	}
	for e, want := range expected {
		if got := dist.Percents[e]; got != want {
			t.Errorf("percent[%s] = %d, expected %d", e, got, want)
		}
	}
}
