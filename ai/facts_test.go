package ai

import (
	"testing"
	"time"

	"gosaju/domain/gyeokguk"
	"gosaju/domain/relation"
	"gosaju/domain/saju"
	"gosaju/domain/strength"
	"gosaju/domain/yongsin"
	"gosaju/models"
)

// testAnalysis assembles a settled analysis around the strong-wood
// chart 갑인년 병인월 갑자일 정묘시 without running the engine.
func testAnalysis() *models.Analysis {
	raw := saju.RawChart{
		Year:  saju.RawPair{Stem: saju.Gap, Branch: saju.In},
		Month: saju.RawPair{Stem: saju.Byeong, Branch: saju.In},
		Day:   saju.RawPair{Stem: saju.Gap, Branch: saju.Ja},
		Hour:  saju.RawPair{Stem: saju.Jeong, Branch: saju.Myo},
	}
	chart := saju.NewChart(raw, saju.Male, time.Date(1974, 2, 15, 6, 0, 0, 0, time.UTC))

	a := &models.Analysis{
		Chart:        chart,
		Strength:     strength.Analyze(chart),
		Distribution: strength.CountElements(chart),
		Gyeokguk:     gyeokguk.Classify(chart),
	}
	a.GyeokgukStatus = gyeokguk.AnalyzeStatus(chart, a.Gyeokguk)
	a.Yongsin = yongsin.Analyze(chart, a.Strength, a.Distribution)
	a.Interactions = relation.Detect(chart)
	a.Markers = relation.DetectMarkers(chart)
	return a
}

func TestBuildFactsProjection(t *testing.T) {
	facts := BuildFacts(testAnalysis())

	if facts.DayMaster != "갑" || facts.DayMasterElement != "목" || facts.DayMasterYinyang != "양" {
		t.Errorf("day master facts = %s/%s/%s", facts.DayMaster, facts.DayMasterElement, facts.DayMasterYinyang)
	}
	if facts.Gyeokguk != "건록격" {
		t.Errorf("gyeokguk = %s, expected 건록격", facts.Gyeokguk)
	}
	if !facts.IsStrong || facts.StrengthScore != 105 {
		t.Errorf("strength = %v/%d, expected strong 105", facts.IsStrong, facts.StrengthScore)
	}
	if facts.YongsinElement != "금" || facts.YongsinMethod != "억부" {
		t.Errorf("yongsin = %s by %s, expected 금 by 억부", facts.YongsinElement, facts.YongsinMethod)
	}
}

func TestBuildFactsVisibleDistribution(t *testing.T) {
	facts := BuildFacts(testAnalysis())

	// One point per visible stem and branch only; hidden stems excluded.
	expected := map[string]int{"목": 5, "화": 2, "토": 0, "금": 0, "수": 1}
	for e, want := range expected {
		if got := facts.ElementDistribution[e]; got != want {
			t.Errorf("distribution[%s] = %d, expected %d", e, got, want)
		}
	}
	if facts.StrongElement != "목" {
		t.Errorf("strong element = %s, expected 목", facts.StrongElement)
	}
	// Ties on zero resolve to the later canonical element.
	if facts.WeakElement != "금" {
		t.Errorf("weak element = %s, expected 금", facts.WeakElement)
	}
}

func TestSpecialFeatures(t *testing.T) {
	a := testAnalysis()
	a.Markers = append(a.Markers, relation.Marker{Name: "천을귀인", Type: relation.Good, Description: ""})
	a.Interactions = append(a.Interactions, relation.Interaction{
		Kind:        relation.Clash,
		Positions:   []string{"월지", "시지"},
		Description: "자오충 - 변동과 갈등의 기운",
	})

	features := collectSpecialFeatures(a)

	assertContains := func(want string) {
		t.Helper()
		for _, f := range features {
			if f == want {
				return
			}
		}
		t.Errorf("features %v missing %q", features, want)
	}

	assertContains("건록격 (내격)")
	assertContains("길신: 천을귀인")
	assertContains("충: 자오충") // clash description truncated at the dash
	assertContains("매우 신강")  // score 105
}

func TestRulesApplied(t *testing.T) {
	a := testAnalysis()
	rules := RulesApplied(a)

	if len(rules) < 2 {
		t.Fatalf("rules = %v, expected 격국 and 용신법 entries", rules)
	}
	if rules[0] != "격국: geonrok" {
		t.Errorf("rules[0] = %s, expected 격국: geonrok", rules[0])
	}
	if rules[1] != "용신법: 억부" {
		t.Errorf("rules[1] = %s, expected 용신법: 억부", rules[1])
	}
	// The spring chart carries a seasonal secondary.
	if len(rules) != 3 || rules[2] != "보조용신법: 조후" {
		t.Errorf("rules = %v, expected a 보조용신법 entry", rules)
	}
}
