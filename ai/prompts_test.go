package ai

import (
	"strings"
	"testing"
	"time"

	"gosaju/domain/cycle"
	"gosaju/domain/interpret"
	"gosaju/domain/saju"
)

func TestBasicPrompt(t *testing.T) {
	a := testAnalysis()
	prompt := BasicPrompt(a)

	for _, want := range []string{
		"년주: 갑인",
		"월주: 병인",
		"일주: 갑자",
		"시주: 정묘",
		"오행: 목59% 화23% 토5% 금0% 수14%",
		"신강신약: 신강",
		"성별: 남성",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("basic prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestConsultPromptSections(t *testing.T) {
	a := testAnalysis()
	a.Interpretations = interpret.SelectAll(interpret.Facts{
		GyeokgukID:     a.Gyeokguk.ID,
		IsStrong:       a.Strength.IsStrong,
		YongsinElement: a.Yongsin.Primary.Governing,
		DayElement:     a.Chart.DayElement(),
	})
	facts := BuildFacts(a)

	prompt := ConsultPrompt(a, facts, &UserContext{Name: "민지", Concern: "이직"})

	for _, want := range []string{
		"## 확정 사실 (반드시 인용)",
		"- 일간: 갑 (목양)",
		"- 격국: 건록격 (내격)",
		"점수: 105/100",
		"- 용신: 금 (억부법)",
		"### 용신 활용법",
		"- 용신 색상: 백색/은색",
		"- 용신 방위: 서쪽",
		"- 용신 숫자: 4, 9",
		"### 추천 직업군",
		"## 기본 해석 (참고용)",
		"- 이름: 민지",
		"- 주요 관심사: 이직",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("consult prompt missing %q", want)
		}
	}
}

func TestConsultPromptWithoutUserContext(t *testing.T) {
	a := testAnalysis()
	facts := BuildFacts(a)
	prompt := ConsultPrompt(a, facts, nil)

	if strings.Contains(prompt, "## 사용자 정보") {
		t.Error("consult prompt must omit the user section without context")
	}
}

func TestDetailedPromptWindows(t *testing.T) {
	a := testAnalysis()
	a.Decades = decadeFixture()
	a.Annuals = annualFixture()

	prompt := DetailedPrompt(a, 2025)

	if !strings.Contains(prompt, "5세: 정묘") {
		t.Errorf("detailed prompt missing decade entries:\n%s", prompt)
	}
	// Only the first eight decades are listed.
	if strings.Contains(prompt, "85세:") {
		t.Error("detailed prompt must cut decades after eight entries")
	}
	// Annuals are bounded to currentYear..currentYear+2.
	if !strings.Contains(prompt, "2025년:") || !strings.Contains(prompt, "2027년:") {
		t.Errorf("detailed prompt missing the annual window:\n%s", prompt)
	}
	if strings.Contains(prompt, "2024년:") || strings.Contains(prompt, "2028년:") {
		t.Error("detailed prompt must bound the annual window")
	}
	// The fixture chart carries 도화살 on its hour branch.
	if !strings.Contains(prompt, "도화살") {
		t.Errorf("sinsal line missing:\n%s", prompt)
	}
	if !strings.Contains(prompt, "합충형파해: 없음") {
		t.Errorf("interactions line missing:\n%s", prompt)
	}
}

func decadeFixture() []cycle.DecadePillar {
	stems := []saju.Stem{saju.Jeong, saju.Mu, saju.Gi, saju.Gyeong, saju.Sin, saju.Im, saju.Gye, saju.Gap, saju.Eul}
	branches := []saju.Branch{saju.Myo, saju.Jin, saju.Sa, saju.O, saju.Mi, saju.SinB, saju.Yu, saju.Sul, saju.Hae}
	out := make([]cycle.DecadePillar, len(stems))
	for i := range stems {
		out[i] = cycle.DecadePillar{StartAge: 5 + 10*i, EndAge: 14 + 10*i, Stem: stems[i], Branch: branches[i]}
	}
	return out
}

func annualFixture() []cycle.AnnualPillar {
	out := make([]cycle.AnnualPillar, 0, 5)
	for year := 2024; year <= 2028; year++ {
		out = append(out, cycle.AnnualPillar{
			Year:   year,
			Stem:   saju.StemAt(year - 4),
			Branch: saju.BranchAt(year - 4),
		})
	}
	return out
}

func TestDailyPromptDate(t *testing.T) {
	a := testAnalysis()
	// 2025-08-28 is a Thursday.
	prompt := DailyPrompt(a, time.Date(2025, 8, 28, 9, 0, 0, 0, time.UTC))

	if !strings.Contains(prompt, "2025년 8월 28일 목요일") {
		t.Errorf("daily prompt missing the korean date:\n%s", prompt)
	}
	if !strings.Contains(prompt, "사주 일주: 갑자") {
		t.Errorf("daily prompt missing the day pillar:\n%s", prompt)
	}
}

func TestTarotPrompt(t *testing.T) {
	card := TarotCard{
		NameKr:     "은둔자",
		Name:       "The Hermit",
		IsReversed: true,
		Keywords:   []string{"성찰", "고독"},
	}

	prompt := TarotPrompt(card, "지금 방향이 맞나요?")
	for _, want := range []string{
		"은둔자 (The Hermit)",
		"방향: 역방향",
		"키워드: 성찰, 고독",
		"질문: 지금 방향이 맞나요?",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("tarot prompt missing %q", want)
		}
	}

	upright := TarotPrompt(TarotCard{NameKr: "태양", Name: "The Sun"}, "")
	if !strings.Contains(upright, "정방향") {
		t.Error("upright card must render 정방향")
	}
	if strings.Contains(upright, "질문:") {
		t.Error("empty question must omit the question line")
	}
}

func TestServicePromptsShareChartHeader(t *testing.T) {
	a := testAnalysis()

	for name, prompt := range map[string]string{
		"love":   LovePrompt(a),
		"wealth": WealthPrompt(a),
		"hybrid": HybridPrompt(a, TarotCard{NameKr: "힘", Name: "Strength"}, ""),
	} {
		if !strings.Contains(prompt, "사주 일주: 갑자") {
			t.Errorf("%s prompt missing the day pillar header", name)
		}
		if !strings.Contains(prompt, "용신: 금") {
			t.Errorf("%s prompt missing the yongsin line", name)
		}
	}
}
