package ai

import (
	"fmt"
	"strings"
	"time"

	"gosaju/domain/interpret"
	"gosaju/domain/yongsin"
	"gosaju/models"
)

// ConsultSystemPrompt frames the full reading: the model must cite the
// confirmed facts verbatim and may never contradict them.
const ConsultSystemPrompt = `당신은 전통 사주명리학에 기반한 운세 상담사입니다.

## 핵심 원칙
1. 아래 제공되는 "확정 사실"은 반드시 사실로 인용해야 합니다
2. 확정 사실과 모순되는 내용은 절대 생성하지 마세요
3. 긍정적이면서도 현실적인 조언을 제공하세요
4. 전문 용어는 쉽게 풀어서 설명하세요

## 응답 스타일
- 따뜻하고 공감적인 어조
- 구체적이고 실용적인 조언
- 운명론적이지 않고 가능성 중심`

// ServiceSystemPrompt is the short frame for the per-service fortune
// prompts, where brevity matters more than the full fact contract.
const ServiceSystemPrompt = `당신은 정통 사주명리 전문가입니다.
핵심만 간결하게, 실용적으로 답변하세요.
한국어로 작성하며 이모지는 최소화하세요.`

var categoryKorean = map[interpret.Category]string{
	interpret.Personality: "성격/기질",
	interpret.Career:      "직업/재능",
	interpret.Wealth:      "재물운",
	interpret.Love:        "애정운",
	interpret.Health:      "건강운",
}

// UserContext carries optional caller-supplied framing for a reading.
type UserContext struct {
	Name     string `json:"name,omitempty"`
	Concern  string `json:"concern,omitempty"`
	Question string `json:"question,omitempty"`
}

// ConsultPrompt renders the confirmed-facts user prompt for a full
// reading. Sections are emitted in a fixed order so identical analyses
// always produce byte-identical prompts.
func ConsultPrompt(a *models.Analysis, facts ConfirmedFacts, userCtx *UserContext) string {
	var b strings.Builder

	b.WriteString("## 확정 사실 (반드시 인용)\n\n")
	b.WriteString("### 기본 정보\n")
	fmt.Fprintf(&b, "- 일간: %s (%s%s)\n", facts.DayMaster, facts.DayMasterElement, facts.DayMasterYinyang)
	fmt.Fprintf(&b, "- 격국: %s (%s)\n", facts.Gyeokguk, facts.GyeokgukType)
	fmt.Fprintf(&b, "- 신강/신약: %s (점수: %d/100)\n", strongLabel(facts.IsStrong), facts.StrengthScore)

	b.WriteString("\n### 용신 분석\n")
	fmt.Fprintf(&b, "- 용신: %s (%s법)\n", facts.YongsinElement, facts.YongsinMethod)
	fmt.Fprintf(&b, "- 희신: %s\n", facts.HeeSinElement)
	fmt.Fprintf(&b, "- 기신: %s\n", facts.GiSinElement)
	fmt.Fprintf(&b, "- 용신 해석: %s\n", a.Yongsin.Synthesis)

	b.WriteString("\n### 격국 특성\n")
	for _, t := range a.Gyeokguk.Traits {
		fmt.Fprintf(&b, "- %s\n", t)
	}

	b.WriteString("\n### 추천 직업군\n")
	for _, c := range a.Gyeokguk.Careers {
		fmt.Fprintf(&b, "- %s\n", c)
	}

	el := a.Yongsin.Primary.Governing
	b.WriteString("\n### 용신 활용법\n")
	fmt.Fprintf(&b, "- 용신 색상: %s\n", yongsin.Color(el))
	fmt.Fprintf(&b, "- 용신 방위: %s\n", yongsin.Direction(el))
	fmt.Fprintf(&b, "- 용신 숫자: %s\n", yongsin.Numbers(el))

	b.WriteString("\n### 특이사항\n")
	for _, f := range facts.SpecialFeatures {
		fmt.Fprintf(&b, "- %s\n", f)
	}

	b.WriteString("\n## 기본 해석 (참고용)\n")
	for _, cat := range interpret.Categories {
		sel, ok := a.Interpretations[cat]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "### %s\n%s\n\n", categoryKorean[cat], sel.Template.Text)
	}

	if userCtx != nil {
		b.WriteString("## 사용자 정보")
		if userCtx.Name != "" {
			b.WriteString("\n- 이름: " + userCtx.Name)
		}
		if userCtx.Concern != "" {
			b.WriteString("\n- 주요 관심사: " + userCtx.Concern)
		}
		if userCtx.Question != "" {
			b.WriteString("\n- 질문: " + userCtx.Question)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n위 확정 사실을 바탕으로 따뜻하고 실용적인 사주 해석을 제공해주세요.")
	return b.String()
}

func strongLabel(strong bool) string {
	if strong {
		return "신강"
	}
	return "신약"
}

func genderLabel(g string) string {
	if g == "male" {
		return "남성"
	}
	return "여성"
}

func elementLine(a *models.Analysis) string {
	p := a.Distribution.Percents
	return fmt.Sprintf("오행: 목%d%% 화%d%% 토%d%% 금%d%% 수%d%%",
		p["목"], p["화"], p["토"], p["금"], p["수"])
}

// BasicPrompt is the free-tier summary: four pillars, distribution and
// a 200-300 character reading.
func BasicPrompt(a *models.Analysis) string {
	c := a.Chart
	return fmt.Sprintf(`사주 원국:
년주: %s
월주: %s
일주: %s
시주: %s

%s
신강신약: %s
성별: %s

위 사주의 핵심 특성과 종합운을 200-300자로 요약하세요.
형식: 성격, 재물운, 애정운 각 1-2문장.`,
		c.Year.Label(), c.Month.Label(), c.Day.Label(), c.Hour.Label(),
		elementLine(a), strongLabel(a.Strength.IsStrong), genderLabel(string(c.Gender)))
}

// DetailedPrompt renders the premium reading request with sinsal,
// interactions and the cycle projections. currentYear bounds the
// annual window so output is reproducible.
func DetailedPrompt(a *models.Analysis, currentYear int) string {
	c := a.Chart

	sinsal := "없음"
	if len(a.Markers) > 0 {
		parts := make([]string, 0, len(a.Markers))
		for _, m := range a.Markers {
			parts = append(parts, m.Name+": "+m.Description)
		}
		sinsal = strings.Join(parts, ", ")
	}

	interactions := "없음"
	if len(a.Interactions) > 0 {
		parts := make([]string, 0, len(a.Interactions))
		for _, it := range a.Interactions {
			parts = append(parts, string(it.Kind)+": "+it.Description)
		}
		interactions = strings.Join(parts, ", ")
	}

	decades := make([]string, 0, 8)
	for i, d := range a.Decades {
		if i == 8 {
			break
		}
		decades = append(decades, fmt.Sprintf("%d세: %s%s", d.StartAge, d.Stem, d.Branch))
	}

	var annuals []string
	for _, s := range a.Annuals {
		if s.Year >= currentYear && s.Year <= currentYear+2 {
			annuals = append(annuals, fmt.Sprintf("%d년: %s%s", s.Year, s.Stem, s.Branch))
		}
	}

	return fmt.Sprintf(`사주 원국:
년: %s 월: %s 일: %s 시: %s
%s
%s, 용신: %s(%s)
성별: %s

신살: %s
합충형파해: %s

대운 흐름: %s
최근 세운: %s

위 정보를 바탕으로 아래 항목을 각 200-300자씩 분석하세요 (총 1500-2000자):

1. 종합운 - 타고난 성격과 삶의 방향
2. 재물운 - 재복과 경제적 능력
3. 애정운 - 연애와 결혼운
4. 건강운 - 주의할 신체 부위
5. 직업운 - 적성과 커리어 조언
6. 현재 운세 - 대운/세운 기반 현황
7. 조언 - 실천 가능한 구체적 조언

각 항목을 명확히 구분하여 작성하세요.`,
		c.Year.Label(), c.Month.Label(), c.Day.Label(), c.Hour.Label(),
		elementLine(a),
		strongLabel(a.Strength.IsStrong), a.Yongsin.Primary.Governing, a.Yongsin.Primary.Method,
		genderLabel(string(c.Gender)),
		sinsal, interactions,
		strings.Join(decades, ", "), strings.Join(annuals, ", "))
}

var koreanWeekdays = [...]string{"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"}

func koreanDate(t time.Time) string {
	return fmt.Sprintf("%d년 %d월 %d일 %s", t.Year(), int(t.Month()), t.Day(), koreanWeekdays[t.Weekday()])
}

// DailyPrompt asks for today's fortune against the day pillar.
func DailyPrompt(a *models.Analysis, today time.Time) string {
	return fmt.Sprintf(`사주 일주: %s
%s
용신: %s

오늘 날짜: %s

위 사주와 오늘 일진의 상호작용을 분석하여 500-700자로 작성하세요.

포함 내용:
1. 오늘의 전체 운세 (종합운)
2. 오늘 특히 좋은 점
3. 오늘 주의할 점
4. 오늘의 행운 색상/방향/시간

실용적이고 구체적으로 작성하세요.`,
		a.Chart.Day.Label(), elementLine(a), a.Yongsin.Primary.Governing, koreanDate(today))
}

// TarotCard is a drawn card with orientation, as supplied by the
// client. The engine never draws cards itself.
type TarotCard struct {
	NameKr     string   `json:"nameKr"`
	Name       string   `json:"name"`
	IsReversed bool     `json:"isReversed"`
	Keywords   []string `json:"keywords"`
}

func (t TarotCard) direction() string {
	if t.IsReversed {
		return "역방향"
	}
	return "정방향"
}

// TarotPrompt interprets a single card, optionally against a question.
func TarotPrompt(card TarotCard, question string) string {
	q := ""
	if question != "" {
		q = "질문: " + question + "\n"
	}
	return fmt.Sprintf(`타로 카드: %s (%s)
방향: %s
키워드: %s

%s
위 카드의 의미를 300-400자로 해석하세요.
포함 내용:
1. 카드의 핵심 메시지
2. 현재 상황 해석
3. 앞으로의 조언

따뜻하고 실용적으로 작성하세요.`,
		card.NameKr, card.Name, card.direction(), strings.Join(card.Keywords, ", "), q)
}

// HybridPrompt blends the chart with a drawn card.
func HybridPrompt(a *models.Analysis, card TarotCard, question string) string {
	q := ""
	if question != "" {
		q = "질문: " + question + "\n"
	}
	return fmt.Sprintf(`사주 일주: %s
%s
%s, 용신: %s

타로: %s (%s)
키워드: %s

%s
사주와 타로를 결합하여 800-1000자로 분석하세요.

포함 내용:
1. 사주와 타로의 조화 분석
2. 통합 운세 메시지
3. 구체적 행동 조언
4. 오행 보완 방법

실용적이고 구체적으로 작성하세요.`,
		a.Chart.Day.Label(), elementLine(a),
		strongLabel(a.Strength.IsStrong), a.Yongsin.Primary.Governing,
		card.NameKr, card.direction(), strings.Join(card.Keywords, ", "), q)
}

// LovePrompt is the romance-focused service reading.
func LovePrompt(a *models.Analysis) string {
	return fmt.Sprintf(`사주 일주: %s
성별: %s
%s
용신: %s

위 사주의 애정운/연애운을 700-900자로 분석하세요.

포함 내용:
1. 타고난 연애 성향과 스타일
2. 이상형과 궁합이 좋은 타입
3. 연애/결혼 시기 및 흐름
4. 연애 성공을 위한 조언

구체적이고 실용적으로 작성하세요.`,
		a.Chart.Day.Label(), genderLabel(string(a.Chart.Gender)),
		elementLine(a), a.Yongsin.Primary.Governing)
}

// WealthPrompt is the money-focused service reading.
func WealthPrompt(a *models.Analysis) string {
	return fmt.Sprintf(`사주 일주: %s
%s
%s, 용신: %s

위 사주의 재물운/금전운을 700-900자로 분석하세요.

포함 내용:
1. 타고난 재복과 재물 획득 능력
2. 돈을 버는 방식 (근로소득 vs 투자 등)
3. 재물운이 좋은 시기
4. 재테크 및 투자 조언

구체적이고 실용적으로 작성하세요.`,
		a.Chart.Day.Label(), elementLine(a),
		strongLabel(a.Strength.IsStrong), a.Yongsin.Primary.Governing)
}
