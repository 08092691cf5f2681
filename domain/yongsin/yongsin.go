// Package yongsin resolves the chart's governing element (용신) by up to
// three classical methods and merges their results. The balance method
// (억부) always runs; the seasonal method (조후) runs when the month
// branch falls in a season; mediation (통관) runs when the two strongest
// elements stand in a control relation.
package yongsin

import (
	"fmt"
	"strings"

	"gosaju/domain/saju"
	"gosaju/domain/strength"
)

// Method names one of the classical resolution methods.
type Method string

const (
	Balance   Method = "억부"
	Seasonal  Method = "조후"
	Mediation Method = "통관"
)

// Result is one method's verdict: the governing element and its
// favorable (희신), unfavorable (기신) and hostile (구신) companions.
type Result struct {
	Governing   saju.Element `json:"yongsin"`
	Favorable   saju.Element `json:"heeSin"`
	Unfavorable saju.Element `json:"giSin"`
	Hostile     saju.Element `json:"guSin"`
	Method      Method       `json:"method"`
	Reason      string       `json:"reason"`
}

// Analysis is the merged outcome: exactly one primary result, an
// optional secondary, and synthesis text. Never empty.
type Analysis struct {
	Primary   Result  `json:"primary"`
	Secondary *Result `json:"secondary,omitempty"`
	Synthesis string  `json:"analysis"`
}

// Thresholds for the extreme bands of the balance method.
const (
	veryStrongScore = 70
	veryWeakScore   = 35
)

// byBalance applies the 억부 method. Strong charts are drained or
// controlled; weak charts are fed or reinforced, with the extreme bands
// escalating to the controller / generative parent.
func byBalance(day saju.Element, st strength.Result) Result {
	if st.IsStrong {
		drain := saju.Generates(day)
		if st.Score >= veryStrongScore {
			gov := saju.ControlledBy(day)
			return Result{
				Governing:   gov,
				Favorable:   drain,
				Unfavorable: saju.GeneratedBy(day),
				Hostile:     day,
				Method:      Balance,
				Reason:      fmt.Sprintf("신강 사주(%d점)로 %s(관성)이 일간을 적절히 제어합니다.", st.Score, gov),
			}
		}
		return Result{
			Governing:   drain,
			Favorable:   saju.Generates(drain),
			Unfavorable: saju.GeneratedBy(day),
			Hostile:     day,
			Method:      Balance,
			Reason:      fmt.Sprintf("신강 사주(%d점)로 %s(식상)이 기운을 발산시킵니다.", st.Score, drain),
		}
	}

	parent := saju.GeneratedBy(day)
	if st.Score <= veryWeakScore {
		return Result{
			Governing:   parent,
			Favorable:   day,
			Unfavorable: saju.ControlledBy(day),
			Hostile:     saju.Generates(day),
			Method:      Balance,
			Reason:      fmt.Sprintf("신약 사주(%d점)로 %s(인성)이 일간을 생하여 보호합니다.", st.Score, parent),
		}
	}
	return Result{
		Governing:   day,
		Favorable:   parent,
		Unfavorable: saju.ControlledBy(day),
		Hostile:     saju.Controls(day),
		Method:      Balance,
		Reason:      fmt.Sprintf("신약 사주(%d점)로 %s(비겁)이 일간을 돕습니다.", st.Score, day),
	}
}

// season groups the month branches into the four seasonal triples.
type season struct {
	name     string
	branches []saju.Branch
	// needs maps the day element to its (primary, secondary) seasonal
	// adjustment elements.
	needs map[saju.Element][2]saju.Element
	// dominant is the season's excess element, the 기신 of the method.
	dominant    saju.Element
	description string
}

var seasons = []season{
	{
		name:     "봄",
		branches: []saju.Branch{saju.In, saju.Myo, saju.Jin},
		needs: map[saju.Element][2]saju.Element{
			saju.Wood:  {saju.Fire, saju.Water},
			saju.Fire:  {saju.Wood, saju.Water},
			saju.Earth: {saju.Fire, saju.Wood},
			saju.Metal: {saju.Earth, saju.Fire},
			saju.Water: {saju.Metal, saju.Earth},
		},
		dominant:    saju.Wood,
		description: "봄(인묘진월)은 목기가 왕성하여",
	},
	{
		name:     "여름",
		branches: []saju.Branch{saju.Sa, saju.O, saju.Mi},
		needs: map[saju.Element][2]saju.Element{
			saju.Wood:  {saju.Water, saju.Metal},
			saju.Fire:  {saju.Water, saju.Earth},
			saju.Earth: {saju.Water, saju.Metal},
			saju.Metal: {saju.Water, saju.Earth},
			saju.Water: {saju.Metal, saju.Earth},
		},
		dominant:    saju.Fire,
		description: "여름(사오미월)은 화기가 왕성하여",
	},
	{
		name:     "가을",
		branches: []saju.Branch{saju.SinB, saju.Yu, saju.Sul},
		needs: map[saju.Element][2]saju.Element{
			saju.Wood:  {saju.Water, saju.Fire},
			saju.Fire:  {saju.Wood, saju.Earth},
			saju.Earth: {saju.Fire, saju.Metal},
			saju.Metal: {saju.Fire, saju.Water},
			saju.Water: {saju.Metal, saju.Wood},
		},
		dominant:    saju.Metal,
		description: "가을(신유술월)은 금기가 왕성하여",
	},
	{
		name:     "겨울",
		branches: []saju.Branch{saju.Hae, saju.Ja, saju.Chuk},
		needs: map[saju.Element][2]saju.Element{
			saju.Wood:  {saju.Fire, saju.Earth},
			saju.Fire:  {saju.Wood, saju.Earth},
			saju.Earth: {saju.Fire, saju.Wood},
			saju.Metal: {saju.Fire, saju.Earth},
			saju.Water: {saju.Fire, saju.Earth},
		},
		dominant:    saju.Water,
		description: "겨울(해자축월)은 수기가 왕성하여",
	},
}

func seasonOf(month saju.Branch) *season {
	for i := range seasons {
		for _, b := range seasons[i].branches {
			if b == month {
				return &seasons[i]
			}
		}
	}
	return nil
}

// bySeason applies the 조후 method; nil when the month branch belongs to
// no season triple (cannot happen for valid branches, kept total).
func bySeason(day saju.Element, month saju.Branch) *Result {
	s := seasonOf(month)
	if s == nil {
		return nil
	}
	need := s.needs[day]
	return &Result{
		Governing:   need[0],
		Favorable:   need[1],
		Unfavorable: s.dominant,
		Hostile:     saju.Controls(need[0]),
		Method:      Seasonal,
		Reason:      fmt.Sprintf("%s %s(으)로 조절이 필요합니다.", s.description, need[0]),
	}
}

// byMediation applies the 통관 method: when the chart's two most
// frequent elements control each other, the element generated by the
// controlling side mediates between them.
func byMediation(dist strength.Distribution) *Result {
	first, second := topTwo(dist)

	var mediator saju.Element
	switch {
	case saju.Controls(first) == second:
		mediator = saju.Generates(first)
	case saju.Controls(second) == first:
		mediator = saju.Generates(second)
	default:
		return nil
	}

	return &Result{
		Governing:   mediator,
		Favorable:   saju.Generates(mediator),
		Unfavorable: saju.Controls(mediator),
		Hostile:     first,
		Method:      Mediation,
		Reason:      fmt.Sprintf("%s과 %s이 대립하여 %s(으)로 통관(중재)합니다.", first, second, mediator),
	}
}

// topTwo returns the two heaviest elements, ties broken by canonical
// element order.
func topTwo(dist strength.Distribution) (saju.Element, saju.Element) {
	ordered := make([]saju.Element, len(saju.Elements))
	copy(ordered, saju.Elements)
	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			if dist.Counts[ordered[j]] > dist.Counts[ordered[i]] {
				ordered[i], ordered[j] = ordered[j], ordered[i]
			}
		}
	}
	return ordered[0], ordered[1]
}

// extremeSeason reports the two fixed override cases: Metal day master
// in Summer, Fire day master in Winter. In those charts the seasonal
// result outranks the balance result.
func extremeSeason(day saju.Element, month saju.Branch) bool {
	s := seasonOf(month)
	if s == nil {
		return false
	}
	return (s.name == "여름" && day == saju.Metal) || (s.name == "겨울" && day == saju.Fire)
}

// Analyze merges the methods per the fixed policy: balance is primary
// unless an extreme-season case promotes the seasonal result; mediation
// only ever contributes synthesis text.
func Analyze(c saju.Chart, st strength.Result, dist strength.Distribution) Analysis {
	day := c.DayElement()
	month := c.Month.Branch

	balance := byBalance(day, st)
	seasonal := bySeason(day, month)
	mediation := byMediation(dist)

	if extremeSeason(day, month) && seasonal != nil {
		strong := "신약"
		if st.IsStrong {
			strong = "신강"
		}
		synthesis := fmt.Sprintf(
			"%s 조후용신이 억부용신보다 우선합니다. 일간 %s(%s)은 %s하며, %s(조후)과 %s(억부)를 함께 고려해야 합니다.",
			seasonal.Reason, c.DayMaster(), day, strong, seasonal.Governing, balance.Governing)
		return Analysis{Primary: *seasonal, Secondary: &balance, Synthesis: synthesis}
	}

	var sb strings.Builder
	sb.WriteString(balance.Reason + " ")
	if seasonal != nil {
		sb.WriteString("또한 " + seasonal.Reason + " ")
	}
	if mediation != nil {
		sb.WriteString("사주에 " + mediation.Reason + " ")
	}
	sb.WriteString(fmt.Sprintf("따라서 %s을(를) 용신으로, %s을(를) 희신으로 삼습니다.",
		balance.Governing, balance.Favorable))

	return Analysis{Primary: balance, Secondary: seasonal, Synthesis: sb.String()}
}

// Color returns the traditional color family for an element.
func Color(e saju.Element) string {
	switch e {
	case saju.Wood:
		return "청색/녹색"
	case saju.Fire:
		return "적색/주황색"
	case saju.Earth:
		return "황색/갈색"
	case saju.Metal:
		return "백색/은색"
	case saju.Water:
		return "흑색/남색"
	}
	panic(fmt.Sprintf("yongsin: unknown element %q", e))
}

// Direction returns the compass direction for an element.
func Direction(e saju.Element) string {
	switch e {
	case saju.Wood:
		return "동쪽"
	case saju.Fire:
		return "남쪽"
	case saju.Earth:
		return "중앙"
	case saju.Metal:
		return "서쪽"
	case saju.Water:
		return "북쪽"
	}
	panic(fmt.Sprintf("yongsin: unknown element %q", e))
}

// Numbers returns the lucky numbers for an element.
func Numbers(e saju.Element) string {
	switch e {
	case saju.Wood:
		return "3, 8"
	case saju.Fire:
		return "2, 7"
	case saju.Earth:
		return "5, 10"
	case saju.Metal:
		return "4, 9"
	case saju.Water:
		return "1, 6"
	}
	panic(fmt.Sprintf("yongsin: unknown element %q", e))
}
