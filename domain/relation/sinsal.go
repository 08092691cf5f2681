package relation

import "gosaju/domain/saju"

// MarkerType is the polarity of an auspice marker.
type MarkerType string

const (
	Good    MarkerType = "good"
	Bad     MarkerType = "bad"
	Neutral MarkerType = "neutral"
)

// Marker is one triggered 신살.
type Marker struct {
	Name        string     `json:"name"`
	Type        MarkerType `json:"type"`
	Description string     `json:"description"`
}

// nobleHelper (천을귀인) triggers when any chart branch matches one of
// the day stem's two helper branches.
var nobleHelper = map[saju.Stem][2]saju.Branch{
	saju.Gap:    {saju.Chuk, saju.Mi},
	saju.Eul:    {saju.Ja, saju.SinB},
	saju.Byeong: {saju.Hae, saju.Yu},
	saju.Jeong:  {saju.Hae, saju.Yu},
	saju.Mu:     {saju.Chuk, saju.Mi},
	saju.Gi:     {saju.Ja, saju.SinB},
	saju.Gyeong: {saju.Chuk, saju.Mi},
	saju.Sin:    {saju.In, saju.O},
	saju.Im:     {saju.Myo, saju.Sa},
	saju.Gye:    {saju.Myo, saju.Sa},
}

// travelingHorse (역마살), peachBlossom (도화살) and canopy (화개살) are
// keyed by the year branch.
var travelingHorse = map[saju.Branch]saju.Branch{
	saju.In: saju.SinB, saju.SinB: saju.In,
	saju.Sa: saju.Hae, saju.Hae: saju.Sa,
	saju.O: saju.Ja, saju.Ja: saju.O,
	saju.Myo: saju.Yu, saju.Yu: saju.Myo,
	saju.Jin: saju.Sul, saju.Sul: saju.Jin,
	saju.Chuk: saju.Mi, saju.Mi: saju.Chuk,
}

var peachBlossom = map[saju.Branch]saju.Branch{
	saju.In: saju.Myo, saju.O: saju.Myo, saju.Sul: saju.Myo,
	saju.Sa: saju.O, saju.Yu: saju.O, saju.Chuk: saju.O,
	saju.SinB: saju.Yu, saju.Ja: saju.Yu, saju.Jin: saju.Yu,
	saju.Hae: saju.Ja, saju.Myo: saju.Ja, saju.Mi: saju.Ja,
}

var canopy = map[saju.Branch]saju.Branch{
	saju.In: saju.Sul, saju.O: saju.Sul, saju.Sul: saju.Sul,
	saju.Sa: saju.Chuk, saju.Yu: saju.Chuk, saju.Chuk: saju.Chuk,
	saju.SinB: saju.Jin, saju.Ja: saju.Jin, saju.Jin: saju.Jin,
	saju.Hae: saju.Mi, saju.Myo: saju.Mi, saju.Mi: saju.Mi,
}

// triplePunishments trigger only on the full three-branch set.
var triplePunishments = []struct {
	members     [3]saju.Branch
	name        string
	description string
}{
	{[3]saju.Branch{saju.In, saju.Sa, saju.SinB}, "인사신 삼형", "지세지형 - 교통사고, 수술, 갈등 주의"},
	{[3]saju.Branch{saju.Chuk, saju.Sul, saju.Mi}, "축술미 삼형", "무은지형 - 가족 갈등, 건강 주의"},
}

// ghostGates are the six paired 귀문관살 branch pairs.
var ghostGates = [][2]saju.Branch{
	{saju.Ja, saju.Yu},
	{saju.Chuk, saju.O},
	{saju.In, saju.Mi},
	{saju.Myo, saju.SinB},
	{saju.Jin, saju.Sa},
	{saju.Sul, saju.Hae},
}

// DetectMarkers evaluates every marker trigger against the chart. Each
// trigger is independent; zero matches is a valid outcome.
func DetectMarkers(c saju.Chart) []Marker {
	var out []Marker
	branches := c.Branches()

	has := func(b saju.Branch) bool {
		for _, x := range branches {
			if x == b {
				return true
			}
		}
		return false
	}

	helpers := nobleHelper[c.DayMaster()]
	if has(helpers[0]) || has(helpers[1]) {
		out = append(out, Marker{"천을귀인", Good, "위기 시 귀인의 도움을 받는 최고의 길신"})
	}

	yearBranch := c.Year.Branch
	if has(travelingHorse[yearBranch]) {
		out = append(out, Marker{"역마살", Neutral, "이동수가 많음, 해외/여행/무역 관련 기회"})
	}
	if has(peachBlossom[yearBranch]) {
		out = append(out, Marker{"도화살", Neutral, "인기와 매력, 연예/예술/대인관계에 유리"})
	}
	if has(canopy[yearBranch]) {
		out = append(out, Marker{"화개살", Neutral, "종교/학문/예술적 재능, 고독한 탐구자"})
	}

	for _, tp := range triplePunishments {
		if has(tp.members[0]) && has(tp.members[1]) && has(tp.members[2]) {
			out = append(out, Marker{tp.name, Bad, tp.description})
		}
	}

	for _, gg := range ghostGates {
		if has(gg[0]) && has(gg[1]) {
			out = append(out, Marker{"귀문관살", Neutral, "영적 감수성, 직관력 강함, 예술/종교적 재능"})
		}
	}

	return out
}
