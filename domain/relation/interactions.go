// Package relation scans a chart for the fixed pairwise and triple
// relations between stems and branches (합, 충) and for the named
// auspice markers (신살) triggered by positional lookup.
package relation

import (
	"fmt"

	"gosaju/domain/saju"
)

// Kind tags an interaction.
type Kind string

const (
	Combination Kind = "합"
	Clash       Kind = "충"
)

// Interaction is one detected relation between named chart positions.
type Interaction struct {
	Kind        Kind     `json:"type"`
	Positions   []string `json:"elements"`
	Description string   `json:"description"`
}

// stemPair is one of the five stem combinations and its resultant
// element.
type stemPair struct {
	a, b   saju.Stem
	result saju.Element
}

var stemPairs = []stemPair{
	{saju.Gap, saju.Gi, saju.Earth},
	{saju.Eul, saju.Gyeong, saju.Metal},
	{saju.Byeong, saju.Sin, saju.Water},
	{saju.Jeong, saju.Im, saju.Wood},
	{saju.Mu, saju.Gye, saju.Fire},
}

// branchPair is one of the six two-way branch combinations (육합).
type branchPair struct {
	a, b   saju.Branch
	result saju.Element
}

var branchPairs = []branchPair{
	{saju.Ja, saju.Chuk, saju.Earth},
	{saju.In, saju.Hae, saju.Wood},
	{saju.Myo, saju.Sul, saju.Fire},
	{saju.Jin, saju.Yu, saju.Metal},
	{saju.Sa, saju.SinB, saju.Water},
	{saju.O, saju.Mi, saju.Earth},
}

// triCombo is one of the four three-way combinations (삼합). Two of the
// three present counts as a half combination.
type triCombo struct {
	members [3]saju.Branch
	result  saju.Element
}

var triCombos = []triCombo{
	{[3]saju.Branch{saju.In, saju.O, saju.Sul}, saju.Fire},
	{[3]saju.Branch{saju.Sa, saju.Yu, saju.Chuk}, saju.Metal},
	{[3]saju.Branch{saju.SinB, saju.Ja, saju.Jin}, saju.Water},
	{[3]saju.Branch{saju.Hae, saju.Myo, saju.Mi}, saju.Wood},
}

// clashPairs are the six opposing branch pairs (충).
var clashPairs = [][2]saju.Branch{
	{saju.Ja, saju.O},
	{saju.Chuk, saju.Mi},
	{saju.In, saju.SinB},
	{saju.Myo, saju.Yu},
	{saju.Jin, saju.Sul},
	{saju.Sa, saju.Hae},
}

var stemPositions = []string{"년간", "월간", "일간", "시간"}
var branchPositions = []string{"년지", "월지", "일지", "시지"}

// Detect runs the exhaustive pairwise and triple scans. A chart may
// legitimately yield an empty list.
func Detect(c saju.Chart) []Interaction {
	var out []Interaction

	stems := c.Stems()
	for i := 0; i < len(stems); i++ {
		for j := i + 1; j < len(stems); j++ {
			for _, p := range stemPairs {
				if (stems[i] == p.a && stems[j] == p.b) || (stems[i] == p.b && stems[j] == p.a) {
					out = append(out, Interaction{
						Kind:      Combination,
						Positions: []string{stemPositions[i], stemPositions[j]},
						Description: fmt.Sprintf("%s%s합 %s - 두 기운이 결합",
							stems[i], stems[j], p.result),
					})
				}
			}
		}
	}

	branches := c.Branches()
	for i := 0; i < len(branches); i++ {
		for j := i + 1; j < len(branches); j++ {
			for _, p := range branchPairs {
				if (branches[i] == p.a && branches[j] == p.b) || (branches[i] == p.b && branches[j] == p.a) {
					out = append(out, Interaction{
						Kind:      Combination,
						Positions: []string{branchPositions[i], branchPositions[j]},
						Description: fmt.Sprintf("%s%s합 %s - 육합으로 결속",
							branches[i], branches[j], p.result),
					})
				}
			}
		}
	}

	for _, tc := range triCombos {
		var matched []saju.Branch
		for _, m := range tc.members {
			for _, b := range branches {
				if b == m {
					matched = append(matched, m)
					break
				}
			}
		}
		if len(matched) >= 2 {
			label := "반합"
			if len(matched) == 3 {
				label = "삼합"
			}
			names := ""
			positions := make([]string, 0, len(matched))
			for _, m := range matched {
				names += string(m)
				positions = append(positions, string(m))
			}
			out = append(out, Interaction{
				Kind:      Combination,
				Positions: positions,
				Description: fmt.Sprintf("%s %s %s국 - 강력한 %s 기운 형성",
					names, label, tc.result, tc.result),
			})
		}
	}

	for i := 0; i < len(branches); i++ {
		for j := i + 1; j < len(branches); j++ {
			for _, p := range clashPairs {
				if (branches[i] == p[0] && branches[j] == p[1]) || (branches[i] == p[1] && branches[j] == p[0]) {
					out = append(out, Interaction{
						Kind:      Clash,
						Positions: []string{branchPositions[i], branchPositions[j]},
						Description: fmt.Sprintf("%s%s충 - 변동과 갈등의 기운",
							branches[i], branches[j]),
					})
				}
			}
		}
	}

	return out
}
