package saju

import "fmt"

// TwelveStage is a position in the twelve-stage life cycle (12운성).
type TwelveStage string

// The twelve stages in traversal order, starting at 장생.
var TwelveStages = []TwelveStage{
	"장생", "목욕", "관대", "건록", "제왕", "쇠",
	"병", "사", "묘", "절", "태", "양",
}

// stageStart gives, per day-master element, the branch index where 장생
// sits for the yang stem of that element. Yin stems traverse the wheel
// in the opposite direction from the same anchor.
var stageStart = map[Element]int{
	Wood:  11, // 해
	Fire:  2,  // 인
	Earth: 2,  // 인 (earth follows fire)
	Metal: 5,  // 사
	Water: 8,  // 신
}

// TwelveStageOf returns the life-cycle stage of a branch relative to the
// day stem. Direction of traversal depends on the day stem's polarity.
func TwelveStageOf(day Stem, b Branch) TwelveStage {
	start, ok := stageStart[StemElement(day)]
	if !ok {
		panic(fmt.Sprintf("saju: no stage anchor for stem %q", day))
	}
	bi := BranchIndex(b)

	if StemPolarity(day) == Yang {
		return TwelveStages[((bi-start)%12+12)%12]
	}
	return TwelveStages[((start-bi)%12+12)%12]
}
