// Package saju defines the symbolic vocabulary of a Four Pillars chart:
// heavenly stems, earthly branches, the five elements, and the relational
// labels (ten gods, twelve stages) derived from them. Everything here is
// a read-only constant table; the tables are the ground truth for every
// downstream derivation.
package saju

import "fmt"

// Element is one of the five elements (오행).
type Element string

const (
	Wood  Element = "목"
	Fire  Element = "화"
	Earth Element = "토"
	Metal Element = "금"
	Water Element = "수"
)

// Elements lists the five elements in canonical order.
var Elements = []Element{Wood, Fire, Earth, Metal, Water}

// Polarity is yin or yang (음양).
type Polarity string

const (
	Yang Polarity = "양"
	Yin  Polarity = "음"
)

// Stem is one of the ten heavenly stems (천간).
type Stem string

const (
	Gap    Stem = "갑"
	Eul    Stem = "을"
	Byeong Stem = "병"
	Jeong  Stem = "정"
	Mu     Stem = "무"
	Gi     Stem = "기"
	Gyeong Stem = "경"
	Sin    Stem = "신"
	Im     Stem = "임"
	Gye    Stem = "계"
)

// Stems lists the ten stems in cycle order.
var Stems = []Stem{Gap, Eul, Byeong, Jeong, Mu, Gi, Gyeong, Sin, Im, Gye}

// Branch is one of the twelve earthly branches (지지).
type Branch string

const (
	Ja    Branch = "자"
	Chuk  Branch = "축"
	In    Branch = "인"
	Myo   Branch = "묘"
	Jin   Branch = "진"
	Sa    Branch = "사"
	O     Branch = "오"
	Mi    Branch = "미"
	SinB  Branch = "신"
	Yu    Branch = "유"
	Sul   Branch = "술"
	Hae   Branch = "해"
)

// Branches lists the twelve branches in cycle order.
var Branches = []Branch{Ja, Chuk, In, Myo, Jin, Sa, O, Mi, SinB, Yu, Sul, Hae}

var stemElements = map[Stem]Element{
	Gap: Wood, Eul: Wood,
	Byeong: Fire, Jeong: Fire,
	Mu: Earth, Gi: Earth,
	Gyeong: Metal, Sin: Metal,
	Im: Water, Gye: Water,
}

var stemPolarities = map[Stem]Polarity{
	Gap: Yang, Eul: Yin,
	Byeong: Yang, Jeong: Yin,
	Mu: Yang, Gi: Yin,
	Gyeong: Yang, Sin: Yin,
	Im: Yang, Gye: Yin,
}

var branchElements = map[Branch]Element{
	Ja: Water, Chuk: Earth, In: Wood, Myo: Wood,
	Jin: Earth, Sa: Fire, O: Fire, Mi: Earth,
	SinB: Metal, Yu: Metal, Sul: Earth, Hae: Water,
}

var branchPolarities = map[Branch]Polarity{
	Ja: Yang, Chuk: Yin, In: Yang, Myo: Yin,
	Jin: Yang, Sa: Yin, O: Yang, Mi: Yin,
	SinB: Yang, Yu: Yin, Sul: Yang, Hae: Yin,
}

// hiddenStems maps each branch to its hidden stems (지장간), ordered
// primary first. The ordering drives both the gyeokguk cascade and the
// fractional element weighting.
var hiddenStems = map[Branch][]Stem{
	Ja:   {Gye},
	Chuk: {Gi, Sin, Gye},
	In:   {Gap, Byeong, Mu},
	Myo:  {Eul},
	Jin:  {Mu, Eul, Gye},
	Sa:   {Byeong, Gyeong, Mu},
	O:    {Jeong, Gi},
	Mi:   {Gi, Jeong, Eul},
	SinB: {Gyeong, Im, Mu},
	Yu:   {Sin},
	Sul:  {Mu, Sin, Jeong},
	Hae:  {Im, Gap},
}

var branchAnimals = map[Branch]string{
	Ja: "쥐", Chuk: "소", In: "호랑이", Myo: "토끼",
	Jin: "용", Sa: "뱀", O: "말", Mi: "양",
	SinB: "원숭이", Yu: "닭", Sul: "개", Hae: "돼지",
}

// The five-element generation (상생) and control (상극) cycles.
var elementGenerates = map[Element]Element{
	Wood: Fire, Fire: Earth, Earth: Metal, Metal: Water, Water: Wood,
}

var elementControls = map[Element]Element{
	Wood: Earth, Fire: Metal, Earth: Water, Metal: Wood, Water: Fire,
}

// StemElement returns the element of a stem. An unknown token is a
// programming-contract violation and panics rather than defaulting.
func StemElement(s Stem) Element {
	e, ok := stemElements[s]
	if !ok {
		panic(fmt.Sprintf("saju: unknown stem %q", s))
	}
	return e
}

// StemPolarity returns the polarity of a stem.
func StemPolarity(s Stem) Polarity {
	p, ok := stemPolarities[s]
	if !ok {
		panic(fmt.Sprintf("saju: unknown stem %q", s))
	}
	return p
}

// BranchElement returns the element of a branch.
func BranchElement(b Branch) Element {
	e, ok := branchElements[b]
	if !ok {
		panic(fmt.Sprintf("saju: unknown branch %q", b))
	}
	return e
}

// BranchPolarity returns the polarity of a branch.
func BranchPolarity(b Branch) Polarity {
	p, ok := branchPolarities[b]
	if !ok {
		panic(fmt.Sprintf("saju: unknown branch %q", b))
	}
	return p
}

// HiddenStems returns the hidden stems of a branch, primary first.
// The returned slice must not be mutated.
func HiddenStems(b Branch) []Stem {
	hs, ok := hiddenStems[b]
	if !ok {
		panic(fmt.Sprintf("saju: unknown branch %q", b))
	}
	return hs
}

// PrimaryHiddenStem returns the primary (본기) hidden stem of a branch.
func PrimaryHiddenStem(b Branch) Stem {
	return HiddenStems(b)[0]
}

// BranchAnimal returns the zodiac animal name for a branch.
func BranchAnimal(b Branch) string {
	a, ok := branchAnimals[b]
	if !ok {
		panic(fmt.Sprintf("saju: unknown branch %q", b))
	}
	return a
}

// Generates returns the element e produces in the generation cycle.
func Generates(e Element) Element {
	out, ok := elementGenerates[e]
	if !ok {
		panic(fmt.Sprintf("saju: unknown element %q", e))
	}
	return out
}

// GeneratedBy returns the element that produces e (its parent).
func GeneratedBy(e Element) Element {
	for parent, child := range elementGenerates {
		if child == e {
			return parent
		}
	}
	panic(fmt.Sprintf("saju: unknown element %q", e))
}

// Controls returns the element e overcomes in the control cycle.
func Controls(e Element) Element {
	out, ok := elementControls[e]
	if !ok {
		panic(fmt.Sprintf("saju: unknown element %q", e))
	}
	return out
}

// ControlledBy returns the element that overcomes e.
func ControlledBy(e Element) Element {
	for ctrl, victim := range elementControls {
		if victim == e {
			return ctrl
		}
	}
	panic(fmt.Sprintf("saju: unknown element %q", e))
}

// Reinforcing reports whether other supports e: it is e itself or the
// element that generates e.
func Reinforcing(e, other Element) bool {
	return other == e || GeneratedBy(e) == other
}

// StemIndex returns the 0-based position of a stem in the cycle.
func StemIndex(s Stem) int {
	for i, c := range Stems {
		if c == s {
			return i
		}
	}
	panic(fmt.Sprintf("saju: unknown stem %q", s))
}

// BranchIndex returns the 0-based position of a branch in the cycle.
func BranchIndex(b Branch) int {
	for i, c := range Branches {
		if c == b {
			return i
		}
	}
	panic(fmt.Sprintf("saju: unknown branch %q", b))
}

// StemAt returns the stem at a cycle index (any integer, wraps mod 10).
func StemAt(i int) Stem {
	return Stems[((i%10)+10)%10]
}

// BranchAt returns the branch at a cycle index (wraps mod 12).
func BranchAt(i int) Branch {
	return Branches[((i%12)+12)%12]
}
