package saju

import "fmt"

// TenGod is the relation of a stem to the day master (십성). The ten
// labels group into five categories, each with a direct and an indirect
// variant selected by polarity.
type TenGod string

const (
	Friend         TenGod = "비견" // sibling, same polarity
	RobWealth      TenGod = "겁재" // sibling, opposite polarity
	EatingGod      TenGod = "식신" // output, same polarity
	HurtingOfficer TenGod = "상관" // output, opposite polarity
	IndirectWealth TenGod = "편재" // wealth, same polarity
	DirectWealth   TenGod = "정재" // wealth, opposite polarity
	SevenKillings  TenGod = "편관" // authority, same polarity
	DirectOfficer  TenGod = "정관" // authority, opposite polarity
	OwlGod         TenGod = "편인" // resource, same polarity
	DirectResource TenGod = "정인" // resource, opposite polarity

	// DayMasterLabel is the fixed sentinel used for the day pillar's own
	// stem; it is a position name, not a computed relation.
	DayMasterLabel TenGod = "일주"
)

// TenGodCategory is one of the five paired groupings (비겁/식상/재성/관성/인성).
type TenGodCategory string

const (
	Siblings  TenGodCategory = "비겁"
	Output    TenGodCategory = "식상"
	WealthCat TenGodCategory = "재성"
	Authority TenGodCategory = "관성"
	Resource  TenGodCategory = "인성"
)

// Category returns the grouping a ten-god label belongs to.
func (g TenGod) Category() TenGodCategory {
	switch g {
	case Friend, RobWealth:
		return Siblings
	case EatingGod, HurtingOfficer:
		return Output
	case IndirectWealth, DirectWealth:
		return WealthCat
	case SevenKillings, DirectOfficer:
		return Authority
	case OwlGod, DirectResource:
		return Resource
	}
	panic(fmt.Sprintf("saju: no category for ten god %q", g))
}

// IsSibling reports whether the label is 비견 or 겁재. Siblings never form
// a structural pattern because they represent the self.
func (g TenGod) IsSibling() bool {
	return g == Friend || g == RobWealth
}

// TenGodOf computes the ten-god relation of target relative to the day
// stem. The result is exactly the classical 10x10 table: the category
// follows the element relation between the two stems, and the
// direct/indirect variant follows whether their polarities match.
func TenGodOf(day, target Stem) TenGod {
	de, te := StemElement(day), StemElement(target)
	same := StemPolarity(day) == StemPolarity(target)

	switch {
	case de == te: // 비겁
		if same {
			return Friend
		}
		return RobWealth
	case Generates(de) == te: // 식상
		if same {
			return EatingGod
		}
		return HurtingOfficer
	case Controls(de) == te: // 재성
		if same {
			return IndirectWealth
		}
		return DirectWealth
	case Controls(te) == de: // 관성
		if same {
			return SevenKillings
		}
		return DirectOfficer
	case Generates(te) == de: // 인성
		if same {
			return OwlGod
		}
		return DirectResource
	}
	panic(fmt.Sprintf("saju: unreachable ten god relation %q vs %q", day, target))
}

// TenGodOfBranch computes the ten-god label of a branch by evaluating its
// primary hidden stem only.
func TenGodOfBranch(day Stem, b Branch) TenGod {
	return TenGodOf(day, PrimaryHiddenStem(b))
}
