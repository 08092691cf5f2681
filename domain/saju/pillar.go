package saju

// Position names one of the four chart slots.
type Position string

const (
	YearPos  Position = "년"
	MonthPos Position = "월"
	DayPos   Position = "일"
	HourPos  Position = "시"
)

// Positions lists the four slots in canonical order.
var Positions = []Position{YearPos, MonthPos, DayPos, HourPos}

// Gender is the chart holder's gender, which steers decade-cycle
// direction only.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Pillar is one (stem, branch) pair plus the attributes derived from it.
// All derived fields are recomputable from Stem, Branch and the chart's
// day stem; they are filled once at chart build and never mutated.
type Pillar struct {
	Stem   Stem   `json:"stem"`
	Branch Branch `json:"branch"`

	StemElement    Element  `json:"stemElement"`
	BranchElement  Element  `json:"branchElement"`
	StemPolarity   Polarity `json:"stemPolarity"`
	BranchPolarity Polarity `json:"branchPolarity"`

	HiddenStems []Stem `json:"hiddenStems"`

	// TenGodStem is the relation of this pillar's stem to the day master;
	// the day pillar itself carries the fixed DayMasterLabel sentinel.
	TenGodStem   TenGod      `json:"tenGodStem"`
	TenGodBranch TenGod      `json:"tenGodBranch"`
	TwelveStage  TwelveStage `json:"twelveStage"`
}

// NewPillar derives a pillar's attributes from its pair and the day stem.
func NewPillar(day Stem, s Stem, b Branch, isDayPillar bool) Pillar {
	tg := DayMasterLabel
	if !isDayPillar {
		tg = TenGodOf(day, s)
	}
	return Pillar{
		Stem:           s,
		Branch:         b,
		StemElement:    StemElement(s),
		BranchElement:  BranchElement(b),
		StemPolarity:   StemPolarity(s),
		BranchPolarity: BranchPolarity(b),
		HiddenStems:    HiddenStems(b),
		TenGodStem:     tg,
		TenGodBranch:   TenGodOfBranch(day, b),
		TwelveStage:    TwelveStageOf(day, b),
	}
}

// Label renders the pillar as its two glyphs, e.g. "갑자".
func (p Pillar) Label() string {
	return string(p.Stem) + string(p.Branch)
}
