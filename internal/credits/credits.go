// Package credits defines the 엽전 credit economy: purchasable packages
// and the per-service price list. The Joseon rank concept (평민 → 중인 →
// 양반 → 판서) comes straight from the product catalog.
package credits

// Service identifies a billable reading type.
type Service string

const (
	ServiceBasic    Service = "basic"
	ServiceDetailed Service = "detailed"
	ServiceDaily    Service = "daily"
	ServiceLove     Service = "love"
	ServiceWealth   Service = "wealth"
	ServiceTarot    Service = "tarot"
	ServiceHybrid   Service = "hybrid"
	ServicePDF      Service = "pdf"
)

// Cost is the 엽전 price per service. The basic reading is free.
var Cost = map[Service]int{
	ServiceBasic:    0,
	ServiceDetailed: 2,
	ServiceDaily:    1,
	ServiceLove:     2,
	ServiceWealth:   2,
	ServiceTarot:    1,
	ServiceHybrid:   3,
	ServicePDF:      1,
}

// UsageReason is the ledger line text recorded when a service consumes
// credit.
var UsageReason = map[Service]string{
	ServiceDetailed: "사주 상세 해석",
	ServiceDaily:    "오늘의 운세",
	ServiceLove:     "애정운 분석",
	ServiceWealth:   "재물운 분석",
	ServiceTarot:    "타로 리딩",
	ServiceHybrid:   "사주 × 타로 하이브리드 분석",
	ServicePDF:      "PDF 다운로드",
}

// Known reports whether a service name is billable.
func Known(s Service) bool {
	_, ok := Cost[s]
	return ok
}

// Package is a purchasable credit bundle.
type Package struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Rank        string   `json:"rank"`
	Price       int      `json:"price"`
	BaseCredit  int      `json:"baseCredit"`
	BonusCredit int      `json:"bonusCredit"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Popular     bool     `json:"popular,omitempty"`
	BestValue   bool     `json:"bestValue,omitempty"`
}

// TotalCredit is base plus bonus.
func (p Package) TotalCredit() int { return p.BaseCredit + p.BonusCredit }

// Packages is the fixed catalog, cheapest first.
var Packages = []Package{
	{
		ID: "pyeongmin", Name: "평민", Rank: "庶民",
		Price: 990, BaseCredit: 1, BonusCredit: 0,
		Description: "기본 사주 풀이 1회",
		Features:    []string{"만세력 확인", "기본 AI 해석"},
	},
	{
		ID: "jungin", Name: "중인", Rank: "中人",
		Price: 2970, BaseCredit: 3, BonusCredit: 1,
		Description: "기본 풀이 3회 + 보너스 1엽전",
		Features:    []string{"만세력 확인", "기본 AI 해석", "+1 보너스 엽전"},
		Popular:     true,
	},
	{
		ID: "yangban", Name: "양반", Rank: "兩班",
		Price: 4900, BaseCredit: 5, BonusCredit: 2,
		Description: "기본 풀이 5회 + 보너스 2엽전",
		Features:    []string{"만세력 확인", "기본 AI 해석", "+2 보너스 엽전"},
	},
	{
		ID: "panseo", Name: "판서", Rank: "判書",
		Price: 9900, BaseCredit: 10, BonusCredit: 5,
		Description: "기본 풀이 10회 + 보너스 5엽전",
		Features:    []string{"만세력 확인", "기본 AI 해석", "+5 보너스 엽전", "최고 가성비"},
		BestValue:   true,
	},
}

// PackageByID finds a package in the catalog.
func PackageByID(id string) (Package, bool) {
	for _, p := range Packages {
		if p.ID == id {
			return p, true
		}
	}
	return Package{}, false
}
