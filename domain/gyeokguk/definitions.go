// Package gyeokguk classifies a chart into one of the fixed structural
// archetypes (격국): ten ten-god patterns, two special month-position
// patterns, and the explicit "no clear pattern" outcome.
package gyeokguk

import "gosaju/domain/saju"

// PatternType splits archetypes into internal (내격) and external (외격).
type PatternType string

const (
	Internal PatternType = "내격"
	External PatternType = "외격"
)

// Definition describes one archetype in the fixed taxonomy.
type Definition struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	NameHanja   string      `json:"nameHanja"`
	Type        PatternType `json:"type"`
	TenGod      saju.TenGod `json:"tenGod,omitempty"` // empty for the two special patterns
	Traits      []string    `json:"traits"`
	Careers     []string    `json:"careers"`
	Description string      `json:"description"`
}

// Definitions is the fixed archetype bank, keyed lookup order is not
// significant here; the cascade in classify.go carries the priority.
var Definitions = []Definition{
	{
		ID: "jeonggwan", Name: "정관격", NameHanja: "正官格", Type: Internal,
		TenGod:  saju.DirectOfficer,
		Traits:  []string{"책임감", "정직함", "규율 중시", "명예 추구", "보수적", "원칙주의"},
		Careers: []string{"공무원", "대기업 관리직", "법조인", "교육자", "공공기관"},
		Description: "정관이 월령에서 투출하여 격을 이룬 경우. 바른 관직, 명예와 책임을 상징합니다.",
	},
	{
		ID: "pyeongwan", Name: "편관격", NameHanja: "偏官格", Type: Internal,
		TenGod:  saju.SevenKillings,
		Traits:  []string{"추진력", "결단력", "카리스마", "승부욕", "독립심", "권위적"},
		Careers: []string{"군인", "경찰", "외과의사", "사업가", "운동선수", "CEO"},
		Description: "편관(칠살)이 월령에서 투출하여 격을 이룬 경우. 권력과 도전을 상징합니다.",
	},
	{
		ID: "jeongin", Name: "정인격", NameHanja: "正印格", Type: Internal,
		TenGod:  saju.DirectResource,
		Traits:  []string{"학구적", "인자함", "품위", "전통 중시", "안정 추구", "배려심"},
		Careers: []string{"학자", "교수", "연구원", "의사", "종교인", "교사"},
		Description: "정인이 월령에서 투출하여 격을 이룬 경우. 학문과 인덕을 상징합니다.",
	},
	{
		ID: "pyeongin", Name: "편인격", NameHanja: "偏印格", Type: Internal,
		TenGod:  saju.OwlGod,
		Traits:  []string{"창의적", "비범함", "독창성", "예민함", "고독", "탐구심"},
		Careers: []string{"예술가", "발명가", "철학자", "역술인", "프리랜서", "연구직"},
		Description: "편인이 월령에서 투출하여 격을 이룬 경우. 특별한 재능과 고독을 상징합니다.",
	},
	{
		ID: "jeongjae", Name: "정재격", NameHanja: "正財格", Type: Internal,
		TenGod:  saju.DirectWealth,
		Traits:  []string{"성실함", "절약", "안정 추구", "현실적", "계획적", "신중함"},
		Careers: []string{"회계사", "은행원", "재무관리", "부동산", "자영업", "공인중개사"},
		Description: "정재가 월령에서 투출하여 격을 이룬 경우. 정당한 재물과 안정을 상징합니다.",
	},
	{
		ID: "pyeonjae", Name: "편재격", NameHanja: "偏財格", Type: Internal,
		TenGod:  saju.IndirectWealth,
		Traits:  []string{"사교적", "융통성", "모험심", "대범함", "낙천적", "활동적"},
		Careers: []string{"사업가", "투자자", "영업직", "무역업", "유통업", "벤처"},
		Description: "편재가 월령에서 투출하여 격을 이룬 경우. 유동적 재물과 사교를 상징합니다.",
	},
	{
		ID: "siksin", Name: "식신격", NameHanja: "食神格", Type: Internal,
		TenGod:  saju.EatingGod,
		Traits:  []string{"온화함", "낙천적", "표현력", "예술성", "여유", "미식가"},
		Careers: []string{"요리사", "예술가", "교사", "상담사", "서비스업", "콘텐츠 크리에이터"},
		Description: "식신이 월령에서 투출하여 격을 이룬 경우. 재능 발휘와 풍요를 상징합니다.",
	},
	{
		ID: "sanggwan", Name: "상관격", NameHanja: "傷官格", Type: Internal,
		TenGod:  saju.HurtingOfficer,
		Traits:  []string{"총명함", "언변", "비판적", "자유분방", "재능", "반항심"},
		Careers: []string{"변호사", "언론인", "연예인", "작가", "컨설턴트", "평론가"},
		Description: "상관이 월령에서 투출하여 격을 이룬 경우. 재능과 표현을 상징합니다.",
	},
	{
		ID: "geonrok", Name: "건록격", NameHanja: "建祿格", Type: Internal,
		Traits:  []string{"자립심", "독립적", "주관 강함", "리더십", "고집", "자존심"},
		Careers: []string{"자영업", "프리랜서", "전문직", "독립사업", "1인 기업"},
		Description: "월지가 일간의 건록지인 경우. 자립과 독립을 상징합니다.",
	},
	{
		ID: "yangin", Name: "양인격", NameHanja: "羊刃格", Type: Internal,
		Traits:  []string{"강인함", "결단력", "과감함", "투쟁심", "극단적", "승부욕"},
		Careers: []string{"군인", "외과의사", "운동선수", "경호원", "도전적 직업"},
		Description: "월지가 일간의 양인지(제왕지)인 경우. 강한 기운과 결단을 상징합니다.",
	},
}

// unknownDefinition is the 13th outcome: no determinable pattern.
var unknownDefinition = Definition{
	ID: "unknown", Name: "잡격", Type: External,
	Traits:      []string{"다재다능", "유연함", "적응력"},
	Careers:     []string{"다양한 분야 가능"},
	Description: "뚜렷한 격국을 형성하지 않는 사주입니다.",
}

// establishmentBranch maps each day stem to its 건록 branch.
var establishmentBranch = map[saju.Stem]saju.Branch{
	saju.Gap: saju.In, saju.Eul: saju.Myo,
	saju.Byeong: saju.Sa, saju.Jeong: saju.O,
	saju.Mu: saju.Sa, saju.Gi: saju.O,
	saju.Gyeong: saju.SinB, saju.Sin: saju.Yu,
	saju.Im: saju.Hae, saju.Gye: saju.Ja,
}

// bladeBranch maps each day stem to its 양인 branch.
var bladeBranch = map[saju.Stem]saju.Branch{
	saju.Gap: saju.Myo, saju.Eul: saju.In,
	saju.Byeong: saju.O, saju.Jeong: saju.Sa,
	saju.Mu: saju.O, saju.Gi: saju.Sa,
	saju.Gyeong: saju.Yu, saju.Sin: saju.SinB,
	saju.Im: saju.Ja, saju.Gye: saju.Hae,
}

func definitionByID(id string) Definition {
	for _, d := range Definitions {
		if d.ID == id {
			return d
		}
	}
	return unknownDefinition
}

func definitionByTenGod(g saju.TenGod) (Definition, bool) {
	for _, d := range Definitions {
		if d.TenGod == g {
			return d, true
		}
	}
	return Definition{}, false
}
