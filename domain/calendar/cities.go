package calendar

// City is a birth-place preset carrying the longitude the correction
// actually uses; latitude is kept for display.
type City struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
}

// Cities maps place keys to coordinates. Keys match the original
// client-side picker so stored requests stay resolvable.
var Cities = map[string]City{
	// 대한민국
	"seoul":     {37.5665, 126.978, "서울특별시", "대한민국"},
	"busan":     {35.1796, 129.0756, "부산광역시", "대한민국"},
	"daegu":     {35.8714, 128.6014, "대구광역시", "대한민국"},
	"incheon":   {37.4563, 126.7052, "인천광역시", "대한민국"},
	"gwangju":   {35.1595, 126.8526, "광주광역시", "대한민국"},
	"daejeon":   {36.3504, 127.3845, "대전광역시", "대한민국"},
	"ulsan":     {35.5384, 129.3114, "울산광역시", "대한민국"},
	"sejong":    {36.4800, 127.2890, "세종특별자치시", "대한민국"},
	"gyeonggi":  {37.2752, 127.0094, "경기도 (수원)", "대한민국"},
	"gangwon":   {37.8813, 127.7298, "강원도 (춘천)", "대한민국"},
	"chungbuk":  {36.6357, 127.4912, "충청북도 (청주)", "대한민국"},
	"chungnam":  {36.6588, 126.6728, "충청남도 (홍성)", "대한민국"},
	"jeonbuk":   {35.8203, 127.1088, "전라북도 (전주)", "대한민국"},
	"jeonnam":   {34.8161, 126.4630, "전라남도 (무안)", "대한민국"},
	"gyeongbuk": {36.5760, 128.5056, "경상북도 (안동)", "대한민국"},
	"gyeongnam": {35.2380, 128.6924, "경상남도 (창원)", "대한민국"},
	"jeju":      {33.4996, 126.5312, "제주특별자치도", "대한민국"},

	"pyongyang": {39.0392, 125.7625, "평양", "북한"},

	// 아시아
	"tokyo":     {35.6762, 139.6503, "도쿄 (일본)", "아시아"},
	"osaka":     {34.6937, 135.5023, "오사카 (일본)", "아시아"},
	"beijing":   {39.9042, 116.4074, "베이징 (중국)", "아시아"},
	"shanghai":  {31.2304, 121.4737, "상하이 (중국)", "아시아"},
	"hongkong":  {22.3193, 114.1694, "홍콩", "아시아"},
	"taipei":    {25.0330, 121.5654, "타이베이 (대만)", "아시아"},
	"singapore": {1.3521, 103.8198, "싱가포르", "아시아"},
	"bangkok":   {13.7563, 100.5018, "방콕 (태국)", "아시아"},
	"hanoi":     {21.0285, 105.8542, "하노이 (베트남)", "아시아"},
	"manila":    {14.5995, 120.9842, "마닐라 (필리핀)", "아시아"},

	// 북미
	"newyork":      {40.7128, -74.0060, "뉴욕 (미국)", "북미"},
	"losangeles":   {34.0522, -118.2437, "로스앤젤레스 (미국)", "북미"},
	"chicago":      {41.8781, -87.6298, "시카고 (미국)", "북미"},
	"sanfrancisco": {37.7749, -122.4194, "샌프란시스코 (미국)", "북미"},
	"seattle":      {47.6062, -122.3321, "시애틀 (미국)", "북미"},
	"vancouver":    {49.2827, -123.1207, "밴쿠버 (캐나다)", "북미"},
	"toronto":      {43.6532, -79.3832, "토론토 (캐나다)", "북미"},

	// 유럽
	"london":    {51.5074, -0.1278, "런던 (영국)", "유럽"},
	"paris":     {48.8566, 2.3522, "파리 (프랑스)", "유럽"},
	"berlin":    {52.5200, 13.4050, "베를린 (독일)", "유럽"},
	"frankfurt": {50.1109, 8.6821, "프랑크푸르트 (독일)", "유럽"},

	// 오세아니아
	"sydney":    {-33.8688, 151.2093, "시드니 (호주)", "오세아니아"},
	"melbourne": {-37.8136, 144.9631, "멜버른 (호주)", "오세아니아"},
	"auckland":  {-36.8509, 174.7645, "오클랜드 (뉴질랜드)", "오세아니아"},
}

// LongitudeFor resolves a city key to its longitude, falling back to
// Seoul for unknown keys.
func LongitudeFor(key string) float64 {
	if c, ok := Cities[key]; ok {
		return c.Lng
	}
	return DefaultLongitude
}
