package geo

import "fmt"

// Region identifies one of the 17 top-level Korean administrative
// divisions. The string value doubles as the URL slug.
type Region string

const (
	Seoul     Region = "seoul"
	Busan     Region = "busan"
	Daegu     Region = "daegu"
	Incheon   Region = "incheon"
	Gwangju   Region = "gwangju"
	Daejeon   Region = "daejeon"
	Ulsan     Region = "ulsan"
	Sejong    Region = "sejong"
	Gyeonggi  Region = "gyeonggi"
	Gangwon   Region = "gangwon"
	Chungbuk  Region = "chungbuk"
	Chungnam  Region = "chungnam"
	Jeonbuk   Region = "jeonbuk"
	Jeonnam   Region = "jeonnam"
	Gyeongbuk Region = "gyeongbuk"
	Gyeongnam Region = "gyeongnam"
	Jeju      Region = "jeju"
)

// allRegions fixes the canonical ordering: 8 metropolitan/special cities
// first, then the 9 provinces.
var allRegions = []Region{
	Seoul, Busan, Daegu, Incheon, Gwangju, Daejeon, Ulsan, Sejong,
	Gyeonggi, Gangwon, Chungbuk, Chungnam, Jeonbuk, Jeonnam,
	Gyeongbuk, Gyeongnam, Jeju,
}

// metropolitanRegions are the regions represented by a single gazetteer
// entry (the city itself).
var metropolitanRegions = map[Region]bool{
	Seoul: true, Busan: true, Daegu: true, Incheon: true,
	Gwangju: true, Daejeon: true, Ulsan: true, Sejong: true,
}

// PlaceRecord is an immutable gazetteer entry.
type PlaceRecord struct {
	Name   string  `json:"name"` // canonical Korean name, e.g. "수원시"
	Region Region  `json:"region"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

// gazetteer is the static place table. Metropolitan/special cities carry
// their own coordinate. Each province opens with a region-level
// representative point (the provincial government seat, used for
// province-wide weather) followed by its cities and counties. The
// representative coordinates deliberately differ from every city
// coordinate so nearest-place self-matches stay unambiguous.
var gazetteer = []PlaceRecord{
	// 광역시 및 특별시
	{Name: "서울특별시", Region: Seoul, Lat: 37.5665, Lon: 126.9780},
	{Name: "부산광역시", Region: Busan, Lat: 35.1796, Lon: 129.0756},
	{Name: "대구광역시", Region: Daegu, Lat: 35.8714, Lon: 128.6014},
	{Name: "인천광역시", Region: Incheon, Lat: 37.4563, Lon: 126.7052},
	{Name: "광주광역시", Region: Gwangju, Lat: 35.1595, Lon: 126.8526},
	{Name: "대전광역시", Region: Daejeon, Lat: 36.3504, Lon: 127.3845},
	{Name: "울산광역시", Region: Ulsan, Lat: 35.5384, Lon: 129.3114},
	{Name: "세종시", Region: Sejong, Lat: 36.4800, Lon: 127.2890},

	// 경기도
	{Name: "경기도", Region: Gyeonggi, Lat: 37.2752, Lon: 127.0095},
	{Name: "수원시", Region: Gyeonggi, Lat: 37.2636, Lon: 127.0286},
	{Name: "고양시", Region: Gyeonggi, Lat: 37.6584, Lon: 126.8320},
	{Name: "성남시", Region: Gyeonggi, Lat: 37.4449, Lon: 127.1389},
	{Name: "용인시", Region: Gyeonggi, Lat: 37.2411, Lon: 127.1776},
	{Name: "부천시", Region: Gyeonggi, Lat: 37.5035, Lon: 126.7660},
	{Name: "안산시", Region: Gyeonggi, Lat: 37.3219, Lon: 126.8309},
	{Name: "안양시", Region: Gyeonggi, Lat: 37.3943, Lon: 126.9568},
	{Name: "평택시", Region: Gyeonggi, Lat: 36.9920, Lon: 127.1128},
	{Name: "시흥시", Region: Gyeonggi, Lat: 37.3799, Lon: 126.8031},
	{Name: "김포시", Region: Gyeonggi, Lat: 37.6153, Lon: 126.7155},
	{Name: "광명시", Region: Gyeonggi, Lat: 37.4792, Lon: 126.8649},
	{Name: "군포시", Region: Gyeonggi, Lat: 37.3616, Lon: 126.9352},
	{Name: "오산시", Region: Gyeonggi, Lat: 37.1498, Lon: 127.0772},
	{Name: "하남시", Region: Gyeonggi, Lat: 37.5392, Lon: 127.2148},
	{Name: "이천시", Region: Gyeonggi, Lat: 37.2720, Lon: 127.4350},
	{Name: "안성시", Region: Gyeonggi, Lat: 37.0080, Lon: 127.2797},
	{Name: "의왕시", Region: Gyeonggi, Lat: 37.3449, Lon: 126.9482},
	{Name: "양평군", Region: Gyeonggi, Lat: 37.4912, Lon: 127.4875},
	{Name: "여주시", Region: Gyeonggi, Lat: 37.2984, Lon: 127.6370},
	{Name: "과천시", Region: Gyeonggi, Lat: 37.4291, Lon: 126.9879},
	{Name: "남양주시", Region: Gyeonggi, Lat: 37.6364, Lon: 127.2160},
	{Name: "파주시", Region: Gyeonggi, Lat: 37.8154, Lon: 126.7947},
	{Name: "양주시", Region: Gyeonggi, Lat: 37.8324, Lon: 127.0462},
	{Name: "구리시", Region: Gyeonggi, Lat: 37.5943, Lon: 127.1296},
	{Name: "포천시", Region: Gyeonggi, Lat: 37.8949, Lon: 127.2002},
	{Name: "동두천시", Region: Gyeonggi, Lat: 37.9036, Lon: 127.0606},
	{Name: "가평군", Region: Gyeonggi, Lat: 37.8315, Lon: 127.5105},
	{Name: "연천군", Region: Gyeonggi, Lat: 38.0966, Lon: 127.0747},

	// 강원특별자치도
	{Name: "강원특별자치도", Region: Gangwon, Lat: 37.8854, Lon: 127.7298},
	{Name: "춘천시", Region: Gangwon, Lat: 37.8813, Lon: 127.7300},
	{Name: "원주시", Region: Gangwon, Lat: 37.3422, Lon: 127.9200},
	{Name: "강릉시", Region: Gangwon, Lat: 37.7519, Lon: 128.8760},
	{Name: "동해시", Region: Gangwon, Lat: 37.5230, Lon: 129.1140},
	{Name: "태백시", Region: Gangwon, Lat: 37.1640, Lon: 128.9860},
	{Name: "속초시", Region: Gangwon, Lat: 38.2070, Lon: 128.5920},
	{Name: "삼척시", Region: Gangwon, Lat: 37.4500, Lon: 129.1650},
	{Name: "홍천군", Region: Gangwon, Lat: 37.6970, Lon: 127.8880},
	{Name: "횡성군", Region: Gangwon, Lat: 37.4910, Lon: 127.9850},
	{Name: "영월군", Region: Gangwon, Lat: 37.1840, Lon: 128.4610},
	{Name: "평창군", Region: Gangwon, Lat: 37.3700, Lon: 128.3900},
	{Name: "정선군", Region: Gangwon, Lat: 37.3800, Lon: 128.6610},
	{Name: "철원군", Region: Gangwon, Lat: 38.1460, Lon: 127.3130},
	{Name: "화천군", Region: Gangwon, Lat: 38.1060, Lon: 127.7080},
	{Name: "양구군", Region: Gangwon, Lat: 38.1070, Lon: 127.9890},
	{Name: "인제군", Region: Gangwon, Lat: 38.0690, Lon: 128.1700},
	{Name: "고성군", Region: Gangwon, Lat: 38.3780, Lon: 128.4670},
	{Name: "양양군", Region: Gangwon, Lat: 38.0750, Lon: 128.6190},

	// 충청북도
	{Name: "충청북도", Region: Chungbuk, Lat: 36.6357, Lon: 127.4917},
	{Name: "청주시", Region: Chungbuk, Lat: 36.6424, Lon: 127.4890},
	{Name: "충주시", Region: Chungbuk, Lat: 36.9910, Lon: 127.9260},
	{Name: "제천시", Region: Chungbuk, Lat: 37.1326, Lon: 128.1910},
	{Name: "보은군", Region: Chungbuk, Lat: 36.4894, Lon: 127.7290},
	{Name: "옥천군", Region: Chungbuk, Lat: 36.3064, Lon: 127.5710},
	{Name: "영동군", Region: Chungbuk, Lat: 36.1750, Lon: 127.7760},
	{Name: "증평군", Region: Chungbuk, Lat: 36.7850, Lon: 127.5810},
	{Name: "진천군", Region: Chungbuk, Lat: 36.8550, Lon: 127.4350},
	{Name: "괴산군", Region: Chungbuk, Lat: 36.8150, Lon: 127.7910},
	{Name: "음성군", Region: Chungbuk, Lat: 36.9350, Lon: 127.6900},
	{Name: "단양군", Region: Chungbuk, Lat: 36.9850, Lon: 128.3650},

	// 충청남도
	{Name: "충청남도", Region: Chungnam, Lat: 36.6588, Lon: 126.6728},
	{Name: "천안시", Region: Chungnam, Lat: 36.8150, Lon: 127.1139},
	{Name: "공주시", Region: Chungnam, Lat: 36.4464, Lon: 127.1190},
	{Name: "보령시", Region: Chungnam, Lat: 36.3334, Lon: 126.6129},
	{Name: "아산시", Region: Chungnam, Lat: 36.7890, Lon: 127.0019},
	{Name: "서산시", Region: Chungnam, Lat: 36.7840, Lon: 126.4500},
	{Name: "논산시", Region: Chungnam, Lat: 36.1870, Lon: 127.0990},
	{Name: "계룡시", Region: Chungnam, Lat: 36.2740, Lon: 127.2490},
	{Name: "당진시", Region: Chungnam, Lat: 36.8930, Lon: 126.6280},
	{Name: "금산군", Region: Chungnam, Lat: 36.1080, Lon: 127.4880},
	{Name: "부여군", Region: Chungnam, Lat: 36.2750, Lon: 126.9090},
	{Name: "서천군", Region: Chungnam, Lat: 36.0800, Lon: 126.6910},
	{Name: "청양군", Region: Chungnam, Lat: 36.4530, Lon: 126.8020},
	{Name: "홍성군", Region: Chungnam, Lat: 36.6010, Lon: 126.6610},
	{Name: "예산군", Region: Chungnam, Lat: 36.6810, Lon: 126.8450},
	{Name: "태안군", Region: Chungnam, Lat: 36.7450, Lon: 126.2980},

	// 전북특별자치도
	{Name: "전북특별자치도", Region: Jeonbuk, Lat: 35.8203, Lon: 127.1088},
	{Name: "전주시", Region: Jeonbuk, Lat: 35.8242, Lon: 127.1480},
	{Name: "군산시", Region: Jeonbuk, Lat: 35.9670, Lon: 126.7360},
	{Name: "익산시", Region: Jeonbuk, Lat: 35.9480, Lon: 126.9570},
	{Name: "정읍시", Region: Jeonbuk, Lat: 35.5690, Lon: 126.8560},
	{Name: "남원시", Region: Jeonbuk, Lat: 35.4160, Lon: 127.3900},
	{Name: "김제시", Region: Jeonbuk, Lat: 35.8030, Lon: 126.8810},
	{Name: "완주군", Region: Jeonbuk, Lat: 35.9040, Lon: 127.1620},
	{Name: "진안군", Region: Jeonbuk, Lat: 35.7910, Lon: 127.4250},
	{Name: "무주군", Region: Jeonbuk, Lat: 35.9310, Lon: 127.6610},
	{Name: "장수군", Region: Jeonbuk, Lat: 35.6470, Lon: 127.5210},
	{Name: "임실군", Region: Jeonbuk, Lat: 35.6170, Lon: 127.2860},
	{Name: "순창군", Region: Jeonbuk, Lat: 35.3740, Lon: 127.1370},
	{Name: "고창군", Region: Jeonbuk, Lat: 35.4350, Lon: 126.7020},
	{Name: "부안군", Region: Jeonbuk, Lat: 35.7310, Lon: 126.7320},

	// 전라남도
	{Name: "전라남도", Region: Jeonnam, Lat: 34.8161, Lon: 126.4629},
	{Name: "목포시", Region: Jeonnam, Lat: 34.8110, Lon: 126.3920},
	{Name: "여수시", Region: Jeonnam, Lat: 34.7600, Lon: 127.6620},
	{Name: "순천시", Region: Jeonnam, Lat: 34.9500, Lon: 127.4870},
	{Name: "나주시", Region: Jeonnam, Lat: 35.0160, Lon: 126.7100},
	{Name: "광양시", Region: Jeonnam, Lat: 34.9400, Lon: 127.6950},
	{Name: "담양군", Region: Jeonnam, Lat: 35.3210, Lon: 126.9850},
	{Name: "곡성군", Region: Jeonnam, Lat: 35.2820, Lon: 127.2970},
	{Name: "구례군", Region: Jeonnam, Lat: 35.2020, Lon: 127.4630},
	{Name: "고흥군", Region: Jeonnam, Lat: 34.6120, Lon: 127.2850},
	{Name: "보성군", Region: Jeonnam, Lat: 34.7320, Lon: 127.0810},
	{Name: "화순군", Region: Jeonnam, Lat: 35.0590, Lon: 126.9860},
	{Name: "장흥군", Region: Jeonnam, Lat: 34.6810, Lon: 126.9070},
	{Name: "강진군", Region: Jeonnam, Lat: 34.6420, Lon: 126.7670},
	{Name: "해남군", Region: Jeonnam, Lat: 34.5730, Lon: 126.5980},
	{Name: "영암군", Region: Jeonnam, Lat: 34.8000, Lon: 126.6960},
	{Name: "무안군", Region: Jeonnam, Lat: 34.9900, Lon: 126.4810},
	{Name: "함평군", Region: Jeonnam, Lat: 35.0650, Lon: 126.5190},
	{Name: "영광군", Region: Jeonnam, Lat: 35.2770, Lon: 126.5120},
	{Name: "장성군", Region: Jeonnam, Lat: 35.3020, Lon: 126.7850},
	{Name: "완도군", Region: Jeonnam, Lat: 34.3110, Lon: 126.7550},
	{Name: "진도군", Region: Jeonnam, Lat: 34.4860, Lon: 126.2630},
	{Name: "신안군", Region: Jeonnam, Lat: 34.7900, Lon: 126.3780},

	// 경상북도
	{Name: "경상북도", Region: Gyeongbuk, Lat: 36.5760, Lon: 128.5056},
	{Name: "포항시", Region: Gyeongbuk, Lat: 36.0320, Lon: 129.3650},
	{Name: "경주시", Region: Gyeongbuk, Lat: 35.8560, Lon: 129.2250},
	{Name: "김천시", Region: Gyeongbuk, Lat: 36.1390, Lon: 128.1130},
	{Name: "안동시", Region: Gyeongbuk, Lat: 36.5680, Lon: 128.7290},
	{Name: "구미시", Region: Gyeongbuk, Lat: 36.1190, Lon: 128.3440},
	{Name: "영주시", Region: Gyeongbuk, Lat: 36.8060, Lon: 128.6240},
	{Name: "영천시", Region: Gyeongbuk, Lat: 35.9730, Lon: 128.9380},
	{Name: "상주시", Region: Gyeongbuk, Lat: 36.4150, Lon: 128.1600},
	{Name: "문경시", Region: Gyeongbuk, Lat: 36.5860, Lon: 128.1860},
	{Name: "경산시", Region: Gyeongbuk, Lat: 35.8250, Lon: 128.7410},
	{Name: "군위군", Region: Gyeongbuk, Lat: 36.2420, Lon: 128.5720},
	{Name: "의성군", Region: Gyeongbuk, Lat: 36.3520, Lon: 128.6970},
	{Name: "청송군", Region: Gyeongbuk, Lat: 36.4360, Lon: 129.0570},
	{Name: "영양군", Region: Gyeongbuk, Lat: 36.6660, Lon: 129.1120},
	{Name: "영덕군", Region: Gyeongbuk, Lat: 36.4150, Lon: 129.3650},
	{Name: "청도군", Region: Gyeongbuk, Lat: 35.6470, Lon: 128.7430},
	{Name: "고령군", Region: Gyeongbuk, Lat: 35.7260, Lon: 128.2620},
	{Name: "성주군", Region: Gyeongbuk, Lat: 35.9180, Lon: 128.2880},
	{Name: "칠곡군", Region: Gyeongbuk, Lat: 35.9950, Lon: 128.4010},
	{Name: "예천군", Region: Gyeongbuk, Lat: 36.6580, Lon: 128.4560},
	{Name: "봉화군", Region: Gyeongbuk, Lat: 36.8930, Lon: 128.7320},
	{Name: "울진군", Region: Gyeongbuk, Lat: 36.9930, Lon: 129.4000},
	{Name: "울릉군", Region: Gyeongbuk, Lat: 37.4840, Lon: 130.9030},

	// 경상남도
	{Name: "경상남도", Region: Gyeongnam, Lat: 35.2383, Lon: 128.6924},
	{Name: "창원시", Region: Gyeongnam, Lat: 35.2270, Lon: 128.6810},
	{Name: "진주시", Region: Gyeongnam, Lat: 35.1800, Lon: 128.1080},
	{Name: "통영시", Region: Gyeongnam, Lat: 34.8540, Lon: 128.4330},
	{Name: "사천시", Region: Gyeongnam, Lat: 35.0030, Lon: 128.0640},
	{Name: "김해시", Region: Gyeongnam, Lat: 35.2280, Lon: 128.8890},
	{Name: "밀양시", Region: Gyeongnam, Lat: 35.5030, Lon: 128.7460},
	{Name: "거제시", Region: Gyeongnam, Lat: 34.8800, Lon: 128.6210},
	{Name: "양산시", Region: Gyeongnam, Lat: 35.3380, Lon: 129.0340},
	{Name: "의령군", Region: Gyeongnam, Lat: 35.3220, Lon: 128.2620},
	{Name: "함안군", Region: Gyeongnam, Lat: 35.2720, Lon: 128.4060},
	{Name: "창녕군", Region: Gyeongnam, Lat: 35.5440, Lon: 128.4920},
	{Name: "고성군", Region: Gyeongnam, Lat: 34.9730, Lon: 128.3240},
	{Name: "남해군", Region: Gyeongnam, Lat: 34.8370, Lon: 127.8920},
	{Name: "하동군", Region: Gyeongnam, Lat: 35.0670, Lon: 127.7510},
	{Name: "산청군", Region: Gyeongnam, Lat: 35.4150, Lon: 127.8730},
	{Name: "함양군", Region: Gyeongnam, Lat: 35.5200, Lon: 127.7270},
	{Name: "거창군", Region: Gyeongnam, Lat: 35.6870, Lon: 127.9020},
	{Name: "합천군", Region: Gyeongnam, Lat: 35.5660, Lon: 128.1650},

	// 제주특별자치도
	{Name: "제주특별자치도", Region: Jeju, Lat: 33.4890, Lon: 126.4983},
	{Name: "제주시", Region: Jeju, Lat: 33.4996, Lon: 126.5312},
	{Name: "서귀포시", Region: Jeju, Lat: 33.2541, Lon: 126.5600},
}

// regionNames maps each region to its canonical Korean display name.
var regionNames = map[Region]string{
	Seoul:     "서울특별시",
	Busan:     "부산광역시",
	Daegu:     "대구광역시",
	Incheon:   "인천광역시",
	Gwangju:   "광주광역시",
	Daejeon:   "대전광역시",
	Ulsan:     "울산광역시",
	Sejong:    "세종시",
	Gyeonggi:  "경기도",
	Gangwon:   "강원특별자치도",
	Chungbuk:  "충청북도",
	Chungnam:  "충청남도",
	Jeonbuk:   "전북특별자치도",
	Jeonnam:   "전라남도",
	Gyeongbuk: "경상북도",
	Gyeongnam: "경상남도",
	Jeju:      "제주특별자치도",
}

// representatives is built at init: the per-region point used for
// region-level weather lookups. For metropolitan regions this is the
// city itself; for provinces it is the province-level gazetteer entry.
var representatives = map[Region]PlaceRecord{}

func init() {
	if err := validateTables(); err != nil {
		panic(fmt.Sprintf("geo: invalid static tables: %v", err))
	}
	for _, p := range gazetteer {
		if p.Name == regionNames[p.Region] {
			representatives[p.Region] = p
		}
	}
	buildHierarchy()
}

// Regions returns the 17 region identifiers in canonical order.
func Regions() []Region {
	out := make([]Region, len(allRegions))
	copy(out, allRegions)
	return out
}

// Gazetteer returns a copy of the place table in declaration order.
func Gazetteer() []PlaceRecord {
	out := make([]PlaceRecord, len(gazetteer))
	copy(out, gazetteer)
	return out
}

// validateTables checks the static table invariants: every region has at
// least one place and a display name, metropolitan regions have exactly
// one, and each region's canonical name appears as a gazetteer entry so
// a representative coordinate exists.
func validateTables() error {
	counts := make(map[Region]int, len(allRegions))
	named := make(map[Region]bool, len(allRegions))
	known := make(map[Region]bool, len(allRegions))
	for _, r := range allRegions {
		known[r] = true
		if regionNames[r] == "" {
			return fmt.Errorf("region %q has no display name", r)
		}
	}

	for _, p := range gazetteer {
		if !known[p.Region] {
			return fmt.Errorf("place %q references unknown region %q", p.Name, p.Region)
		}
		counts[p.Region]++
		if p.Name == regionNames[p.Region] {
			named[p.Region] = true
		}
	}

	for _, r := range allRegions {
		switch {
		case counts[r] == 0:
			return fmt.Errorf("region %q has no gazetteer entries", r)
		case metropolitanRegions[r] && counts[r] != 1:
			return fmt.Errorf("metropolitan region %q has %d entries, want 1", r, counts[r])
		case !named[r]:
			return fmt.Errorf("region %q has no representative entry", r)
		}
	}

	return validateKeywords()
}
