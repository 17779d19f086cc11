package tourapi

import "github.com/galraemalrae/weathertravel/internal/geo"

// areaCodes maps administrative regions to KorService2 area codes.
// Metropolitan cities use 1–8; provinces use the 31–39 range.
var areaCodes = map[geo.Region]string{
	geo.Seoul:     "1",
	geo.Incheon:   "2",
	geo.Daejeon:   "3",
	geo.Daegu:     "4",
	geo.Gwangju:   "5",
	geo.Busan:     "6",
	geo.Ulsan:     "7",
	geo.Sejong:    "8",
	geo.Gyeonggi:  "31",
	geo.Gangwon:   "32",
	geo.Chungbuk:  "33",
	geo.Chungnam:  "34",
	geo.Gyeongbuk: "35",
	geo.Gyeongnam: "36",
	geo.Jeonbuk:   "37",
	geo.Jeonnam:   "38",
	geo.Jeju:      "39",
}

// AreaCode returns the KorService2 area code for a region.
func AreaCode(region geo.Region) (string, bool) {
	code, ok := areaCodes[region]
	return code, ok
}

// categoryNames translates KorService2 top-level category codes into
// Korean display names.
var categoryNames = map[string]string{
	"A01": "자연",
	"A02": "인문(문화/예술/역사)",
	"A03": "레포츠",
	"A04": "쇼핑",
	"A05": "음식",
	"B02": "숙박",
	"C01": "추천코스",
}

// CategoryName returns the Korean display name for a category code, or
// the code itself when it is not a known category.
func CategoryName(code string) string {
	if code == "" {
		return ""
	}
	if name, ok := categoryNames[code]; ok {
		return name
	}
	return code
}
