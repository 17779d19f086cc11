package openweather

// descriptionKo normalizes OpenWeather descriptions (English, or the
// provider's sometimes inconsistent lang=kr output) into the short
// Korean forms the UI expects.
var descriptionKo = map[string]string{
	// 맑음
	"clear sky": "맑음",

	// 구름/흐림
	"튼 구름":            "흐림",
	"튼구름":             "흐림",
	"온흐림":             "흐림",
	"broken clouds":   "흐림",
	"overcast clouds": "흐림",
	"scattered clouds": "구름 많음",
	"few clouds":       "구름 조금",
	"약간의 구름이 낀 하늘":    "구름 조금",

	// 비
	"light rain":    "가벼운 비",
	"moderate rain": "보통 비",
	"heavy rain":    "강한 비",

	// 눈
	"light snow":    "가벼운 눈",
	"moderate snow": "보통 눈",
	"heavy snow":    "강한 눈",

	// 안개
	"mist": "안개",
	"fog":  "안개",

	// 기타
	"thunderstorm": "천둥번개",
	"hail":         "우박",
}

// TranslateDescription maps a provider weather description to its Korean
// display form. Unknown descriptions come back unchanged; the lookup is
// total, never an error.
func TranslateDescription(description string) string {
	if ko, ok := descriptionKo[description]; ok {
		return ko
	}
	return description
}
