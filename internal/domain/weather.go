package domain

// CurrentWeather is the present-conditions view returned by the weather
// provider adapter. Temperatures are rounded to whole °C for display.
type CurrentWeather struct {
	Location    string  `json:"location"`
	Temperature int     `json:"temperature"`
	FeelsLike   int     `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

// ForecastEntry is one day of the 5-day forecast.
type ForecastEntry struct {
	Date        string `json:"date"`
	TempMin     int    `json:"temp_min"`
	TempMax     int    `json:"temp_max"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
