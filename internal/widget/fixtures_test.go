package widget_test

import "ulascansenturk/weather-widget/internal/providers"

func parisResult() *providers.WeatherResult {
	return &providers.WeatherResult{
		Name:       "Paris",
		Timezone:   7200,
		Visibility: 10000,
		Weather: []providers.Condition{
			{ID: 800, Main: "Clear", Description: "clear sky", Icon: "01d"},
		},
		Main: &providers.MainReading{Temp: 21.6, FeelsLike: 21.2, Pressure: 1015, Humidity: 48},
		Wind: &providers.WindReading{Speed: 10, Deg: 45},
		Sys:  &providers.SysInfo{Country: "FR", Sunrise: 0, Sunset: 43200},
	}
}
