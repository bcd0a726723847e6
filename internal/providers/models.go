package providers

import (
	"fmt"
	"strconv"
)

// Query selects what the provider is asked about: a city name or a coordinate pair.
type Query struct {
	city   string
	lat    float64
	lon    float64
	coords bool
}

func CityQuery(city string) Query {
	return Query{city: city}
}

func CoordinatesQuery(lat, lon float64) Query {
	return Query{lat: lat, lon: lon, coords: true}
}

func (q Query) City() string {
	return q.city
}

func (q Query) Coordinates() (lat, lon float64, ok bool) {
	return q.lat, q.lon, q.coords
}

func (q Query) IsCoordinates() bool {
	return q.coords
}

// Kind is "city" or "coordinates".
func (q Query) Kind() string {
	if q.coords {
		return "coordinates"
	}
	return "city"
}

func (q Query) String() string {
	if q.coords {
		return fmt.Sprintf("%s,%s", formatCoordinate(q.lat), formatCoordinate(q.lon))
	}
	return q.city
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WeatherResult mirrors the OpenWeatherMap current weather payload. Nested objects
// are pointers so that an absent object can be told apart from a zero value.
type WeatherResult struct {
	Name       string       `json:"name"`
	Timezone   int64        `json:"timezone"`
	Visibility int          `json:"visibility"`
	Weather    []Condition  `json:"weather"`
	Main       *MainReading `json:"main"`
	Wind       *WindReading `json:"wind"`
	Sys        *SysInfo     `json:"sys"`
}

type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type MainReading struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

type WindReading struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

type SysInfo struct {
	Country string `json:"country"`
	Sunrise int64  `json:"sunrise"`
	Sunset  int64  `json:"sunset"`
}
