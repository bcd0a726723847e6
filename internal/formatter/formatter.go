package formatter

import (
	"fmt"
	"math"
	"time"
)

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// CompassDirection maps a bearing in degrees onto one of 16 compass points.
func CompassDirection(degrees float64) string {
	index := int(roundHalfUp(degrees/22.5)) % len(compassPoints)
	if index < 0 {
		index += len(compassPoints)
	}
	return compassPoints[index]
}

// ClockTime formats a unix timestamp shifted by a timezone offset as "H:MM AM".
// The shifted instant is read in UTC so the server's local zone never leaks in.
func ClockTime(unixSeconds, tzOffsetSeconds int64) string {
	t := time.Unix(unixSeconds+tzOffsetSeconds, 0).UTC()

	period := "AM"
	if t.Hour() >= 12 {
		period = "PM"
	}

	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour, t.Minute(), period)
}

func WindSpeed(metersPerSecond float64) string {
	return fmt.Sprintf("%.1f km/h", metersPerSecond*3.6)
}

func Visibility(meters int) string {
	return fmt.Sprintf("%.1f km", float64(meters)/1000)
}

// Temperature rounds to the nearest whole degree, halves going up.
func Temperature(celsius float64) int {
	return int(roundHalfUp(celsius))
}

func Degrees(celsius float64) string {
	return fmt.Sprintf("%d°C", Temperature(celsius))
}

func Humidity(percent int) string {
	return fmt.Sprintf("%d%%", percent)
}

func Pressure(hectopascals int) string {
	return fmt.Sprintf("%d hPa", hectopascals)
}

func LastUpdated(t time.Time) string {
	return "Last updated: " + t.Format("03:04 PM")
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
