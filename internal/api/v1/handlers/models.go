package handlers

import (
	"ulascansenturk/weather-widget/internal/db/weatherquery"
	"ulascansenturk/weather-widget/internal/widget"
)

type WeatherResponse struct {
	Query string      `json:"query"`
	View  widget.View `json:"weather"`
}

type StateResponse struct {
	State widget.UIState `json:"state"`
	Theme string         `json:"theme"`
}

type QueryLogResponse struct {
	Queries []weatherquery.WeatherQuery `json:"queries"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
