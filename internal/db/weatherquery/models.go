package weatherquery

import (
	"time"
)

type WeatherQuery struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Kind         string    `json:"kind" gorm:"column:kind"`
	Location     string    `json:"location" gorm:"index:idx_location;index:idx_location_created_at"`
	Outcome      string    `json:"outcome" gorm:"column:outcome"`
	StatusCode   int       `json:"status_code,omitempty" gorm:"column:status_code"`
	ResolvedName string    `json:"resolved_name,omitempty" gorm:"column:resolved_name"`
	Temperature  float64   `json:"temperature" gorm:"column:temperature"`
	CreatedAt    time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_location_created_at"`
}

func (WeatherQuery) TableName() string {
	return "weather_queries"
}
